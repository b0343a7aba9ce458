package command

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RehanShaikh007/texhub-backend/internal/order/domain"
	stockdomain "github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// stockPlan accumulates in-memory stock mutations for one order transition.
// Lots are loaded once and keyed by id, so multiple items against the same lot
// compound before anything is persisted. Nothing is written until the caller
// hands the touched lots to the repository's transactional commit.
//
// Deduction resolves strictly (any unresolved item aborts the whole plan);
// restoration resolves leniently (unresolved items are skipped so a deleted
// lot never blocks a reversal).
type stockPlan struct {
	stocks stockdomain.StockRepository
	sticky stockdomain.StickySet
	lots   map[uint]*stockdomain.StockLot
	order  []uint
}

func newStockPlan(stocks stockdomain.StockRepository, sticky stockdomain.StickySet) *stockPlan {
	return &stockPlan{
		stocks: stocks,
		sticky: sticky,
		lots:   make(map[uint]*stockdomain.StockLot),
	}
}

// resolve finds the lot for an item: exact lot id first, then the first
// available/low lot matching (product, color) in natural store order
func (p *stockPlan) resolve(item domain.OrderItem) (*stockdomain.StockLot, error) {
	if item.StockLotID != nil {
		if lot, ok := p.lots[*item.StockLotID]; ok {
			return lot, nil
		}
		lot, err := p.stocks.FindByID(*item.StockLotID)
		if err != nil {
			return nil, err
		}
		p.track(lot)
		return lot, nil
	}

	lot, err := p.stocks.FindForOrderItem(item.Product, item.Color)
	if err != nil {
		return nil, err
	}
	if tracked, ok := p.lots[lot.ID]; ok {
		return tracked, nil
	}
	p.track(lot)
	return lot, nil
}

func (p *stockPlan) track(lot *stockdomain.StockLot) {
	p.lots[lot.ID] = lot
	p.order = append(p.order, lot.ID)
}

// deduct validates and applies every item against in-memory lots. Any failure
// abandons the plan before a single write happens.
func (p *stockPlan) deduct(items []domain.OrderItem) error {
	for _, item := range items {
		lot, err := p.resolve(item)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("no stock found for product %q color %q", item.Product, item.Color)
			}
			return apperr.Unexpected("failed to resolve stock", err)
		}

		variant := lot.VariantByColor(item.Color)
		if variant == nil {
			return apperr.BusinessRulef("color %q not found in stock lot %d", item.Color, lot.ID)
		}

		if item.Quantity > variant.Quantity {
			return apperr.BusinessRulef(
				"insufficient stock for product %q color %q: available %.2f, requested %.2f",
				item.Product, item.Color, variant.Quantity, item.Quantity,
			)
		}

		variant.Quantity -= item.Quantity
	}

	p.recomputeStatuses()
	return nil
}

// restore adds item quantities back. Items whose lot or color no longer
// resolves are skipped silently.
func (p *stockPlan) restore(items []domain.OrderItem) {
	for _, item := range items {
		lot, err := p.resolve(item)
		if err != nil {
			continue
		}
		variant := lot.VariantByColor(item.Color)
		if variant == nil {
			continue
		}
		variant.Quantity += item.Quantity
	}

	p.recomputeStatuses()
}

func (p *stockPlan) recomputeStatuses() {
	for _, id := range p.order {
		p.lots[id].RecomputeStatus(p.sticky)
	}
}

// touched returns every loaded lot in resolution order
func (p *stockPlan) touched() []*stockdomain.StockLot {
	lots := make([]*stockdomain.StockLot, 0, len(p.order))
	for _, id := range p.order {
		lots = append(lots, p.lots[id])
	}
	return lots
}

// depleted returns touched lots that ended the plan low or out
func (p *stockPlan) depleted() []*stockdomain.StockLot {
	var lots []*stockdomain.StockLot
	for _, id := range p.order {
		lot := p.lots[id]
		if lot.Status == stockdomain.StatusLow || lot.Status == stockdomain.StatusOut {
			lots = append(lots, lot)
		}
	}
	return lots
}
