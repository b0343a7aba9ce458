package command

import (
	"context"
	"fmt"

	notifdomain "github.com/RehanShaikh007/texhub-backend/internal/notification/domain"
	"github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// Notifier dispatches best-effort business notifications
type Notifier interface {
	Dispatch(ctx context.Context, category, message string)
}

// VariantInput is one requested (color, quantity, unit) line
type VariantInput struct {
	Color    string
	Quantity float64
	Unit     string
}

// CreateStockCommand represents the command to create a stock lot
type CreateStockCommand struct {
	StockType      string
	Status         string
	Variants       []VariantInput
	Details        domain.StockDetails
	AdditionalInfo string
}

// CreateStockHandler handles create stock command
type CreateStockHandler struct {
	repo     domain.StockRepository
	sticky   domain.StickySet
	notifier Notifier
}

// NewCreateStockHandler creates a new create stock handler
func NewCreateStockHandler(repo domain.StockRepository, sticky domain.StickySet, notifier Notifier) *CreateStockHandler {
	return &CreateStockHandler{repo: repo, sticky: sticky, notifier: notifier}
}

// Handle executes the create stock command. Operator-set processing or
// quality_check survives creation; otherwise the status is derived from the
// total quantity.
func (h *CreateStockHandler) Handle(ctx context.Context, cmd CreateStockCommand) (*domain.StockLot, error) {
	switch cmd.StockType {
	case domain.StockTypeGray, domain.StockTypeFactory, domain.StockTypeDesign:
	default:
		return nil, apperr.Validationf("invalid stock type %q", cmd.StockType)
	}
	if len(cmd.Variants) == 0 {
		return nil, apperr.Validationf("stock must have at least one variant")
	}

	seen := make(map[string]bool, len(cmd.Variants))
	variants := make([]domain.StockVariant, 0, len(cmd.Variants))
	for _, in := range cmd.Variants {
		if in.Color == "" {
			return nil, apperr.Validationf("variant color is required")
		}
		if seen[in.Color] {
			return nil, apperr.Validationf("duplicate variant color %q", in.Color)
		}
		seen[in.Color] = true
		if in.Quantity < 0 {
			return nil, apperr.Validationf("variant quantity cannot be negative")
		}
		unit := in.Unit
		if unit == "" {
			unit = "METERS"
		}
		if unit != "METERS" && unit != "SETS" {
			return nil, apperr.Validationf("invalid unit %q", in.Unit)
		}
		variants = append(variants, domain.StockVariant{
			Color:    in.Color,
			Quantity: in.Quantity,
			Unit:     unit,
		})
	}

	lot := &domain.StockLot{
		StockType:      cmd.StockType,
		Status:         cmd.Status,
		Variants:       variants,
		Details:        cmd.Details,
		AdditionalInfo: cmd.AdditionalInfo,
	}
	if lot.Status != domain.StatusProcessing && lot.Status != domain.StatusQualityCheck {
		lot.Status = domain.DeriveStatus(lot.TotalQuantity(), lot.Status, h.sticky)
	}

	if err := h.repo.Create(lot); err != nil {
		return nil, apperr.Unexpected("failed to create stock", err)
	}

	if h.notifier != nil {
		h.notifier.Dispatch(ctx, notifdomain.CategoryStock,
			fmt.Sprintf("Stock lot #%d added: %s %q, %d variant(s), total %.2f",
				lot.ID, lot.StockType, lot.Details.Product, len(lot.Variants), lot.TotalQuantity()))
	}

	return lot, nil
}
