package command

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/RehanShaikh007/texhub-backend/internal/adjustment/domain"
	notifdomain "github.com/RehanShaikh007/texhub-backend/internal/notification/domain"
	stockdomain "github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// Notifier dispatches best-effort business notifications
type Notifier interface {
	Dispatch(ctx context.Context, category, message string)
}

// CreateAdjustmentCommand represents the command to correct a variant
// quantity upward
type CreateAdjustmentCommand struct {
	StockID     uint
	Color       string
	NewQuantity float64
	Reason      string
}

// CreateAdjustmentHandler handles create adjustment command
type CreateAdjustmentHandler struct {
	repo     domain.AdjustmentRepository
	stocks   stockdomain.StockRepository
	sticky   stockdomain.StickySet
	notifier Notifier
}

// NewCreateAdjustmentHandler creates a new create adjustment handler
func NewCreateAdjustmentHandler(
	repo domain.AdjustmentRepository,
	stocks stockdomain.StockRepository,
	sticky stockdomain.StickySet,
	notifier Notifier,
) *CreateAdjustmentHandler {
	return &CreateAdjustmentHandler{repo: repo, stocks: stocks, sticky: sticky, notifier: notifier}
}

// Handle executes the create adjustment command. The new quantity must be
// strictly greater than the variant's current quantity; the audit row
// captures the quantity as it was immediately before the correction.
func (h *CreateAdjustmentHandler) Handle(ctx context.Context, cmd CreateAdjustmentCommand) (*domain.Adjustment, error) {
	if cmd.Color == "" {
		return nil, apperr.Validationf("color is required")
	}
	if cmd.Reason == "" {
		return nil, apperr.Validationf("reason is required")
	}

	lot, err := h.stocks.FindByID(cmd.StockID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("stock not found")
		}
		return nil, apperr.Unexpected("failed to get stock", err)
	}

	variant := lot.VariantByColor(cmd.Color)
	if variant == nil {
		return nil, apperr.BusinessRulef("color %q not found in stock lot %d", cmd.Color, lot.ID)
	}

	if cmd.NewQuantity <= variant.Quantity {
		return nil, apperr.Validationf(
			"adjustment must increase quantity: current %.2f, requested %.2f",
			variant.Quantity, cmd.NewQuantity,
		)
	}

	adjustment := &domain.Adjustment{
		StockLotID:   lot.ID,
		Product:      lot.Details.Product,
		Color:        cmd.Color,
		PrevQuantity: variant.Quantity,
		NewQuantity:  cmd.NewQuantity,
		Reason:       cmd.Reason,
	}

	variant.Quantity = cmd.NewQuantity
	lot.RecomputeStatus(h.sticky)

	if err := h.repo.CreateWithStock(adjustment, lot); err != nil {
		return nil, apperr.Unexpected("failed to create adjustment", err)
	}

	if h.notifier != nil {
		h.notifier.Dispatch(ctx, notifdomain.CategoryStock,
			fmt.Sprintf("Stock adjusted: lot #%d %q color %s, %.2f -> %.2f (%s)",
				lot.ID, adjustment.Product, cmd.Color,
				adjustment.PrevQuantity, adjustment.NewQuantity, cmd.Reason))
	}

	return adjustment, nil
}
