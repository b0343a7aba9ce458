package command

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	notifdomain "github.com/RehanShaikh007/texhub-backend/internal/notification/domain"
	"github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// UpdateStockCommand represents a direct stock edit. Nil fields are left
// unchanged; the stock type is fixed at creation and cannot be patched.
type UpdateStockCommand struct {
	StockID        uint
	Status         *string
	Variants       []VariantInput
	Details        *domain.StockDetails
	AdditionalInfo *string
}

// UpdateStockHandler handles update stock command
type UpdateStockHandler struct {
	repo     domain.StockRepository
	sticky   domain.StickySet
	notifier Notifier
}

// NewUpdateStockHandler creates a new update stock handler
func NewUpdateStockHandler(repo domain.StockRepository, sticky domain.StickySet, notifier Notifier) *UpdateStockHandler {
	return &UpdateStockHandler{repo: repo, sticky: sticky, notifier: notifier}
}

// Handle executes the update stock command. A replaced variant set triggers
// status recomputation; an explicit status in the patch wins over the derived
// one so operators can park a lot in processing or quality_check.
func (h *UpdateStockHandler) Handle(ctx context.Context, cmd UpdateStockCommand) (*domain.StockLot, error) {
	lot, err := h.repo.FindByID(cmd.StockID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("stock not found")
		}
		return nil, apperr.Unexpected("failed to get stock", err)
	}

	if cmd.Details != nil {
		lot.Details = *cmd.Details
	}
	if cmd.AdditionalInfo != nil {
		lot.AdditionalInfo = *cmd.AdditionalInfo
	}

	var newVariants []domain.StockVariant
	if cmd.Variants != nil {
		seen := make(map[string]bool, len(cmd.Variants))
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
			newVariants = append(newVariants, domain.StockVariant{
				Color:    in.Color,
				Quantity: in.Quantity,
				Unit:     unit,
			})
		}
	}

	if cmd.Status != nil {
		switch *cmd.Status {
		case domain.StatusAvailable, domain.StatusLow, domain.StatusOut,
			domain.StatusProcessing, domain.StatusQualityCheck:
			lot.Status = *cmd.Status
		default:
			return nil, apperr.Validationf("invalid stock status %q", *cmd.Status)
		}
	}

	if newVariants != nil {
		if err := h.repo.ReplaceVariants(lot, newVariants); err != nil {
			return nil, apperr.Unexpected("failed to update stock variants", err)
		}
		if cmd.Status == nil {
			lot.RecomputeStatus(h.sticky)
		}
	}

	if err := h.repo.Save(lot); err != nil {
		return nil, apperr.Unexpected("failed to update stock", err)
	}

	if h.notifier != nil {
		h.notifier.Dispatch(ctx, notifdomain.CategoryStock,
			fmt.Sprintf("Stock lot #%d updated: %q now %s, total %.2f",
				lot.ID, lot.Details.Product, lot.Status, lot.TotalQuantity()))
	}

	return lot, nil
}
