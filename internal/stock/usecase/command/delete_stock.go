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

// DeleteStockCommand represents the command to delete a stock lot. Deletion
// does not cascade into orders referencing the lot; their reversals skip it.
type DeleteStockCommand struct {
	StockID uint
}

// DeleteStockHandler handles delete stock command
type DeleteStockHandler struct {
	repo     domain.StockRepository
	notifier Notifier
}

// NewDeleteStockHandler creates a new delete stock handler
func NewDeleteStockHandler(repo domain.StockRepository, notifier Notifier) *DeleteStockHandler {
	return &DeleteStockHandler{repo: repo, notifier: notifier}
}

// Handle executes the delete stock command
func (h *DeleteStockHandler) Handle(ctx context.Context, cmd DeleteStockCommand) error {
	lot, err := h.repo.FindByID(cmd.StockID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("stock not found")
		}
		return apperr.Unexpected("failed to get stock", err)
	}

	if err := h.repo.Delete(cmd.StockID); err != nil {
		return apperr.Unexpected("failed to delete stock", err)
	}

	if h.notifier != nil {
		h.notifier.Dispatch(ctx, notifdomain.CategoryStock,
			fmt.Sprintf("Stock lot #%d deleted: %s %q", lot.ID, lot.StockType, lot.Details.Product))
	}

	return nil
}
