package command

import (
	"context"
	"errors"

	"gorm.io/gorm"

	notifdomain "github.com/RehanShaikh007/texhub-backend/internal/notification/domain"
	"github.com/RehanShaikh007/texhub-backend/internal/product/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// DeleteProductHandler handles delete product command
type DeleteProductHandler struct {
	repo     domain.ProductRepository
	notifier Notifier
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.ProductRepository, notifier Notifier) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo, notifier: notifier}
}

// Handle executes the delete product command. Stock lots and order items that
// reference the product by name are left in place.
func (h *DeleteProductHandler) Handle(ctx context.Context, id uint) error {
	product, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("product not found")
		}
		return apperr.Unexpected("failed to get product", err)
	}

	if err := h.repo.Delete(id); err != nil {
		return apperr.Unexpected("failed to delete product", err)
	}

	if h.notifier != nil {
		h.notifier.Dispatch(ctx, notifdomain.CategoryProduct, "Product deleted: "+product.Name)
	}
	return nil
}
