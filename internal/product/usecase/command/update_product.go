package command

import (
	"context"
	"errors"

	"gorm.io/gorm"

	notifdomain "github.com/RehanShaikh007/texhub-backend/internal/notification/domain"
	"github.com/RehanShaikh007/texhub-backend/internal/product/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// UpdateProductCommand represents the command to update a product. Nil fields
// are left unchanged.
type UpdateProductCommand struct {
	ProductID      uint
	Name           *string
	Description    *string
	Category       *string
	PricePerMeters *float64
	Unit           *string
}

// UpdateProductHandler handles update product command
type UpdateProductHandler struct {
	repo     domain.ProductRepository
	notifier Notifier
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository, notifier Notifier) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo, notifier: notifier}
}

// Handle executes the update product command. A rename cascades into the
// records that store the product by name.
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	product, err := h.repo.FindByID(cmd.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("product not found")
		}
		return nil, apperr.Unexpected("failed to get product", err)
	}

	oldName := product.Name
	if cmd.Name != nil {
		if *cmd.Name == "" {
			return nil, apperr.Validationf("product name cannot be empty")
		}
		product.Name = *cmd.Name
	}
	if cmd.Description != nil {
		product.Description = *cmd.Description
	}
	if cmd.Category != nil {
		product.Category = *cmd.Category
	}
	if cmd.PricePerMeters != nil {
		if *cmd.PricePerMeters < 0 {
			return nil, apperr.Validationf("price cannot be negative")
		}
		product.PricePerMeters = *cmd.PricePerMeters
	}
	if cmd.Unit != nil {
		if *cmd.Unit != "METERS" && *cmd.Unit != "SETS" {
			return nil, apperr.Validationf("unit must be METERS or SETS")
		}
		product.Unit = *cmd.Unit
	}

	if product.Name != oldName {
		err = h.repo.UpdateWithRename(product, oldName)
	} else {
		err = h.repo.Update(product)
	}
	if err != nil {
		return nil, apperr.Unexpected("failed to update product", err)
	}

	if h.notifier != nil {
		h.notifier.Dispatch(ctx, notifdomain.CategoryProduct, "Product updated: "+product.Name)
	}

	return product, nil
}
