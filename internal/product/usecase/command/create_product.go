package command

import (
	"context"

	notifdomain "github.com/RehanShaikh007/texhub-backend/internal/notification/domain"
	"github.com/RehanShaikh007/texhub-backend/internal/product/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// Notifier dispatches best-effort business notifications
type Notifier interface {
	Dispatch(ctx context.Context, category, message string)
}

// CreateProductCommand represents the command to create a product
type CreateProductCommand struct {
	Name           string
	Description    string
	Category       string
	PricePerMeters float64
	Unit           string
}

// CreateProductHandler handles create product command
type CreateProductHandler struct {
	repo     domain.ProductRepository
	notifier Notifier
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository, notifier Notifier) *CreateProductHandler {
	return &CreateProductHandler{repo: repo, notifier: notifier}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Name == "" {
		return nil, apperr.Validationf("product name is required")
	}
	if cmd.PricePerMeters < 0 {
		return nil, apperr.Validationf("price cannot be negative")
	}
	unit := cmd.Unit
	if unit == "" {
		unit = "METERS"
	}
	if unit != "METERS" && unit != "SETS" {
		return nil, apperr.Validationf("unit must be METERS or SETS")
	}

	product := &domain.Product{
		Name:           cmd.Name,
		Description:    cmd.Description,
		Category:       cmd.Category,
		PricePerMeters: cmd.PricePerMeters,
		Unit:           unit,
	}

	if err := h.repo.Create(product); err != nil {
		return nil, apperr.Unexpected("failed to create product", err)
	}

	if h.notifier != nil {
		h.notifier.Dispatch(ctx, notifdomain.CategoryProduct, "Product added: "+product.Name)
	}

	return product, nil
}
