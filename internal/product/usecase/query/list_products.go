package query

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RehanShaikh007/texhub-backend/internal/product/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// ListProductsQuery represents the query to list products
type ListProductsQuery struct {
	Limit  int
	Offset int
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(q ListProductsQuery) ([]domain.Product, int64, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}

	products, total, err := h.repo.FindAll(q.Limit, q.Offset)
	if err != nil {
		return nil, 0, apperr.Unexpected("failed to list products", err)
	}
	return products, total, nil
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(id uint) (*domain.Product, error) {
	product, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("product not found")
		}
		return nil, apperr.Unexpected("failed to get product", err)
	}
	return product, nil
}
