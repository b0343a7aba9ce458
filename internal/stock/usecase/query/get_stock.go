package query

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// GetStockQuery represents the query to get a stock lot by id
type GetStockQuery struct {
	StockID uint
}

// GetStockHandler handles get stock query
type GetStockHandler struct {
	repo domain.StockRepository
}

// NewGetStockHandler creates a new get stock handler
func NewGetStockHandler(repo domain.StockRepository) *GetStockHandler {
	return &GetStockHandler{repo: repo}
}

// Handle executes the get stock query
func (h *GetStockHandler) Handle(q GetStockQuery) (*domain.StockLot, error) {
	lot, err := h.repo.FindByID(q.StockID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("stock not found")
		}
		return nil, apperr.Unexpected("failed to get stock", err)
	}
	return lot, nil
}
