package query

import (
	"github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// ListStockQuery represents the query to list stock lots
type ListStockQuery struct {
	Limit  int
	Offset int
}

// ListStockHandler handles list stock query
type ListStockHandler struct {
	repo domain.StockRepository
}

// NewListStockHandler creates a new list stock handler
func NewListStockHandler(repo domain.StockRepository) *ListStockHandler {
	return &ListStockHandler{repo: repo}
}

// Handle executes the list stock query
func (h *ListStockHandler) Handle(q ListStockQuery) ([]domain.StockLot, int64, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}

	lots, total, err := h.repo.FindAll(q.Limit, q.Offset)
	if err != nil {
		return nil, 0, apperr.Unexpected("failed to list stock", err)
	}
	return lots, total, nil
}

// LowStockHandler lists lots flagged low or out
type LowStockHandler struct {
	repo domain.StockRepository
}

// NewLowStockHandler creates a new low stock handler
func NewLowStockHandler(repo domain.StockRepository) *LowStockHandler {
	return &LowStockHandler{repo: repo}
}

// Handle returns every lot currently low or out of stock
func (h *LowStockHandler) Handle() ([]domain.StockLot, error) {
	lots, err := h.repo.FindLowStock()
	if err != nil {
		return nil, apperr.Unexpected("failed to list low stock", err)
	}
	return lots, nil
}
