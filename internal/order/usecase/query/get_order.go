package query

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RehanShaikh007/texhub-backend/internal/order/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// GetOrderQuery represents the query to get an order by id
type GetOrderQuery struct {
	OrderID uint
}

// GetOrderHandler handles get order query
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the get order query
func (h *GetOrderHandler) Handle(q GetOrderQuery) (*domain.Order, error) {
	order, err := h.repo.FindByID(q.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("order not found")
		}
		return nil, apperr.Unexpected("failed to get order", err)
	}
	return order, nil
}
