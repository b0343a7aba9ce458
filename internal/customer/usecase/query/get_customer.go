package query

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RehanShaikh007/texhub-backend/internal/customer/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// GetCustomerQuery represents the query for one customer
type GetCustomerQuery struct {
	CustomerID uint
}

// GetCustomerHandler handles get customer query
type GetCustomerHandler struct {
	repo   domain.CustomerRepository
	orders domain.OrderBook
}

// NewGetCustomerHandler creates a new get customer handler
func NewGetCustomerHandler(repo domain.CustomerRepository, orders domain.OrderBook) *GetCustomerHandler {
	return &GetCustomerHandler{repo: repo, orders: orders}
}

// Handle executes the get customer query, attaching the computed credit summary
func (h *GetCustomerHandler) Handle(q GetCustomerQuery) (*CustomerWithCredit, error) {
	customer, err := h.repo.FindByID(q.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("customer not found")
		}
		return nil, apperr.Unexpected("failed to get customer", err)
	}

	summary, err := Summarize(customer, h.orders)
	if err != nil {
		return nil, err
	}

	return &CustomerWithCredit{Customer: *customer, Credit: *summary}, nil
}
