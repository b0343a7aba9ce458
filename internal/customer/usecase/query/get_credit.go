package query

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RehanShaikh007/texhub-backend/internal/customer/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// GetCreditQuery represents the query for a customer's credit position
type GetCreditQuery struct {
	CustomerID uint
}

// GetCreditHandler handles get credit query
type GetCreditHandler struct {
	repo   domain.CustomerRepository
	orders domain.OrderBook
}

// NewGetCreditHandler creates a new get credit handler
func NewGetCreditHandler(repo domain.CustomerRepository, orders domain.OrderBook) *GetCreditHandler {
	return &GetCreditHandler{repo: repo, orders: orders}
}

// Handle executes the get credit query. Used credit is the summed value of
// every order the customer ever placed, pending orders included.
func (h *GetCreditHandler) Handle(q GetCreditQuery) (*domain.CreditSummary, error) {
	customer, err := h.repo.FindByID(q.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("customer not found")
		}
		return nil, apperr.Unexpected("failed to get customer", err)
	}

	return Summarize(customer, h.orders)
}

// Summarize computes the credit summary for one customer from the order book
func Summarize(customer *domain.Customer, orders domain.OrderBook) (*domain.CreditSummary, error) {
	used, err := orders.TotalForCustomer(customer.Name)
	if err != nil {
		return nil, apperr.Unexpected("failed to sum customer orders", err)
	}

	return &domain.CreditSummary{
		CreditLimit:     customer.CreditLimit,
		UsedCredit:      used,
		RemainingCredit: customer.CreditLimit - used,
	}, nil
}
