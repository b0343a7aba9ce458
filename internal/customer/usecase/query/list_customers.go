package query

import (
	"github.com/RehanShaikh007/texhub-backend/internal/customer/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// ListCustomersQuery represents the query to list customers
type ListCustomersQuery struct {
	Limit  int
	Offset int
}

// CustomerWithCredit pairs a customer with its computed credit position
type CustomerWithCredit struct {
	domain.Customer
	Credit domain.CreditSummary `json:"credit"`
}

// ListCustomersHandler handles list customers query
type ListCustomersHandler struct {
	repo   domain.CustomerRepository
	orders domain.OrderBook
}

// NewListCustomersHandler creates a new list customers handler
func NewListCustomersHandler(repo domain.CustomerRepository, orders domain.OrderBook) *ListCustomersHandler {
	return &ListCustomersHandler{repo: repo, orders: orders}
}

// Handle executes the list customers query, computing the credit summary for
// each row
func (h *ListCustomersHandler) Handle(q ListCustomersQuery) ([]CustomerWithCredit, int64, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}

	customers, total, err := h.repo.FindAll(q.Limit, q.Offset)
	if err != nil {
		return nil, 0, apperr.Unexpected("failed to list customers", err)
	}

	result := make([]CustomerWithCredit, 0, len(customers))
	for i := range customers {
		summary, err := Summarize(&customers[i], h.orders)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, CustomerWithCredit{
			Customer: customers[i],
			Credit:   *summary,
		})
	}

	return result, total, nil
}
