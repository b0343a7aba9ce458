package query

import (
	"github.com/RehanShaikh007/texhub-backend/internal/order/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// ListOrdersQuery represents the query to list orders
type ListOrdersQuery struct {
	Page     int
	Limit    int
	Customer string
}

// Pagination describes the page window of a list response
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

// OrderList is a page of orders
type OrderList struct {
	Orders     []domain.Order `json:"orders"`
	Pagination Pagination     `json:"pagination"`
}

// ListOrdersHandler handles list orders query
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the list orders query
func (h *ListOrdersHandler) Handle(q ListOrdersQuery) (*OrderList, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}

	offset := (q.Page - 1) * q.Limit
	orders, total, err := h.repo.FindAll(q.Limit, offset, q.Customer)
	if err != nil {
		return nil, apperr.Unexpected("failed to list orders", err)
	}

	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))

	return &OrderList{
		Orders: orders,
		Pagination: Pagination{
			CurrentPage:  q.Page,
			TotalPages:   totalPages,
			TotalItems:   total,
			ItemsPerPage: q.Limit,
			HasNextPage:  q.Page < totalPages,
			HasPrevPage:  q.Page > 1,
		},
	}, nil
}
