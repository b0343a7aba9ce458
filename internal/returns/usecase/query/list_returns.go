package query

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RehanShaikh007/texhub-backend/internal/returns/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// ListReturnsQuery represents the query to list return requests
type ListReturnsQuery struct {
	Limit  int
	Offset int
}

// ListReturnsHandler handles list returns query
type ListReturnsHandler struct {
	repo domain.ReturnRepository
}

// NewListReturnsHandler creates a new list returns handler
func NewListReturnsHandler(repo domain.ReturnRepository) *ListReturnsHandler {
	return &ListReturnsHandler{repo: repo}
}

// Handle executes the list returns query
func (h *ListReturnsHandler) Handle(q ListReturnsQuery) ([]domain.ReturnRequest, int64, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}

	returns, total, err := h.repo.FindAll(q.Limit, q.Offset)
	if err != nil {
		return nil, 0, apperr.Unexpected("failed to list return requests", err)
	}
	return returns, total, nil
}

// GetReturnHandler handles get return query
type GetReturnHandler struct {
	repo domain.ReturnRepository
}

// NewGetReturnHandler creates a new get return handler
func NewGetReturnHandler(repo domain.ReturnRepository) *GetReturnHandler {
	return &GetReturnHandler{repo: repo}
}

// Handle executes the get return query
func (h *GetReturnHandler) Handle(id uint) (*domain.ReturnRequest, error) {
	ret, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("return request not found")
		}
		return nil, apperr.Unexpected("failed to get return request", err)
	}
	return ret, nil
}
