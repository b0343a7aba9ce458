package query

import (
	"github.com/RehanShaikh007/texhub-backend/internal/adjustment/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// ListAdjustmentsQuery represents the query to list adjustments
type ListAdjustmentsQuery struct {
	Limit  int
	Offset int
}

// ListAdjustmentsHandler handles list adjustments query
type ListAdjustmentsHandler struct {
	repo domain.AdjustmentRepository
}

// NewListAdjustmentsHandler creates a new list adjustments handler
func NewListAdjustmentsHandler(repo domain.AdjustmentRepository) *ListAdjustmentsHandler {
	return &ListAdjustmentsHandler{repo: repo}
}

// Handle executes the list adjustments query
func (h *ListAdjustmentsHandler) Handle(q ListAdjustmentsQuery) ([]domain.Adjustment, int64, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}

	adjustments, total, err := h.repo.FindAll(q.Limit, q.Offset)
	if err != nil {
		return nil, 0, apperr.Unexpected("failed to list adjustments", err)
	}
	return adjustments, total, nil
}
