package command

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	notifdomain "github.com/RehanShaikh007/texhub-backend/internal/notification/domain"
	"github.com/RehanShaikh007/texhub-backend/internal/returns/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// ResolveReturnHandler approves or rejects a return request. Resolution flips
// the request's own flags and nothing more: stock quantities and customer
// credit stay as they are, the goods intake is reconciled manually.
type ResolveReturnHandler struct {
	repo     domain.ReturnRepository
	notifier Notifier
}

// NewResolveReturnHandler creates a new resolve return handler
func NewResolveReturnHandler(repo domain.ReturnRepository, notifier Notifier) *ResolveReturnHandler {
	return &ResolveReturnHandler{repo: repo, notifier: notifier}
}

// Approve marks the return request approved
func (h *ResolveReturnHandler) Approve(ctx context.Context, id uint) (*domain.ReturnRequest, error) {
	return h.resolve(ctx, id, true)
}

// Reject marks the return request rejected
func (h *ResolveReturnHandler) Reject(ctx context.Context, id uint) (*domain.ReturnRequest, error) {
	return h.resolve(ctx, id, false)
}

func (h *ResolveReturnHandler) resolve(ctx context.Context, id uint, approve bool) (*domain.ReturnRequest, error) {
	ret, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("return request not found")
		}
		return nil, apperr.Unexpected("failed to get return request", err)
	}

	if ret.Resolved() {
		return nil, apperr.BusinessRulef("return request already resolved")
	}

	ret.IsApproved = approve
	ret.IsRejected = !approve

	if err := h.repo.Update(ret); err != nil {
		return nil, apperr.Unexpected("failed to update return request", err)
	}

	if h.notifier != nil {
		verdict := "approved"
		if !approve {
			verdict = "rejected"
		}
		msg := fmt.Sprintf("Return #%d %s: order #%d, %s (%s), %.2f", ret.ID, verdict, ret.OrderID, ret.Product, ret.Color, ret.Quantity)
		h.notifier.Dispatch(ctx, notifdomain.CategoryReturn, msg)
	}

	return ret, nil
}
