package command

import (
	"context"
	"testing"

	"github.com/RehanShaikh007/texhub-backend/internal/returns/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

func newResolveFixture(ret *domain.ReturnRequest) (*mockReturnRepository, *mockNotifier, *ResolveReturnHandler) {
	repo := newMockReturnRepository()
	if ret != nil {
		repo.Create(ret)
	}
	notifier := &mockNotifier{}
	return repo, notifier, NewResolveReturnHandler(repo, notifier)
}

func pendingReturn() *domain.ReturnRequest {
	return &domain.ReturnRequest{
		OrderID:  5,
		Product:  "Cotton 60x60",
		Color:    "Red",
		Quantity: 25,
		Reason:   "color mismatch",
	}
}

func TestResolveReturn_Approve(t *testing.T) {
	repo, notifier, handler := newResolveFixture(pendingReturn())

	ret, err := handler.Approve(context.Background(), 1)
	if err != nil {
		t.Fatalf("Approve() error = %v", err)
	}

	if !ret.IsApproved || ret.IsRejected {
		t.Errorf("flags = approved:%v rejected:%v, want approved only", ret.IsApproved, ret.IsRejected)
	}

	stored, _ := repo.FindByID(1)
	if !stored.Resolved() {
		t.Error("resolution was not persisted")
	}
	if len(notifier.dispatches) != 1 {
		t.Errorf("dispatches = %d, want 1", len(notifier.dispatches))
	}
}

func TestResolveReturn_Reject(t *testing.T) {
	_, _, handler := newResolveFixture(pendingReturn())

	ret, err := handler.Reject(context.Background(), 1)
	if err != nil {
		t.Fatalf("Reject() error = %v", err)
	}

	if ret.IsApproved || !ret.IsRejected {
		t.Errorf("flags = approved:%v rejected:%v, want rejected only", ret.IsApproved, ret.IsRejected)
	}
}

func TestResolveReturn_AlreadyResolved(t *testing.T) {
	resolved := pendingReturn()
	resolved.IsApproved = true
	_, _, handler := newResolveFixture(resolved)

	if _, err := handler.Approve(context.Background(), 1); apperr.KindOf(err) != apperr.KindBusinessRule {
		t.Errorf("Approve() error = %v, want business-rule error", err)
	}
	if _, err := handler.Reject(context.Background(), 1); apperr.KindOf(err) != apperr.KindBusinessRule {
		t.Errorf("Reject() error = %v, want business-rule error", err)
	}
}

func TestResolveReturn_NotFound(t *testing.T) {
	_, _, handler := newResolveFixture(nil)

	if _, err := handler.Approve(context.Background(), 9); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("Approve() error = %v, want not-found error", err)
	}
}
