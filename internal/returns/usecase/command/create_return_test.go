package command

import (
	"context"
	"testing"

	notifdomain "github.com/RehanShaikh007/texhub-backend/internal/notification/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

func TestCreateReturn(t *testing.T) {
	repo := newMockReturnRepository()
	orders := &mockOrderFinder{existing: map[uint]bool{5: true}}
	notifier := &mockNotifier{}
	handler := NewCreateReturnHandler(repo, orders, notifier)

	ret, err := handler.Handle(context.Background(), CreateReturnCommand{
		OrderID:  5,
		Product:  "Cotton 60x60",
		Color:    "Red",
		Quantity: 25,
		Reason:   "color mismatch",
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if ret.ID == 0 {
		t.Error("return request was not persisted")
	}
	if ret.IsApproved || ret.IsRejected {
		t.Error("new return request must start unresolved")
	}
	if len(notifier.dispatches) != 1 || notifier.dispatches[0].Category != notifdomain.CategoryReturn {
		t.Errorf("dispatches = %+v, want one return notification", notifier.dispatches)
	}
}

func TestCreateReturn_Validation(t *testing.T) {
	repo := newMockReturnRepository()
	orders := &mockOrderFinder{existing: map[uint]bool{5: true}}
	handler := NewCreateReturnHandler(repo, orders, nil)

	tests := []struct {
		name string
		cmd  CreateReturnCommand
	}{
		{
			name: "missing order id",
			cmd:  CreateReturnCommand{Product: "Cotton 60x60", Color: "Red", Quantity: 10},
		},
		{
			name: "missing product",
			cmd:  CreateReturnCommand{OrderID: 5, Color: "Red", Quantity: 10},
		},
		{
			name: "missing color",
			cmd:  CreateReturnCommand{OrderID: 5, Product: "Cotton 60x60", Quantity: 10},
		},
		{
			name: "zero quantity",
			cmd:  CreateReturnCommand{OrderID: 5, Product: "Cotton 60x60", Color: "Red"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Handle(context.Background(), tt.cmd)
			if apperr.KindOf(err) != apperr.KindValidation {
				t.Errorf("Handle() error = %v, want validation error", err)
			}
		})
	}
}

func TestCreateReturn_UnknownOrder(t *testing.T) {
	repo := newMockReturnRepository()
	orders := &mockOrderFinder{existing: map[uint]bool{}}
	handler := NewCreateReturnHandler(repo, orders, nil)

	_, err := handler.Handle(context.Background(), CreateReturnCommand{
		OrderID:  42,
		Product:  "Cotton 60x60",
		Color:    "Red",
		Quantity: 10,
	})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("Handle() error = %v, want not-found error", err)
	}
}
