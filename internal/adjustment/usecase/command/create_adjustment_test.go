package command

import (
	"context"
	"testing"

	notifdomain "github.com/RehanShaikh007/texhub-backend/internal/notification/domain"
	stockdomain "github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

func newAdjustmentFixture(lot *stockdomain.StockLot) (*mockAdjustmentRepository, *mockStockRepository, *mockNotifier, *CreateAdjustmentHandler) {
	repo := newMockAdjustmentRepository()
	stocks := newMockStockRepository()
	if lot != nil {
		stocks.Create(lot)
	}
	notifier := &mockNotifier{}
	handler := NewCreateAdjustmentHandler(repo, stocks, stockdomain.DefaultStickySet(), notifier)
	return repo, stocks, notifier, handler
}

func testLot() *stockdomain.StockLot {
	return &stockdomain.StockLot{
		ID:        1,
		StockType: stockdomain.StockTypeGray,
		Status:    stockdomain.StatusLow,
		Variants: []stockdomain.StockVariant{
			{Color: "Red", Quantity: 60},
		},
		Details: stockdomain.StockDetails{Product: "Cotton 60x60"},
	}
}

func TestCreateAdjustment_IncreasesQuantity(t *testing.T) {
	repo, stocks, notifier, handler := newAdjustmentFixture(testLot())

	adj, err := handler.Handle(context.Background(), CreateAdjustmentCommand{
		StockID:     1,
		Color:       "Red",
		NewQuantity: 150,
		Reason:      "recount after audit",
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if adj.PrevQuantity != 60 {
		t.Errorf("prev quantity = %v, want 60", adj.PrevQuantity)
	}
	if adj.NewQuantity != 150 {
		t.Errorf("new quantity = %v, want 150", adj.NewQuantity)
	}
	if adj.Product != "Cotton 60x60" {
		t.Errorf("product = %q, want snapshot from lot", adj.Product)
	}

	lot, _ := stocks.FindByID(1)
	if lot.Variants[0].Quantity != 150 {
		t.Errorf("variant quantity = %v, want 150", lot.Variants[0].Quantity)
	}
	// 150 crosses the low threshold, the lot recovers to available
	if lot.Status != stockdomain.StatusAvailable {
		t.Errorf("lot status = %q, want available", lot.Status)
	}

	if len(repo.savedLots) != 1 {
		t.Error("lot was not written together with the audit row")
	}
	if len(notifier.dispatches) != 1 || notifier.dispatches[0].Category != notifdomain.CategoryStock {
		t.Errorf("dispatches = %+v, want one stock notification", notifier.dispatches)
	}
}

func TestCreateAdjustment_RejectsNonIncrease(t *testing.T) {
	tests := []struct {
		name        string
		newQuantity float64
	}{
		{name: "equal quantity", newQuantity: 60},
		{name: "lower quantity", newQuantity: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, stocks, _, handler := newAdjustmentFixture(testLot())

			_, err := handler.Handle(context.Background(), CreateAdjustmentCommand{
				StockID:     1,
				Color:       "Red",
				NewQuantity: tt.newQuantity,
				Reason:      "recount",
			})
			if apperr.KindOf(err) != apperr.KindValidation {
				t.Errorf("Handle() error = %v, want validation error", err)
			}

			lot, _ := stocks.FindByID(1)
			if lot.Variants[0].Quantity != 60 {
				t.Errorf("variant quantity = %v, want 60 unchanged", lot.Variants[0].Quantity)
			}
			if len(repo.adjustments) != 0 {
				t.Error("rejected adjustment wrote an audit row")
			}
		})
	}
}

func TestCreateAdjustment_Validation(t *testing.T) {
	_, _, _, handler := newAdjustmentFixture(testLot())

	if _, err := handler.Handle(context.Background(), CreateAdjustmentCommand{
		StockID: 1, NewQuantity: 100, Reason: "recount",
	}); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("missing color: error = %v, want validation error", err)
	}

	if _, err := handler.Handle(context.Background(), CreateAdjustmentCommand{
		StockID: 1, Color: "Red", NewQuantity: 100,
	}); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("missing reason: error = %v, want validation error", err)
	}
}

func TestCreateAdjustment_UnknownStock(t *testing.T) {
	_, _, _, handler := newAdjustmentFixture(nil)

	_, err := handler.Handle(context.Background(), CreateAdjustmentCommand{
		StockID: 9, Color: "Red", NewQuantity: 100, Reason: "recount",
	})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("Handle() error = %v, want not-found error", err)
	}
}

func TestCreateAdjustment_UnknownColor(t *testing.T) {
	_, _, _, handler := newAdjustmentFixture(testLot())

	_, err := handler.Handle(context.Background(), CreateAdjustmentCommand{
		StockID: 1, Color: "Green", NewQuantity: 100, Reason: "recount",
	})
	if apperr.KindOf(err) != apperr.KindBusinessRule {
		t.Errorf("Handle() error = %v, want business-rule error", err)
	}
}
