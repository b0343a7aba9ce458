package command

import (
	"context"
	"testing"

	"github.com/RehanShaikh007/texhub-backend/internal/order/domain"
	stockdomain "github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

func newDeleteOrderFixture() (*updateOrderFixture, *DeleteOrderHandler) {
	f := newUpdateOrderFixture()
	handler := NewDeleteOrderHandler(
		f.orders, f.stocks, stockdomain.DefaultStickySet(), f.notifier, f.events,
	)
	return f, handler
}

func TestDeleteOrder_NotFound(t *testing.T) {
	_, handler := newDeleteOrderFixture()

	err := handler.Handle(context.Background(), DeleteOrderCommand{OrderID: 42})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("Handle() error = %v, want not-found error", err)
	}
}

func TestDeleteOrder_ConfirmedRestoresStock(t *testing.T) {
	f, handler := newDeleteOrderFixture()
	lotID := f.addLot("Cotton 60x60", stockdomain.StockVariant{Color: "Red", Quantity: 60})
	orderID := f.addOrder(domain.StatusConfirmed,
		domain.OrderItem{Product: "Cotton 60x60", Color: "Red", Quantity: 40, PricePerMeters: 10, StockLotID: &lotID},
	)

	if err := handler.Handle(context.Background(), DeleteOrderCommand{OrderID: orderID}); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if _, err := f.orders.FindByID(orderID); err == nil {
		t.Error("order still present after delete")
	}

	lot, _ := f.stocks.FindByID(lotID)
	if lot.Variants[0].Quantity != 100 {
		t.Errorf("quantity = %v, want 100 after restore", lot.Variants[0].Quantity)
	}
	if lot.Status != stockdomain.StatusAvailable {
		t.Errorf("status = %q, want available", lot.Status)
	}
}

func TestDeleteOrder_PendingLeavesStockAlone(t *testing.T) {
	f, handler := newDeleteOrderFixture()
	lotID := f.addLot("Cotton 60x60", stockdomain.StockVariant{Color: "Red", Quantity: 60})
	orderID := f.addOrder(domain.StatusPending,
		domain.OrderItem{Product: "Cotton 60x60", Color: "Red", Quantity: 40, PricePerMeters: 10, StockLotID: &lotID},
	)

	if err := handler.Handle(context.Background(), DeleteOrderCommand{OrderID: orderID}); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	lot, _ := f.stocks.FindByID(lotID)
	if lot.Variants[0].Quantity != 60 {
		t.Errorf("quantity = %v, want 60 (pending holds no stock)", lot.Variants[0].Quantity)
	}
}
