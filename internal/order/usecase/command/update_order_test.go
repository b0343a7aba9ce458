package command

import (
	"context"
	"testing"

	"github.com/RehanShaikh007/texhub-backend/internal/order/domain"
	stockdomain "github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

type updateOrderFixture struct {
	stocks   *mockStockRepository
	orders   *mockOrderRepository
	notifier *mockNotifier
	events   *mockEventPublisher
	handler  *UpdateOrderHandler
}

func newUpdateOrderFixture() *updateOrderFixture {
	stocks := newMockStockRepository()
	orders := newMockOrderRepository(stocks)
	notifier := &mockNotifier{}
	events := &mockEventPublisher{}

	return &updateOrderFixture{
		stocks:   stocks,
		orders:   orders,
		notifier: notifier,
		events:   events,
		handler: NewUpdateOrderHandler(
			orders, stocks, stockdomain.DefaultStickySet(), notifier, events,
		),
	}
}

func (f *updateOrderFixture) addLot(product string, variants ...stockdomain.StockVariant) uint {
	lot := &stockdomain.StockLot{
		StockType: stockdomain.StockTypeDesign,
		Status:    stockdomain.StatusAvailable,
		Variants:  variants,
		Details:   stockdomain.StockDetails{Product: product},
	}
	lot.RecomputeStatus(stockdomain.DefaultStickySet())
	f.stocks.Create(lot)
	return lot.ID
}

func (f *updateOrderFixture) addOrder(status string, items ...domain.OrderItem) uint {
	order := &domain.Order{
		ID:       f.orders.nextID,
		Customer: "Meena Textiles",
		Status:   status,
		Items:    items,
	}
	f.orders.orders[order.ID] = order
	f.orders.nextID++
	return order.ID
}

func strPtr(s string) *string { return &s }

func TestUpdateOrder_NotFound(t *testing.T) {
	f := newUpdateOrderFixture()

	_, err := f.handler.Handle(context.Background(), UpdateOrderCommand{OrderID: 42})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("Handle() error = %v, want not-found error", err)
	}
}

func TestUpdateOrder_ConfirmDeductsStock(t *testing.T) {
	f := newUpdateOrderFixture()
	lotID := f.addLot("Cotton 60x60", stockdomain.StockVariant{Color: "Red", Quantity: 200})
	orderID := f.addOrder(domain.StatusPending,
		domain.OrderItem{Product: "Cotton 60x60", Color: "Red", Quantity: 50, PricePerMeters: 10, StockLotID: &lotID},
	)

	order, err := f.handler.Handle(context.Background(), UpdateOrderCommand{
		OrderID: orderID,
		Status:  strPtr(domain.StatusConfirmed),
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if order.Status != domain.StatusConfirmed {
		t.Errorf("status = %q, want confirmed", order.Status)
	}

	lot, _ := f.stocks.FindByID(lotID)
	if lot.Variants[0].Quantity != 150 {
		t.Errorf("quantity = %v, want 150", lot.Variants[0].Quantity)
	}
}

func TestUpdateOrder_ConfirmFailsOnInsufficientStock(t *testing.T) {
	f := newUpdateOrderFixture()
	lotID := f.addLot("Cotton 60x60", stockdomain.StockVariant{Color: "Red", Quantity: 30})
	orderID := f.addOrder(domain.StatusPending,
		domain.OrderItem{Product: "Cotton 60x60", Color: "Red", Quantity: 50, PricePerMeters: 10, StockLotID: &lotID},
	)

	_, err := f.handler.Handle(context.Background(), UpdateOrderCommand{
		OrderID: orderID,
		Status:  strPtr(domain.StatusConfirmed),
	})
	if apperr.KindOf(err) != apperr.KindBusinessRule {
		t.Fatalf("Handle() error = %v, want business-rule error", err)
	}

	// Order must still be pending and stock untouched
	stored, _ := f.orders.FindByID(orderID)
	if stored.Status != domain.StatusPending {
		t.Errorf("status = %q, want pending after failed confirmation", stored.Status)
	}
	lot, _ := f.stocks.FindByID(lotID)
	if lot.Variants[0].Quantity != 30 {
		t.Errorf("quantity = %v, want 30", lot.Variants[0].Quantity)
	}
}

func TestUpdateOrder_RevertRestoresStock(t *testing.T) {
	f := newUpdateOrderFixture()
	lotID := f.addLot("Cotton 60x60", stockdomain.StockVariant{Color: "Red", Quantity: 50})
	orderID := f.addOrder(domain.StatusConfirmed,
		domain.OrderItem{Product: "Cotton 60x60", Color: "Red", Quantity: 100, PricePerMeters: 10, StockLotID: &lotID},
	)

	_, err := f.handler.Handle(context.Background(), UpdateOrderCommand{
		OrderID: orderID,
		Status:  strPtr(domain.StatusPending),
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	lot, _ := f.stocks.FindByID(lotID)
	if lot.Variants[0].Quantity != 150 {
		t.Errorf("quantity = %v, want 150 after restore", lot.Variants[0].Quantity)
	}
	if lot.Status != stockdomain.StatusAvailable {
		t.Errorf("status = %q, want available after restore", lot.Status)
	}
}

func TestUpdateOrder_RevertSkipsMissingLot(t *testing.T) {
	f := newUpdateOrderFixture()
	goneID := uint(77)
	lotID := f.addLot("Cotton 60x60", stockdomain.StockVariant{Color: "Red", Quantity: 50})
	orderID := f.addOrder(domain.StatusConfirmed,
		domain.OrderItem{Product: "Cotton 60x60", Color: "Red", Quantity: 40, PricePerMeters: 10, StockLotID: &lotID},
		domain.OrderItem{Product: "Silk 44", Color: "Gold", Quantity: 25, PricePerMeters: 80, StockLotID: &goneID},
	)

	// The second item's lot was deleted; the reversal must still go through
	_, err := f.handler.Handle(context.Background(), UpdateOrderCommand{
		OrderID: orderID,
		Status:  strPtr(domain.StatusPending),
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	lot, _ := f.stocks.FindByID(lotID)
	if lot.Variants[0].Quantity != 90 {
		t.Errorf("quantity = %v, want 90", lot.Variants[0].Quantity)
	}
	stored, _ := f.orders.FindByID(orderID)
	if stored.Status != domain.StatusPending {
		t.Errorf("status = %q, want pending", stored.Status)
	}
}

func TestUpdateOrder_InvalidTransition(t *testing.T) {
	f := newUpdateOrderFixture()
	orderID := f.addOrder(domain.StatusPending,
		domain.OrderItem{Product: "Cotton 60x60", Color: "Red", Quantity: 10, PricePerMeters: 10},
	)

	_, err := f.handler.Handle(context.Background(), UpdateOrderCommand{
		OrderID: orderID,
		Status:  strPtr("delivered"),
	})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("Handle() error = %v, want validation error", err)
	}
}

func TestUpdateOrder_PatchFieldsWithoutStatus(t *testing.T) {
	f := newUpdateOrderFixture()
	orderID := f.addOrder(domain.StatusPending,
		domain.OrderItem{Product: "Cotton 60x60", Color: "Red", Quantity: 10, PricePerMeters: 10},
	)

	notes := "deliver to warehouse 2"
	order, err := f.handler.Handle(context.Background(), UpdateOrderCommand{
		OrderID: orderID,
		Notes:   &notes,
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if order.Notes != notes {
		t.Errorf("notes = %q, want %q", order.Notes, notes)
	}
	if order.Status != domain.StatusPending {
		t.Errorf("status changed to %q without a status patch", order.Status)
	}
}
