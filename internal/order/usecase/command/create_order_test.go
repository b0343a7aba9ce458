package command

import (
	"context"
	"testing"

	customerdomain "github.com/RehanShaikh007/texhub-backend/internal/customer/domain"
	notifdomain "github.com/RehanShaikh007/texhub-backend/internal/notification/domain"
	"github.com/RehanShaikh007/texhub-backend/internal/order/domain"
	stockdomain "github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

type createOrderFixture struct {
	stocks    *mockStockRepository
	orders    *mockOrderRepository
	customers *mockCustomerRepository
	notifier  *mockNotifier
	events    *mockEventPublisher
	handler   *CreateOrderHandler
}

func newCreateOrderFixture() *createOrderFixture {
	stocks := newMockStockRepository()
	orders := newMockOrderRepository(stocks)
	customers := newMockCustomerRepository()
	notifier := &mockNotifier{}
	events := &mockEventPublisher{}

	return &createOrderFixture{
		stocks:    stocks,
		orders:    orders,
		customers: customers,
		notifier:  notifier,
		events:    events,
		handler: NewCreateOrderHandler(
			orders, customers, stocks, stockdomain.DefaultStickySet(), notifier, events,
		),
	}
}

func (f *createOrderFixture) addCustomer(name string, creditLimit float64) {
	f.customers.Create(&customerdomain.Customer{Name: name, CreditLimit: creditLimit})
}

func (f *createOrderFixture) addLot(product string, variants ...stockdomain.StockVariant) uint {
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

func TestCreateOrder_Validation(t *testing.T) {
	f := newCreateOrderFixture()
	f.addCustomer("Meena Textiles", 10000)

	item := OrderItemInput{Product: "Cotton 60x60", Color: "Red", Quantity: 10, PricePerMeters: 50}

	tests := []struct {
		name string
		cmd  CreateOrderCommand
	}{
		{
			name: "missing customer",
			cmd:  CreateOrderCommand{Items: []OrderItemInput{item}},
		},
		{
			name: "no items",
			cmd:  CreateOrderCommand{Customer: "Meena Textiles"},
		},
		{
			name: "unknown status",
			cmd:  CreateOrderCommand{Customer: "Meena Textiles", Status: "shipped", Items: []OrderItemInput{item}},
		},
		{
			name: "item without color",
			cmd: CreateOrderCommand{Customer: "Meena Textiles", Items: []OrderItemInput{
				{Product: "Cotton 60x60", Quantity: 10, PricePerMeters: 50},
			}},
		},
		{
			name: "zero quantity item",
			cmd: CreateOrderCommand{Customer: "Meena Textiles", Items: []OrderItemInput{
				{Product: "Cotton 60x60", Color: "Red", Quantity: 0, PricePerMeters: 50},
			}},
		},
		{
			name: "negative price",
			cmd: CreateOrderCommand{Customer: "Meena Textiles", Items: []OrderItemInput{
				{Product: "Cotton 60x60", Color: "Red", Quantity: 10, PricePerMeters: -1},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.handler.Handle(context.Background(), tt.cmd)
			if apperr.KindOf(err) != apperr.KindValidation {
				t.Errorf("Handle() error = %v, want validation error", err)
			}
		})
	}
}

func TestCreateOrder_UnknownCustomer(t *testing.T) {
	f := newCreateOrderFixture()

	_, err := f.handler.Handle(context.Background(), CreateOrderCommand{
		Customer: "Nobody",
		Items:    []OrderItemInput{{Product: "Cotton 60x60", Color: "Red", Quantity: 10, PricePerMeters: 50}},
	})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("Handle() error = %v, want not-found error", err)
	}
}

func TestCreateOrder_PendingLeavesStockUntouched(t *testing.T) {
	f := newCreateOrderFixture()
	f.addCustomer("Meena Textiles", 10000)
	lotID := f.addLot("Cotton 60x60", stockdomain.StockVariant{Color: "Red", Quantity: 200})

	order, err := f.handler.Handle(context.Background(), CreateOrderCommand{
		Customer: "Meena Textiles",
		Items:    []OrderItemInput{{Product: "Cotton 60x60", Color: "Red", Quantity: 50, PricePerMeters: 40}},
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if order.Status != domain.StatusPending {
		t.Errorf("status = %q, want pending", order.Status)
	}

	lot, _ := f.stocks.FindByID(lotID)
	if lot.Variants[0].Quantity != 200 {
		t.Errorf("pending order changed stock: quantity = %v, want 200", lot.Variants[0].Quantity)
	}
}

func TestCreateOrder_ConfirmedDeductsStock(t *testing.T) {
	f := newCreateOrderFixture()
	f.addCustomer("Meena Textiles", 100000)
	lotID := f.addLot("Cotton 60x60",
		stockdomain.StockVariant{Color: "Red", Quantity: 150},
		stockdomain.StockVariant{Color: "Blue", Quantity: 80},
	)

	order, err := f.handler.Handle(context.Background(), CreateOrderCommand{
		Customer: "Meena Textiles",
		Status:   domain.StatusConfirmed,
		Items: []OrderItemInput{
			{Product: "Cotton 60x60", Color: "Red", Quantity: 100, PricePerMeters: 40, StockLotID: &lotID},
		},
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if order.ID == 0 {
		t.Error("order was not persisted")
	}

	lot, _ := f.stocks.FindByID(lotID)
	if lot.Variants[0].Quantity != 50 {
		t.Errorf("red quantity = %v, want 50", lot.Variants[0].Quantity)
	}
	if lot.Variants[1].Quantity != 80 {
		t.Errorf("blue quantity = %v, want 80 (untouched)", lot.Variants[1].Quantity)
	}

	// 50 + 80 = 130 total, still above the low threshold
	if lot.Status != stockdomain.StatusAvailable {
		t.Errorf("lot status = %q, want available", lot.Status)
	}

	if len(f.notifier.dispatches) != 1 || f.notifier.dispatches[0].Category != notifdomain.CategoryOrder {
		t.Errorf("dispatches = %+v, want one order notification", f.notifier.dispatches)
	}
	if len(f.events.orderEvents) != 1 {
		t.Errorf("order events = %d, want 1", len(f.events.orderEvents))
	}
}

func TestCreateOrder_DepletionPublishesStockLowEvent(t *testing.T) {
	f := newCreateOrderFixture()
	f.addCustomer("Meena Textiles", 100000)
	lotID := f.addLot("Cotton 60x60", stockdomain.StockVariant{Color: "Red", Quantity: 120})

	_, err := f.handler.Handle(context.Background(), CreateOrderCommand{
		Customer: "Meena Textiles",
		Status:   domain.StatusConfirmed,
		Items: []OrderItemInput{
			{Product: "Cotton 60x60", Color: "Red", Quantity: 90, PricePerMeters: 10, StockLotID: &lotID},
		},
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	lot, _ := f.stocks.FindByID(lotID)
	if lot.Status != stockdomain.StatusLow {
		t.Errorf("lot status = %q, want low", lot.Status)
	}
	if len(f.events.stockEvents) != 1 {
		t.Fatalf("stock events = %d, want 1", len(f.events.stockEvents))
	}
	if ev := f.events.stockEvents[0]; ev.StockLotID != lotID || ev.TotalQuantity != 30 {
		t.Errorf("stock event = %+v, want lot %d with total 30", ev, lotID)
	}
}

func TestCreateOrder_MultipleItemsSameLotCompound(t *testing.T) {
	f := newCreateOrderFixture()
	f.addCustomer("Meena Textiles", 100000)
	lotID := f.addLot("Cotton 60x60", stockdomain.StockVariant{Color: "Red", Quantity: 100})

	// Two items against the same variant: 60 + 60 exceeds the lot even though
	// each item alone would fit
	_, err := f.handler.Handle(context.Background(), CreateOrderCommand{
		Customer: "Meena Textiles",
		Status:   domain.StatusConfirmed,
		Items: []OrderItemInput{
			{Product: "Cotton 60x60", Color: "Red", Quantity: 60, PricePerMeters: 10, StockLotID: &lotID},
			{Product: "Cotton 60x60", Color: "Red", Quantity: 60, PricePerMeters: 10, StockLotID: &lotID},
		},
	})
	if apperr.KindOf(err) != apperr.KindBusinessRule {
		t.Fatalf("Handle() error = %v, want business-rule error", err)
	}

	// The failed plan must leave the store untouched
	lot, _ := f.stocks.FindByID(lotID)
	if lot.Variants[0].Quantity != 100 {
		t.Errorf("quantity = %v, want 100 after aborted order", lot.Variants[0].Quantity)
	}
	if len(f.orders.orders) != 0 {
		t.Error("aborted order was persisted")
	}
}

func TestCreateOrder_InsufficientStockAbortsWithoutWrites(t *testing.T) {
	f := newCreateOrderFixture()
	f.addCustomer("Meena Textiles", 100000)
	firstID := f.addLot("Cotton 60x60", stockdomain.StockVariant{Color: "Red", Quantity: 200})
	f.addLot("Silk 44", stockdomain.StockVariant{Color: "Gold", Quantity: 5})

	_, err := f.handler.Handle(context.Background(), CreateOrderCommand{
		Customer: "Meena Textiles",
		Status:   domain.StatusConfirmed,
		Items: []OrderItemInput{
			{Product: "Cotton 60x60", Color: "Red", Quantity: 50, PricePerMeters: 10},
			{Product: "Silk 44", Color: "Gold", Quantity: 10, PricePerMeters: 100},
		},
	})
	if apperr.KindOf(err) != apperr.KindBusinessRule {
		t.Fatalf("Handle() error = %v, want business-rule error", err)
	}

	// The first item resolved and deducted in memory before the second failed;
	// none of it may reach the store
	lot, _ := f.stocks.FindByID(firstID)
	if lot.Variants[0].Quantity != 200 {
		t.Errorf("quantity = %v, want 200 after aborted order", lot.Variants[0].Quantity)
	}
	if len(f.notifier.dispatches) != 0 {
		t.Error("aborted order dispatched a notification")
	}
}

func TestCreateOrder_FallbackLotResolution(t *testing.T) {
	f := newCreateOrderFixture()
	f.addCustomer("Meena Textiles", 100000)
	// First matching lot is out of the requested color, second carries it
	f.addLot("Cotton 60x60", stockdomain.StockVariant{Color: "Blue", Quantity: 300})
	secondID := f.addLot("Cotton 60x60", stockdomain.StockVariant{Color: "Red", Quantity: 300})

	_, err := f.handler.Handle(context.Background(), CreateOrderCommand{
		Customer: "Meena Textiles",
		Status:   domain.StatusConfirmed,
		Items: []OrderItemInput{
			{Product: "Cotton 60x60", Color: "Red", Quantity: 100, PricePerMeters: 10},
		},
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	lot, _ := f.stocks.FindByID(secondID)
	if lot.Variants[0].Quantity != 200 {
		t.Errorf("quantity = %v, want 200", lot.Variants[0].Quantity)
	}
}

func TestCreateOrder_NoStockForItem(t *testing.T) {
	f := newCreateOrderFixture()
	f.addCustomer("Meena Textiles", 100000)

	_, err := f.handler.Handle(context.Background(), CreateOrderCommand{
		Customer: "Meena Textiles",
		Status:   domain.StatusConfirmed,
		Items: []OrderItemInput{
			{Product: "Cotton 60x60", Color: "Red", Quantity: 10, PricePerMeters: 10},
		},
	})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("Handle() error = %v, want not-found error", err)
	}
}

func TestCreateOrder_CreditCeiling(t *testing.T) {
	tests := []struct {
		name        string
		creditLimit float64
		prior       float64
		orderQty    float64
		price       float64
		wantErr     bool
	}{
		{
			name:        "order within limit",
			creditLimit: 10000,
			prior:       2000,
			orderQty:    10,
			price:       100, // 1000, total 3000 of 10000
			wantErr:     false,
		},
		{
			name:        "exactly reaching the limit is allowed",
			creditLimit: 3000,
			prior:       2000,
			orderQty:    10,
			price:       100, // 1000, total exactly 3000
			wantErr:     false,
		},
		{
			name:        "exceeding the limit is rejected",
			creditLimit: 2999.99,
			prior:       2000,
			orderQty:    10,
			price:       100,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCreateOrderFixture()
			f.addCustomer("Meena Textiles", tt.creditLimit)
			f.addLot("Cotton 60x60", stockdomain.StockVariant{Color: "Red", Quantity: 100000})

			if tt.prior > 0 {
				// Pending orders count against credit too
				f.orders.orders[99] = &domain.Order{
					ID:       99,
					Customer: "Meena Textiles",
					Status:   domain.StatusPending,
					Items:    []domain.OrderItem{{Product: "Cotton 60x60", Color: "Red", Quantity: tt.prior / 100, PricePerMeters: 100}},
				}
			}

			_, err := f.handler.Handle(context.Background(), CreateOrderCommand{
				Customer: "Meena Textiles",
				Items: []OrderItemInput{
					{Product: "Cotton 60x60", Color: "Red", Quantity: tt.orderQty, PricePerMeters: tt.price},
				},
			})

			if tt.wantErr {
				if apperr.KindOf(err) != apperr.KindBusinessRule {
					t.Errorf("Handle() error = %v, want business-rule error", err)
				}
			} else if err != nil {
				t.Errorf("Handle() error = %v", err)
			}
		})
	}
}
