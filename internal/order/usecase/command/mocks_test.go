package command

import (
	"context"
	"os"
	"sort"
	"testing"

	"gorm.io/gorm"

	customerdomain "github.com/RehanShaikh007/texhub-backend/internal/customer/domain"
	"github.com/RehanShaikh007/texhub-backend/internal/order/domain"
	stockdomain "github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
	"github.com/RehanShaikh007/texhub-backend/kafka"
	"github.com/RehanShaikh007/texhub-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("order-command-test", false)
	logger.SetLevel("error")
	os.Exit(m.Run())
}

// Mock StockRepository for testing. Reads hand out copies, like a real
// database row scan, so an abandoned plan never leaks partial mutations back
// into the store.
type mockStockRepository struct {
	lots   map[uint]*stockdomain.StockLot
	nextID uint
}

func newMockStockRepository() *mockStockRepository {
	return &mockStockRepository{
		lots:   make(map[uint]*stockdomain.StockLot),
		nextID: 1,
	}
}

func (m *mockStockRepository) copyLot(lot *stockdomain.StockLot) *stockdomain.StockLot {
	cp := *lot
	cp.Variants = make([]stockdomain.StockVariant, len(lot.Variants))
	copy(cp.Variants, lot.Variants)
	return &cp
}

func (m *mockStockRepository) Create(lot *stockdomain.StockLot) error {
	lot.ID = m.nextID
	m.nextID++
	m.lots[lot.ID] = m.copyLot(lot)
	return nil
}

func (m *mockStockRepository) FindByID(id uint) (*stockdomain.StockLot, error) {
	lot, exists := m.lots[id]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	return m.copyLot(lot), nil
}

func (m *mockStockRepository) FindForOrderItem(product, color string) (*stockdomain.StockLot, error) {
	ids := make([]uint, 0, len(m.lots))
	for id := range m.lots {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		lot := m.lots[id]
		if lot.Details.Product != product {
			continue
		}
		if lot.Status != stockdomain.StatusAvailable && lot.Status != stockdomain.StatusLow {
			continue
		}
		if lot.VariantByColor(color) == nil {
			continue
		}
		return m.copyLot(lot), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStockRepository) FindAll(limit, offset int) ([]stockdomain.StockLot, int64, error) {
	var result []stockdomain.StockLot
	for _, lot := range m.lots {
		result = append(result, *m.copyLot(lot))
	}
	return result, int64(len(result)), nil
}

func (m *mockStockRepository) FindLowStock() ([]stockdomain.StockLot, error) {
	var result []stockdomain.StockLot
	for _, lot := range m.lots {
		if lot.Status == stockdomain.StatusLow || lot.Status == stockdomain.StatusOut {
			result = append(result, *m.copyLot(lot))
		}
	}
	return result, nil
}

func (m *mockStockRepository) Save(lot *stockdomain.StockLot) error {
	m.lots[lot.ID] = m.copyLot(lot)
	return nil
}

func (m *mockStockRepository) ReplaceVariants(lot *stockdomain.StockLot, variants []stockdomain.StockVariant) error {
	lot.Variants = variants
	m.lots[lot.ID] = m.copyLot(lot)
	return nil
}

func (m *mockStockRepository) Delete(id uint) error {
	delete(m.lots, id)
	return nil
}

// Mock OrderRepository for testing. The WithStock methods persist the order
// and write every touched lot back to the stock store, mirroring the single
// transaction of the real repository.
type mockOrderRepository struct {
	orders map[uint]*domain.Order
	stocks *mockStockRepository
	nextID uint
	failAt error
}

func newMockOrderRepository(stocks *mockStockRepository) *mockOrderRepository {
	return &mockOrderRepository{
		orders: make(map[uint]*domain.Order),
		stocks: stocks,
		nextID: 1,
	}
}

func (m *mockOrderRepository) FindByID(id uint) (*domain.Order, error) {
	order, exists := m.orders[id]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *order
	cp.Items = make([]domain.OrderItem, len(order.Items))
	copy(cp.Items, order.Items)
	return &cp, nil
}

func (m *mockOrderRepository) FindAll(limit, offset int, customer string) ([]domain.Order, int64, error) {
	var result []domain.Order
	for _, order := range m.orders {
		if customer != "" && order.Customer != customer {
			continue
		}
		result = append(result, *order)
	}
	return result, int64(len(result)), nil
}

func (m *mockOrderRepository) TotalForCustomer(name string) (float64, error) {
	var total float64
	for _, order := range m.orders {
		if order.Customer == name {
			total += order.Total()
		}
	}
	return total, nil
}

func (m *mockOrderRepository) commitLots(lots []*stockdomain.StockLot) {
	for _, lot := range lots {
		m.stocks.lots[lot.ID] = m.stocks.copyLot(lot)
	}
}

func (m *mockOrderRepository) CreateWithStock(order *domain.Order, lots []*stockdomain.StockLot) error {
	if m.failAt != nil {
		return m.failAt
	}
	order.ID = m.nextID
	m.nextID++
	m.orders[order.ID] = order
	m.commitLots(lots)
	return nil
}

func (m *mockOrderRepository) UpdateWithStock(order *domain.Order, lots []*stockdomain.StockLot) error {
	if m.failAt != nil {
		return m.failAt
	}
	m.orders[order.ID] = order
	m.commitLots(lots)
	return nil
}

func (m *mockOrderRepository) DeleteWithStock(order *domain.Order, lots []*stockdomain.StockLot) error {
	if m.failAt != nil {
		return m.failAt
	}
	delete(m.orders, order.ID)
	m.commitLots(lots)
	return nil
}

// Mock CustomerRepository for testing
type mockCustomerRepository struct {
	customers map[string]*customerdomain.Customer
	nextID    uint
}

func newMockCustomerRepository() *mockCustomerRepository {
	return &mockCustomerRepository{
		customers: make(map[string]*customerdomain.Customer),
		nextID:    1,
	}
}

func (m *mockCustomerRepository) Create(customer *customerdomain.Customer) error {
	customer.ID = m.nextID
	m.nextID++
	m.customers[customer.Name] = customer
	return nil
}

func (m *mockCustomerRepository) FindByID(id uint) (*customerdomain.Customer, error) {
	for _, c := range m.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCustomerRepository) FindByName(name string) (*customerdomain.Customer, error) {
	c, exists := m.customers[name]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (m *mockCustomerRepository) FindAll(limit, offset int) ([]customerdomain.Customer, int64, error) {
	var result []customerdomain.Customer
	for _, c := range m.customers {
		result = append(result, *c)
	}
	return result, int64(len(result)), nil
}

func (m *mockCustomerRepository) Update(customer *customerdomain.Customer) error {
	m.customers[customer.Name] = customer
	return nil
}

func (m *mockCustomerRepository) Delete(id uint) error {
	for name, c := range m.customers {
		if c.ID == id {
			delete(m.customers, name)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// Mock Notifier recording dispatches
type mockNotifier struct {
	dispatches []struct {
		Category string
		Message  string
	}
}

func (m *mockNotifier) Dispatch(ctx context.Context, category, message string) {
	m.dispatches = append(m.dispatches, struct {
		Category string
		Message  string
	}{category, message})
}

// Mock EventPublisher recording published events
type mockEventPublisher struct {
	orderEvents []kafka.OrderPlacedEvent
	stockEvents []kafka.StockLowEvent
	failWith    error
}

func (m *mockEventPublisher) PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.orderEvents = append(m.orderEvents, event)
	return nil
}

func (m *mockEventPublisher) PublishStockLow(ctx context.Context, event kafka.StockLowEvent) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.stockEvents = append(m.stockEvents, event)
	return nil
}
