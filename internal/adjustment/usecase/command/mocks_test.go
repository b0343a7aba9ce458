package command

import (
	"context"

	"gorm.io/gorm"

	"github.com/RehanShaikh007/texhub-backend/internal/adjustment/domain"
	stockdomain "github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
)

// Mock AdjustmentRepository for testing
type mockAdjustmentRepository struct {
	adjustments []domain.Adjustment
	savedLots   []*stockdomain.StockLot
	nextID      uint
}

func newMockAdjustmentRepository() *mockAdjustmentRepository {
	return &mockAdjustmentRepository{nextID: 1}
}

func (m *mockAdjustmentRepository) CreateWithStock(adjustment *domain.Adjustment, lot *stockdomain.StockLot) error {
	adjustment.ID = m.nextID
	m.nextID++
	m.adjustments = append(m.adjustments, *adjustment)
	m.savedLots = append(m.savedLots, lot)
	return nil
}

func (m *mockAdjustmentRepository) FindAll(limit, offset int) ([]domain.Adjustment, int64, error) {
	return m.adjustments, int64(len(m.adjustments)), nil
}

// Mock StockRepository exposing only what the adjustment command touches
type mockStockRepository struct {
	lots map[uint]*stockdomain.StockLot
}

func newMockStockRepository() *mockStockRepository {
	return &mockStockRepository{lots: make(map[uint]*stockdomain.StockLot)}
}

func (m *mockStockRepository) Create(lot *stockdomain.StockLot) error {
	m.lots[lot.ID] = lot
	return nil
}

func (m *mockStockRepository) FindByID(id uint) (*stockdomain.StockLot, error) {
	lot, exists := m.lots[id]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	return lot, nil
}

func (m *mockStockRepository) FindForOrderItem(product, color string) (*stockdomain.StockLot, error) {
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStockRepository) FindAll(limit, offset int) ([]stockdomain.StockLot, int64, error) {
	return nil, 0, nil
}

func (m *mockStockRepository) FindLowStock() ([]stockdomain.StockLot, error) {
	return nil, nil
}

func (m *mockStockRepository) Save(lot *stockdomain.StockLot) error {
	m.lots[lot.ID] = lot
	return nil
}

func (m *mockStockRepository) ReplaceVariants(lot *stockdomain.StockLot, variants []stockdomain.StockVariant) error {
	lot.Variants = variants
	return nil
}

func (m *mockStockRepository) Delete(id uint) error {
	delete(m.lots, id)
	return nil
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
