package command

import (
	"context"

	"gorm.io/gorm"

	"github.com/RehanShaikh007/texhub-backend/internal/returns/domain"
)

// Mock ReturnRepository for testing
type mockReturnRepository struct {
	returns map[uint]*domain.ReturnRequest
	nextID  uint
}

func newMockReturnRepository() *mockReturnRepository {
	return &mockReturnRepository{
		returns: make(map[uint]*domain.ReturnRequest),
		nextID:  1,
	}
}

func (m *mockReturnRepository) Create(ret *domain.ReturnRequest) error {
	ret.ID = m.nextID
	m.nextID++
	m.returns[ret.ID] = ret
	return nil
}

func (m *mockReturnRepository) FindByID(id uint) (*domain.ReturnRequest, error) {
	ret, exists := m.returns[id]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ret
	return &cp, nil
}

func (m *mockReturnRepository) FindAll(limit, offset int) ([]domain.ReturnRequest, int64, error) {
	var result []domain.ReturnRequest
	for _, ret := range m.returns {
		result = append(result, *ret)
	}
	return result, int64(len(result)), nil
}

func (m *mockReturnRepository) Update(ret *domain.ReturnRequest) error {
	if _, exists := m.returns[ret.ID]; !exists {
		return gorm.ErrRecordNotFound
	}
	m.returns[ret.ID] = ret
	return nil
}

func (m *mockReturnRepository) Delete(id uint) error {
	delete(m.returns, id)
	return nil
}

// Mock OrderFinder for testing
type mockOrderFinder struct {
	existing map[uint]bool
}

func (m *mockOrderFinder) Exists(orderID uint) (bool, error) {
	return m.existing[orderID], nil
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
