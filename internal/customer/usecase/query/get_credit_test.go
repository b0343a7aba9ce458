package query

import (
	"testing"

	"gorm.io/gorm"

	"github.com/RehanShaikh007/texhub-backend/internal/customer/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

type mockCustomerRepository struct {
	customers map[uint]*domain.Customer
}

func (m *mockCustomerRepository) Create(customer *domain.Customer) error { return nil }

func (m *mockCustomerRepository) FindByID(id uint) (*domain.Customer, error) {
	c, exists := m.customers[id]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (m *mockCustomerRepository) FindByName(name string) (*domain.Customer, error) {
	for _, c := range m.customers {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCustomerRepository) FindAll(limit, offset int) ([]domain.Customer, int64, error) {
	return nil, 0, nil
}

func (m *mockCustomerRepository) Update(customer *domain.Customer) error { return nil }
func (m *mockCustomerRepository) Delete(id uint) error                   { return nil }

type mockOrderBook struct {
	totals map[string]float64
}

func (m *mockOrderBook) TotalForCustomer(name string) (float64, error) {
	return m.totals[name], nil
}

func TestGetCredit(t *testing.T) {
	repo := &mockCustomerRepository{customers: map[uint]*domain.Customer{
		1: {ID: 1, Name: "Meena Textiles", CreditLimit: 50000},
		2: {ID: 2, Name: "Fresh Trader", CreditLimit: 10000},
	}}
	orders := &mockOrderBook{totals: map[string]float64{
		"Meena Textiles": 32500,
	}}
	handler := NewGetCreditHandler(repo, orders)

	tests := []struct {
		name          string
		customerID    uint
		wantLimit     float64
		wantUsed      float64
		wantRemaining float64
	}{
		{
			name:          "customer with orders",
			customerID:    1,
			wantLimit:     50000,
			wantUsed:      32500,
			wantRemaining: 17500,
		},
		{
			name:          "customer without orders",
			customerID:    2,
			wantLimit:     10000,
			wantUsed:      0,
			wantRemaining: 10000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := handler.Handle(GetCreditQuery{CustomerID: tt.customerID})
			if err != nil {
				t.Fatalf("Handle() error = %v", err)
			}
			if summary.CreditLimit != tt.wantLimit {
				t.Errorf("credit limit = %v, want %v", summary.CreditLimit, tt.wantLimit)
			}
			if summary.UsedCredit != tt.wantUsed {
				t.Errorf("used credit = %v, want %v", summary.UsedCredit, tt.wantUsed)
			}
			if summary.RemainingCredit != tt.wantRemaining {
				t.Errorf("remaining credit = %v, want %v", summary.RemainingCredit, tt.wantRemaining)
			}
		})
	}
}

func TestGetCredit_UnknownCustomer(t *testing.T) {
	repo := &mockCustomerRepository{customers: map[uint]*domain.Customer{}}
	handler := NewGetCreditHandler(repo, &mockOrderBook{})

	_, err := handler.Handle(GetCreditQuery{CustomerID: 77})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("Handle() error = %v, want not-found error", err)
	}
}
