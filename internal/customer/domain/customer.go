package domain

import (
	"time"

	"gorm.io/gorm"
)

// Customer represents a trading customer. Name is the natural key other
// records join on (orders store the name, not the id).
type Customer struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null;uniqueIndex"`
	Phone       string         `json:"phone"`
	Address     string         `json:"address"`
	City        string         `json:"city"`
	CreditLimit float64        `json:"credit_limit" gorm:"not null;default:0"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Customer) TableName() string {
	return "customers"
}

// CreditSummary is the computed credit position of a customer. UsedCredit is
// recomputed on every read from the order book, never cached.
type CreditSummary struct {
	CreditLimit     float64 `json:"credit_limit"`
	UsedCredit      float64 `json:"used_credit"`
	RemainingCredit float64 `json:"remaining_credit"`
}

// CustomerRepository defines the contract for customer data access
type CustomerRepository interface {
	Create(customer *Customer) error
	FindByID(id uint) (*Customer, error)
	FindByName(name string) (*Customer, error)
	FindAll(limit, offset int) ([]Customer, int64, error)
	Update(customer *Customer) error
	Delete(id uint) error
}

// OrderBook is the slice of the order store the credit ledger needs: the
// summed value of every order a customer ever placed, pending included.
type OrderBook interface {
	TotalForCustomer(name string) (float64, error)
}
