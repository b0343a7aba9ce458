package domain

import (
	"time"

	"gorm.io/gorm"
)

// ReturnRequest records a customer asking to send goods back. Approving or
// rejecting it flips the flags below and nothing else: stock and credit are
// untouched, the physical intake is handled off-system.
type ReturnRequest struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	OrderID    uint           `json:"order_id" gorm:"not null;index"`
	StockLotID *uint          `json:"stock_id,omitempty"`
	Product    string         `json:"product" gorm:"not null"`
	Color      string         `json:"color" gorm:"not null"`
	Quantity   float64        `json:"quantity" gorm:"not null"`
	Reason     string         `json:"reason"`
	IsApproved bool           `json:"is_approved" gorm:"not null;default:false"`
	IsRejected bool           `json:"is_rejected" gorm:"not null;default:false"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (ReturnRequest) TableName() string {
	return "return_requests"
}

// Resolved reports whether the request has already been decided.
func (r *ReturnRequest) Resolved() bool {
	return r.IsApproved || r.IsRejected
}

// ReturnRepository defines the contract for return request data access
type ReturnRepository interface {
	Create(ret *ReturnRequest) error
	FindByID(id uint) (*ReturnRequest, error)
	FindAll(limit, offset int) ([]ReturnRequest, int64, error)
	Update(ret *ReturnRequest) error
	Delete(id uint) error
}

// OrderFinder is the slice of the order store the return workflow needs.
type OrderFinder interface {
	Exists(orderID uint) (bool, error)
}
