package domain

import (
	"time"

	stockdomain "github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
)

// Adjustment is an immutable audit row for a manual quantity correction.
// Adjustments only model upward corrections (recounts); decreases go through
// orders or direct stock edits.
type Adjustment struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	StockLotID   uint      `json:"stock_id" gorm:"not null;index"`
	Product      string    `json:"product" gorm:"index"`
	Color        string    `json:"color" gorm:"not null"`
	PrevQuantity float64   `json:"prev_quantity" gorm:"not null"`
	NewQuantity  float64   `json:"new_quantity" gorm:"not null"`
	Reason       string    `json:"reason" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Adjustment) TableName() string {
	return "adjustments"
}

// AdjustmentRepository defines the contract for adjustment data access
type AdjustmentRepository interface {
	// CreateWithStock writes the audit row and the corrected lot in one
	// transaction
	CreateWithStock(adjustment *Adjustment, lot *stockdomain.StockLot) error
	FindAll(limit, offset int) ([]Adjustment, int64, error)
}
