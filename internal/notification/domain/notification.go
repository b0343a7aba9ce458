package domain

import (
	"context"
	"time"
)

// Notification categories. Each category has an independent on/off toggle.
const (
	CategoryOrder    = "order"
	CategoryStock    = "stock"
	CategoryReturn   = "return"
	CategoryProduct  = "product"
	CategoryCustomer = "customer"
	CategoryLowStock = "low_stock"
)

// Categories lists every known category, used to seed default settings
var Categories = []string{
	CategoryOrder,
	CategoryStock,
	CategoryReturn,
	CategoryProduct,
	CategoryCustomer,
	CategoryLowStock,
}

// Delivery results recorded on the audit log
const (
	DeliveryDelivered    = "delivered"
	DeliveryNotDelivered = "not_delivered"
	DeliveryDisabled     = "disabled"
)

// Setting is the per-category toggle. It is read fresh on every dispatch so
// flipping it takes effect immediately.
type Setting struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Category  string    `json:"category" gorm:"not null;uniqueIndex"`
	Enabled   bool      `json:"enabled" gorm:"not null;default:true"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Setting) TableName() string {
	return "notification_settings"
}

// Log is the immutable audit row written for every dispatch attempt
type Log struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Category  string    `json:"category" gorm:"not null;index"`
	Message   string    `json:"message" gorm:"not null"`
	Status    string    `json:"status" gorm:"not null"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Log) TableName() string {
	return "notification_logs"
}

// Notifier is the outbound channel contract (WhatsApp gateway in production)
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// SettingRepository defines the contract for settings access
type SettingRepository interface {
	FindByCategory(category string) (*Setting, error)
	FindAll() ([]Setting, error)
	Upsert(setting *Setting) error
}

// LogRepository defines the contract for the notification audit log
type LogRepository interface {
	Create(log *Log) error
	FindAll(limit, offset int) ([]Log, int64, error)
}
