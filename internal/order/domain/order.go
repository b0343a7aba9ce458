package domain

import (
	"time"

	"gorm.io/gorm"

	stockdomain "github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
)

// Order statuses. The transactional model is two-state: only confirmed orders
// hold deducted stock; both states count against customer credit.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
)

// OrderItem is one line of an order. Product and Color join stock by natural
// key; StockLotID pins a specific lot when the operator picked one.
type OrderItem struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	OrderID        uint    `json:"order_id" gorm:"not null;index"`
	Product        string  `json:"product" gorm:"not null;index"`
	Color          string  `json:"color" gorm:"not null"`
	Quantity       float64 `json:"quantity" gorm:"not null"`
	PricePerMeters float64 `json:"price_per_meters" gorm:"not null"`
	StockLotID     *uint   `json:"stock_id,omitempty"`
}

// TableName specifies the table name
func (OrderItem) TableName() string {
	return "order_items"
}

// Order represents a customer order. Customer is the denormalized customer
// name, not a foreign key.
type Order struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Customer     string         `json:"customer" gorm:"not null;index"`
	Status       string         `json:"status" gorm:"default:'pending';index"`
	OrderDate    time.Time      `json:"order_date"`
	DeliveryDate time.Time      `json:"delivery_date"`
	Items        []OrderItem    `json:"order_items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Notes        string         `json:"notes,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// Total is the order value: sum of quantity times price per meters
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Quantity * item.PricePerMeters
	}
	return total
}

// OrderRepository defines the contract for order data access. The WithStock
// variants commit the order write and every touched stock lot in one database
// transaction, so an order transition's stock effects land together or not at
// all.
type OrderRepository interface {
	FindByID(id uint) (*Order, error)
	FindAll(limit, offset int, customer string) ([]Order, int64, error)
	// TotalForCustomer sums quantity*price_per_meters over every order of the
	// customer, regardless of status
	TotalForCustomer(name string) (float64, error)

	CreateWithStock(order *Order, lots []*stockdomain.StockLot) error
	UpdateWithStock(order *Order, lots []*stockdomain.StockLot) error
	DeleteWithStock(order *Order, lots []*stockdomain.StockLot) error
}
