package kafka

import "time"

// OrderPlacedEvent is published after an order commits
type OrderPlacedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	OrderID    uint      `json:"order_id"`
	Customer   string    `json:"customer"`
	Status     string    `json:"status"`
	ItemCount  int       `json:"item_count"`
	OrderTotal float64   `json:"order_total"`
	Timestamp  time.Time `json:"timestamp"`
}

// StockLowEvent is published when a lot drops to low or out after a mutation
type StockLowEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	StockLotID    uint      `json:"stock_lot_id"`
	Product       string    `json:"product"`
	StockType     string    `json:"stock_type"`
	Status        string    `json:"status"`
	TotalQuantity float64   `json:"total_quantity"`
	Timestamp     time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderPlaced = "order.placed"
	EventTypeStockLow    = "stock.low"
)

// Kafka topics
const (
	TopicOrderPlaced = "order-placed"
	TopicStockLow    = "stock-low"
)
