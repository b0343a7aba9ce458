package command

import (
	"context"
	"fmt"

	notifdomain "github.com/RehanShaikh007/texhub-backend/internal/notification/domain"
	"github.com/RehanShaikh007/texhub-backend/internal/order/domain"
	stockdomain "github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
	"github.com/RehanShaikh007/texhub-backend/kafka"
	"github.com/RehanShaikh007/texhub-backend/pkg/logger"
)

// Notifier dispatches best-effort business notifications; a dispatch never
// fails the operation that fired it
type Notifier interface {
	Dispatch(ctx context.Context, category, message string)
}

// EventPublisher publishes domain events to the message bus
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error
	PublishStockLow(ctx context.Context, event kafka.StockLowEvent) error
}

// sideEffects bundles the post-commit fan-out shared by the order commands.
// Both collaborators are optional.
type sideEffects struct {
	notifier Notifier
	events   EventPublisher
}

func (s sideEffects) orderEvent(ctx context.Context, order *domain.Order, message string) {
	if s.notifier != nil {
		s.notifier.Dispatch(ctx, notifdomain.CategoryOrder, message)
	}
	if s.events != nil {
		err := s.events.PublishOrderPlaced(ctx, kafka.OrderPlacedEvent{
			OrderID:    order.ID,
			Customer:   order.Customer,
			Status:     order.Status,
			ItemCount:  len(order.Items),
			OrderTotal: order.Total(),
		})
		if err != nil {
			logger.Warn(ctx).Err(err).Uint("order_id", order.ID).Msg("Failed to publish order event")
		}
	}
}

func (s sideEffects) stockDepleted(ctx context.Context, lots []*stockdomain.StockLot) {
	if s.events == nil {
		return
	}
	for _, lot := range lots {
		err := s.events.PublishStockLow(ctx, kafka.StockLowEvent{
			StockLotID:    lot.ID,
			Product:       lot.Details.Product,
			StockType:     lot.StockType,
			Status:        lot.Status,
			TotalQuantity: lot.TotalQuantity(),
		})
		if err != nil {
			logger.Warn(ctx).Err(err).Uint("stock_id", lot.ID).Msg("Failed to publish stock low event")
		}
	}
}

func orderMessage(action string, order *domain.Order) string {
	return fmt.Sprintf("Order #%d %s: customer %s, %d item(s), total %.2f (%s)",
		order.ID, action, order.Customer, len(order.Items), order.Total(), order.Status)
}
