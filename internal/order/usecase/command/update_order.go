package command

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/RehanShaikh007/texhub-backend/internal/order/domain"
	stockdomain "github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// UpdateOrderCommand represents a partial order update. Nil fields are left
// unchanged; the status field drives stock transitions.
type UpdateOrderCommand struct {
	OrderID      uint
	Status       *string
	OrderDate    *time.Time
	DeliveryDate *time.Time
	Notes        *string
}

// UpdateOrderHandler handles update order command
type UpdateOrderHandler struct {
	orders  domain.OrderRepository
	stocks  stockdomain.StockRepository
	sticky  stockdomain.StickySet
	effects sideEffects
}

// NewUpdateOrderHandler creates a new update order handler
func NewUpdateOrderHandler(
	orders domain.OrderRepository,
	stocks stockdomain.StockRepository,
	sticky stockdomain.StickySet,
	notifier Notifier,
	events EventPublisher,
) *UpdateOrderHandler {
	return &UpdateOrderHandler{
		orders:  orders,
		stocks:  stocks,
		sticky:  sticky,
		effects: sideEffects{notifier: notifier, events: events},
	}
}

// Handle executes the update order command. Confirming a pending order
// deducts stock for the order's current items and fails hard when any item
// cannot be satisfied; reverting a confirmed order restores stock leniently,
// skipping lots that no longer exist so the reversal always goes through.
func (h *UpdateOrderHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*domain.Order, error) {
	order, err := h.orders.FindByID(cmd.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("order not found")
		}
		return nil, apperr.Unexpected("failed to get order", err)
	}

	plan := newStockPlan(h.stocks, h.sticky)

	if cmd.Status != nil && *cmd.Status != order.Status {
		switch {
		case order.Status == domain.StatusPending && *cmd.Status == domain.StatusConfirmed:
			if err := plan.deduct(order.Items); err != nil {
				return nil, err
			}
		case order.Status == domain.StatusConfirmed && *cmd.Status == domain.StatusPending:
			plan.restore(order.Items)
		default:
			return nil, apperr.Validationf("invalid status transition %q to %q", order.Status, *cmd.Status)
		}
		order.Status = *cmd.Status
	}

	if cmd.OrderDate != nil {
		order.OrderDate = *cmd.OrderDate
	}
	if cmd.DeliveryDate != nil {
		order.DeliveryDate = *cmd.DeliveryDate
	}
	if cmd.Notes != nil {
		order.Notes = *cmd.Notes
	}

	if err := h.orders.UpdateWithStock(order, plan.touched()); err != nil {
		return nil, apperr.Unexpected("failed to update order", err)
	}

	h.effects.orderEvent(ctx, order, orderMessage("updated", order))
	h.effects.stockDepleted(ctx, plan.depleted())

	return order, nil
}
