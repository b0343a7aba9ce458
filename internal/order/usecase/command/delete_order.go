package command

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/RehanShaikh007/texhub-backend/internal/order/domain"
	stockdomain "github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// DeleteOrderCommand represents the command to delete an order
type DeleteOrderCommand struct {
	OrderID uint
}

// DeleteOrderHandler handles delete order command
type DeleteOrderHandler struct {
	orders  domain.OrderRepository
	stocks  stockdomain.StockRepository
	sticky  stockdomain.StickySet
	effects sideEffects
}

// NewDeleteOrderHandler creates a new delete order handler
func NewDeleteOrderHandler(
	orders domain.OrderRepository,
	stocks stockdomain.StockRepository,
	sticky stockdomain.StickySet,
	notifier Notifier,
	events EventPublisher,
) *DeleteOrderHandler {
	return &DeleteOrderHandler{
		orders:  orders,
		stocks:  stocks,
		sticky:  sticky,
		effects: sideEffects{notifier: notifier, events: events},
	}
}

// Handle executes the delete order command. Deleting a confirmed order
// restores its stock with the same lenient resolution as a status reversal.
func (h *DeleteOrderHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	order, err := h.orders.FindByID(cmd.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("order not found")
		}
		return apperr.Unexpected("failed to get order", err)
	}

	plan := newStockPlan(h.stocks, h.sticky)
	if order.Status == domain.StatusConfirmed {
		plan.restore(order.Items)
	}

	if err := h.orders.DeleteWithStock(order, plan.touched()); err != nil {
		return apperr.Unexpected("failed to delete order", err)
	}

	h.effects.orderEvent(ctx, order, orderMessage("deleted", order))

	return nil
}
