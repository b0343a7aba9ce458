package command

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	customerdomain "github.com/RehanShaikh007/texhub-backend/internal/customer/domain"
	"github.com/RehanShaikh007/texhub-backend/internal/order/domain"
	stockdomain "github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// OrderItemInput is one requested order line
type OrderItemInput struct {
	Product        string
	Color          string
	Quantity       float64
	PricePerMeters float64
	StockLotID     *uint
}

// CreateOrderCommand represents the command to create an order
type CreateOrderCommand struct {
	Customer     string
	Status       string
	OrderDate    time.Time
	DeliveryDate time.Time
	Notes        string
	Items        []OrderItemInput
}

// CreateOrderHandler handles create order command
type CreateOrderHandler struct {
	orders    domain.OrderRepository
	customers customerdomain.CustomerRepository
	stocks    stockdomain.StockRepository
	sticky    stockdomain.StickySet
	effects   sideEffects
}

// NewCreateOrderHandler creates a new create order handler
func NewCreateOrderHandler(
	orders domain.OrderRepository,
	customers customerdomain.CustomerRepository,
	stocks stockdomain.StockRepository,
	sticky stockdomain.StickySet,
	notifier Notifier,
	events EventPublisher,
) *CreateOrderHandler {
	return &CreateOrderHandler{
		orders:    orders,
		customers: customers,
		stocks:    stocks,
		sticky:    sticky,
		effects:   sideEffects{notifier: notifier, events: events},
	}
}

// Handle executes the create order command. Confirmed orders deduct stock at
// creation; pending orders leave stock untouched. Every order, pending or
// confirmed, counts against the customer's credit limit.
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	if cmd.Customer == "" {
		return nil, apperr.Validationf("customer is required")
	}
	if len(cmd.Items) == 0 {
		return nil, apperr.Validationf("order must have at least one item")
	}
	if cmd.Status == "" {
		cmd.Status = domain.StatusPending
	}
	if cmd.Status != domain.StatusPending && cmd.Status != domain.StatusConfirmed {
		return nil, apperr.Validationf("invalid order status %q", cmd.Status)
	}

	items := make([]domain.OrderItem, 0, len(cmd.Items))
	for _, in := range cmd.Items {
		if in.Product == "" || in.Color == "" {
			return nil, apperr.Validationf("every item needs a product and a color")
		}
		if in.Quantity <= 0 {
			return nil, apperr.Validationf("item quantity must be greater than 0")
		}
		if in.PricePerMeters < 0 {
			return nil, apperr.Validationf("item price cannot be negative")
		}
		items = append(items, domain.OrderItem{
			Product:        in.Product,
			Color:          in.Color,
			Quantity:       in.Quantity,
			PricePerMeters: in.PricePerMeters,
			StockLotID:     in.StockLotID,
		})
	}

	customer, err := h.customers.FindByName(cmd.Customer)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("customer %q not found", cmd.Customer)
		}
		return nil, apperr.Unexpected("failed to get customer", err)
	}

	order := &domain.Order{
		Customer:     customer.Name,
		Status:       cmd.Status,
		OrderDate:    cmd.OrderDate,
		DeliveryDate: cmd.DeliveryDate,
		Notes:        cmd.Notes,
		Items:        items,
	}

	// Credit ceiling: every prior order counts, no status filter. Exactly
	// reaching the limit is allowed.
	existing, err := h.orders.TotalForCustomer(customer.Name)
	if err != nil {
		return nil, apperr.Unexpected("failed to sum customer orders", err)
	}
	orderTotal := order.Total()
	if existing+orderTotal > customer.CreditLimit {
		return nil, apperr.BusinessRulef(
			"credit limit exceeded: available credit %.2f, order total %.2f",
			customer.CreditLimit-existing, orderTotal,
		)
	}

	plan := newStockPlan(h.stocks, h.sticky)
	if order.Status == domain.StatusConfirmed {
		if err := plan.deduct(order.Items); err != nil {
			return nil, err
		}
	}

	if err := h.orders.CreateWithStock(order, plan.touched()); err != nil {
		return nil, apperr.Unexpected("failed to create order", err)
	}

	h.effects.orderEvent(ctx, order, orderMessage("created", order))
	h.effects.stockDepleted(ctx, plan.depleted())

	return order, nil
}
