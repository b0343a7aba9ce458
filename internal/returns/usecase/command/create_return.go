package command

import (
	"context"
	"fmt"

	notifdomain "github.com/RehanShaikh007/texhub-backend/internal/notification/domain"
	"github.com/RehanShaikh007/texhub-backend/internal/returns/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// Notifier dispatches best-effort business notifications
type Notifier interface {
	Dispatch(ctx context.Context, category, message string)
}

// CreateReturnCommand represents the command to create a return request
type CreateReturnCommand struct {
	OrderID    uint
	StockLotID *uint
	Product    string
	Color      string
	Quantity   float64
	Reason     string
}

// CreateReturnHandler handles create return command
type CreateReturnHandler struct {
	repo     domain.ReturnRepository
	orders   domain.OrderFinder
	notifier Notifier
}

// NewCreateReturnHandler creates a new create return handler
func NewCreateReturnHandler(repo domain.ReturnRepository, orders domain.OrderFinder, notifier Notifier) *CreateReturnHandler {
	return &CreateReturnHandler{repo: repo, orders: orders, notifier: notifier}
}

// Handle executes the create return command
func (h *CreateReturnHandler) Handle(ctx context.Context, cmd CreateReturnCommand) (*domain.ReturnRequest, error) {
	if cmd.OrderID == 0 {
		return nil, apperr.Validationf("order id is required")
	}
	if cmd.Product == "" {
		return nil, apperr.Validationf("product is required")
	}
	if cmd.Color == "" {
		return nil, apperr.Validationf("color is required")
	}
	if cmd.Quantity <= 0 {
		return nil, apperr.Validationf("quantity must be positive")
	}

	exists, err := h.orders.Exists(cmd.OrderID)
	if err != nil {
		return nil, apperr.Unexpected("failed to look up order", err)
	}
	if !exists {
		return nil, apperr.NotFoundf("order not found")
	}

	ret := &domain.ReturnRequest{
		OrderID:    cmd.OrderID,
		StockLotID: cmd.StockLotID,
		Product:    cmd.Product,
		Color:      cmd.Color,
		Quantity:   cmd.Quantity,
		Reason:     cmd.Reason,
	}

	if err := h.repo.Create(ret); err != nil {
		return nil, apperr.Unexpected("failed to create return request", err)
	}

	if h.notifier != nil {
		msg := fmt.Sprintf("Return #%d requested: order #%d, %s (%s), %.2f", ret.ID, ret.OrderID, ret.Product, ret.Color, ret.Quantity)
		h.notifier.Dispatch(ctx, notifdomain.CategoryReturn, msg)
	}

	return ret, nil
}
