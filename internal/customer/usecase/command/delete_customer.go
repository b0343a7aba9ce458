package command

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RehanShaikh007/texhub-backend/internal/customer/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// DeleteCustomerCommand represents the command to delete a customer
type DeleteCustomerCommand struct {
	CustomerID uint
}

// DeleteCustomerHandler handles delete customer command
type DeleteCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewDeleteCustomerHandler creates a new delete customer handler
func NewDeleteCustomerHandler(repo domain.CustomerRepository) *DeleteCustomerHandler {
	return &DeleteCustomerHandler{repo: repo}
}

// Handle executes the delete customer command
func (h *DeleteCustomerHandler) Handle(cmd DeleteCustomerCommand) error {
	if _, err := h.repo.FindByID(cmd.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("customer not found")
		}
		return apperr.Unexpected("failed to get customer", err)
	}

	if err := h.repo.Delete(cmd.CustomerID); err != nil {
		return apperr.Unexpected("failed to delete customer", err)
	}

	return nil
}
