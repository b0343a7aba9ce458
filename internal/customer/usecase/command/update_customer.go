package command

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RehanShaikh007/texhub-backend/internal/customer/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// UpdateCustomerCommand represents the command to update a customer. Nil
// fields are left unchanged.
type UpdateCustomerCommand struct {
	CustomerID  uint
	Name        *string
	Phone       *string
	Address     *string
	City        *string
	CreditLimit *float64
}

// UpdateCustomerHandler handles update customer command
type UpdateCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewUpdateCustomerHandler creates a new update customer handler
func NewUpdateCustomerHandler(repo domain.CustomerRepository) *UpdateCustomerHandler {
	return &UpdateCustomerHandler{repo: repo}
}

// Handle executes the update customer command
func (h *UpdateCustomerHandler) Handle(cmd UpdateCustomerCommand) (*domain.Customer, error) {
	customer, err := h.repo.FindByID(cmd.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("customer not found")
		}
		return nil, apperr.Unexpected("failed to get customer", err)
	}

	if cmd.Name != nil {
		if *cmd.Name == "" {
			return nil, apperr.Validationf("customer name cannot be empty")
		}
		customer.Name = *cmd.Name
	}
	if cmd.Phone != nil {
		customer.Phone = *cmd.Phone
	}
	if cmd.Address != nil {
		customer.Address = *cmd.Address
	}
	if cmd.City != nil {
		customer.City = *cmd.City
	}
	if cmd.CreditLimit != nil {
		if *cmd.CreditLimit < 0 {
			return nil, apperr.Validationf("credit limit cannot be negative")
		}
		customer.CreditLimit = *cmd.CreditLimit
	}

	if err := h.repo.Update(customer); err != nil {
		return nil, apperr.Unexpected("failed to update customer", err)
	}

	return customer, nil
}
