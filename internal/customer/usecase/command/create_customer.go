package command

import (
	"github.com/RehanShaikh007/texhub-backend/internal/customer/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
)

// CreateCustomerCommand represents the command to create a customer
type CreateCustomerCommand struct {
	Name        string
	Phone       string
	Address     string
	City        string
	CreditLimit float64
}

// CreateCustomerHandler handles create customer command
type CreateCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewCreateCustomerHandler creates a new create customer handler
func NewCreateCustomerHandler(repo domain.CustomerRepository) *CreateCustomerHandler {
	return &CreateCustomerHandler{repo: repo}
}

// Handle executes the create customer command
func (h *CreateCustomerHandler) Handle(cmd CreateCustomerCommand) (*domain.Customer, error) {
	if cmd.Name == "" {
		return nil, apperr.Validationf("customer name is required")
	}
	if cmd.CreditLimit < 0 {
		return nil, apperr.Validationf("credit limit cannot be negative")
	}

	customer := &domain.Customer{
		Name:        cmd.Name,
		Phone:       cmd.Phone,
		Address:     cmd.Address,
		City:        cmd.City,
		CreditLimit: cmd.CreditLimit,
	}

	if err := h.repo.Create(customer); err != nil {
		return nil, apperr.Unexpected("failed to create customer", err)
	}

	return customer, nil
}
