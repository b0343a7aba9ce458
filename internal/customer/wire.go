//go:build wireinject
// +build wireinject

package customer

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/RehanShaikh007/texhub-backend/internal/customer/delivery/http"
	"github.com/RehanShaikh007/texhub-backend/internal/customer/domain"
	"github.com/RehanShaikh007/texhub-backend/internal/customer/repository"
	"github.com/RehanShaikh007/texhub-backend/internal/customer/usecase/command"
	"github.com/RehanShaikh007/texhub-backend/internal/customer/usecase/query"
	orderrepo "github.com/RehanShaikh007/texhub-backend/internal/order/repository"
)

// ProvideCustomerRepository provides the customer repository
func ProvideCustomerRepository(db *gorm.DB) domain.CustomerRepository {
	return repository.NewGormCustomerRepository(db)
}

// ProvideOrderBook provides the order book used for credit summaries
func ProvideOrderBook(db *gorm.DB) domain.OrderBook {
	return orderrepo.NewGormOrderRepository(db)
}

// Command Handlers Providers
func ProvideCreateCustomerHandler(repo domain.CustomerRepository) *command.CreateCustomerHandler {
	return command.NewCreateCustomerHandler(repo)
}

func ProvideUpdateCustomerHandler(repo domain.CustomerRepository) *command.UpdateCustomerHandler {
	return command.NewUpdateCustomerHandler(repo)
}

func ProvideDeleteCustomerHandler(repo domain.CustomerRepository) *command.DeleteCustomerHandler {
	return command.NewDeleteCustomerHandler(repo)
}

// Query Handlers Providers
func ProvideGetCreditHandler(repo domain.CustomerRepository, orders domain.OrderBook) *query.GetCreditHandler {
	return query.NewGetCreditHandler(repo, orders)
}

func ProvideGetCustomerHandler(repo domain.CustomerRepository, orders domain.OrderBook) *query.GetCustomerHandler {
	return query.NewGetCustomerHandler(repo, orders)
}

func ProvideListCustomersHandler(repo domain.CustomerRepository, orders domain.OrderBook) *query.ListCustomersHandler {
	return query.NewListCustomersHandler(repo, orders)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCustomerRepository,
	ProvideOrderBook,
)

var HandlerSet = wire.NewSet(
	ProvideCreateCustomerHandler,
	ProvideUpdateCustomerHandler,
	ProvideDeleteCustomerHandler,
	ProvideGetCreditHandler,
	ProvideGetCustomerHandler,
	ProvideListCustomersHandler,
)

// InitializeHTTPHandler initializes the customer HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.CustomerHandler, error) {
	wire.Build(
		RepositorySet,
		HandlerSet,
		http.NewCustomerHandler,
	)
	return nil, nil
}
