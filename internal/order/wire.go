//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	customerdomain "github.com/RehanShaikh007/texhub-backend/internal/customer/domain"
	customerrepo "github.com/RehanShaikh007/texhub-backend/internal/customer/repository"
	"github.com/RehanShaikh007/texhub-backend/internal/order/delivery/http"
	"github.com/RehanShaikh007/texhub-backend/internal/order/domain"
	"github.com/RehanShaikh007/texhub-backend/internal/order/repository"
	"github.com/RehanShaikh007/texhub-backend/internal/order/usecase/command"
	"github.com/RehanShaikh007/texhub-backend/internal/order/usecase/query"
	stockdomain "github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
	stockrepo "github.com/RehanShaikh007/texhub-backend/internal/stock/repository"
)

// ProvideOrderRepository provides the order repository
func ProvideOrderRepository(db *gorm.DB) domain.OrderRepository {
	return repository.NewGormOrderRepository(db)
}

// ProvideCustomerRepository provides the customer repository
func ProvideCustomerRepository(db *gorm.DB) customerdomain.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(db)
}

// ProvideStockRepository provides the stock repository with tracing
func ProvideStockRepository(db *gorm.DB) stockdomain.StockRepository {
	return stockrepo.NewGormStockRepositoryWithTracing(stockrepo.NewGormStockRepository(db))
}

// Command Handlers Providers
func ProvideCreateOrderHandler(
	orders domain.OrderRepository,
	customers customerdomain.CustomerRepository,
	stocks stockdomain.StockRepository,
	sticky stockdomain.StickySet,
	notifier command.Notifier,
	events command.EventPublisher,
) *command.CreateOrderHandler {
	return command.NewCreateOrderHandler(orders, customers, stocks, sticky, notifier, events)
}

func ProvideUpdateOrderHandler(
	orders domain.OrderRepository,
	stocks stockdomain.StockRepository,
	sticky stockdomain.StickySet,
	notifier command.Notifier,
	events command.EventPublisher,
) *command.UpdateOrderHandler {
	return command.NewUpdateOrderHandler(orders, stocks, sticky, notifier, events)
}

func ProvideDeleteOrderHandler(
	orders domain.OrderRepository,
	stocks stockdomain.StockRepository,
	sticky stockdomain.StickySet,
	notifier command.Notifier,
	events command.EventPublisher,
) *command.DeleteOrderHandler {
	return command.NewDeleteOrderHandler(orders, stocks, sticky, notifier, events)
}

// Query Handlers Providers
func ProvideGetOrderHandler(repo domain.OrderRepository) *query.GetOrderHandler {
	return query.NewGetOrderHandler(repo)
}

func ProvideListOrdersHandler(repo domain.OrderRepository) *query.ListOrdersHandler {
	return query.NewListOrdersHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideOrderRepository,
	ProvideCustomerRepository,
	ProvideStockRepository,
)

var HandlerSet = wire.NewSet(
	ProvideCreateOrderHandler,
	ProvideUpdateOrderHandler,
	ProvideDeleteOrderHandler,
	ProvideGetOrderHandler,
	ProvideListOrdersHandler,
)

// InitializeHTTPHandler initializes the order HTTP handler with all dependencies
func InitializeHTTPHandler(
	db *gorm.DB,
	sticky stockdomain.StickySet,
	notifier command.Notifier,
	events command.EventPublisher,
) (*http.OrderHandler, error) {
	wire.Build(
		RepositorySet,
		HandlerSet,
		http.NewOrderHandler,
	)
	return nil, nil
}
