//go:build wireinject
// +build wireinject

package stock

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/RehanShaikh007/texhub-backend/internal/stock/delivery/http"
	"github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
	"github.com/RehanShaikh007/texhub-backend/internal/stock/repository"
	"github.com/RehanShaikh007/texhub-backend/internal/stock/usecase/command"
	"github.com/RehanShaikh007/texhub-backend/internal/stock/usecase/query"
)

// ProvideStockRepository provides the stock repository with tracing
func ProvideStockRepository(db *gorm.DB) domain.StockRepository {
	return repository.NewGormStockRepositoryWithTracing(repository.NewGormStockRepository(db))
}

// Command Handlers Providers
func ProvideCreateStockHandler(repo domain.StockRepository, sticky domain.StickySet, notifier command.Notifier) *command.CreateStockHandler {
	return command.NewCreateStockHandler(repo, sticky, notifier)
}

func ProvideUpdateStockHandler(repo domain.StockRepository, sticky domain.StickySet, notifier command.Notifier) *command.UpdateStockHandler {
	return command.NewUpdateStockHandler(repo, sticky, notifier)
}

func ProvideDeleteStockHandler(repo domain.StockRepository, notifier command.Notifier) *command.DeleteStockHandler {
	return command.NewDeleteStockHandler(repo, notifier)
}

// Query Handlers Providers
func ProvideGetStockHandler(repo domain.StockRepository) *query.GetStockHandler {
	return query.NewGetStockHandler(repo)
}

func ProvideListStockHandler(repo domain.StockRepository) *query.ListStockHandler {
	return query.NewListStockHandler(repo)
}

func ProvideLowStockHandler(repo domain.StockRepository) *query.LowStockHandler {
	return query.NewLowStockHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideStockRepository,
)

var HandlerSet = wire.NewSet(
	ProvideCreateStockHandler,
	ProvideUpdateStockHandler,
	ProvideDeleteStockHandler,
	ProvideGetStockHandler,
	ProvideListStockHandler,
	ProvideLowStockHandler,
)

// InitializeHTTPHandler initializes the stock HTTP handler with all dependencies
func InitializeHTTPHandler(
	db *gorm.DB,
	sticky domain.StickySet,
	notifier command.Notifier,
) (*http.StockHandler, error) {
	wire.Build(
		RepositorySet,
		HandlerSet,
		http.NewStockHandler,
	)
	return nil, nil
}
