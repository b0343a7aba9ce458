package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
)

var tracer = otel.Tracer("stock-repository")

// GormStockRepositoryWithTracing wraps GormStockRepository with tracing
type GormStockRepositoryWithTracing struct {
	*GormStockRepository
}

// NewGormStockRepositoryWithTracing creates a new repository with tracing
func NewGormStockRepositoryWithTracing(db *GormStockRepository) *GormStockRepositoryWithTracing {
	return &GormStockRepositoryWithTracing{GormStockRepository: db}
}

// FindByIDWithContext traces lot lookup by id
func (r *GormStockRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id uint) (*domain.StockLot, error) {
	_, span := tracer.Start(ctx, "repository.FindByID")
	span.SetAttributes(attribute.Int("stock.id", int(id)))
	defer span.End()

	lot, err := r.GormStockRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("stock.type", lot.StockType),
		attribute.String("stock.status", lot.Status),
		attribute.Float64("stock.total_quantity", lot.TotalQuantity()),
	)
	return lot, nil
}

// FindForOrderItemWithContext traces fallback lot resolution
func (r *GormStockRepositoryWithTracing) FindForOrderItemWithContext(ctx context.Context, product, color string) (*domain.StockLot, error) {
	_, span := tracer.Start(ctx, "repository.FindForOrderItem")
	span.SetAttributes(
		attribute.String("stock.product", product),
		attribute.String("stock.color", color),
	)
	defer span.End()

	lot, err := r.GormStockRepository.FindForOrderItem(product, color)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("stock.id", int(lot.ID)))
	return lot, nil
}

// SaveWithContext traces lot persistence
func (r *GormStockRepositoryWithTracing) SaveWithContext(ctx context.Context, lot *domain.StockLot) error {
	_, span := tracer.Start(ctx, "repository.Save")
	span.SetAttributes(
		attribute.Int("stock.id", int(lot.ID)),
		attribute.String("stock.status", lot.Status),
		attribute.Float64("stock.total_quantity", lot.TotalQuantity()),
	)
	defer span.End()

	if err := r.GormStockRepository.Save(lot); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
