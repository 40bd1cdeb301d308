package port

import (
	"context"

	"github.com/gad/ecommerce-msvc/internal/core/domain"
	"github.com/google/uuid"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	// UpdateOrder reads, mutates and writes a single order atomically.
	UpdateOrder(ctx context.Context, orderID uuid.UUID, updateFn UpdateOrderFn) (*domain.Order, error)
}

type UpdateOrderFn func(*domain.Order) error

type LineItemRepository interface {
	CreateLineItem(ctx context.Context, item *domain.LineItem) (*domain.LineItem, error)
	ReadLineItem(ctx context.Context, itemID uuid.UUID) (*domain.LineItem, error)
}
