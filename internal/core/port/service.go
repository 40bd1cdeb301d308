package port

import (
	"context"

	"github.com/gad/ecommerce-msvc/internal/core/domain"
	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type OrderService interface {
	CreateOrder(ctx context.Context, customerID uuid.UUID) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	UpdateOrderTotal(ctx context.Context, lineItemID, orderID uuid.UUID) (*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID uuid.UUID) error
}

type LineItemService interface {
	CreateLineItem(ctx context.Context, orderID, productID uuid.UUID, quantity int) (*domain.LineItemView, error)
	GetLineItem(ctx context.Context, itemID uuid.UUID) (*domain.LineItemView, error)
}
