package port

import (
	"context"

	"github.com/gad/ecommerce-msvc/internal/core/domain"
	"github.com/google/uuid"
)

// Remote lookups return an error that is domain.ErrRemoteNotFound when the resource
// is absent and domain.ErrRemoteUnavailable when the dependency cannot be reached.

//go:generate mockgen -source=remote.go -destination=mock/remote.go -package=mock
type ProductLookup interface {
	LookupProduct(ctx context.Context, productID uuid.UUID) (*domain.Product, error)
}

type OrderLookup interface {
	LookupOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
}

type LineItemLookup interface {
	LookupLineItem(ctx context.Context, itemID uuid.UUID) (*domain.LineItemView, error)
}
