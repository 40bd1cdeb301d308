package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gad/ecommerce-msvc/internal/core/domain"
	"github.com/gad/ecommerce-msvc/internal/core/port"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const lineItemCacheOperation = "OrderDetailByUuid"

type LineItemService struct {
	repo     port.LineItemRepository
	orders   port.OrderLookup
	products port.ProductLookup
	cache    port.Cache
	logger   *zap.Logger
}

func NewLineItemService(repo port.LineItemRepository, orders port.OrderLookup,
	products port.ProductLookup, cache port.Cache, logger *zap.Logger) (*LineItemService, error) {
	return &LineItemService{
		repo:     repo,
		orders:   orders,
		products: products,
		cache:    cache,
		logger:   logger,
	}, nil
}

// CreateLineItem validates the order and the product stock, then stores a line item
// priced at the current product price.
// The stock check and the insert are not atomic; concurrent requests may oversell.
func (s *LineItemService) CreateLineItem(ctx context.Context,
	orderID, productID uuid.UUID, quantity int) (*domain.LineItemView, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	_, err := s.orders.LookupOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrRemoteNotFound) {
			return nil, fmt.Errorf("%w: %w", domain.ErrOrderNotFound, err)
		}
		return nil, err
	}

	product, err := s.lookupProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	err = product.CheckStock(quantity)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.CreateLineItem(ctx, domain.NewLineItem(orderID, product, quantity))
	if err != nil {
		s.logger.Error("Create line item", zap.Error(err))
		return nil, err
	}

	return item.View(product.Name), nil
}

func (s *LineItemService) GetLineItem(ctx context.Context, itemID uuid.UUID) (*domain.LineItemView, error) {
	key := s.cache.GenerateKey(lineItemCacheOperation, itemID.String())

	var cached domain.LineItemView
	ok, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.logger.Warn("Line item cache read", zap.String("key", key), zap.Error(err))
	} else if ok {
		return &cached, nil
	}

	item, err := s.repo.ReadLineItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrLineItemNotFound
		}
		s.logger.Error("Get line item", zap.Error(err))
		return nil, err
	}

	product, err := s.lookupProduct(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}

	view := item.View(product.Name)
	if err := s.cache.Set(ctx, key, view); err != nil {
		s.logger.Warn("Line item cache write", zap.String("key", key), zap.Error(err))
	}

	return view, nil
}

func (s *LineItemService) lookupProduct(ctx context.Context, productID uuid.UUID) (*domain.Product, error) {
	product, err := s.products.LookupProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrRemoteNotFound) {
			return nil, fmt.Errorf("%w: %w", domain.ErrProductNotFound, err)
		}
		return nil, err
	}
	return product, nil
}
