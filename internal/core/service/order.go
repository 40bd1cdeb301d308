package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gad/ecommerce-msvc/internal/core/domain"
	"github.com/gad/ecommerce-msvc/internal/core/port"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const orderCacheOperation = "OrderByUuid"

type OrderService struct {
	repo      port.OrderRepository
	lineItems port.LineItemLookup
	cache     port.Cache
	logger    *zap.Logger
	now       func() time.Time
}

func NewOrderService(repo port.OrderRepository, lineItems port.LineItemLookup,
	cache port.Cache, logger *zap.Logger) (*OrderService, error) {
	return &OrderService{
		repo:      repo,
		lineItems: lineItems,
		cache:     cache,
		logger:    logger,
		now:       time.Now,
	}, nil
}

func (s *OrderService) CreateOrder(ctx context.Context, customerID uuid.UUID) (*domain.Order, error) {
	order := domain.NewOrder(customerID, s.now())

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, err
	}

	return newOrder, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	key := s.cache.GenerateKey(orderCacheOperation, orderID.String())

	var cached domain.Order
	ok, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.logger.Warn("Order cache read", zap.String("key", key), zap.Error(err))
	} else if ok {
		return &cached, nil
	}

	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		s.logger.Error("Get order", zap.Error(err))
		return nil, err
	}

	if err := s.cache.Set(ctx, key, order); err != nil {
		s.logger.Warn("Order cache write", zap.String("key", key), zap.Error(err))
	}

	return order, nil
}

// UpdateOrderTotal replaces the order total with the subtotal of one line item and
// marks the order delivered, whatever its previous total or status.
func (s *OrderService) UpdateOrderTotal(ctx context.Context,
	lineItemID, orderID uuid.UUID) (*domain.Order, error) {
	item, err := s.lineItems.LookupLineItem(ctx, lineItemID)
	if err != nil {
		if errors.Is(err, domain.ErrRemoteNotFound) {
			return nil, fmt.Errorf("%w: %w", domain.ErrLineItemNotFound, err)
		}
		return nil, err
	}

	order, err := s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		return o.Deliver(item)
	})
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		s.logger.Error("Update order total", zap.Error(err))
		return nil, err
	}

	s.evict(ctx, orderID)

	return order, nil
}

// DeleteOrder cancels the order. The record is kept.
func (s *OrderService) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	_, err := s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		o.Cancel()
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return domain.ErrOrderNotFound
		}
		s.logger.Error("Delete order", zap.Error(err))
		return err
	}

	s.evict(ctx, orderID)

	return nil
}

func (s *OrderService) evict(ctx context.Context, orderID uuid.UUID) {
	key := s.cache.GenerateKey(orderCacheOperation, orderID.String())
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Warn("Order cache evict", zap.String("key", key), zap.Error(err))
	}
}
