// Package e2etest runs the services against a real PostgreSQL database.
// Set TEST_DATABASE_URI to enable it.
package e2etest

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gad/ecommerce-msvc/internal/adapter/cache"
	"github.com/gad/ecommerce-msvc/internal/adapter/config"
	"github.com/gad/ecommerce-msvc/internal/adapter/storage"
	"github.com/gad/ecommerce-msvc/internal/adapter/storage/repository"
	"github.com/gad/ecommerce-msvc/internal/core/domain"
	"github.com/gad/ecommerce-msvc/internal/core/port/mock"
	"github.com/gad/ecommerce-msvc/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func getDB(t *testing.T) *storage.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URI")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URI is not set")
	}

	db, err := storage.NewDBStorage(context.Background(), &config.Database{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.RunMigrations())
	return db
}

func getCache(t *testing.T, serviceName string) *cache.RedisCache {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := cache.NewRedisCache(context.Background(), mr.Addr(), serviceName, time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestServiceDB_OrderLifecycle(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()
	db := getDB(t)

	repo, err := repository.NewOrderRepository(db)
	require.NoError(t, err)

	lineItems := mock.NewMockLineItemLookup(mockCtrl)
	s, err := service.NewOrderService(repo, lineItems, getCache(t, "orders"), zap.NewNop())
	require.NoError(t, err)

	customerID := uuid.New()
	created, err := s.CreateOrder(ctx, customerID)
	require.NoError(t, err)

	got, err := s.GetOrder(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, customerID, got.CustomerID)
	assert.Equal(t, domain.OrderStatusPending, got.Status)
	assert.True(t, got.TotalPrice.IsZero())

	item := &domain.LineItemView{
		ID:        uuid.New(),
		OrderID:   created.ID,
		Quantity:  10,
		UnitPrice: decimal.MustParse("100.00"),
	}
	lineItems.EXPECT().LookupLineItem(gomock.Any(), item.ID).Return(item, nil)

	_, err = s.UpdateOrderTotal(ctx, item.ID, created.ID)
	require.NoError(t, err)

	got, err = s.GetOrder(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDelivered, got.Status)
	assert.Equal(t, 0, got.TotalPrice.Cmp(decimal.MustParse("1000")))

	require.NoError(t, s.DeleteOrder(ctx, created.ID))

	got, err = s.GetOrder(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCanceled, got.Status)

	_, err = s.GetOrder(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestServiceDB_LineItemSnapshot(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := context.Background()
	db := getDB(t)

	repo, err := repository.NewLineItemRepository(db)
	require.NoError(t, err)

	orders := mock.NewMockOrderLookup(mockCtrl)
	products := mock.NewMockProductLookup(mockCtrl)
	s, err := service.NewLineItemService(repo, orders, products, getCache(t, "details"), zap.NewNop())
	require.NoError(t, err)

	order := domain.NewOrder(uuid.New(), time.Now())
	product := &domain.Product{ID: uuid.New(), Name: "Keyboard", Price: decimal.MustParse("100.00"), Stock: 20}
	repriced := *product
	repriced.Price = decimal.MustParse("250.00")

	orders.EXPECT().LookupOrder(gomock.Any(), order.ID).Return(order, nil).Times(2)
	gomock.InOrder(
		products.EXPECT().LookupProduct(gomock.Any(), product.ID).Return(product, nil),
		products.EXPECT().LookupProduct(gomock.Any(), product.ID).Return(product, nil),
		products.EXPECT().LookupProduct(gomock.Any(), product.ID).Return(&repriced, nil),
	)

	_, err = s.CreateLineItem(ctx, order.ID, product.ID, 50)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	created, err := s.CreateLineItem(ctx, order.ID, product.ID, 5)
	require.NoError(t, err)

	got, err := s.GetLineItem(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Quantity)
	assert.Equal(t, 0, got.UnitPrice.Cmp(decimal.MustParse("100")))
}
