package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gad/ecommerce-msvc/internal/adapter/cache"
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

type prepareLineItemMocks func(repo *mock.MockLineItemRepository,
	orders *mock.MockOrderLookup, products *mock.MockProductLookup)

func newLineItemService(t *testing.T, mockCtrl *gomock.Controller,
	prepare prepareLineItemMocks) *service.LineItemService {
	t.Helper()

	repo := mock.NewMockLineItemRepository(mockCtrl)
	orders := mock.NewMockOrderLookup(mockCtrl)
	products := mock.NewMockProductLookup(mockCtrl)
	prepare(repo, orders, products)

	c, err := cache.NewMemoryCache(16, "details")
	require.NoError(t, err)

	s, err := service.NewLineItemService(repo, orders, products, c, zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestLineItemService_CreateLineItem(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	order := pendingOrder()
	product := &domain.Product{
		ID:    uuid.New(),
		Name:  "Keyboard",
		Price: decimal.MustParse("100.50"),
		Stock: 20,
	}
	unavailable := domain.NewUnavailableError("Product", errors.New("connection refused"))

	type createLineItemTest struct {
		name     string
		quantity int
		mock     prepareLineItemMocks
		expError error
	}

	tests := []createLineItemTest{
		{
			name:     "Create good",
			quantity: 20,
			mock: func(repo *mock.MockLineItemRepository, orders *mock.MockOrderLookup, products *mock.MockProductLookup) {
				orders.EXPECT().LookupOrder(gomock.Any(), order.ID).Return(&order, nil)
				products.EXPECT().LookupProduct(gomock.Any(), product.ID).Return(product, nil)
				repo.EXPECT().CreateLineItem(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, li *domain.LineItem) (*domain.LineItem, error) {
						return li, nil
					})
			},
		},
		{
			name:     "Zero quantity",
			quantity: 0,
			mock:     func(*mock.MockLineItemRepository, *mock.MockOrderLookup, *mock.MockProductLookup) {},
			expError: domain.ErrInvalidQuantity,
		},
		{
			name:     "Order not found",
			quantity: 1,
			mock: func(repo *mock.MockLineItemRepository, orders *mock.MockOrderLookup, products *mock.MockProductLookup) {
				orders.EXPECT().LookupOrder(gomock.Any(), order.ID).
					Return(nil, &domain.RemoteNotFoundError{Resource: "order", ID: order.ID.String()})
			},
			expError: domain.ErrOrderNotFound,
		},
		{
			name:     "Product not found",
			quantity: 1,
			mock: func(repo *mock.MockLineItemRepository, orders *mock.MockOrderLookup, products *mock.MockProductLookup) {
				orders.EXPECT().LookupOrder(gomock.Any(), order.ID).Return(&order, nil)
				products.EXPECT().LookupProduct(gomock.Any(), product.ID).
					Return(nil, &domain.RemoteNotFoundError{Resource: "product", ID: product.ID.String()})
			},
			expError: domain.ErrProductNotFound,
		},
		{
			name:     "Insufficient stock",
			quantity: 50,
			mock: func(repo *mock.MockLineItemRepository, orders *mock.MockOrderLookup, products *mock.MockProductLookup) {
				orders.EXPECT().LookupOrder(gomock.Any(), order.ID).Return(&order, nil)
				products.EXPECT().LookupProduct(gomock.Any(), product.ID).Return(product, nil)
			},
			expError: domain.ErrInsufficientStock,
		},
		{
			name:     "Catalog unavailable",
			quantity: 1,
			mock: func(repo *mock.MockLineItemRepository, orders *mock.MockOrderLookup, products *mock.MockProductLookup) {
				orders.EXPECT().LookupOrder(gomock.Any(), order.ID).Return(&order, nil)
				products.EXPECT().LookupProduct(gomock.Any(), product.ID).Return(nil, unavailable)
			},
			expError: domain.ErrRemoteUnavailable,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newLineItemService(t, mockCtrl, test.mock)

			view, err := s.CreateLineItem(context.Background(), order.ID, product.ID, test.quantity)
			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, view)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, view.ID)
			assert.Equal(t, order.ID, view.OrderID)
			assert.Equal(t, product.Name, view.ProductName)
			assert.Equal(t, test.quantity, view.Quantity)
			assert.Equal(t, product.Price, view.UnitPrice)
		})
	}
}

func TestLineItemService_StockErrorMessage(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	order := pendingOrder()
	product := &domain.Product{ID: uuid.New(), Name: "Mouse", Price: decimal.MustParse("10"), Stock: 20}

	s := newLineItemService(t, mockCtrl,
		func(_ *mock.MockLineItemRepository, orders *mock.MockOrderLookup, products *mock.MockProductLookup) {
			orders.EXPECT().LookupOrder(gomock.Any(), order.ID).Return(&order, nil)
			products.EXPECT().LookupProduct(gomock.Any(), product.ID).Return(product, nil)
		})

	_, err := s.CreateLineItem(context.Background(), order.ID, product.ID, 50)

	var stockErr *domain.StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 50, stockErr.Requested)
	assert.Equal(t, 20, stockErr.Available)
	assert.Contains(t, err.Error(), "20")
	assert.Contains(t, err.Error(), "50")
}

func TestLineItemService_GetLineItem(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	stored := &domain.LineItem{
		ID:        uuid.New(),
		OrderID:   uuid.New(),
		ProductID: uuid.New(),
		Quantity:  3,
		UnitPrice: decimal.MustParse("100"),
	}
	// the catalog price changed after the line item was created
	repriced := &domain.Product{
		ID:    stored.ProductID,
		Name:  "Keyboard",
		Price: decimal.MustParse("250"),
		Stock: 5,
	}
	missing := uuid.New()

	t.Run("Snapshot price and read through cache", func(t *testing.T) {
		s := newLineItemService(t, mockCtrl,
			func(repo *mock.MockLineItemRepository, _ *mock.MockOrderLookup, products *mock.MockProductLookup) {
				repo.EXPECT().ReadLineItem(gomock.Any(), stored.ID).Return(stored, nil).Times(1)
				products.EXPECT().LookupProduct(gomock.Any(), stored.ProductID).Return(repriced, nil).Times(1)
			})

		for range 2 {
			view, err := s.GetLineItem(context.Background(), stored.ID)
			require.NoError(t, err)
			assert.Equal(t, "Keyboard", view.ProductName)
			assert.Equal(t, 0, view.UnitPrice.Cmp(decimal.MustParse("100")))
			assert.Equal(t, 3, view.Quantity)
		}
	})

	t.Run("Not found every time", func(t *testing.T) {
		s := newLineItemService(t, mockCtrl,
			func(repo *mock.MockLineItemRepository, _ *mock.MockOrderLookup, _ *mock.MockProductLookup) {
				repo.EXPECT().ReadLineItem(gomock.Any(), missing).Return(nil, domain.ErrDataNotFound).Times(2)
			})

		for range 2 {
			view, err := s.GetLineItem(context.Background(), missing)
			assert.Equal(t, domain.ErrLineItemNotFound, err)
			assert.Nil(t, view)
		}
	})

	t.Run("Product gone", func(t *testing.T) {
		s := newLineItemService(t, mockCtrl,
			func(repo *mock.MockLineItemRepository, _ *mock.MockOrderLookup, products *mock.MockProductLookup) {
				repo.EXPECT().ReadLineItem(gomock.Any(), stored.ID).Return(stored, nil)
				products.EXPECT().LookupProduct(gomock.Any(), stored.ProductID).
					Return(nil, &domain.RemoteNotFoundError{Resource: "product", ID: stored.ProductID.String()})
			})

		_, err := s.GetLineItem(context.Background(), stored.ID)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}
