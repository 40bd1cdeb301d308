package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gad/ecommerce-msvc/internal/adapter/storage"
	"github.com/gad/ecommerce-msvc/internal/adapter/storage/repository"
	"github.com/gad/ecommerce-msvc/internal/core/domain"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	orderCols    = []string{"uuid_order", "uuid_customer", "order_date", "status", "total_price"}
	lineItemCols = []string{"uuid_detail", "uuid_order", "uuid_product", "amount", "unit_price"}
)

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *storage.DB) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, storage.NewDB(mock)
}

func testOrder() domain.Order {
	return domain.Order{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		CreatedAt:  time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Status:     domain.OrderStatusPending,
		TotalPrice: decimal.Zero,
	}
}

func TestOrderRepository_CreateOrder(t *testing.T) {
	order := testOrder()

	tests := []struct {
		name     string
		execErr  error
		expError error
	}{
		{name: "created"},
		{
			name:     "duplicate id",
			execErr:  &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			expError: domain.ErrConflictingData,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mock, db := newMock(t)
			repo, err := repository.NewOrderRepository(db)
			require.NoError(t, err)

			exp := mock.ExpectExec("^INSERT INTO orders").
				WithArgs(order.ID, order.CustomerID, order.CreatedAt, order.Status, order.TotalPrice)
			if test.execErr != nil {
				exp.WillReturnError(test.execErr)
			} else {
				exp.WillReturnResult(pgxmock.NewResult("INSERT", 1))
			}

			result, err := repo.CreateOrder(context.Background(), &order)
			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.Equal(t, &order, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOrderRepository_ReadOrder(t *testing.T) {
	order := testOrder()

	t.Run("found", func(t *testing.T) {
		mock, db := newMock(t)
		repo, _ := repository.NewOrderRepository(db)

		mock.ExpectQuery("^SELECT (.+) FROM orders WHERE uuid_order = \\$1").
			WithArgs(order.ID.String()).
			WillReturnRows(pgxmock.NewRows(orderCols).
				AddRow(order.ID, order.CustomerID, order.CreatedAt, order.Status, order.TotalPrice))

		result, err := repo.ReadOrder(context.Background(), order.ID)
		require.NoError(t, err)
		assert.Equal(t, &order, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock, db := newMock(t)
		repo, _ := repository.NewOrderRepository(db)

		mock.ExpectQuery("^SELECT (.+) FROM orders").
			WithArgs(order.ID.String()).
			WillReturnRows(pgxmock.NewRows(orderCols))

		result, err := repo.ReadOrder(context.Background(), order.ID)
		assert.Nil(t, result)
		assert.Equal(t, domain.ErrDataNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_UpdateOrder(t *testing.T) {
	order := testOrder()
	total := decimal.MustParse("1000")

	t.Run("committed", func(t *testing.T) {
		mock, db := newMock(t)
		repo, _ := repository.NewOrderRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("^SELECT (.+) FROM orders WHERE uuid_order = \\$1 FOR UPDATE").
			WithArgs(order.ID.String()).
			WillReturnRows(pgxmock.NewRows(orderCols).
				AddRow(order.ID, order.CustomerID, order.CreatedAt, order.Status, order.TotalPrice))
		mock.ExpectExec("^UPDATE orders SET status = \\$1, total_price = \\$2 WHERE uuid_order = \\$3").
			WithArgs(domain.OrderStatusDelivered, total, order.ID.String()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		result, err := repo.UpdateOrder(context.Background(), order.ID, func(o *domain.Order) error {
			o.Status = domain.OrderStatusDelivered
			o.TotalPrice = total
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusDelivered, result.Status)
		assert.Equal(t, total, result.TotalPrice)
		assert.Equal(t, order.CustomerID, result.CustomerID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing order rolls back", func(t *testing.T) {
		mock, db := newMock(t)
		repo, _ := repository.NewOrderRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("^SELECT (.+) FROM orders").
			WithArgs(order.ID.String()).
			WillReturnRows(pgxmock.NewRows(orderCols))
		mock.ExpectRollback()

		called := false
		result, err := repo.UpdateOrder(context.Background(), order.ID, func(o *domain.Order) error {
			called = true
			return nil
		})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrDataNotFound)
		assert.False(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update func error rolls back", func(t *testing.T) {
		mock, db := newMock(t)
		repo, _ := repository.NewOrderRepository(db)
		fnErr := errors.New("math error")

		mock.ExpectBegin()
		mock.ExpectQuery("^SELECT (.+) FROM orders").
			WithArgs(order.ID.String()).
			WillReturnRows(pgxmock.NewRows(orderCols).
				AddRow(order.ID, order.CustomerID, order.CreatedAt, order.Status, order.TotalPrice))
		mock.ExpectRollback()

		result, err := repo.UpdateOrder(context.Background(), order.ID, func(o *domain.Order) error {
			return fnErr
		})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, fnErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLineItemRepository(t *testing.T) {
	item := domain.LineItem{
		ID:        uuid.New(),
		OrderID:   uuid.New(),
		ProductID: uuid.New(),
		Quantity:  10,
		UnitPrice: decimal.MustParse("100"),
	}

	t.Run("create", func(t *testing.T) {
		mock, db := newMock(t)
		repo, err := repository.NewLineItemRepository(db)
		require.NoError(t, err)

		mock.ExpectExec("^INSERT INTO order_details").
			WithArgs(item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		result, err := repo.CreateLineItem(context.Background(), &item)
		require.NoError(t, err)
		assert.Equal(t, &item, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("read", func(t *testing.T) {
		mock, db := newMock(t)
		repo, _ := repository.NewLineItemRepository(db)

		mock.ExpectQuery("^SELECT (.+) FROM order_details WHERE uuid_detail = \\$1").
			WithArgs(item.ID.String()).
			WillReturnRows(pgxmock.NewRows(lineItemCols).
				AddRow(item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice))

		result, err := repo.ReadLineItem(context.Background(), item.ID)
		require.NoError(t, err)
		assert.Equal(t, &item, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("read missing", func(t *testing.T) {
		mock, db := newMock(t)
		repo, _ := repository.NewLineItemRepository(db)

		mock.ExpectQuery("^SELECT (.+) FROM order_details").
			WithArgs(item.ID.String()).
			WillReturnRows(pgxmock.NewRows(lineItemCols))

		result, err := repo.ReadLineItem(context.Background(), item.ID)
		assert.Nil(t, result)
		assert.Equal(t, domain.ErrDataNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
