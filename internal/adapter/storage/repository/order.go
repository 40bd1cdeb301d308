package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gad/ecommerce-msvc/internal/adapter/storage"
	"github.com/gad/ecommerce-msvc/internal/core/domain"
	"github.com/gad/ecommerce-msvc/internal/core/port"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var orderColumns = []string{"uuid_order", "uuid_customer", "order_date", "status", "total_price"}

type OrderRepository struct {
	db *storage.DB
}

func NewOrderRepository(db *storage.DB) (*OrderRepository, error) {
	return &OrderRepository{db: db}, nil
}

func (or *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := or.db.QueryBuilder.Insert("orders").
		Columns(orderColumns...).
		Values(order.ID, order.CustomerID, order.CreatedAt, order.Status, order.TotalPrice)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = or.db.Exec(ctx, sql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return order, nil
}

func (or *OrderRepository) ReadOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"uuid_order": orderID.String()})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(or.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateOrder locks the row, applies updateFn and writes status and total back
// in one transaction.
func (or *OrderRepository) UpdateOrder(ctx context.Context,
	orderID uuid.UUID, updateFn port.UpdateOrderFn) (*domain.Order, error) {
	tx, err := or.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	order, err := or.updateOrderTx(ctx, tx, orderID, updateFn)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return order, nil
}

func (or *OrderRepository) updateOrderTx(ctx context.Context, tx pgx.Tx,
	orderID uuid.UUID, updateFn port.UpdateOrderFn) (*domain.Order, error) {
	selectSt := or.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"uuid_order": orderID.String()}).
		Suffix("FOR UPDATE")

	sql, args, err := selectSt.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(tx.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, err
	}

	err = updateFn(order)
	if err != nil {
		return nil, err
	}

	updateSt := or.db.QueryBuilder.
		Update("orders").
		Set("status", order.Status).
		Set("total_price", order.TotalPrice).
		Where(sq.Eq{"uuid_order": order.ID.String()})

	sql, args, err = updateSt.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}

	return order, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}

	err := row.Scan(
		&order.ID,
		&order.CustomerID,
		&order.CreatedAt,
		&order.Status,
		&order.TotalPrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}

	return &order, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
