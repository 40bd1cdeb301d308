package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gad/ecommerce-msvc/internal/adapter/storage"
	"github.com/gad/ecommerce-msvc/internal/core/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var lineItemColumns = []string{"uuid_detail", "uuid_order", "uuid_product", "amount", "unit_price"}

type LineItemRepository struct {
	db *storage.DB
}

func NewLineItemRepository(db *storage.DB) (*LineItemRepository, error) {
	return &LineItemRepository{db: db}, nil
}

func (lr *LineItemRepository) CreateLineItem(ctx context.Context, item *domain.LineItem) (*domain.LineItem, error) {
	statement := lr.db.QueryBuilder.Insert("order_details").
		Columns(lineItemColumns...).
		Values(item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = lr.db.Exec(ctx, sql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return item, nil
}

func (lr *LineItemRepository) ReadLineItem(ctx context.Context, itemID uuid.UUID) (*domain.LineItem, error) {
	statement := lr.db.QueryBuilder.
		Select(lineItemColumns...).
		From("order_details").
		Where(sq.Eq{"uuid_detail": itemID.String()})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	item := domain.LineItem{}
	err = lr.db.QueryRow(ctx, sql, args...).Scan(
		&item.ID,
		&item.OrderID,
		&item.ProductID,
		&item.Quantity,
		&item.UnitPrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, fmt.Errorf("scan order detail: %w", err)
	}

	return &item, nil
}
