package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
)

type Order struct {
	ID         uuid.UUID       `json:"id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	CreatedAt  time.Time       `json:"created_at"`
	Status     OrderStatus     `json:"status"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// NewOrder returns an empty pending order owned by customerID.
func NewOrder(customerID uuid.UUID, now time.Time) *Order {
	return &Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		CreatedAt:  now,
		Status:     OrderStatusPending,
		TotalPrice: decimal.Zero,
	}
}

// Deliver replaces the total with the line item subtotal and marks the order delivered.
// The previous status is not checked.
func (o *Order) Deliver(item *LineItemView) error {
	total, err := item.Subtotal()
	if err != nil {
		return err
	}
	o.TotalPrice = total
	o.Status = OrderStatusDelivered
	return nil
}

func (o *Order) Cancel() {
	o.Status = OrderStatusCanceled
}
