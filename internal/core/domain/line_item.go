package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

// LineItem is one product-quantity-price record attached to an order.
// UnitPrice is a snapshot of the product price at creation time.
type LineItem struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"order_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// LineItemView is a line item joined with the live product name.
type LineItemView struct {
	ID          uuid.UUID       `json:"id"`
	OrderID     uuid.UUID       `json:"order_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func NewLineItem(orderID uuid.UUID, product *Product, quantity int) *LineItem {
	return &LineItem{
		ID:        uuid.New(),
		OrderID:   orderID,
		ProductID: product.ID,
		Quantity:  quantity,
		UnitPrice: product.Price,
	}
}

func (li *LineItem) View(productName string) *LineItemView {
	return &LineItemView{
		ID:          li.ID,
		OrderID:     li.OrderID,
		ProductName: productName,
		Quantity:    li.Quantity,
		UnitPrice:   li.UnitPrice,
	}
}

// Subtotal is Quantity × UnitPrice.
func (v *LineItemView) Subtotal() (decimal.Decimal, error) {
	q, err := decimal.New(int64(v.Quantity), 0)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
	}
	total, err := v.UnitPrice.Mul(q)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
	}
	return total, nil
}
