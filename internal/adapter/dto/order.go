package dto

import (
	"time"

	"github.com/gad/ecommerce-msvc/internal/core/domain"
	"github.com/google/uuid"
)

type OrderDTO struct {
	UUIDOrder    uuid.UUID `json:"uuid_order"`
	UUIDCustomer uuid.UUID `json:"uuid_customer"`
	OrderDate    time.Time `json:"order_date"`
	StatusOrder  string    `json:"status_order"`
	TotalPrice   Money     `json:"total_price"`
}

func ToOrderDTO(o *domain.Order) OrderDTO {
	return OrderDTO{
		UUIDOrder:    o.ID,
		UUIDCustomer: o.CustomerID,
		OrderDate:    o.CreatedAt,
		StatusOrder:  string(o.Status),
		TotalPrice:   Money(o.TotalPrice),
	}
}

func (d *OrderDTO) ToDomain() *domain.Order {
	return &domain.Order{
		ID:         d.UUIDOrder,
		CustomerID: d.UUIDCustomer,
		CreatedAt:  d.OrderDate,
		Status:     domain.OrderStatus(d.StatusOrder),
		TotalPrice: d.TotalPrice.Decimal(),
	}
}
