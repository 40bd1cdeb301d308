package dto

import (
	"github.com/gad/ecommerce-msvc/internal/core/domain"
	"github.com/google/uuid"
)

type CreateLineItemRequest struct {
	UUIDOrder   string `json:"uuid_order" binding:"required,uuid"`
	UUIDProduct string `json:"uuid_product" binding:"required,uuid"`
	Amount      int    `json:"amount" binding:"required,min=1"`
}

type LineItemDTO struct {
	UUIDDetail  uuid.UUID `json:"uuid_detail"`
	UUIDOrder   uuid.UUID `json:"uuid_order"`
	ProductName string    `json:"product_name"`
	Amount      int       `json:"amount"`
	UnitPrice   Money     `json:"unit_price"`
}

func ToLineItemDTO(v *domain.LineItemView) LineItemDTO {
	return LineItemDTO{
		UUIDDetail:  v.ID,
		UUIDOrder:   v.OrderID,
		ProductName: v.ProductName,
		Amount:      v.Quantity,
		UnitPrice:   Money(v.UnitPrice),
	}
}

func (d *LineItemDTO) ToDomain() *domain.LineItemView {
	return &domain.LineItemView{
		ID:          d.UUIDDetail,
		OrderID:     d.UUIDOrder,
		ProductName: d.ProductName,
		Quantity:    d.Amount,
		UnitPrice:   d.UnitPrice.Decimal(),
	}
}
