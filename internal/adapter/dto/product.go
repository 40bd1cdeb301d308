package dto

import (
	"github.com/gad/ecommerce-msvc/internal/core/domain"
	"github.com/google/uuid"
)

// ProductDTO is the catalog service representation of a product.
type ProductDTO struct {
	UUIDProduct uuid.UUID `json:"uuid_product"`
	Name        string    `json:"name"`
	Price       Money     `json:"price"`
	Stock       int       `json:"stock"`
}

func (d *ProductDTO) ToDomain() *domain.Product {
	return &domain.Product{
		ID:    d.UUIDProduct,
		Name:  d.Name,
		Price: d.Price.Decimal(),
		Stock: d.Stock,
	}
}
