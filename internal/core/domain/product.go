package domain

import (
	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

// Product is owned by the catalog service and never written here.
type Product struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// CheckStock fails with *StockError when quantity exceeds the observed stock.
func (p *Product) CheckStock(quantity int) error {
	if quantity > p.Stock {
		return &StockError{Requested: quantity, ProductName: p.Name, Available: p.Stock}
	}
	return nil
}
