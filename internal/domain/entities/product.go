package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID              string          `json:"id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Category        string          `json:"category,omitempty"`
	UnitOfMeasure   string          `json:"unitOfMeasure,omitempty"`
	QuantityInStock int             `json:"quantityInStock"`
	CostPrice       decimal.Decimal `json:"costPrice"`
	SellingPrice    decimal.Decimal `json:"sellingPrice"`
	Supplier        string          `json:"supplier,omitempty"`
}

func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return invalid("product name is required")
	}
	if p.QuantityInStock < 0 {
		return invalid("quantityInStock must not be negative")
	}
	if err := nonNegative("costPrice", p.CostPrice); err != nil {
		return err
	}
	return nonNegative("sellingPrice", p.SellingPrice)
}
