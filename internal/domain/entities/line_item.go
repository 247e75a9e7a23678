package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LineItem is shared by quotes and invoices.
type LineItem struct {
	ID          string          `json:"id,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

func (i LineItem) Amount() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

func (i LineItem) Validate() error {
	if strings.TrimSpace(i.Description) == "" {
		return invalid("item description is required")
	}
	if err := nonNegative("quantity", i.Quantity); err != nil {
		return err
	}
	return nonNegative("unitPrice", i.UnitPrice)
}

func ValidateItems(items []LineItem) error {
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func cloneItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
