package entities

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineItem_Amount(t *testing.T) {
	it := LineItem{Description: "Filtro", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.RequireFromString("12.50")}
	assert.True(t, decimal.RequireFromString("37.5").Equal(it.Amount()))
}

func TestValidateItems(t *testing.T) {
	ok := LineItem{Description: "Filtro", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10)}
	assert.NoError(t, ValidateItems([]LineItem{ok}))
	assert.NoError(t, ValidateItems(nil))

	blank := ok
	blank.Description = "  "
	assert.ErrorIs(t, ValidateItems([]LineItem{ok, blank}), ErrValidation)

	negative := ok
	negative.UnitPrice = decimal.NewFromInt(-1)
	assert.ErrorIs(t, ValidateItems([]LineItem{negative}), ErrValidation)
}

func TestQuote_Validate(t *testing.T) {
	q := Quote{ClientID: "c-1", Status: QuoteStatusDraft, Total: decimal.NewFromInt(100)}
	assert.NoError(t, q.Validate())

	q.Discount = decimal.NewFromInt(-5)
	assert.ErrorIs(t, q.Validate(), ErrValidation)

	assert.ErrorIs(t, Quote{ClientID: "c-1", Status: "Aberto"}.Validate(), ErrValidation)
	assert.ErrorIs(t, Quote{Status: QuoteStatusDraft}.Validate(), ErrValidation)
}
