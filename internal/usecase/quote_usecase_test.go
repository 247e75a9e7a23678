package usecase

import (
	"context"
	"testing"
	"time"

	"fieldservice/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteUseCase_CreateQuote(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	client := f.legalEntity(t, "Tech Solutions")
	uc := f.quotes()
	today := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return today }

	q, err := uc.CreateQuote(ctx, CreateQuoteInput{
		ClientID: client.ID,
		Items: []entities.LineItem{
			{Description: "Câmera IP", Quantity: decimal.NewFromInt(4), UnitPrice: decimal.NewFromInt(350)},
			{ID: "item-keep", Description: "Instalação", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(400)},
		},
		Subtotal: decimal.NewFromInt(1800),
		Discount: decimal.NewFromInt(100),
		Total:    decimal.NewFromInt(1700),
	})
	require.NoError(t, err)
	assert.Equal(t, "ORC-0001", q.QuoteNumber)
	assert.Equal(t, entities.QuoteStatusDraft, q.Status)
	assert.Equal(t, "Tech Solutions", q.ClientName)
	assert.Equal(t, today, q.QuoteDate)
	require.Len(t, q.Items, 2)
	assert.Regexp(t, `^item-`, q.Items[0].ID)
	assert.Equal(t, "item-keep", q.Items[1].ID)
	assert.True(t, q.Total.Equal(decimal.NewFromInt(1700)), "totals are stored as given")

	_, err = uc.CreateQuote(ctx, CreateQuoteInput{ClientID: "cli-missing"})
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = uc.CreateQuote(ctx, CreateQuoteInput{ClientID: client.ID, Total: decimal.NewFromInt(-5)})
	assert.ErrorIs(t, err, ErrValidation)

	next, err := uc.CreateQuote(ctx, CreateQuoteInput{ClientID: client.ID})
	require.NoError(t, err)
	assert.Equal(t, "ORC-0002", next.QuoteNumber)
}

func TestQuoteUseCase_UpdateQuote(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	client := f.legalEntity(t, "Tech Solutions")
	uc := f.quotes()

	q, err := uc.CreateQuote(ctx, CreateQuoteInput{ClientID: client.ID})
	require.NoError(t, err)

	q.Status = entities.QuoteStatusAccepted
	_, err = uc.UpdateQuote(ctx, q)
	assert.ErrorIs(t, err, ErrValidation, "draft cannot be accepted before being sent")

	q.Status = entities.QuoteStatusSent
	q.QuoteNumber = "ORC-9999"
	q.QuoteDate = time.Time{}
	sent, err := uc.UpdateQuote(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, "ORC-0001", sent.QuoteNumber)
	assert.False(t, sent.QuoteDate.IsZero())

	sent.Status = entities.QuoteStatusRejected
	rejected, err := uc.UpdateQuote(ctx, sent)
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteStatusRejected, rejected.Status)

	_, err = uc.UpdateQuote(ctx, entities.Quote{ID: "qt-missing", ClientID: client.ID})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = uc.GetQuote(ctx, "qt-missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuoteUseCase_UpdateQuote_SortsByQuoteDate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	client := f.legalEntity(t, "Tech Solutions")
	uc := f.quotes()

	older, err := uc.CreateQuote(ctx, CreateQuoteInput{ClientID: client.ID, QuoteDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	newer, err := uc.CreateQuote(ctx, CreateQuoteInput{ClientID: client.ID, QuoteDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	older.QuoteDate = time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	_, err = uc.UpdateQuote(ctx, older)
	require.NoError(t, err)

	list, err := uc.ListQuotes(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, older.ID, list[0].ID)
	assert.Equal(t, newer.ID, list[1].ID)
}

func TestQuoteUseCase_UpdateQuote_DanglingClient(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	client := f.legalEntity(t, "Tech Solutions")
	uc := f.quotes()

	q, err := uc.CreateQuote(ctx, CreateQuoteInput{ClientID: client.ID})
	require.NoError(t, err)

	q.ClientID = "cli-gone"
	updated, err := uc.UpdateQuote(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, entities.UnknownClientName, updated.ClientName)
}
