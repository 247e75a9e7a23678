package usecase

import (
	"context"
	"testing"
	"time"

	"fieldservice/internal/adapter/persistence/memory"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/domain/numbering"
	"fieldservice/internal/infrastructure/payments"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store *memory.Store
	seq   *numbering.Sequence
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{store: memory.New(), seq: numbering.NewSequence()}
}

func (f *fixture) clients() *ClientUseCase {
	return NewClientUseCase(f.store.Clients(), f.store, nil)
}

func (f *fixture) serviceOrders() *ServiceOrderUseCase {
	return NewServiceOrderUseCase(f.store.ServiceOrders(), f.store.Clients(), f.store, f.seq, nil, nil)
}

func (f *fixture) quotes() *QuoteUseCase {
	return NewQuoteUseCase(f.store.Quotes(), f.store.Clients(), f.store, f.seq, nil)
}

func (f *fixture) maintenance() *MaintenanceUseCase {
	return NewMaintenanceUseCase(f.store.MaintenanceContracts(), f.store.Clients(), f.store, f.seq, nil)
}

func (f *fixture) billing() *BillingUseCase {
	return NewBillingUseCase(BillingDeps{
		Invoices:      f.store.Invoices(),
		ServiceOrders: f.store.ServiceOrders(),
		Quotes:        f.store.Quotes(),
		Clients:       f.store.Clients(),
		Writer:        f.store,
		Sequence:      f.seq,
		Instruments:   payments.NewPlaceholderGateway("Tech Solutions", "Sao Paulo", nil),
		FiscalNotes:   payments.AccessKeyIssuer{},
	}, nil)
}

func (f *fixture) legalEntity(t *testing.T, razaoSocial string) entities.Client {
	t.Helper()
	c, err := f.clients().CreateClient(context.Background(), entities.NewLegalEntityClient(
		entities.LegalEntity{RazaoSocial: razaoSocial, CNPJ: "12.345.678/0001-90"},
		entities.Address{City: "São Paulo", State: "SP"},
		entities.Contact{Email: "contato@example.com"},
	))
	require.NoError(t, err)
	return c
}

func (f *fixture) completedOrder(t *testing.T, clientID string) entities.ServiceOrder {
	t.Helper()
	ctx := context.Background()
	uc := f.serviceOrders()
	o, err := uc.CreateServiceOrder(ctx, CreateServiceOrderInput{
		ClientID:           clientID,
		RequestDescription: "Manutenção do servidor",
		ServiceType:        "Manutenção",
		ScheduledDate:      time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	for _, s := range []entities.ServiceOrderStatus{entities.ServiceOrderStatusInProgress, entities.ServiceOrderStatusCompleted} {
		o.Status = s
		o, err = uc.UpdateServiceOrder(ctx, o)
		require.NoError(t, err)
	}
	return o
}

func (f *fixture) acceptedQuote(t *testing.T, clientID string, total int64) entities.Quote {
	t.Helper()
	ctx := context.Background()
	uc := f.quotes()
	q, err := uc.CreateQuote(ctx, CreateQuoteInput{
		ClientID: clientID,
		Items: []entities.LineItem{
			{Description: "Serviço", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(total)},
		},
		Subtotal: decimal.NewFromInt(total),
		Total:    decimal.NewFromInt(total),
	})
	require.NoError(t, err)
	for _, s := range []entities.QuoteStatus{entities.QuoteStatusSent, entities.QuoteStatusAccepted} {
		q.Status = s
		q, err = uc.UpdateQuote(ctx, q)
		require.NoError(t, err)
	}
	return q
}
