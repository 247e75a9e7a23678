package usecase

import (
	"context"
	"testing"

	"fieldservice/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := f.clients()

	person, err := uc.CreateClient(ctx, entities.NewNaturalPersonClient(
		entities.NaturalPerson{NomeCompleto: "Maria da Silva", CPF: "123.456.789-00"},
		entities.Address{City: "Campinas", State: "SP"},
		entities.Contact{Email: "maria@example.com"},
	))
	require.NoError(t, err)
	assert.Regexp(t, `^cli-`, person.ID)

	_, err = uc.CreateClient(ctx, entities.Client{Kind: entities.ClientKindLegalEntity})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = uc.CreateClient(ctx, entities.NewLegalEntityClient(
		entities.LegalEntity{RazaoSocial: "Acme", CNPJ: "1"},
		entities.Address{State: "SPX"},
		entities.Contact{},
	))
	assert.ErrorIs(t, err, ErrValidation)

	got, err := uc.GetClient(ctx, person.ID)
	require.NoError(t, err)
	assert.Equal(t, person, got)

	_, err = uc.GetClient(ctx, "cli-missing")
	assert.ErrorIs(t, err, ErrClientNotFound)

	list, err := uc.ListClients(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestProductUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := NewProductUseCase(f.store.Products(), f.store, nil)

	p, err := uc.CreateProduct(ctx, entities.Product{
		SKU:          "CAM-IP-01",
		Name:         "Câmera IP",
		SellingPrice: decimal.RequireFromString("349.90"),
	})
	require.NoError(t, err)
	assert.Regexp(t, `^prod-`, p.ID)

	_, err = uc.CreateProduct(ctx, entities.Product{Name: "Cabo", CostPrice: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = uc.CreateProduct(ctx, entities.Product{Name: " "})
	assert.ErrorIs(t, err, ErrValidation)

	got, err := uc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "CAM-IP-01", got.SKU)

	_, err = uc.GetProduct(ctx, "prod-missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
