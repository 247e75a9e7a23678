package seed

import (
	"context"
	"testing"
	"time"

	"fieldservice/internal/adapter/persistence/memory"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/domain/numbering"
	"fieldservice/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repositoriesOf(s *memory.Store) Repositories {
	return Repositories{
		Clients:              s.Clients(),
		Users:                s.Users(),
		Credentials:          s.Credentials(),
		Products:             s.Products(),
		ServiceOrders:        s.ServiceOrders(),
		Quotes:               s.Quotes(),
		MaintenanceContracts: s.MaintenanceContracts(),
		Invoices:             s.Invoices(),
		Writer:               s,
	}
}

func TestDemoData(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	repos := repositoriesOf(store)

	require.NoError(t, DemoData(ctx, repos, time.Now(), nil))

	clients, err := repos.Clients.List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 4)
	assert.Equal(t, "cli-1", clients[0].ID)
	assert.Equal(t, entities.ClientKindNaturalPerson, clients[3].Kind)
	for _, c := range clients {
		assert.NoError(t, c.Validate(), c.ID)
	}

	orders, err := repos.ServiceOrders.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "OS-0001", orders[0].ServiceOrderNumber)

	t.Run("admin can authenticate", func(t *testing.T) {
		auth := usecase.NewAuthUseCase(store.Users(), store.Credentials(), store, nil)
		u, err := auth.Authenticate(ctx, AdminUsername, AdminPassword)
		require.NoError(t, err)
		assert.Equal(t, "user-admin", u.ID)
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		require.NoError(t, DemoData(ctx, repos, time.Now(), nil))
		clients, err := repos.Clients.List(ctx)
		require.NoError(t, err)
		assert.Len(t, clients, 4)
	})

	t.Run("sequences continue after seeded numbers", func(t *testing.T) {
		seq := numbering.NewSequence()
		require.NoError(t, PrimeSequence(ctx, repos, seq))
		assert.Equal(t, "OS-0004", seq.Next(numbering.ServiceOrders))
		assert.Equal(t, "ORC-0003", seq.Next(numbering.Quotes))
		assert.Equal(t, "CT-MAN-003", seq.Next(numbering.MaintenanceContracts))
		assert.Equal(t, "000001", seq.Next(numbering.Invoices))
	})
}
