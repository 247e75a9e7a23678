package usecase

import (
	"context"
	"testing"
	"time"

	"fieldservice/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportUseCase_FindDocumentByNumber(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	client := f.legalEntity(t, "Tech Solutions")
	order := f.completedOrder(t, client.ID)
	quote := f.acceptedQuote(t, client.ID, 100)
	contract, err := f.maintenance().CreateMaintenanceContract(ctx, CreateMaintenanceContractInput{ClientID: client.ID})
	require.NoError(t, err)

	uc := NewReportUseCase(f.store.ServiceOrders(), f.store.Quotes(), f.store.MaintenanceContracts())

	match, err := uc.FindDocumentByNumber(ctx, entities.DocumentKindServiceOrder, "os-0001")
	require.NoError(t, err)
	require.NotNil(t, match.ServiceOrder)
	assert.Equal(t, order.ID, match.ServiceOrder.ID)
	assert.Nil(t, match.Quote)

	match, err = uc.FindDocumentByNumber(ctx, entities.DocumentKindQuote, " ORC-0001 ")
	require.NoError(t, err)
	assert.Equal(t, quote.ID, match.Quote.ID)

	match, err = uc.FindDocumentByNumber(ctx, entities.DocumentKindMaintenanceContract, "ct-man-001")
	require.NoError(t, err)
	assert.Equal(t, contract.ID, match.MaintenanceContract.ID)

	_, err = uc.FindDocumentByNumber(ctx, entities.DocumentKindQuote, "OS-0001")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = uc.FindDocumentByNumber(ctx, entities.DocumentKindServiceOrder, "OS-000")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = uc.FindDocumentByNumber(ctx, "invoice", "000001")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = uc.FindDocumentByNumber(ctx, entities.DocumentKindQuote, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestReportUseCase_ServiceOrderDashboard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	client := f.legalEntity(t, "Tech Solutions")
	orders := f.serviceOrders()
	uc := NewReportUseCase(f.store.ServiceOrders(), f.store.Quotes(), f.store.MaintenanceContracts())

	empty, err := uc.ServiceOrderDashboard(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.Total)
	assert.Len(t, empty.ByStatus, 4)
	assert.Empty(t, empty.Recent)

	base := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 6; i++ {
		_, err := orders.CreateServiceOrder(ctx, CreateServiceOrderInput{ClientID: client.ID, ScheduledDate: base.AddDate(0, 0, i)})
		require.NoError(t, err)
	}
	f.completedOrder(t, client.ID)

	d, err := uc.ServiceOrderDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, d.Total)
	assert.Equal(t, 6, d.ByStatus[entities.ServiceOrderStatusPending])
	assert.Equal(t, 1, d.ByStatus[entities.ServiceOrderStatusCompleted])
	assert.Equal(t, 0, d.ByStatus[entities.ServiceOrderStatusCanceled])
	require.Len(t, d.Recent, entities.DashboardRecentLimit)
	assert.Equal(t, base.AddDate(0, 0, 5), d.Recent[0].ScheduledDate)
	for i := 1; i < len(d.Recent); i++ {
		assert.False(t, d.Recent[i].ScheduledDate.After(d.Recent[i-1].ScheduledDate))
	}
}
