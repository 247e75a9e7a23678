package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldservice/internal/domain/entities"
	mock_interfaces "fieldservice/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMaintenanceUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	client := f.legalEntity(t, "Tech Solutions")
	uc := f.maintenance()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	m, err := uc.CreateMaintenanceContract(ctx, CreateMaintenanceContractInput{
		ClientID:     client.ID,
		Type:         "Preventiva Mensal",
		StartDate:    start,
		EndDate:      start.AddDate(1, 0, 0),
		MonthlyValue: decimal.NewFromInt(1500),
		Scope:        "Servidores e rede",
	})
	require.NoError(t, err)
	assert.Equal(t, "CT-MAN-001", m.ContractNumber)
	assert.Equal(t, entities.MaintenanceStatusActive, m.Status)
	assert.Equal(t, "Tech Solutions", m.ClientName)

	t.Run("end before start", func(t *testing.T) {
		_, err := uc.CreateMaintenanceContract(ctx, CreateMaintenanceContractInput{ClientID: client.ID, StartDate: start, EndDate: start.AddDate(0, 0, -1)})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown client", func(t *testing.T) {
		_, err := uc.CreateMaintenanceContract(ctx, CreateMaintenanceContractInput{ClientID: "cli-missing"})
		assert.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("status changes", func(t *testing.T) {
		_, err := uc.UpdateMaintenanceContractStatus(ctx, m.ID, "Suspenso")
		assert.ErrorIs(t, err, ErrValidation)

		expired, err := uc.UpdateMaintenanceContractStatus(ctx, m.ID, entities.MaintenanceStatusExpired)
		require.NoError(t, err)
		assert.Equal(t, entities.MaintenanceStatusExpired, expired.Status)
		assert.Equal(t, m.ContractNumber, expired.ContractNumber)

		_, err = uc.UpdateMaintenanceContractStatus(ctx, m.ID, entities.MaintenanceStatusActive)
		assert.ErrorIs(t, err, ErrValidation)

		_, err = uc.UpdateMaintenanceContractStatus(ctx, "man-missing", entities.MaintenanceStatusCanceled)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("numbers continue", func(t *testing.T) {
		next, err := uc.CreateMaintenanceContract(ctx, CreateMaintenanceContractInput{ClientID: client.ID, StartDate: start, EndDate: start})
		require.NoError(t, err)
		assert.Equal(t, "CT-MAN-002", next.ContractNumber)

		list, err := uc.ListMaintenanceContracts(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, next.ID, list[0].ID)

		got, err := uc.GetMaintenanceContract(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.MaintenanceStatusExpired, got.Status)
	})
}

func TestMaintenanceUseCase_FailedWriteReleasesNumber(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	f := newFixture(t)
	client := f.legalEntity(t, "Tech Solutions")
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	in := CreateMaintenanceContractInput{ClientID: client.ID, StartDate: start, EndDate: start.AddDate(1, 0, 0)}

	repo := mock_interfaces.NewMockIMaintenanceContractRepository(ctrl)
	gomock.InOrder(
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.MaintenanceContract{}, errors.New("mirror down")),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.MaintenanceContract) (entities.MaintenanceContract, error) {
				return m, nil
			}),
	)
	uc := NewMaintenanceUseCase(repo, f.store.Clients(), f.store, f.seq, nil)

	_, err := uc.CreateMaintenanceContract(ctx, in)
	require.EqualError(t, err, "mirror down")

	m, err := uc.CreateMaintenanceContract(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "CT-MAN-001", m.ContractNumber)
}
