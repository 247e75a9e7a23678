package usecase

import (
	"context"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/domain/numbering"
	"fieldservice/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CreateMaintenanceContractInput struct {
	ClientID     string
	Type         string
	StartDate    time.Time
	EndDate      time.Time
	MonthlyValue decimal.Decimal
	Scope        string
}

//go:generate mockgen -source=maintenance_usecase.go -destination=../adapter/http/handlers/mocks/maintenance_usecase_mock.go -package=mocks
type IMaintenanceUseCase interface {
	CreateMaintenanceContract(ctx context.Context, in CreateMaintenanceContractInput) (entities.MaintenanceContract, error)
	UpdateMaintenanceContractStatus(ctx context.Context, id string, status entities.MaintenanceStatus) (entities.MaintenanceContract, error)
	ListMaintenanceContracts(ctx context.Context) ([]entities.MaintenanceContract, error)
	GetMaintenanceContract(ctx context.Context, id string) (entities.MaintenanceContract, error)
}

type MaintenanceUseCase struct {
	repo    interfaces.IMaintenanceContractRepository
	clients interfaces.IClientRepository
	writer  interfaces.IWriteSerializer
	seq     *numbering.Sequence
	logger  *zap.Logger
}

var _ IMaintenanceUseCase = (*MaintenanceUseCase)(nil)

func NewMaintenanceUseCase(
	repo interfaces.IMaintenanceContractRepository,
	clients interfaces.IClientRepository,
	writer interfaces.IWriteSerializer,
	seq *numbering.Sequence,
	logger *zap.Logger,
) *MaintenanceUseCase {
	return &MaintenanceUseCase{repo: repo, clients: clients, writer: writer, seq: seq, logger: orNop(logger)}
}

func (u *MaintenanceUseCase) CreateMaintenanceContract(ctx context.Context, in CreateMaintenanceContractInput) (entities.MaintenanceContract, error) {
	m := entities.MaintenanceContract{
		ClientID:     strings.TrimSpace(in.ClientID),
		Type:         in.Type,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		MonthlyValue: in.MonthlyValue,
		Scope:        in.Scope,
		Status:       entities.MaintenanceStatusActive,
	}

	var created entities.MaintenanceContract
	err := u.writer.Serialize(ctx, func(ctx context.Context) error {
		var err error
		m.ClientName, err = resolveClientName(ctx, u.clients, m.ClientID)
		if err != nil {
			return err
		}
		if err := m.Validate(); err != nil {
			return err
		}

		m.ID = newID("man")
		m.ContractNumber = u.seq.Next(numbering.MaintenanceContracts)
		created, err = u.repo.Create(ctx, m)
		if err != nil {
			u.seq.Rollback(numbering.MaintenanceContracts, m.ContractNumber)
		}
		return err
	})
	if err != nil {
		u.logger.Warn("[maintenance][usecase] create failed", zap.String("client_id", in.ClientID), zap.Error(err))
		return entities.MaintenanceContract{}, err
	}
	u.logger.Info("[maintenance][usecase] create success",
		zap.String("contract_id", created.ID),
		zap.String("number", created.ContractNumber))
	return created, nil
}

func (u *MaintenanceUseCase) UpdateMaintenanceContractStatus(ctx context.Context, id string, status entities.MaintenanceStatus) (entities.MaintenanceContract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MaintenanceContract{}, ErrNotFound
	}
	if !status.Valid() {
		return entities.MaintenanceContract{}, invalidField("unknown maintenance contract status " + string(status))
	}

	var updated entities.MaintenanceContract
	err := u.writer.Serialize(ctx, func(ctx context.Context) error {
		current, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current.ID == "" {
			return ErrNotFound
		}
		if !current.Status.CanTransitionTo(status) {
			return invalidTransition(current.Status, status)
		}
		current.Status = status
		if _, err := u.repo.Update(ctx, current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return entities.MaintenanceContract{}, err
	}
	u.logger.Info("[maintenance][usecase] status updated", zap.String("contract_id", id), zap.String("status", string(status)))
	return updated, nil
}

func (u *MaintenanceUseCase) ListMaintenanceContracts(ctx context.Context) ([]entities.MaintenanceContract, error) {
	return u.repo.List(ctx)
}

func (u *MaintenanceUseCase) GetMaintenanceContract(ctx context.Context, id string) (entities.MaintenanceContract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MaintenanceContract{}, ErrNotFound
	}
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.MaintenanceContract{}, err
	}
	if m.ID == "" {
		return entities.MaintenanceContract{}, ErrNotFound
	}
	return m, nil
}
