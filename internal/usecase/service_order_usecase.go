package usecase

import (
	"context"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/domain/numbering"
	"fieldservice/internal/usecase/interfaces"
	"strings"
	"time"

	"go.uber.org/zap"
)

// CreateServiceOrderInput carries the caller-owned fields of a new order;
// id, number, status and client name are assigned by the engine.
type CreateServiceOrderInput struct {
	ClientID           string
	RequestDescription string
	ServiceType        string
	Location           string
	ScheduledDate      time.Time
	Notes              string
	Technician         string
}

//go:generate mockgen -source=service_order_usecase.go -destination=../adapter/http/handlers/mocks/service_order_usecase_mock.go -package=mocks
type IServiceOrderUseCase interface {
	CreateServiceOrder(ctx context.Context, in CreateServiceOrderInput) (entities.ServiceOrder, error)
	UpdateServiceOrder(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	ListServiceOrders(ctx context.Context) ([]entities.ServiceOrder, error)
	GetServiceOrder(ctx context.Context, id string) (entities.ServiceOrder, error)
	SuggestServiceDetails(ctx context.Context, description string) (*entities.ServiceSuggestion, error)
}

type ServiceOrderUseCase struct {
	repo    interfaces.IServiceOrderRepository
	clients interfaces.IClientRepository
	writer  interfaces.IWriteSerializer
	seq     *numbering.Sequence
	parser  interfaces.IServiceRequestParser
	logger  *zap.Logger
	now     func() time.Time
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	repo interfaces.IServiceOrderRepository,
	clients interfaces.IClientRepository,
	writer interfaces.IWriteSerializer,
	seq *numbering.Sequence,
	parser interfaces.IServiceRequestParser,
	logger *zap.Logger,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{
		repo:    repo,
		clients: clients,
		writer:  writer,
		seq:     seq,
		parser:  parser,
		logger:  orNop(logger),
		now:     time.Now,
	}
}

func (u *ServiceOrderUseCase) CreateServiceOrder(ctx context.Context, in CreateServiceOrderInput) (entities.ServiceOrder, error) {
	u.logger.Info("[service-order][usecase] create start", zap.String("client_id", in.ClientID))

	var created entities.ServiceOrder
	err := u.writer.Serialize(ctx, func(ctx context.Context) error {
		clientName, err := resolveClientName(ctx, u.clients, in.ClientID)
		if err != nil {
			return err
		}

		number := u.seq.Next(numbering.ServiceOrders)
		o := entities.ServiceOrder{
			ID:                 newID("os"),
			ServiceOrderNumber: number,
			ClientID:           strings.TrimSpace(in.ClientID),
			ClientName:         clientName,
			RequestDescription: in.RequestDescription,
			ServiceType:        in.ServiceType,
			Location:           in.Location,
			ScheduledDate:      in.ScheduledDate,
			Notes:              in.Notes,
			Technician:         in.Technician,
			Status:             entities.ServiceOrderStatusPending,
		}
		created, err = u.repo.Create(ctx, o)
		if err != nil {
			u.seq.Rollback(numbering.ServiceOrders, number)
		}
		return err
	})
	if err != nil {
		u.logger.Warn("[service-order][usecase] create failed", zap.String("client_id", in.ClientID), zap.Error(err))
		return entities.ServiceOrder{}, err
	}
	u.logger.Info("[service-order][usecase] create success",
		zap.String("service_order_id", created.ID),
		zap.String("number", created.ServiceOrderNumber))
	return created, nil
}

// UpdateServiceOrder replaces the stored order. The number and invoice
// back-reference are owned by the engine and always taken from the stored
// record; the client name is re-derived; status changes must follow the
// lifecycle table.
func (u *ServiceOrderUseCase) UpdateServiceOrder(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	o.ID = strings.TrimSpace(o.ID)
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrNotFound
	}

	var updated entities.ServiceOrder
	err := u.writer.Serialize(ctx, func(ctx context.Context) error {
		current, err := u.repo.GetByID(ctx, o.ID)
		if err != nil {
			return err
		}
		if current.ID == "" {
			return ErrNotFound
		}

		next := o.Clone()
		if next.Status == "" {
			next.Status = current.Status
		}
		if err := next.Validate(); err != nil {
			return err
		}
		if !current.Status.CanTransitionTo(next.Status) {
			return invalidTransition(current.Status, next.Status)
		}

		next.ClientName, err = currentClientName(ctx, u.clients, next.ClientID)
		if err != nil {
			return err
		}
		next.ClientID = strings.TrimSpace(next.ClientID)
		next.ServiceOrderNumber = current.ServiceOrderNumber
		next.InvoiceID = current.InvoiceID
		if next.Status == entities.ServiceOrderStatusCompleted && next.CompletedAt == nil {
			if current.CompletedAt != nil {
				next.CompletedAt = current.CompletedAt
			} else {
				stamp := u.now().UTC()
				next.CompletedAt = &stamp
			}
		}

		if _, err := u.repo.Update(ctx, next); err != nil {
			return err
		}
		updated = next
		return u.repo.Reorder(ctx, entities.ScheduledLater)
	})
	if err != nil {
		u.logger.Warn("[service-order][usecase] update failed", zap.String("service_order_id", o.ID), zap.Error(err))
		return entities.ServiceOrder{}, err
	}
	u.logger.Info("[service-order][usecase] updated",
		zap.String("service_order_id", updated.ID),
		zap.String("status", string(updated.Status)))
	return updated, nil
}

func (u *ServiceOrderUseCase) ListServiceOrders(ctx context.Context) ([]entities.ServiceOrder, error) {
	return u.repo.List(ctx)
}

func (u *ServiceOrderUseCase) GetServiceOrder(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrNotFound
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrNotFound
	}
	return o, nil
}

// SuggestServiceDetails asks the optional parser for a service type and notes.
// Parser failures are logged and reported as "no suggestion".
func (u *ServiceOrderUseCase) SuggestServiceDetails(ctx context.Context, description string) (*entities.ServiceSuggestion, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, invalidField("requestDescription is required")
	}
	if u.parser == nil {
		return nil, nil
	}
	s, err := u.parser.Parse(ctx, description)
	if err != nil {
		u.logger.Warn("[service-order][usecase] request parser failed", zap.Error(err))
		return nil, nil
	}
	return s, nil
}
