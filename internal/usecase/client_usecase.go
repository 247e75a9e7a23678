package usecase

import (
	"context"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
	"strings"

	"go.uber.org/zap"
)

//go:generate mockgen -source=client_usecase.go -destination=../adapter/http/handlers/mocks/client_usecase_mock.go -package=mocks
type IClientUseCase interface {
	CreateClient(ctx context.Context, c entities.Client) (entities.Client, error)
	ListClients(ctx context.Context) ([]entities.Client, error)
	GetClient(ctx context.Context, id string) (entities.Client, error)
}

type ClientUseCase struct {
	repo   interfaces.IClientRepository
	writer interfaces.IWriteSerializer
	logger *zap.Logger
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, writer interfaces.IWriteSerializer, logger *zap.Logger) *ClientUseCase {
	return &ClientUseCase{repo: repo, writer: writer, logger: orNop(logger)}
}

func (u *ClientUseCase) CreateClient(ctx context.Context, c entities.Client) (entities.Client, error) {
	if err := c.Validate(); err != nil {
		return entities.Client{}, err
	}
	c.ID = newID("cli")

	var created entities.Client
	err := u.writer.Serialize(ctx, func(ctx context.Context) error {
		var err error
		created, err = u.repo.Create(ctx, c)
		return err
	})
	if err != nil {
		u.logger.Error("[client][usecase] create failed", zap.Error(err))
		return entities.Client{}, err
	}
	u.logger.Info("[client][usecase] created", zap.String("client_id", created.ID), zap.String("kind", string(created.Kind)))
	return created, nil
}

func (u *ClientUseCase) ListClients(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}

func (u *ClientUseCase) GetClient(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrClientNotFound
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}
