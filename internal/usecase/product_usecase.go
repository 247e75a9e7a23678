package usecase

import (
	"context"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
	"strings"

	"go.uber.org/zap"
)

//go:generate mockgen -source=product_usecase.go -destination=../adapter/http/handlers/mocks/product_usecase_mock.go -package=mocks
type IProductUseCase interface {
	CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	ListProducts(ctx context.Context) ([]entities.Product, error)
	GetProduct(ctx context.Context, id string) (entities.Product, error)
}

type ProductUseCase struct {
	repo   interfaces.IProductRepository
	writer interfaces.IWriteSerializer
	logger *zap.Logger
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository, writer interfaces.IWriteSerializer, logger *zap.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, writer: writer, logger: orNop(logger)}
}

func (u *ProductUseCase) CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	if err := p.Validate(); err != nil {
		return entities.Product{}, err
	}
	p.ID = newID("prod")

	var created entities.Product
	err := u.writer.Serialize(ctx, func(ctx context.Context) error {
		var err error
		created, err = u.repo.Create(ctx, p)
		return err
	})
	if err != nil {
		u.logger.Error("[product][usecase] create failed", zap.Error(err))
		return entities.Product{}, err
	}
	u.logger.Info("[product][usecase] created", zap.String("product_id", created.ID), zap.String("sku", created.SKU))
	return created, nil
}

func (u *ProductUseCase) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

func (u *ProductUseCase) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrNotFound
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrNotFound
	}
	return p, nil
}
