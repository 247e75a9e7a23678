package interfaces

import (
	"context"
	"fieldservice/internal/domain/entities"
)

// Repositories over the Entity Store.
//
// Conventions shared by every repository:
//   - GetByID returns the zero value (ID == "") when the id is absent.
//   - Create prepends, so List is newest-first until a Reorder.
//   - Update overwrites by id and returns found=false when the id is absent.
//   - Returned records are snapshots; mutating them never touches the store.

//go:generate mockgen -source=repository_interfaces.go -destination=mocks/repository_interfaces_mock.go -package=mocks
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
}

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByUsername(ctx context.Context, username string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
}

// ICredentialStore is the secret map (username -> password hash). It is kept
// apart from IUserRepository so user records never carry secrets.
type ICredentialStore interface {
	SetSecret(ctx context.Context, username, secretHash string) error
	GetSecret(ctx context.Context, username string) (secretHash string, found bool, err error)
	DeleteSecret(ctx context.Context, username string) error
}

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
}

type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (found bool, err error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	Reorder(ctx context.Context, less func(a, b entities.ServiceOrder) bool) error
}

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (found bool, err error)
	List(ctx context.Context) ([]entities.Quote, error)
	Reorder(ctx context.Context, less func(a, b entities.Quote) bool) error
}

type IMaintenanceContractRepository interface {
	Create(ctx context.Context, m entities.MaintenanceContract) (entities.MaintenanceContract, error)
	GetByID(ctx context.Context, id string) (entities.MaintenanceContract, error)
	Update(ctx context.Context, m entities.MaintenanceContract) (found bool, err error)
	List(ctx context.Context) ([]entities.MaintenanceContract, error)
}

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	Update(ctx context.Context, inv entities.Invoice) (found bool, err error)
	List(ctx context.Context) ([]entities.Invoice, error)
}

// IWriteSerializer runs fn with exclusive write access to the whole store.
// Read-then-write sequences (numbering, invoicing, status changes) must run
// inside it.
type IWriteSerializer interface {
	Serialize(ctx context.Context, fn func(ctx context.Context) error) error
}
