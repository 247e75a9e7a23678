package memory

import (
	"context"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
)

type ClientRepository struct{ c *collection[entities.Client] }

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func (r *ClientRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	if err := r.c.prepend(ctx, c); err != nil {
		return entities.Client{}, err
	}
	return c.Clone(), nil
}

func (r *ClientRepository) GetByID(_ context.Context, id string) (entities.Client, error) {
	c, _ := r.c.get(id)
	return c, nil
}

func (r *ClientRepository) List(_ context.Context) ([]entities.Client, error) {
	return r.c.list(), nil
}

type UserRepository struct{ c *collection[entities.User] }

var _ interfaces.IUserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	if err := r.c.prepend(ctx, u); err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (entities.User, error) {
	u, _ := r.c.get(id)
	return u, nil
}

// GetByUsername matches exactly; collision checks that need case folding go
// through List.
func (r *UserRepository) GetByUsername(_ context.Context, username string) (entities.User, error) {
	u, _ := r.c.find(func(u entities.User) bool { return u.Username != "" && u.Username == username })
	return u, nil
}

func (r *UserRepository) List(_ context.Context) ([]entities.User, error) {
	return r.c.list(), nil
}

type CredentialStore struct{ c *collection[credential] }

var _ interfaces.ICredentialStore = (*CredentialStore)(nil)

func (s *CredentialStore) SetSecret(ctx context.Context, username, secretHash string) error {
	cred := credential{Username: username, SecretHash: secretHash}
	found, err := s.c.put(ctx, cred)
	if err != nil || found {
		return err
	}
	return s.c.prepend(ctx, cred)
}

func (s *CredentialStore) DeleteSecret(ctx context.Context, username string) error {
	return s.c.remove(ctx, username)
}

func (s *CredentialStore) GetSecret(_ context.Context, username string) (string, bool, error) {
	cred, ok := s.c.get(username)
	if !ok {
		return "", false, nil
	}
	return cred.SecretHash, true, nil
}

type ProductRepository struct{ c *collection[entities.Product] }

var _ interfaces.IProductRepository = (*ProductRepository)(nil)

func (r *ProductRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	if err := r.c.prepend(ctx, p); err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductRepository) GetByID(_ context.Context, id string) (entities.Product, error) {
	p, _ := r.c.get(id)
	return p, nil
}

func (r *ProductRepository) List(_ context.Context) ([]entities.Product, error) {
	return r.c.list(), nil
}

type ServiceOrderRepository struct {
	c *collection[entities.ServiceOrder]
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderRepository)(nil)

func (r *ServiceOrderRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	if err := r.c.prepend(ctx, o); err != nil {
		return entities.ServiceOrder{}, err
	}
	return o.Clone(), nil
}

func (r *ServiceOrderRepository) GetByID(_ context.Context, id string) (entities.ServiceOrder, error) {
	o, _ := r.c.get(id)
	return o, nil
}

func (r *ServiceOrderRepository) Update(ctx context.Context, o entities.ServiceOrder) (bool, error) {
	return r.c.put(ctx, o)
}

func (r *ServiceOrderRepository) List(_ context.Context) ([]entities.ServiceOrder, error) {
	return r.c.list(), nil
}

func (r *ServiceOrderRepository) Reorder(_ context.Context, less func(a, b entities.ServiceOrder) bool) error {
	r.c.reorder(less)
	return nil
}

type QuoteRepository struct{ c *collection[entities.Quote] }

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func (r *QuoteRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if err := r.c.prepend(ctx, q); err != nil {
		return entities.Quote{}, err
	}
	return q.Clone(), nil
}

func (r *QuoteRepository) GetByID(_ context.Context, id string) (entities.Quote, error) {
	q, _ := r.c.get(id)
	return q, nil
}

func (r *QuoteRepository) Update(ctx context.Context, q entities.Quote) (bool, error) {
	return r.c.put(ctx, q)
}

func (r *QuoteRepository) List(_ context.Context) ([]entities.Quote, error) {
	return r.c.list(), nil
}

func (r *QuoteRepository) Reorder(_ context.Context, less func(a, b entities.Quote) bool) error {
	r.c.reorder(less)
	return nil
}

type MaintenanceContractRepository struct {
	c *collection[entities.MaintenanceContract]
}

var _ interfaces.IMaintenanceContractRepository = (*MaintenanceContractRepository)(nil)

func (r *MaintenanceContractRepository) Create(ctx context.Context, m entities.MaintenanceContract) (entities.MaintenanceContract, error) {
	if err := r.c.prepend(ctx, m); err != nil {
		return entities.MaintenanceContract{}, err
	}
	return m, nil
}

func (r *MaintenanceContractRepository) GetByID(_ context.Context, id string) (entities.MaintenanceContract, error) {
	m, _ := r.c.get(id)
	return m, nil
}

func (r *MaintenanceContractRepository) Update(ctx context.Context, m entities.MaintenanceContract) (bool, error) {
	return r.c.put(ctx, m)
}

func (r *MaintenanceContractRepository) List(_ context.Context) ([]entities.MaintenanceContract, error) {
	return r.c.list(), nil
}

type InvoiceRepository struct{ c *collection[entities.Invoice] }

var _ interfaces.IInvoiceRepository = (*InvoiceRepository)(nil)

func (r *InvoiceRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	if err := r.c.prepend(ctx, inv); err != nil {
		return entities.Invoice{}, err
	}
	return inv.Clone(), nil
}

func (r *InvoiceRepository) GetByID(_ context.Context, id string) (entities.Invoice, error) {
	inv, _ := r.c.get(id)
	return inv, nil
}

func (r *InvoiceRepository) Update(ctx context.Context, inv entities.Invoice) (bool, error) {
	return r.c.put(ctx, inv)
}

func (r *InvoiceRepository) List(_ context.Context) ([]entities.Invoice, error) {
	return r.c.list(), nil
}
