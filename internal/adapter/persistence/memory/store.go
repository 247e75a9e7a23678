// Package memory is the Entity Store: in-memory keyed collections for every
// entity type, optionally mirrored to a durable medium.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
)

var ErrDuplicateID = errors.New("record id already exists")

// Collection names, also used as mirror table suffixes.
const (
	CollectionClients              = "clients"
	CollectionUsers                = "users"
	CollectionCredentials          = "credentials"
	CollectionProducts             = "products"
	CollectionServiceOrders        = "service_orders"
	CollectionQuotes               = "quotes"
	CollectionMaintenanceContracts = "maintenance_contracts"
	CollectionInvoices             = "invoices"
)

// Collections lists every collection in hydration order.
var Collections = []string{
	CollectionClients,
	CollectionUsers,
	CollectionCredentials,
	CollectionProducts,
	CollectionServiceOrders,
	CollectionQuotes,
	CollectionMaintenanceContracts,
	CollectionInvoices,
}

type credential struct {
	Username   string `json:"username"`
	SecretHash string `json:"secretHash"`
}

// Loader reads back what a Mirror persisted.
type Loader interface {
	Load(ctx context.Context, collection string, fn func(seq int64, payload []byte) error) error
}

type Store struct {
	writer sync.Mutex

	clients       *collection[entities.Client]
	users         *collection[entities.User]
	credentials   *collection[credential]
	products      *collection[entities.Product]
	serviceOrders *collection[entities.ServiceOrder]
	quotes        *collection[entities.Quote]
	contracts     *collection[entities.MaintenanceContract]
	invoices      *collection[entities.Invoice]
}

var _ interfaces.IWriteSerializer = (*Store)(nil)

type Option func(*Store)

// WithMirror flushes every write to m before it becomes visible in memory.
func WithMirror(m Mirror) Option {
	return func(s *Store) {
		s.clients.mirror = m
		s.users.mirror = m
		s.credentials.mirror = m
		s.products.mirror = m
		s.serviceOrders.mirror = m
		s.quotes.mirror = m
		s.contracts.mirror = m
		s.invoices.mirror = m
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		clients:       newCollection(CollectionClients, func(c entities.Client) string { return c.ID }, entities.Client.Clone),
		users:         newCollection(CollectionUsers, func(u entities.User) string { return u.ID }, nil),
		credentials:   newCollection(CollectionCredentials, func(c credential) string { return c.Username }, nil),
		products:      newCollection(CollectionProducts, func(p entities.Product) string { return p.ID }, nil),
		serviceOrders: newCollection(CollectionServiceOrders, func(o entities.ServiceOrder) string { return o.ID }, entities.ServiceOrder.Clone),
		quotes:        newCollection(CollectionQuotes, func(q entities.Quote) string { return q.ID }, entities.Quote.Clone),
		contracts:     newCollection(CollectionMaintenanceContracts, func(m entities.MaintenanceContract) string { return m.ID }, nil),
		invoices:      newCollection(CollectionInvoices, func(i entities.Invoice) string { return i.ID }, entities.Invoice.Clone),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Serialize gives fn exclusive write access across all collections. Reads are
// not blocked; they see each record either before or after a write.
func (s *Store) Serialize(ctx context.Context, fn func(ctx context.Context) error) error {
	s.writer.Lock()
	defer s.writer.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}

func (s *Store) Clients() *ClientRepository             { return &ClientRepository{c: s.clients} }
func (s *Store) Users() *UserRepository                 { return &UserRepository{c: s.users} }
func (s *Store) Credentials() *CredentialStore          { return &CredentialStore{c: s.credentials} }
func (s *Store) Products() *ProductRepository           { return &ProductRepository{c: s.products} }
func (s *Store) ServiceOrders() *ServiceOrderRepository { return &ServiceOrderRepository{c: s.serviceOrders} }
func (s *Store) Quotes() *QuoteRepository               { return &QuoteRepository{c: s.quotes} }
func (s *Store) MaintenanceContracts() *MaintenanceContractRepository {
	return &MaintenanceContractRepository{c: s.contracts}
}
func (s *Store) Invoices() *InvoiceRepository { return &InvoiceRepository{c: s.invoices} }

// Hydrate fills the store from a Loader, typically the durable mirror, before
// the engine starts serving. Collections come back newest-first; service
// orders and quotes are then re-sorted by date the way an update leaves them.
func (s *Store) Hydrate(ctx context.Context, l Loader) error {
	s.writer.Lock()
	defer s.writer.Unlock()

	steps := map[string]func(context.Context, Loader) error{
		CollectionClients:              func(ctx context.Context, l Loader) error { return hydrate(ctx, l, s.clients) },
		CollectionUsers:                func(ctx context.Context, l Loader) error { return hydrate(ctx, l, s.users) },
		CollectionCredentials:          func(ctx context.Context, l Loader) error { return hydrate(ctx, l, s.credentials) },
		CollectionProducts:             func(ctx context.Context, l Loader) error { return hydrate(ctx, l, s.products) },
		CollectionServiceOrders:        func(ctx context.Context, l Loader) error { return hydrate(ctx, l, s.serviceOrders) },
		CollectionQuotes:               func(ctx context.Context, l Loader) error { return hydrate(ctx, l, s.quotes) },
		CollectionMaintenanceContracts: func(ctx context.Context, l Loader) error { return hydrate(ctx, l, s.contracts) },
		CollectionInvoices:             func(ctx context.Context, l Loader) error { return hydrate(ctx, l, s.invoices) },
	}
	for _, name := range Collections {
		if err := steps[name](ctx, l); err != nil {
			return fmt.Errorf("hydrate %s: %w", name, err)
		}
	}
	s.serviceOrders.reorder(entities.ScheduledLater)
	s.quotes.reorder(entities.QuotedLater)
	return nil
}

func hydrate[T any](ctx context.Context, l Loader, c *collection[T]) error {
	err := l.Load(ctx, c.name, func(seq int64, payload []byte) error {
		var v T
		if err := json.Unmarshal(payload, &v); err != nil {
			return err
		}
		c.restore(seq, v)
		return nil
	})
	if err != nil {
		return err
	}
	c.sortBySeq()
	return nil
}
