package memory

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"fieldservice/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	seq     int64
	payload []byte
}

// recordingMirror keeps every flushed record and doubles as a Loader.
type recordingMirror struct {
	mu      sync.Mutex
	fail    error
	records map[string]map[string]record
}

func newRecordingMirror() *recordingMirror {
	return &recordingMirror{records: map[string]map[string]record{}}
}

func (m *recordingMirror) Put(_ context.Context, collection, id string, seq int64, v any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if m.records[collection] == nil {
		m.records[collection] = map[string]record{}
	}
	m.records[collection][id] = record{seq: seq, payload: payload}
	return nil
}

func (m *recordingMirror) Delete(_ context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	delete(m.records[collection], id)
	return nil
}

func (m *recordingMirror) Load(_ context.Context, collection string, fn func(seq int64, payload []byte) error) error {
	m.mu.Lock()
	recs := make([]record, 0, len(m.records[collection]))
	for _, r := range m.records[collection] {
		recs = append(recs, r)
	}
	m.mu.Unlock()
	// Oldest last, unlike the store's own order.
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq > recs[j].seq })
	for _, r := range recs {
		if err := fn(r.seq, r.payload); err != nil {
			return err
		}
	}
	return nil
}

func TestCollection_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s := New()
	clients := s.Clients()

	for _, id := range []string{"cli-1", "cli-2", "cli-3"} {
		_, err := clients.Create(ctx, entities.Client{ID: id})
		require.NoError(t, err)
	}
	list, err := clients.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "cli-3", list[0].ID)
	assert.Equal(t, "cli-1", list[2].ID)
	assert.Equal(t, 3, s.clients.len())

	_, err = clients.Create(ctx, entities.Client{ID: "cli-2"})
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 3, s.clients.len())
}

func TestCollection_ReadsAreSnapshots(t *testing.T) {
	ctx := context.Background()
	s := New()
	quotes := s.Quotes()

	_, err := quotes.Create(ctx, entities.Quote{ID: "qt-1", Items: []entities.LineItem{{ID: "item-1", Description: "A"}}})
	require.NoError(t, err)

	got, err := quotes.GetByID(ctx, "qt-1")
	require.NoError(t, err)
	got.Items[0].Description = "mutated"

	again, err := quotes.GetByID(ctx, "qt-1")
	require.NoError(t, err)
	assert.Equal(t, "A", again.Items[0].Description)

	missing, err := quotes.GetByID(ctx, "qt-x")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestCollection_UpdateKeepsPosition(t *testing.T) {
	ctx := context.Background()
	s := New()
	orders := s.ServiceOrders()
	for _, id := range []string{"os-1", "os-2"} {
		_, err := orders.Create(ctx, entities.ServiceOrder{ID: id})
		require.NoError(t, err)
	}

	found, err := orders.Update(ctx, entities.ServiceOrder{ID: "os-1", Notes: "x"})
	require.NoError(t, err)
	assert.True(t, found)
	found, err = orders.Update(ctx, entities.ServiceOrder{ID: "os-9"})
	require.NoError(t, err)
	assert.False(t, found)

	list, err := orders.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"os-2", "os-1"}, []string{list[0].ID, list[1].ID})
	assert.Equal(t, "x", list[1].Notes)
}

func TestStore_MirrorFailureAbortsWrite(t *testing.T) {
	ctx := context.Background()
	mirror := newRecordingMirror()
	s := New(WithMirror(mirror))
	invoices := s.Invoices()

	_, err := invoices.Create(ctx, entities.Invoice{ID: "inv-1", PaymentStatus: entities.InvoicePaymentStatusPending})
	require.NoError(t, err)

	mirror.fail = errors.New("throttled")
	_, err = invoices.Create(ctx, entities.Invoice{ID: "inv-2"})
	assert.EqualError(t, err, "throttled")
	_, err = invoices.Update(ctx, entities.Invoice{ID: "inv-1", PaymentStatus: entities.InvoicePaymentStatusPaid})
	assert.EqualError(t, err, "throttled")

	list, err := invoices.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entities.InvoicePaymentStatusPending, list[0].PaymentStatus)
}

func TestStore_Hydrate(t *testing.T) {
	ctx := context.Background()
	mirror := newRecordingMirror()
	first := New(WithMirror(mirror))

	for _, id := range []string{"cli-1", "cli-2"} {
		_, err := first.Clients().Create(ctx, entities.Client{ID: id})
		require.NoError(t, err)
	}
	require.NoError(t, first.Credentials().SetSecret(ctx, "administrador", "hash-1"))
	require.NoError(t, first.Credentials().SetSecret(ctx, "administrador", "hash-2"))
	_, err := first.Quotes().Create(ctx, entities.Quote{ID: "qt-1", QuoteNumber: "ORC-0001"})
	require.NoError(t, err)

	second := New(WithMirror(mirror))
	require.NoError(t, second.Hydrate(ctx, mirror))

	clients, err := second.Clients().List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "cli-2", clients[0].ID)

	hash, found, err := second.Credentials().GetSecret(ctx, "administrador")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "hash-2", hash)

	q, err := second.Quotes().GetByID(ctx, "qt-1")
	require.NoError(t, err)
	assert.Equal(t, "ORC-0001", q.QuoteNumber)

	// Sequence numbers continue after hydration.
	_, err = second.Clients().Create(ctx, entities.Client{ID: "cli-3"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), mirror.records[CollectionClients]["cli-3"].seq)
}

func TestStore_SerializeHonoursCancellation(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := s.Serialize(ctx, func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestStore_SerializeIsExclusive(t *testing.T) {
	s := New()
	ctx := context.Background()
	var (
		wg      sync.WaitGroup
		inside  int
		maxSeen int
		mu      sync.Mutex
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Serialize(ctx, func(context.Context) error {
				mu.Lock()
				inside++
				if inside > maxSeen {
					maxSeen = inside
				}
				mu.Unlock()

				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxSeen)
}

func TestCredentialStore_DeleteSecret(t *testing.T) {
	ctx := context.Background()
	mirror := newRecordingMirror()
	creds := New(WithMirror(mirror)).Credentials()

	require.NoError(t, creds.SetSecret(ctx, "tecnico", "hash-1"))
	require.NoError(t, creds.DeleteSecret(ctx, "tecnico"))

	_, found, err := creds.GetSecret(ctx, "tecnico")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, mirror.records[CollectionCredentials])

	require.NoError(t, creds.DeleteSecret(ctx, "nobody"))

	require.NoError(t, creds.SetSecret(ctx, "tecnico", "hash-2"))
	mirror.fail = errors.New("throttled")
	assert.EqualError(t, creds.DeleteSecret(ctx, "tecnico"), "throttled")
	hash, found, err := creds.GetSecret(ctx, "tecnico")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "hash-2", hash)
}

func TestStore_HydrateKeepsDateOrder(t *testing.T) {
	ctx := context.Background()
	mirror := newRecordingMirror()
	first := New(WithMirror(mirror))

	july := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	august := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	_, err := first.ServiceOrders().Create(ctx, entities.ServiceOrder{ID: "os-aug", ScheduledDate: august})
	require.NoError(t, err)
	_, err = first.ServiceOrders().Create(ctx, entities.ServiceOrder{ID: "os-jul", ScheduledDate: july})
	require.NoError(t, err)
	require.NoError(t, first.ServiceOrders().Reorder(ctx, entities.ScheduledLater))
	_, err = first.Quotes().Create(ctx, entities.Quote{ID: "qt-aug", QuoteDate: august})
	require.NoError(t, err)
	_, err = first.Quotes().Create(ctx, entities.Quote{ID: "qt-jul", QuoteDate: july})
	require.NoError(t, err)
	require.NoError(t, first.Quotes().Reorder(ctx, entities.QuotedLater))

	second := New()
	require.NoError(t, second.Hydrate(ctx, mirror))

	orders, err := second.ServiceOrders().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"os-aug", "os-jul"}, []string{orders[0].ID, orders[1].ID})
	quotes, err := second.Quotes().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"qt-aug", "qt-jul"}, []string{quotes[0].ID, quotes[1].ID})
}
