package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"fieldservice/internal/adapter/persistence/memory"
	"fieldservice/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	mu      sync.Mutex
	tables  map[string]map[string]map[string]types.AttributeValue
	putErr  error
	created []string
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return nil, f.putErr
	}
	name := aws.ToString(in.TableName)
	if f.tables[name] == nil {
		f.tables[name] = map[string]map[string]types.AttributeValue{}
	}
	id := in.Item["id"].(*types.AttributeValueMemberS).Value
	f.tables[name][id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	delete(f.tables[aws.ToString(in.TableName)], id)
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	table, ok := f.tables[aws.ToString(in.TableName)]
	if !ok {
		return nil, &types.ResourceNotFoundException{Message: aws.String("no table")}
	}
	out := &dynamodb.ScanOutput{}
	for _, it := range table {
		out.Items = append(out.Items, it)
	}
	return out, nil
}

func (f *fakeDynamo) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := aws.ToString(in.TableName)
	if _, ok := f.tables[name]; !ok {
		return nil, &types.ResourceNotFoundException{Message: aws.String("no table")}
	}
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{
		TableName:   in.TableName,
		TableStatus: types.TableStatusActive,
	}}, nil
}

func (f *fakeDynamo) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := aws.ToString(in.TableName)
	f.tables[name] = map[string]map[string]types.AttributeValue{}
	f.created = append(f.created, name)
	return &dynamodb.CreateTableOutput{}, nil
}

func TestDocumentDynamoMirror(t *testing.T) {
	ctx := context.Background()

	t.Run("writes through and hydrates a fresh store in the same order", func(t *testing.T) {
		ddb := newFakeDynamo()
		mirror := NewDocumentDynamoMirror(ddb, "test_")
		store := memory.New(memory.WithMirror(mirror))

		for _, id := range []string{"p-1", "p-2", "p-3"} {
			_, err := store.Products().Create(ctx, entities.Product{
				ID:           id,
				Name:         "Produto " + id,
				CostPrice:    decimal.RequireFromString("10.50"),
				SellingPrice: decimal.RequireFromString("19.90"),
			})
			require.NoError(t, err)
		}
		require.Len(t, ddb.tables["test_products"], 3)

		restored := memory.New()
		require.NoError(t, restored.Hydrate(ctx, mirror))

		list, err := restored.Products().List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, []string{"p-3", "p-2", "p-1"}, []string{list[0].ID, list[1].ID, list[2].ID})
		assert.True(t, list[0].SellingPrice.Equal(decimal.RequireFromString("19.90")))
	})

	t.Run("failed put leaves the store untouched", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.putErr = errors.New("throttled")
		store := memory.New(memory.WithMirror(NewDocumentDynamoMirror(ddb, "")))

		_, err := store.Products().Create(ctx, entities.Product{ID: "p-1", Name: "x"})
		require.Error(t, err)

		list, err := store.Products().List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("deleted secrets do not come back", func(t *testing.T) {
		ddb := newFakeDynamo()
		mirror := NewDocumentDynamoMirror(ddb, "")
		store := memory.New(memory.WithMirror(mirror))

		require.NoError(t, store.Credentials().SetSecret(ctx, "tecnico", "hash"))
		require.Len(t, ddb.tables["fieldservice_credentials"], 1)
		require.NoError(t, store.Credentials().DeleteSecret(ctx, "tecnico"))
		assert.Empty(t, ddb.tables["fieldservice_credentials"])

		restored := memory.New()
		require.NoError(t, restored.Hydrate(ctx, mirror))
		_, found, err := restored.Credentials().GetSecret(ctx, "tecnico")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("missing tables load as empty", func(t *testing.T) {
		mirror := NewDocumentDynamoMirror(newFakeDynamo(), "")
		calls := 0
		err := mirror.Load(ctx, memory.CollectionInvoices, func(int64, []byte) error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Zero(t, calls)
	})

	t.Run("ensure tables creates only what is missing", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.tables["fieldservice_clients"] = map[string]map[string]types.AttributeValue{}
		mirror := NewDocumentDynamoMirror(ddb, "")

		err := mirror.EnsureTables(ctx, []string{memory.CollectionClients, memory.CollectionInvoices}, time.Second)
		require.NoError(t, err)
		assert.Equal(t, []string{"fieldservice_invoices"}, ddb.created)
	})
}
