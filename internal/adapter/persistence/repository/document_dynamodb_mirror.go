package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fieldservice/internal/adapter/persistence/memory"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTablePrefix = "fieldservice_"

// DynamoAPI is the slice of the DynamoDB client the mirror needs.
type DynamoAPI interface {
	dynamodb.ScanAPIClient
	dynamodb.DescribeTableAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

type documentItem struct {
	ID        string `dynamodbav:"id"`
	Seq       int64  `dynamodbav:"seq"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DocumentDynamoMirror persists every Entity Store collection in its own
// DynamoDB table.
//
// Table requirements:
//   - name: <prefix><collection> (e.g. fieldservice_service_orders)
//   - PK: id (string)
//
// Records are stored as a JSON payload so decimal amounts and nested
// documents survive unchanged; seq keeps the store's insertion order.
type DocumentDynamoMirror struct {
	ddb    DynamoAPI
	prefix string
	now    func() time.Time
}

var (
	_ memory.Mirror = (*DocumentDynamoMirror)(nil)
	_ memory.Loader = (*DocumentDynamoMirror)(nil)
)

func NewDocumentDynamoMirror(ddb DynamoAPI, tablePrefix string) *DocumentDynamoMirror {
	if tablePrefix == "" {
		tablePrefix = defaultTablePrefix
	}
	return &DocumentDynamoMirror{ddb: ddb, prefix: tablePrefix, now: time.Now}
}

func (m *DocumentDynamoMirror) TableName(collection string) string {
	return m.prefix + collection
}

func (m *DocumentDynamoMirror) Put(ctx context.Context, collection, id string, seq int64, record any) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", collection, id, err)
	}
	av, err := attributevalue.MarshalMap(documentItem{
		ID:        id,
		Seq:       seq,
		Payload:   string(payload),
		UpdatedAt: m.now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = m.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(m.TableName(collection)),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", collection, id, err)
	}
	return nil
}

func (m *DocumentDynamoMirror) Delete(ctx context.Context, collection, id string) error {
	_, err := m.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(m.TableName(collection)),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

// Load scans the whole collection table; order is restored by the caller
// from seq.
func (m *DocumentDynamoMirror) Load(ctx context.Context, collection string, fn func(seq int64, payload []byte) error) error {
	p := dynamodb.NewScanPaginator(m.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(m.TableName(collection)),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			var rnf *types.ResourceNotFoundException
			if errors.As(err, &rnf) {
				return nil
			}
			return fmt.Errorf("scan %s: %w", collection, err)
		}
		var items []documentItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return err
		}
		for _, it := range items {
			if err := fn(it.Seq, []byte(it.Payload)); err != nil {
				return fmt.Errorf("decode %s/%s: %w", collection, it.ID, err)
			}
		}
	}
	return nil
}

// EnsureTables creates the missing collection tables (on-demand billing) and
// waits until they are active. Intended for local DynamoDB.
func (m *DocumentDynamoMirror) EnsureTables(ctx context.Context, collections []string, maxWait time.Duration) error {
	for _, c := range collections {
		name := m.TableName(c)
		_, err := m.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
		if err == nil {
			continue
		}
		var rnf *types.ResourceNotFoundException
		if !errors.As(err, &rnf) {
			return fmt.Errorf("describe table %s: %w", name, err)
		}

		_, err = m.ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
			TableName:   aws.String(name),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
		})
		if err != nil {
			var inUse *types.ResourceInUseException
			if !errors.As(err, &inUse) {
				return fmt.Errorf("create table %s: %w", name, err)
			}
		}
		w := dynamodb.NewTableExistsWaiter(m.ddb)
		if err := w.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)}, maxWait); err != nil {
			return fmt.Errorf("wait table %s: %w", name, err)
		}
	}
	return nil
}
