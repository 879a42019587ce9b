package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"

	"product-catalog-api/internal/models"
)

// Item is a shorthand for a DynamoDB item.
type Item = map[string]types.AttributeValue

// DynamoAPI captures the DynamoDB operations the store uses. The SDK
// client satisfies it; tests substitute a stub.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoStore is a RecordStore backed by a DynamoDB table keyed by
// productId.
type DynamoStore struct {
	client DynamoAPI
	table  string
	logger *logrus.Logger
}

// NewDynamoStore builds a store on the default AWS credential chain.
func NewDynamoStore(ctx context.Context, table, region string, logger *logrus.Logger) (*DynamoStore, error) {
	cfg, err := loadAWSConfig(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return NewDynamoStoreWithClient(dynamodb.NewFromConfig(cfg), table, logger), nil
}

// NewDynamoStoreWithClient builds a store around an existing client.
func NewDynamoStoreWithClient(client DynamoAPI, table string, logger *logrus.Logger) *DynamoStore {
	return &DynamoStore{
		client: client,
		table:  table,
		logger: logger,
	}
}

// loadAWSConfig loads the default AWS configuration for the given region
// using the standard environment/credentials chain.
func loadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	if region == "" {
		return awsconfig.LoadDefaultConfig(ctx)
	}
	return awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
}

// keyFor renders the primary key item for id.
func (d *DynamoStore) keyFor(id string) Item {
	return Item{"productId": &types.AttributeValueMemberS{Value: id}}
}

// Put implements RecordStore.Put
func (d *DynamoStore) Put(ctx context.Context, product *models.Product) error {
	if product == nil || product.ProductID == "" {
		return NewStoreError("Put", d.table, "", ErrInvalidID)
	}

	item, err := attributevalue.MarshalMap(product)
	if err != nil {
		return NewStoreError("Put", d.table, product.ProductID, err)
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	})
	if err != nil {
		d.logAWSError("Put", product.ProductID, err)
		return NewStoreError("Put", d.table, product.ProductID, err)
	}

	return nil
}

// Get implements RecordStore.Get
func (d *DynamoStore) Get(ctx context.Context, id string) (*models.Product, error) {
	if id == "" {
		return nil, NewStoreError("Get", d.table, id, ErrInvalidID)
	}

	out, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.table),
		Key:       d.keyFor(id),
	})
	if err != nil {
		d.logAWSError("Get", id, err)
		return nil, NewStoreError("Get", d.table, id, err)
	}

	// An empty item is how DynamoDB reports a missing key
	if len(out.Item) == 0 {
		return nil, NewStoreError("Get", d.table, id, ErrNotFound)
	}

	product := &models.Product{}
	if err := attributevalue.UnmarshalMap(out.Item, product); err != nil {
		return nil, NewStoreError("Get", d.table, id, err)
	}

	return product, nil
}

// Delete implements RecordStore.Delete
func (d *DynamoStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return NewStoreError("Delete", d.table, id, ErrInvalidID)
	}

	_, err := d.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.table),
		Key:       d.keyFor(id),
	})
	if err != nil {
		d.logAWSError("Delete", id, err)
		return NewStoreError("Delete", d.table, id, err)
	}

	return nil
}

// ScanAll implements RecordStore.ScanAll. The scan follows
// LastEvaluatedKey internally so the whole table comes back in one call;
// no cursor is exposed to callers.
func (d *DynamoStore) ScanAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0)

	var startKey Item
	for {
		out, err := d.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(d.table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			d.logAWSError("ScanAll", "", err)
			return nil, NewStoreError("ScanAll", d.table, "", err)
		}

		var page []models.Product
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, NewStoreError("ScanAll", d.table, "", err)
		}
		products = append(products, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return products, nil
}

// Close implements RecordStore.Close
func (d *DynamoStore) Close() error {
	return nil
}

// logAWSError records a failed call with the service error code when one
// is present. Failures are not retried here.
func (d *DynamoStore) logAWSError(op, id string, err error) {
	fields := logrus.Fields{
		"operation": op,
		"table":     d.table,
		"id":        id,
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		fields["aws_error_code"] = apiErr.ErrorCode()
	}
	d.logger.WithFields(fields).WithError(err).Error("DynamoDB call failed")
}
