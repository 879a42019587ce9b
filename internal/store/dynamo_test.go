package store

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

// fakeDynamoClient is an in-memory DynamoAPI double. A non-nil err is
// returned from every call; pageSize > 0 splits Scan output into pages.
type fakeDynamoClient struct {
	items     map[string]Item
	err       error
	pageSize  int
	scanCalls int
}

func newFakeDynamoClient() *fakeDynamoClient {
	return &fakeDynamoClient{items: make(map[string]Item)}
}

func itemID(item Item) string {
	if v, ok := item["productId"].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (f *fakeDynamoClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.items[itemID(params.Item)] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[itemID(params.Key)]}, nil
}

func (f *fakeDynamoClient) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	delete(f.items, itemID(params.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamoClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scanCalls++
	if f.err != nil {
		return nil, f.err
	}

	ids := make([]string, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	start := 0
	if len(params.ExclusiveStartKey) > 0 {
		last := itemID(params.ExclusiveStartKey)
		for i, id := range ids {
			if id == last {
				start = i + 1
				break
			}
		}
	}

	end := len(ids)
	if f.pageSize > 0 && start+f.pageSize < end {
		end = start + f.pageSize
	}

	out := &dynamodb.ScanOutput{}
	for _, id := range ids[start:end] {
		out.Items = append(out.Items, f.items[id])
	}
	if end < len(ids) {
		out.LastEvaluatedKey = Item{"productId": &types.AttributeValueMemberS{Value: ids[end-1]}}
	}
	return out, nil
}

// apiErr is a minimal fake satisfying smithy.APIError
type apiErr struct{ code string }

func (e apiErr) Error() string                 { return e.code }
func (e apiErr) ErrorCode() string             { return e.code }
func (e apiErr) ErrorMessage() string          { return e.code }
func (e apiErr) ErrorFault() smithy.ErrorFault { return smithy.FaultServer }

var _ smithy.APIError = apiErr{}

func TestDynamoStore_PutGet(t *testing.T) {
	client := newFakeDynamoClient()
	s := NewDynamoStoreWithClient(client, "products", testLogger())
	ctx := context.Background()

	product := testProduct("p-1")
	if err := s.Put(ctx, product); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	retrieved, err := s.Get(ctx, "p-1")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}

	if *retrieved != *product {
		t.Errorf("Retrieved product = %+v, want %+v", retrieved, product)
	}
}

func TestDynamoStore_GetNotFound(t *testing.T) {
	s := NewDynamoStoreWithClient(newFakeDynamoClient(), "products", testLogger())

	_, err := s.Get(context.Background(), "missing")
	if err == nil {
		t.Fatal("Expected Get() to fail for missing id")
	}
	if !IsNotFound(err) {
		t.Errorf("Expected NotFound error, got: %v", err)
	}
}

func TestDynamoStore_DeleteIdempotent(t *testing.T) {
	s := NewDynamoStoreWithClient(newFakeDynamoClient(), "products", testLogger())
	ctx := context.Background()

	if err := s.Put(ctx, testProduct("p-1")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	if err := s.Delete(ctx, "p-1"); err != nil {
		t.Errorf("Delete() failed: %v", err)
	}

	if _, err := s.Get(ctx, "p-1"); !IsNotFound(err) {
		t.Errorf("Expected NotFound after delete, got: %v", err)
	}

	if err := s.Delete(ctx, "p-1"); err != nil {
		t.Errorf("Delete() of absent id failed: %v", err)
	}
}

func TestDynamoStore_ScanAllEmpty(t *testing.T) {
	client := newFakeDynamoClient()
	s := NewDynamoStoreWithClient(client, "products", testLogger())

	products, err := s.ScanAll(context.Background())
	if err != nil {
		t.Fatalf("ScanAll() failed: %v", err)
	}
	if products == nil {
		t.Fatal("ScanAll() returned nil slice for empty table")
	}
	if len(products) != 0 {
		t.Fatalf("Expected 0 products, got %d", len(products))
	}
}

func TestDynamoStore_ScanAllFollowsPagination(t *testing.T) {
	client := newFakeDynamoClient()
	client.pageSize = 1
	s := NewDynamoStoreWithClient(client, "products", testLogger())
	ctx := context.Background()

	ids := []string{"p-1", "p-2", "p-3"}
	for _, id := range ids {
		if err := s.Put(ctx, testProduct(id)); err != nil {
			t.Fatalf("Put(%s) failed: %v", id, err)
		}
	}

	products, err := s.ScanAll(ctx)
	if err != nil {
		t.Fatalf("ScanAll() failed: %v", err)
	}
	if len(products) != len(ids) {
		t.Fatalf("Expected %d products across pages, got %d", len(ids), len(products))
	}
	if client.scanCalls < len(ids) {
		t.Errorf("Expected at least %d scan calls for page size 1, got %d", len(ids), client.scanCalls)
	}

	seen := make(map[string]bool)
	for _, p := range products {
		seen[p.ProductID] = true
	}
	for _, id := range ids {
		if !seen[id] {
			t.Errorf("ScanAll() missing product %s", id)
		}
	}
}

func TestDynamoStore_ServiceErrorPropagates(t *testing.T) {
	client := newFakeDynamoClient()
	client.err = apiErr{code: "ProvisionedThroughputExceededException"}
	s := NewDynamoStoreWithClient(client, "products", testLogger())
	ctx := context.Background()

	_, err := s.Get(ctx, "p-1")
	if err == nil {
		t.Fatal("Expected Get() to fail when the service errors")
	}
	if IsNotFound(err) {
		t.Error("Service failure must not be reported as NotFound")
	}

	// The service error stays observable through the wrap chain
	var api smithy.APIError
	if !errors.As(err, &api) {
		t.Fatalf("Expected smithy.APIError in chain, got: %v", err)
	}
	if api.ErrorCode() != "ProvisionedThroughputExceededException" {
		t.Errorf("Expected original error code, got %s", api.ErrorCode())
	}

	if err := s.Put(ctx, testProduct("p-1")); err == nil {
		t.Error("Expected Put() to fail when the service errors")
	}
	if err := s.Delete(ctx, "p-1"); err == nil {
		t.Error("Expected Delete() to fail when the service errors")
	}
	if _, err := s.ScanAll(ctx); err == nil {
		t.Error("Expected ScanAll() to fail when the service errors")
	}
}
