package store

import (
	"context"

	"product-catalog-api/internal/models"
)

// RecordStore provides an abstraction over the product table.
// Implementations exist for DynamoDB, SQLite and an in-memory map; all of
// them key records by product id and treat writes as whole-record
// replacement.
type RecordStore interface {
	// Put inserts or fully overwrites the record at its id.
	Put(ctx context.Context, product *models.Product) error

	// Get returns the record for id. A missing record reports
	// ErrNotFound, observable through IsNotFound.
	Get(ctx context.Context, id string) (*models.Product, error)

	// Delete removes the record at id. Deleting an absent id succeeds;
	// callers that need a not-found signal check existence first.
	Delete(ctx context.Context, id string) error

	// ScanAll returns every record in the table, unordered. The slice is
	// never nil; an empty table yields an empty slice.
	ScanAll(ctx context.Context) ([]models.Product, error)

	// Close releases any resources held by the implementation.
	Close() error
}

// Config represents configuration for store backends
type Config struct {
	Type       string // "memory", "sqlite" or "dynamo"
	Table      string // Table name, used by the dynamo backend
	Region     string // AWS region, used by the dynamo backend
	SQLitePath string // Database file path, used by the sqlite backend
}
