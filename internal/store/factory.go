package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// StoreType represents the type of store implementation
type StoreType string

const (
	StoreTypeMemory StoreType = "memory"
	StoreTypeSQLite StoreType = "sqlite"
	StoreTypeDynamo StoreType = "dynamo"
)

// New creates a RecordStore instance based on the provided configuration
func New(ctx context.Context, config *Config, logger *logrus.Logger) (RecordStore, error) {
	if config == nil {
		return nil, fmt.Errorf("store config is required")
	}

	switch StoreType(strings.ToLower(config.Type)) {
	case StoreTypeMemory:
		return NewMemoryStore(logger), nil
	case StoreTypeSQLite:
		path := config.SQLitePath
		if path == "" {
			path = "./data/products.db"
		}
		return NewSQLiteStore(path, logger)
	case StoreTypeDynamo:
		table := config.Table
		if table == "" {
			table = "products"
		}
		return NewDynamoStore(ctx, table, config.Region, logger)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, config.Type)
	}
}
