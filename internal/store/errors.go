package store

import (
	"errors"
	"fmt"
)

// Common store error types
var (
	ErrNotFound        = errors.New("record not found")
	ErrInvalidID       = errors.New("invalid record id")
	ErrUnsupportedType = errors.New("unsupported store type")
)

// StoreError represents a store operation error with additional context
type StoreError struct {
	Op    string // Operation that failed (e.g., "Put", "Get")
	Table string // Table involved in the operation
	Key   string // Record id involved in the operation
	Err   error  // Underlying error
}

func (e *StoreError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("store %s operation failed for id '%s' in table '%s': %v", e.Op, e.Key, e.Table, e.Err)
	}
	return fmt.Sprintf("store %s operation failed for table '%s': %v", e.Op, e.Table, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError
func NewStoreError(op, table, key string, err error) *StoreError {
	return &StoreError{
		Op:    op,
		Table: table,
		Key:   key,
		Err:   err,
	}
}

// IsNotFound returns true if the error indicates a missing record
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
