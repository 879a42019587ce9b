package store

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"product-catalog-api/internal/models"
)

// MemoryStore is an in-memory implementation of RecordStore. It backs
// tests and throwaway development runs; nothing survives a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]models.Product
	logger  *logrus.Logger
}

// NewMemoryStore creates a new MemoryStore instance
func NewMemoryStore(logger *logrus.Logger) *MemoryStore {
	return &MemoryStore{
		records: make(map[string]models.Product),
		logger:  logger,
	}
}

// Put implements RecordStore.Put
func (m *MemoryStore) Put(ctx context.Context, product *models.Product) error {
	if product == nil || product.ProductID == "" {
		return NewStoreError("Put", "products", "", ErrInvalidID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Store a copy so later caller mutations don't leak in
	m.records[product.ProductID] = *product
	return nil
}

// Get implements RecordStore.Get
func (m *MemoryStore) Get(ctx context.Context, id string) (*models.Product, error) {
	if id == "" {
		return nil, NewStoreError("Get", "products", id, ErrInvalidID)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	record, exists := m.records[id]
	if !exists {
		return nil, NewStoreError("Get", "products", id, ErrNotFound)
	}

	return &record, nil
}

// Delete implements RecordStore.Delete
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return NewStoreError("Delete", "products", id, ErrInvalidID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, id)
	return nil
}

// ScanAll implements RecordStore.ScanAll
func (m *MemoryStore) ScanAll(ctx context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	products := make([]models.Product, 0, len(m.records))
	for _, record := range m.records {
		products = append(products, record)
	}

	return products, nil
}

// Close implements RecordStore.Close
func (m *MemoryStore) Close() error {
	return nil
}
