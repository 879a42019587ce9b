package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"product-catalog-api/internal/models"
	"product-catalog-api/internal/store"
)

// productService implements the ProductService interface
type productService struct {
	store     store.RecordStore
	validator *validator.Validate
}

// NewProductService creates a new product service instance
func NewProductService(recordStore store.RecordStore) ProductService {
	return &productService{
		store:     recordStore,
		validator: validator.New(),
	}
}

// CreateProduct stores a new product under a freshly generated id
func (s *productService) CreateProduct(ctx context.Context, input *models.ProductInput) (*models.Product, error) {
	if input == nil {
		return nil, fmt.Errorf("product input cannot be nil")
	}

	// Decoding has already collected field violations; this guards
	// against callers constructing incomplete inputs by hand
	if err := s.validator.Struct(input); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// The id is generated exactly once here. The same record, id
	// included, is written to the store and returned to the caller.
	product := models.NewProduct(input)

	if err := s.store.Put(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *productService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	// An empty id can never name a stored record
	if id == "" {
		return nil, fmt.Errorf("product lookup with empty id: %w", store.ErrNotFound)
	}

	product, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

// UpdateProduct replaces the record stored under id with the given input
func (s *productService) UpdateProduct(ctx context.Context, id string, input *models.ProductInput) (*models.Product, error) {
	if id == "" {
		return nil, fmt.Errorf("product lookup with empty id: %w", store.ErrNotFound)
	}

	if input == nil {
		return nil, fmt.Errorf("product input cannot be nil")
	}

	if err := s.validator.Struct(input); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Confirm the record exists before writing. A concurrent delete can
	// still slip between the check and the put, in which case the write
	// recreates the record. That window is accepted.
	if _, err := s.store.Get(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	product := input.Product(id)

	if err := s.store.Put(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// DeleteProduct removes the record stored under id
func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("product lookup with empty id: %w", store.ErrNotFound)
	}

	// Existence check so callers can tell deleting a record apart from
	// deleting nothing. Same race window as UpdateProduct.
	if _, err := s.store.Get(ctx, id); err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

// ListProducts retrieves every product in the catalog
func (s *productService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.store.ScanAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}
