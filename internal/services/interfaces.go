package services

import (
	"context"

	"product-catalog-api/internal/models"
)

// ProductService defines the interface for product catalog operations
type ProductService interface {
	// CRUD operations
	CreateProduct(ctx context.Context, input *models.ProductInput) (*models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, input *models.ProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListProducts(ctx context.Context) ([]models.Product, error)
}
