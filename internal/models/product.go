package models

import (
	"github.com/google/uuid"
)

// Product represents a catalog product. Records are keyed by ProductID
// and written wholesale; there is no partial update.
type Product struct {
	ProductID   string  `json:"productId" db:"id" dynamodbav:"productId"`
	Name        string  `json:"name" db:"name" dynamodbav:"name"`
	Description string  `json:"description" db:"description" dynamodbav:"description"`
	Price       float64 `json:"price" db:"price" dynamodbav:"price"`
	Available   bool    `json:"available" db:"available" dynamodbav:"available"`
}

// ProductInput carries the client-submitted fields of a product. Pointer
// fields distinguish absent values from zero values. The input never
// carries an id; ids are assigned server-side.
type ProductInput struct {
	Name        *string  `json:"name" validate:"required"`
	Description *string  `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Available   *bool    `json:"available" validate:"required"`
}

// NewProduct creates a product from the input with a freshly generated id.
// The same id is used for the stored record and for the response returned
// to the client.
func NewProduct(input *ProductInput) *Product {
	return input.Product(uuid.New().String())
}

// Product assembles a full record under the given id. All input fields
// must be set; DecodeProductInput and the service-layer validator enforce
// that before this is called.
func (in *ProductInput) Product(id string) *Product {
	return &Product{
		ProductID:   id,
		Name:        *in.Name,
		Description: *in.Description,
		Price:       *in.Price,
		Available:   *in.Available,
	}
}
