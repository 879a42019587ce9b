package models

import (
	"strings"
	"testing"
)

func sampleInput() *ProductInput {
	name := "Wireless Mouse"
	description := "Ergonomic wireless mouse with USB receiver"
	price := 24.99
	available := true
	return &ProductInput{
		Name:        &name,
		Description: &description,
		Price:       &price,
		Available:   &available,
	}
}

// TestNewProduct tests product creation with a generated id
func TestNewProduct(t *testing.T) {
	input := sampleInput()

	product := NewProduct(input)

	if product.ProductID == "" {
		t.Error("Expected generated product id, got empty string")
	}
	if product.Name != *input.Name {
		t.Errorf("Expected name '%s', got '%s'", *input.Name, product.Name)
	}
	if product.Description != *input.Description {
		t.Errorf("Expected description '%s', got '%s'", *input.Description, product.Description)
	}
	if product.Price != *input.Price {
		t.Errorf("Expected price %.2f, got %.2f", *input.Price, product.Price)
	}
	if product.Available != *input.Available {
		t.Errorf("Expected available %v, got %v", *input.Available, product.Available)
	}

	// Each creation mints its own id
	other := NewProduct(input)
	if other.ProductID == product.ProductID {
		t.Errorf("Expected distinct ids for distinct creations, both got '%s'", product.ProductID)
	}
}

// TestProductInputProduct tests record assembly under an existing id
func TestProductInputProduct(t *testing.T) {
	input := sampleInput()

	product := input.Product("existing-id")

	if product.ProductID != "existing-id" {
		t.Errorf("Expected id 'existing-id', got '%s'", product.ProductID)
	}
	if product.Name != *input.Name {
		t.Errorf("Expected name '%s', got '%s'", *input.Name, product.Name)
	}
}

// TestDecodeProductInput tests decoding of valid bodies
func TestDecodeProductInput(t *testing.T) {
	body := []byte(`{"name":"Desk Lamp","description":"LED desk lamp","price":39.5,"available":false}`)

	input, violations, err := DecodeProductInput(body)
	if err != nil {
		t.Fatalf("DecodeProductInput() error = %v", err)
	}
	if len(violations) != 0 {
		t.Fatalf("Expected no violations, got %v", violations)
	}

	if *input.Name != "Desk Lamp" {
		t.Errorf("Expected name 'Desk Lamp', got '%s'", *input.Name)
	}
	if *input.Description != "LED desk lamp" {
		t.Errorf("Expected description 'LED desk lamp', got '%s'", *input.Description)
	}
	if *input.Price != 39.5 {
		t.Errorf("Expected price 39.5, got %v", *input.Price)
	}
	if *input.Available != false {
		t.Errorf("Expected available false, got %v", *input.Available)
	}
}

// TestDecodeProductInputZeroValues tests that present zero values pass
func TestDecodeProductInputZeroValues(t *testing.T) {
	body := []byte(`{"name":"","description":"","price":0,"available":false}`)

	input, violations, err := DecodeProductInput(body)
	if err != nil {
		t.Fatalf("DecodeProductInput() error = %v", err)
	}
	if len(violations) != 0 {
		t.Fatalf("Expected no violations for present zero values, got %v", violations)
	}
	if *input.Price != 0 {
		t.Errorf("Expected price 0, got %v", *input.Price)
	}
}

// TestDecodeProductInputIgnoresUnknownFields tests that extra fields,
// including a client-supplied id, do not affect decoding
func TestDecodeProductInputIgnoresUnknownFields(t *testing.T) {
	body := []byte(`{"productId":"client-chosen","name":"Desk Lamp","description":"LED desk lamp","price":39.5,"available":true,"color":"black"}`)

	input, violations, err := DecodeProductInput(body)
	if err != nil {
		t.Fatalf("DecodeProductInput() error = %v", err)
	}
	if len(violations) != 0 {
		t.Fatalf("Expected no violations, got %v", violations)
	}
	if input == nil {
		t.Fatal("Expected decoded input, got nil")
	}
}

// TestDecodeProductInputViolations tests that every violation is
// collected, in schema order, instead of stopping at the first
func TestDecodeProductInputViolations(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "missing name",
			body: `{"description":"d","price":1,"available":true}`,
			want: []string{"name is required"},
		},
		{
			name: "missing description",
			body: `{"name":"n","price":1,"available":true}`,
			want: []string{"description is required"},
		},
		{
			name: "missing price",
			body: `{"name":"n","description":"d","available":true}`,
			want: []string{"price is required"},
		},
		{
			name: "missing available",
			body: `{"name":"n","description":"d","price":1}`,
			want: []string{"available is required"},
		},
		{
			name: "empty object misses everything",
			body: `{}`,
			want: []string{
				"name is required",
				"description is required",
				"price is required",
				"available is required",
			},
		},
		{
			name: "null body misses everything",
			body: `null`,
			want: []string{
				"name is required",
				"description is required",
				"price is required",
				"available is required",
			},
		},
		{
			name: "explicit null counts as missing",
			body: `{"name":"n","description":null,"price":1,"available":true}`,
			want: []string{"description is required"},
		},
		{
			name: "wrong type name",
			body: `{"name":123,"description":"d","price":1,"available":true}`,
			want: []string{"name must be a string"},
		},
		{
			name: "wrong type price",
			body: `{"name":"n","description":"d","price":"9.99","available":true}`,
			want: []string{"price must be a number"},
		},
		{
			name: "wrong type available",
			body: `{"name":"n","description":"d","price":1,"available":"yes"}`,
			want: []string{"available must be a boolean"},
		},
		{
			name: "every field wrong type",
			body: `{"name":1,"description":2,"price":"3","available":"4"}`,
			want: []string{
				"name must be a string",
				"description must be a string",
				"price must be a number",
				"available must be a boolean",
			},
		},
		{
			name: "missing and wrong types together",
			body: `{"description":"d","price":"free","available":0}`,
			want: []string{
				"name is required",
				"price must be a number",
				"available must be a boolean",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, violations, err := DecodeProductInput([]byte(tt.body))
			if err != nil {
				t.Fatalf("DecodeProductInput() error = %v", err)
			}
			if input != nil {
				t.Error("Expected nil input when violations are present")
			}
			if len(violations) != len(tt.want) {
				t.Fatalf("Expected %d violations %v, got %d: %v", len(tt.want), tt.want, len(violations), violations)
			}
			for i := range tt.want {
				if violations[i] != tt.want[i] {
					t.Errorf("Violation %d: expected '%s', got '%s'", i, tt.want[i], violations[i])
				}
			}
		})
	}
}

// TestDecodeProductInputMalformed tests that unparseable bodies carry the
// parser diagnostic
func TestDecodeProductInputMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "truncated object", body: `{"name":"n"`},
		{name: "not JSON at all", body: "name=lamp&price=3"},
		{name: "bare string", body: `"lamp"`},
		{name: "array instead of object", body: `[1,2,3]`},
		{name: "bare boolean", body: `true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, violations, err := DecodeProductInput([]byte(tt.body))
			if err == nil {
				t.Fatal("Expected decode error for malformed body")
			}
			if input != nil || violations != nil {
				t.Errorf("Expected nil input and violations on malformed body, got %v, %v", input, violations)
			}
			if !strings.Contains(err.Error(), "invalid JSON") {
				t.Errorf("Expected diagnostic to mention invalid JSON, got '%v'", err)
			}
		})
	}
}
