package handlers

import (
	"product-catalog-api/internal/store"
)

// msgProductNotFound is the exact message returned for ids with no record
const msgProductNotFound = "Product not found"

// ErrorResponse is the single-cause error body
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse lists every field violation found in a request
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// isNotFoundError reports whether the failure means the requested record
// does not exist. Anything else is left for the invocation layer.
func isNotFoundError(err error) bool {
	return store.IsNotFound(err)
}
