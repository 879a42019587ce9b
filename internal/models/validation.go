package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonNull is the raw value an explicit JSON null decodes to.
var jsonNull = []byte("null")

// productSchema is the fixed input schema. Violations are reported in
// this order.
var productSchema = []struct {
	field string
	kind  string
}{
	{"name", "string"},
	{"description", "string"},
	{"price", "number"},
	{"available", "boolean"},
}

// DecodeProductInput parses a request body against the product schema.
//
// A body that is not parseable JSON returns an error carrying the parser
// diagnostic. Otherwise every schema violation is collected before
// returning: a field that is absent or null reports "<field> is
// required", a field with the wrong JSON type reports "<field> must be a
// <kind>". Validation never stops at the first violation. Fields outside
// the schema, including any client-supplied productId, are ignored.
//
// The returned input is non-nil only when the violation list is empty.
func DecodeProductInput(data []byte) (*ProductInput, []string, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("invalid JSON: %w", err)
	}

	input := &ProductInput{}
	var violations []string

	for _, rule := range productSchema {
		raw, ok := doc[rule.field]
		if !ok || bytes.Equal(raw, jsonNull) {
			violations = append(violations, rule.field+" is required")
			continue
		}
		if err := setProductField(input, rule.field, raw); err != nil {
			violations = append(violations, fmt.Sprintf("%s must be a %s", rule.field, rule.kind))
		}
	}

	if len(violations) > 0 {
		return nil, violations, nil
	}
	return input, nil, nil
}

// setProductField decodes one schema field into the input. A decode
// failure means the value had the wrong JSON type.
func setProductField(input *ProductInput, field string, raw json.RawMessage) error {
	switch field {
	case "name":
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		input.Name = &v
	case "description":
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		input.Description = &v
	case "price":
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		input.Price = &v
	case "available":
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		input.Available = &v
	}
	return nil
}
