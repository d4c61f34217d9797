// Package validation checks worker job variables against JSON Schemas
// before handlers decode them into typed inputs.
package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

type Result struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateVariables validates a job variable map against a JSON Schema document.
func ValidateVariables(vars map[string]interface{}, schemaJSON string) (*Result, error) {
	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	docLoader := gojsonschema.NewGoLoader(vars)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	result := &Result{Valid: res.Valid()}
	for _, desc := range res.Errors() {
		field := desc.Field()
		if field == "(root)" {
			if prop, ok := desc.Details()["property"].(string); ok {
				field = prop
			}
		}
		result.Errors = append(result.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return result, nil
}

// ValidateJSON validates a raw JSON document against a JSON Schema document.
func ValidateJSON(document []byte, schemaJSON string) (*Result, error) {
	var vars map[string]interface{}
	if err := json.Unmarshal(document, &vars); err != nil {
		return nil, fmt.Errorf("invalid JSON document: %w", err)
	}
	return ValidateVariables(vars, schemaJSON)
}

// GetErrorMessages returns a simple list of error messages
func (r *Result) GetErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

// ErrorSummary joins all error messages into one line for job failure details.
func (r *Result) ErrorSummary() string {
	return strings.Join(r.GetErrorMessages(), "; ")
}

// HasErrors checks if validation has errors for a specific field
func (r *Result) HasErrors(field string) bool {
	for _, err := range r.Errors {
		if err.Field == field || strings.HasPrefix(err.Field, field+".") {
			return true
		}
	}
	return false
}
