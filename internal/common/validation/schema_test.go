package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"properties": {
		"studentId": {"type": "string", "minLength": 1},
		"minScore": {"type": "number", "minimum": 0, "maximum": 100}
	},
	"required": ["studentId"]
}`

func TestValidateVariables_Valid(t *testing.T) {
	result, err := ValidateVariables(map[string]interface{}{
		"studentId": "stu-001",
		"minScore":  60.0,
	}, testSchema)
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateVariables_MissingRequired(t *testing.T) {
	result, err := ValidateVariables(map[string]interface{}{
		"minScore": 60.0,
	}, testSchema)
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.True(t, result.HasErrors("studentId"))
}

func TestValidateVariables_OutOfRange(t *testing.T) {
	result, err := ValidateVariables(map[string]interface{}{
		"studentId": "stu-001",
		"minScore":  150.0,
	}, testSchema)
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.True(t, result.HasErrors("minScore"))
	assert.NotEmpty(t, result.ErrorSummary())
}

func TestValidateJSON(t *testing.T) {
	result, err := ValidateJSON([]byte(`{"studentId": "stu-001"}`), testSchema)
	require.NoError(t, err)
	assert.True(t, result.Valid)

	_, err = ValidateJSON([]byte(`not json`), testSchema)
	assert.Error(t, err)
}

func TestValidateVariables_BadSchema(t *testing.T) {
	_, err := ValidateVariables(map[string]interface{}{"studentId": "x"}, `{invalid`)
	assert.Error(t, err)
}
