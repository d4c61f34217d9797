// internal/workers/catalog/lookup-scholarship/handler_test.go
package lookupscholarship

import (
	"context"
	"testing"
	"time"

	"scholarship-workers/internal/catalog"
	"scholarship-workers/internal/common/errors"
	"scholarship-workers/internal/common/logger"
	"scholarship-workers/internal/common/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig() *Config {
	return &Config{Timeout: 10 * time.Second}
}

type testLogger struct {
	t *testing.T
}

func (tl *testLogger) Debug(msg string, fields map[string]interface{}) {
	tl.t.Logf("DEBUG: %s %v", msg, fields)
}

func (tl *testLogger) Info(msg string, fields map[string]interface{}) {
	tl.t.Logf("INFO: %s %v", msg, fields)
}

func (tl *testLogger) Warn(msg string, fields map[string]interface{}) {
	tl.t.Logf("WARN: %s %v", msg, fields)
}

func (tl *testLogger) Error(msg string, fields map[string]interface{}) {
	tl.t.Logf("ERROR: %s %v", msg, fields)
}

func (tl *testLogger) WithFields(fields map[string]interface{}) logger.Logger {
	return tl
}

func (tl *testLogger) WithError(err error) logger.Logger {
	return tl
}

func (tl *testLogger) With(fields map[string]interface{}) logger.Logger {
	return tl
}

func newTestLogger(t *testing.T) logger.Logger {
	return &testLogger{t: t}
}

func TestHandler_Execute_Found(t *testing.T) {
	handler := NewHandler(createTestConfig(), catalog.Default(), newTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{ScholarshipID: "merit-excellence"})

	require.NoError(t, err)
	assert.Equal(t, "merit-excellence", output.Scholarship.ID)
	assert.NotEmpty(t, output.Scholarship.Title)
	assert.Equal(t, catalog.DefaultVersion, output.CatalogVersion)
}

func TestHandler_Execute_NotFound(t *testing.T) {
	handler := NewHandler(createTestConfig(), catalog.Default(), newTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{ScholarshipID: "nope"})

	assert.Nil(t, output)
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeScholarshipNotFound, stdErr.Code)
}

func TestInputSchema(t *testing.T) {
	tests := []struct {
		name      string
		variables string
		wantValid bool
	}{
		{"valid", `{"scholarshipId": "sc-post-matric"}`, true},
		{"missing id", `{}`, false},
		{"empty id", `{"scholarshipId": ""}`, false},
		{"wrong type", `{"scholarshipId": 42}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := validation.ValidateJSON([]byte(tt.variables), inputSchema)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.Valid)
		})
	}
}
