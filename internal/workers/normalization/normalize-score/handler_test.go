// internal/workers/normalization/normalize-score/handler_test.go
package normalizescore

import (
	"context"
	"testing"
	"time"

	"scholarship-workers/internal/common/logger"

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

func TestHandler_Execute_Conversions(t *testing.T) {
	tests := []struct {
		name               string
		input              Input
		expectedPercentage float64
		expectedType       string
	}{
		{
			name:               "percentage passthrough",
			input:              Input{Score: 84.5, ScoreType: "percentage"},
			expectedPercentage: 84.5,
			expectedType:       "percentage",
		},
		{
			name:               "CBSE cgpa",
			input:              Input{Score: 8.0, ScoreType: "cgpa_10", University: "CBSE"},
			expectedPercentage: 76,
			expectedType:       "cgpa_10",
		},
		{
			name:               "VTU cgpa",
			input:              Input{Score: 8.5, ScoreType: "cgpa_10", University: "VTU"},
			expectedPercentage: 80,
			expectedType:       "cgpa_10",
		},
		{
			name:               "detected percentage without hint",
			input:              Input{Score: 91.0},
			expectedPercentage: 91,
			expectedType:       "percentage",
		},
		{
			name:               "letter grade",
			input:              Input{Score: "A+"},
			expectedPercentage: 90,
			expectedType:       "letter_grade",
		},
	}

	handler := NewHandler(createTestConfig(), newTestLogger(t))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := handler.Execute(context.Background(), &tt.input)

			require.NoError(t, err)
			require.NotNil(t, output.NormalizedScore)
			assert.Empty(t, output.NormalizedScore.Error)
			assert.Equal(t, tt.expectedType, output.NormalizedScore.DetectedType)
			assert.InDelta(t, tt.expectedPercentage, output.NormalizedScore.Percentage, 0.01)
		})
	}
}

func TestHandler_Execute_UnknownGradeDoesNotFail(t *testing.T) {
	handler := NewHandler(createTestConfig(), newTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{Score: "Z++"})

	require.NoError(t, err)
	require.NotNil(t, output.NormalizedScore)
	assert.NotEmpty(t, output.NormalizedScore.Error)
	assert.Equal(t, "failed", output.NormalizedScore.ConversionMethod)
}

func TestHandler_Execute_Equivalents(t *testing.T) {
	handler := NewHandler(createTestConfig(), newTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{Score: 95.0, ScoreType: "percentage"})

	require.NoError(t, err)
	ns := output.NormalizedScore
	assert.InDelta(t, 95.0, ns.Percentage, 0.01)
	assert.InDelta(t, 10.0, ns.CGPA10, 0.01)
	assert.InDelta(t, 4.0, ns.GPA4, 0.01)
	assert.Equal(t, "O", ns.LetterGrade)
}
