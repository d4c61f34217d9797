// internal/workers/matching/explain-all-scholarships/handler_test.go
package explainallscholarships

import (
	"context"
	"testing"
	"time"

	"scholarship-workers/internal/catalog"
	"scholarship-workers/internal/common/errors"
	"scholarship-workers/internal/common/logger"
	"scholarship-workers/internal/models"
	"scholarship-workers/internal/students"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig() *Config {
	return &Config{Timeout: 30 * time.Second}
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

func setupHandler(t *testing.T) *Handler {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := students.NewStore(db, rdb, 5*time.Minute, newTestLogger(t))

	return NewHandler(createTestConfig(), catalog.Default(), store, newTestLogger(t))
}

func TestHandler_Execute_FullCatalog(t *testing.T) {
	handler := setupHandler(t)

	income := 150000.0
	student := &models.StudentProfile{
		Name:               "Priya",
		Region:             "Karnataka",
		Category:           models.CategorySC,
		Gender:             models.GenderFemale,
		OverallPercentage:  78,
		FamilyAnnualIncome: &income,
	}

	output, err := handler.Execute(context.Background(), &Input{StudentProfile: student})

	require.NoError(t, err)
	report := output.BatchReport
	assert.Equal(t, catalog.Default().Len(), report.TotalScholarships)
	assert.Equal(t, len(report.Eligible), report.EligibleCount)
	assert.Equal(t, len(report.NotEligible), report.NotEligibleCount)
	assert.Equal(t, report.TotalScholarships, report.EligibleCount+report.NotEligibleCount)
	assert.Len(t, report.DetailedReports, report.TotalScholarships)
	assert.NotEmpty(t, report.BatchID)
	assert.Equal(t, "Priya", report.Student.Name)

	eligibleIDs := make([]string, 0, len(report.Eligible))
	for _, e := range report.Eligible {
		eligibleIDs = append(eligibleIDs, e.ID)
	}
	assert.Contains(t, eligibleIDs, "sc-post-matric")
}

func TestHandler_Execute_RateMatchesCounts(t *testing.T) {
	handler := setupHandler(t)

	student := &models.StudentProfile{
		Name:              "Nobody",
		Region:            "Nowhere",
		Category:          models.CategoryGeneral,
		OverallPercentage: 10,
	}

	output, err := handler.Execute(context.Background(), &Input{StudentProfile: student})

	require.NoError(t, err)
	report := output.BatchReport
	expectedRate := float64(report.EligibleCount) / float64(report.TotalScholarships) * 100
	assert.InDelta(t, expectedRate, report.Summary.EligibilityRate, 0.05)
}

func TestHandler_Execute_MissingInput(t *testing.T) {
	handler := setupHandler(t)

	output, err := handler.Execute(context.Background(), &Input{})

	assert.Nil(t, output)
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeValidationFailed, stdErr.Code)
}
