// internal/workers/matching/explain-eligibility/handler_test.go
package explaineligibility

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
	return &Config{Timeout: 15 * time.Second}
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

func setupHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := students.NewStore(db, rdb, 5*time.Minute, newTestLogger(t))

	return NewHandler(createTestConfig(), catalog.Default(), store, newTestLogger(t)), mock
}

func eligibleSCStudent() *models.StudentProfile {
	income := 150000.0
	return &models.StudentProfile{
		Name:               "Priya",
		Region:             "Karnataka",
		Category:           models.CategorySC,
		OverallPercentage:  78,
		FamilyAnnualIncome: &income,
	}
}

func TestHandler_Execute_Eligible(t *testing.T) {
	handler, _ := setupHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		StudentProfile: eligibleSCStudent(),
		ScholarshipID:  "sc-post-matric",
	})

	require.NoError(t, err)
	report := output.EligibilityReport
	assert.True(t, report.IsEligible)
	assert.Equal(t, "sc-post-matric", report.Scholarship.ID)
	assert.Equal(t, report.TotalChecks, report.PassedChecks)
	assert.Zero(t, report.FailedChecks)
	assert.Contains(t, report.Statement, "ELIGIBLE")
	assert.Equal(t, "Recommended to apply", report.Recommendation)
	assert.NotEmpty(t, report.ReportID)
}

func TestHandler_Execute_NotEligible(t *testing.T) {
	handler, _ := setupHandler(t)

	student := eligibleSCStudent()
	student.Category = models.CategoryGeneral

	output, err := handler.Execute(context.Background(), &Input{
		StudentProfile: student,
		ScholarshipID:  "sc-post-matric",
	})

	require.NoError(t, err)
	report := output.EligibilityReport
	assert.False(t, report.IsEligible)
	assert.NotZero(t, report.FailedChecks)
	assert.Contains(t, report.Statement, "NOT ELIGIBLE")
	assert.Equal(t, "Does not meet eligibility requirements", report.Recommendation)
}

func TestHandler_Execute_ScholarshipNotFound(t *testing.T) {
	handler, _ := setupHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		StudentProfile: eligibleSCStudent(),
		ScholarshipID:  "does-not-exist",
	})

	assert.Nil(t, output)
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeScholarshipNotFound, stdErr.Code)
}

func TestHandler_Execute_MissingScholarshipID(t *testing.T) {
	handler, _ := setupHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		StudentProfile: eligibleSCStudent(),
	})

	assert.Nil(t, output)
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeValidationFailed, stdErr.Code)
}

func TestHandler_Execute_StudentFetchFailure(t *testing.T) {
	handler, mock := setupHandler(t)

	mock.ExpectQuery("SELECT name, region").
		WithArgs("missing").
		WillReturnError(context.DeadlineExceeded)

	output, err := handler.Execute(context.Background(), &Input{
		StudentID:     "missing",
		ScholarshipID: "sc-post-matric",
	})

	assert.Nil(t, output)
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeStudentFetchFailed, stdErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
