// internal/workers/matching/find-scholarship-matches/handler_test.go
package findscholarshipmatches

import (
	"context"
	"testing"
	"time"

	"scholarship-workers/internal/catalog"
	"scholarship-workers/internal/common/logger"
	"scholarship-workers/internal/matching"
	"scholarship-workers/internal/models"
	"scholarship-workers/internal/students"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig() *Config {
	return &Config{MinScore: 50, Timeout: 15 * time.Second}
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

	engine := matching.NewEngine(catalog.Default())
	return NewHandler(createTestConfig(), engine, store, newTestLogger(t)), mock
}

func scStudent() *models.StudentProfile {
	income := 150000.0
	return &models.StudentProfile{
		Name:               "Priya",
		Region:             "Karnataka",
		Category:           models.CategorySC,
		Gender:             models.GenderFemale,
		OverallPercentage:  78,
		FamilyAnnualIncome: &income,
	}
}

func TestHandler_Execute_FindsMatches(t *testing.T) {
	handler, _ := setupHandler(t)

	output, err := handler.Execute(context.Background(), &Input{StudentProfile: scStudent()})

	require.NoError(t, err)
	require.NotEmpty(t, output.Matches)
	assert.Equal(t, len(output.Matches), output.TotalMatches)
	assert.Equal(t, 50.0, output.MinScore)

	ids := make([]string, 0, len(output.Matches))
	for _, m := range output.Matches {
		ids = append(ids, m.ID)
	}
	assert.Contains(t, ids, "sc-post-matric")

	// Sorted by score, best first.
	for i := 1; i < len(output.Matches); i++ {
		assert.GreaterOrEqual(t, output.Matches[i-1].MatchScore, output.Matches[i].MatchScore)
	}
}

func TestHandler_Execute_MinScoreOverride(t *testing.T) {
	handler, _ := setupHandler(t)

	strict := 95.0
	output, err := handler.Execute(context.Background(), &Input{
		StudentProfile: scStudent(),
		MinScore:       &strict,
	})

	require.NoError(t, err)
	for _, m := range output.Matches {
		assert.GreaterOrEqual(t, m.MatchScore, strict)
	}
	assert.Equal(t, strict, output.MinScore)
}

func TestHandler_Execute_FetchesStudent(t *testing.T) {
	handler, mock := setupHandler(t)

	columns := []string{
		"name", "region", "age", "gender", "category", "religion", "education_level",
		"overall_percentage", "score_type", "university", "marks",
		"income_level", "family_annual_income", "parent_occupation",
		"is_first_graduate", "extraction_method",
	}
	mock.ExpectQuery("SELECT name, region").
		WithArgs("stu-301").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("Arun", "Tamil Nadu", nil, "Male", "SC", nil, nil,
				82.0, nil, nil, nil,
				"< 2 LPA", 120000.0, nil, nil, nil))

	output, err := handler.Execute(context.Background(), &Input{StudentID: "stu-301"})

	require.NoError(t, err)
	assert.NotEmpty(t, output.Matches)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_MissingInput(t *testing.T) {
	handler, _ := setupHandler(t)

	output, err := handler.Execute(context.Background(), &Input{})

	assert.Nil(t, output)
	assert.Error(t, err)
}
