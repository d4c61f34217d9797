// internal/students/store.go
package students

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"scholarship-workers/internal/common/logger"
	"scholarship-workers/internal/common/metrics"
	"scholarship-workers/internal/models"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when no student row exists for the given id.
var ErrNotFound = errors.New("student not found")

const cacheKeyPrefix = "student:profile:"

// Store reads student profiles from PostgreSQL with a Redis read-through cache.
type Store struct {
	db       *sql.DB
	redis    *redis.Client
	cacheTTL time.Duration
	logger   logger.Logger
}

func NewStore(db *sql.DB, rdb *redis.Client, cacheTTL time.Duration, log logger.Logger) *Store {
	return &Store{
		db:       db,
		redis:    rdb,
		cacheTTL: cacheTTL,
		logger:   log.WithFields(map[string]interface{}{"component": "studentStore"}),
	}
}

// GetProfile fetches a student profile by id, preferring the cache.
func (s *Store) GetProfile(ctx context.Context, studentID string) (*models.StudentProfile, error) {
	cacheKey := cacheKeyPrefix + studentID
	if s.redis != nil {
		if val, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var profile models.StudentProfile
			if err := json.Unmarshal([]byte(val), &profile); err == nil {
				metrics.StudentCacheHits.WithLabelValues("hit").Inc()
				return &profile, nil
			}
		}
		metrics.StudentCacheHits.WithLabelValues("miss").Inc()
	}

	profile, err := s.queryProfile(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(profile); err == nil {
			if err := s.redis.Set(ctx, cacheKey, data, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("failed to cache student profile", map[string]interface{}{
					"studentId": studentID,
					"error":     err,
				})
			}
		}
	}

	return profile, nil
}

func (s *Store) queryProfile(ctx context.Context, studentID string) (*models.StudentProfile, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT name, region, age, gender, category, religion, education_level,
		       overall_percentage, score_type, university, marks,
		       income_level, family_annual_income, parent_occupation,
		       is_first_graduate, extraction_method
		FROM students WHERE id = $1`, studentID)

	var (
		profile      models.StudentProfile
		age          sql.NullInt64
		gender       sql.NullString
		category     sql.NullString
		religion     sql.NullString
		education    sql.NullString
		scoreType    sql.NullString
		university   sql.NullString
		marks        []byte
		incomeLevel  sql.NullString
		annualIncome sql.NullFloat64
		occupation   sql.NullString
		firstGrad    sql.NullBool
		extraction   sql.NullString
	)

	err := row.Scan(
		&profile.Name, &profile.Region, &age, &gender, &category, &religion,
		&education, &profile.OverallPercentage, &scoreType, &university, &marks,
		&incomeLevel, &annualIncome, &occupation, &firstGrad, &extraction,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, studentID)
		}
		return nil, fmt.Errorf("query student %s: %w", studentID, err)
	}

	profile.ID = studentID
	if age.Valid {
		v := int(age.Int64)
		profile.Age = &v
	}
	profile.Gender = models.Gender(gender.String)
	profile.Category = models.Category(category.String)
	profile.Religion = religion.String
	profile.EducationLevel = education.String
	profile.ScoreType = scoreType.String
	profile.University = university.String
	profile.IncomeLevel = incomeLevel.String
	if annualIncome.Valid {
		v := annualIncome.Float64
		profile.FamilyAnnualIncome = &v
	}
	profile.ParentOccupation = occupation.String
	if firstGrad.Valid {
		v := firstGrad.Bool
		profile.IsFirstGraduate = &v
	}
	profile.ExtractionMethod = models.ExtractionMethod(extraction.String)

	if len(marks) > 0 {
		if err := json.Unmarshal(marks, &profile.Marks); err != nil {
			profile.Marks = nil
		}
	}

	return &profile, nil
}

// InvalidateCache drops the cached copy of a student profile.
func (s *Store) InvalidateCache(ctx context.Context, studentID string) error {
	if s.redis == nil {
		return nil
	}
	return s.redis.Del(ctx, cacheKeyPrefix+studentID).Err()
}
