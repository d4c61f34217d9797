// internal/profile/normalize_test.go
package profile

import (
	"testing"

	"scholarship-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeConvertsCGPA(t *testing.T) {
	p := models.StudentProfile{
		Name:              "Priya",
		OverallPercentage: 8.5,
		ScoreType:         "cgpa",
	}

	out := Normalize(p)

	require.NotNil(t, out.NormalizedScore)
	assert.InDelta(t, 80.75, out.OverallPercentage, 0.001)
	assert.Equal(t, "CBSE formula: CGPA × 9.5", out.NormalizedScore.ConversionMethod)

	// input untouched
	assert.Equal(t, 8.5, p.OverallPercentage)
}

func TestNormalizeUsesUniversityHint(t *testing.T) {
	p := models.StudentProfile{
		OverallPercentage: 8.0,
		ScoreType:         "cgpa",
		University:        "VTU",
	}

	out := Normalize(p)
	assert.InDelta(t, 75.0, out.OverallPercentage, 0.001)
}

func TestNormalizeKeepsRawOnConversionFailure(t *testing.T) {
	p := models.StudentProfile{
		OverallPercentage: 12.0,
		ScoreType:         "cgpa",
	}

	out := Normalize(p)

	require.NotNil(t, out.NormalizedScore)
	assert.Equal(t, "failed", out.NormalizedScore.ConversionMethod)
	assert.NotEmpty(t, out.NormalizedScore.Error)
	assert.Equal(t, 12.0, out.OverallPercentage)
}

func TestNormalizeSubjectMarks(t *testing.T) {
	p := models.StudentProfile{
		OverallPercentage: 85.0,
		Marks: []models.SubjectMark{
			{Subject: "Mathematics", Score: 92, MaxScore: 100},
			{Subject: "Physics", Score: 45, MaxScore: 50},
			{Subject: "Broken", Score: 30, MaxScore: 0},
		},
	}

	out := Normalize(p)

	require.Len(t, out.Marks, 3)
	assert.Equal(t, 92.0, out.Marks[0].Percentage)
	assert.Equal(t, 90.0, out.Marks[1].Percentage)
	assert.Equal(t, 0.0, out.Marks[2].Percentage)

	// original slice not written through
	assert.Equal(t, 0.0, p.Marks[0].Percentage)
}

func TestNormalizeIncome(t *testing.T) {
	p := models.StudentProfile{
		OverallPercentage: 85.0,
		IncomeLevel:       "< 2 LPA",
	}

	out := Normalize(p)

	require.NotNil(t, out.NormalizedIncome)
	assert.Equal(t, 200000, out.NormalizedIncome.AnnualIncome)
	require.NotNil(t, out.FamilyAnnualIncome)
	assert.Equal(t, 200000.0, *out.FamilyAnnualIncome)
}

func TestNormalizeKeepsExplicitAnnualIncome(t *testing.T) {
	explicit := 180000.0
	p := models.StudentProfile{
		OverallPercentage:  85.0,
		IncomeLevel:        "< 5 LPA",
		FamilyAnnualIncome: &explicit,
	}

	out := Normalize(p)

	require.NotNil(t, out.FamilyAnnualIncome)
	assert.Equal(t, 180000.0, *out.FamilyAnnualIncome)
}

func TestNormalizeUnknownIncomeLeavesAnnualUnset(t *testing.T) {
	p := models.StudentProfile{
		OverallPercentage: 85.0,
		IncomeLevel:       "prefer not to say",
	}

	out := Normalize(p)

	require.NotNil(t, out.NormalizedIncome)
	assert.Equal(t, "unknown", out.NormalizedIncome.IncomeCategory)
	assert.Nil(t, out.FamilyAnnualIncome)
}

func TestNormalizeEmptyProfile(t *testing.T) {
	out := Normalize(models.StudentProfile{})
	assert.Nil(t, out.NormalizedScore)
	assert.Nil(t, out.NormalizedIncome)
	assert.Nil(t, out.Marks)
}
