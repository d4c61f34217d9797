// internal/grading/detect_test.go
package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectScoreType(t *testing.T) {
	tests := []struct {
		name          string
		score         interface{}
		expectedType  GradeSystem
		expectedValue interface{}
	}{
		{name: "large number is percentage", score: 85.5, expectedType: SystemPercentage, expectedValue: 85.5},
		{name: "mid range is cgpa 10", score: 8.2, expectedType: SystemCGPA10, expectedValue: 8.2},
		{name: "low number is gpa 4", score: 3.5, expectedType: SystemCGPA4, expectedValue: 3.5},
		{name: "boundary 10 is cgpa", score: 10.0, expectedType: SystemCGPA10, expectedValue: 10.0},
		{name: "boundary 4 is gpa", score: 4.0, expectedType: SystemCGPA4, expectedValue: 4.0},
		{name: "int accepted", score: 92, expectedType: SystemPercentage, expectedValue: 92.0},
		{name: "letter grade string", score: "A+", expectedType: SystemLetterGrade, expectedValue: "A+"},
		{name: "percent suffix", score: "85.5%", expectedType: SystemPercentage, expectedValue: 85.5},
		{name: "numeric string", score: "9.1", expectedType: SystemCGPA10, expectedValue: 9.1},
		{name: "unparseable string treated as grade", score: "first class", expectedType: SystemLetterGrade, expectedValue: "FIRST CLASS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			system, value := DetectScoreType(tt.score)
			assert.Equal(t, tt.expectedType, system)
			assert.Equal(t, tt.expectedValue, value)
		})
	}
}

func TestNormalizeScore(t *testing.T) {
	tests := []struct {
		name               string
		score              interface{}
		scoreType          string
		university         string
		expectedPercentage float64
		expectedMethod     string
	}{
		{
			name:               "cgpa default cbse",
			score:              8.0,
			expectedPercentage: 76.0,
			expectedMethod:     "CBSE formula: CGPA × 9.5",
		},
		{
			name:               "cgpa with vtu university",
			score:              8.0,
			scoreType:          "cgpa",
			university:         "VTU Belagavi",
			expectedPercentage: 75.0,
			expectedMethod:     "VTU formula: (CGPA - 0.5) × 10",
		},
		{
			name:               "cgpa with mumbai university",
			score:              8.0,
			scoreType:          "cgpa",
			university:         "University of Mumbai",
			expectedPercentage: 67.8,
			expectedMethod:     "Mumbai University formula: 7.1 × CGPA + 11",
		},
		{
			name:               "percentage passthrough",
			score:              85.5,
			expectedPercentage: 85.5,
			expectedMethod:     "direct",
		},
		{
			name:               "gpa hint wins over detection",
			score:              3.7,
			scoreType:          "gpa",
			expectedPercentage: 90.0,
			expectedMethod:     "GPA 4.0 scale conversion",
		},
		{
			name:               "letter grade",
			score:              "A+",
			expectedPercentage: 90.0,
			expectedMethod:     "Letter grade mapping",
		},
		{
			name:               "grade hint coerces string",
			score:              "b+",
			scoreType:          "grade",
			expectedPercentage: 75.0,
			expectedMethod:     "Letter grade mapping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeScore(tt.score, tt.scoreType, tt.university)
			require.Empty(t, result.Error)
			assert.Equal(t, tt.expectedMethod, result.ConversionMethod)
			assert.InDelta(t, tt.expectedPercentage, result.Percentage, 0.001)
			assert.Equal(t, tt.score, result.OriginalScore)
		})
	}
}

func TestNormalizeScoreEquivalents(t *testing.T) {
	result := NormalizeScore(9.0, "cgpa", "")
	require.Empty(t, result.Error)
	assert.InDelta(t, 85.5, result.Percentage, 0.001)
	assert.InDelta(t, 9.0, result.CGPA10, 0.001)
	assert.Equal(t, 3.0, result.GPA4)
	assert.Equal(t, "A+", result.LetterGrade)
}

func TestNormalizeScoreFailures(t *testing.T) {
	tests := []struct {
		name       string
		score      interface{}
		scoreType  string
		university string
	}{
		{name: "cgpa out of range", score: 12.0, scoreType: "cgpa"},
		{name: "unknown letter grade", score: "ZZ", scoreType: "grade"},
		{name: "unparseable number hint", score: "abc", scoreType: "percentage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeScore(tt.score, tt.scoreType, tt.university)
			assert.Equal(t, "failed", result.ConversionMethod)
			assert.NotEmpty(t, result.Error)
			assert.Equal(t, 0.0, result.Percentage)
			assert.Equal(t, "F", result.LetterGrade)
		})
	}
}

func TestNormalizeScoreZeroStaysZero(t *testing.T) {
	result := NormalizeScore(0.0, "percentage", "")
	require.Empty(t, result.Error)
	assert.Equal(t, 0.0, result.Percentage)
	assert.Equal(t, 0.0, result.CGPA10)
	assert.Equal(t, 0.0, result.GPA4)
	assert.Equal(t, "F", result.LetterGrade)
}
