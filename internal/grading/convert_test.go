// internal/grading/convert_test.go
package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCGPAToPercentageCBSE(t *testing.T) {
	tests := []struct {
		name     string
		cgpa     float64
		expected float64
		wantErr  bool
	}{
		{name: "perfect score", cgpa: 10.0, expected: 95.0},
		{name: "typical score", cgpa: 8.2, expected: 77.9},
		{name: "zero", cgpa: 0, expected: 0},
		{name: "negative rejected", cgpa: -1, wantErr: true},
		{name: "above scale rejected", cgpa: 10.5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pct, err := CGPAToPercentageCBSE(tt.cgpa)
			if tt.wantErr {
				require.Error(t, err)
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, pct, 0.001)
		})
	}
}

func TestCGPARoundTripCBSE(t *testing.T) {
	for _, cgpa := range []float64{0, 2.5, 5.0, 7.3, 9.5, 10.0} {
		pct, err := CGPAToPercentageCBSE(cgpa)
		require.NoError(t, err)
		back, err := PercentageToCGPACBSE(pct)
		require.NoError(t, err)
		assert.InDelta(t, cgpa, back, 0.01, "round trip for cgpa %v", cgpa)
	}
}

func TestInstitutionalFormulas(t *testing.T) {
	vtu, err := CGPAToPercentageVTU(8.5)
	require.NoError(t, err)
	assert.InDelta(t, 80.0, vtu, 0.001)

	mumbai, err := CGPAToPercentageMumbai(8.0)
	require.NoError(t, err)
	assert.InDelta(t, 67.8, mumbai, 0.001)

	generic, err := CGPAToPercentageGeneric(4.0, 5.0)
	require.NoError(t, err)
	assert.InDelta(t, 80.0, generic, 0.001)

	_, err = CGPAToPercentageGeneric(6.0, 5.0)
	assert.Error(t, err)
}

func TestGPA4ToPercentage(t *testing.T) {
	tests := []struct {
		name     string
		gpa      float64
		expected float64
	}{
		{name: "perfect", gpa: 4.0, expected: 95.0},
		{name: "zero", gpa: 0.0, expected: 0.0},
		{name: "breakpoint 3.7", gpa: 3.7, expected: 90.0},
		{name: "breakpoint 3.0", gpa: 3.0, expected: 83.0},
		{name: "breakpoint 0.7", gpa: 0.7, expected: 60.0},
		{name: "below lowest band", gpa: 0.35, expected: 30.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pct, err := GPA4ToPercentage(tt.gpa)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, pct, 0.001)
		})
	}
}

func TestGPA4ToPercentageMonotonic(t *testing.T) {
	prev := -1.0
	for gpa := 0.0; gpa <= 4.0; gpa += 0.05 {
		pct, err := GPA4ToPercentage(gpa)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, pct, prev, "not monotonic at gpa %v", gpa)
		prev = pct
	}
}

func TestGPA4ToPercentageRejectsOutOfRange(t *testing.T) {
	_, err := GPA4ToPercentage(4.5)
	assert.Error(t, err)
	_, err = GPA4ToPercentage(-0.1)
	assert.Error(t, err)
}

func TestPercentageToGPA4(t *testing.T) {
	tests := []struct {
		percentage float64
		expected   float64
	}{
		{95, 4.0},
		{93, 4.0},
		{90, 3.7},
		{83, 3.0},
		{60, 0.7},
		{59.9, 0.0},
	}

	for _, tt := range tests {
		gpa, err := PercentageToGPA4(tt.percentage)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, gpa, "percentage %v", tt.percentage)
	}
}

func TestLetterGradeToPercentage(t *testing.T) {
	tests := []struct {
		name     string
		grade    string
		system   string
		expected float64
		wantErr  bool
	}{
		{name: "india outstanding", grade: "O", system: "india", expected: 95},
		{name: "india a plus", grade: "A+", system: "india", expected: 90},
		{name: "lowercase trimmed", grade: " b+ ", system: "india", expected: 75},
		{name: "absent counts as fail", grade: "AB", system: "india", expected: 0},
		{name: "us system", grade: "A-", system: "us", expected: 90},
		{name: "substring fallback", grade: "A GRADE", system: "india", expected: 85},
		{name: "unknown grade", grade: "Z", system: "india", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pct, err := LetterGradeToPercentage(tt.grade, tt.system)
			if tt.wantErr {
				require.Error(t, err)
				var gErr *UnknownGradeError
				assert.ErrorAs(t, err, &gErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, pct)
		})
	}
}

func TestLetterGradeToCGPA(t *testing.T) {
	cgpa, err := LetterGradeToCGPA("a+")
	require.NoError(t, err)
	assert.Equal(t, 9.5, cgpa)

	_, err = LetterGradeToCGPA("XY")
	assert.Error(t, err)
}

func TestPercentageToLetterGrade(t *testing.T) {
	tests := []struct {
		percentage float64
		expected   string
	}{
		{95, "O"},
		{90, "O"},
		{85, "A+"},
		{72, "A"},
		{61, "B+"},
		{50, "B"},
		{46, "C+"},
		{41, "C"},
		{36, "D"},
		{20, "F"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, PercentageToLetterGrade(tt.percentage), "percentage %v", tt.percentage)
	}
}

func TestConversionTable(t *testing.T) {
	table := ConversionTable()
	require.Len(t, table, 13)

	assert.Equal(t, 10.0, table[0].CGPA10)
	assert.Equal(t, 95.0, table[0].Percentage)
	assert.Equal(t, "O", table[0].LetterGrade)
	assert.Equal(t, "Outstanding", table[0].Description)

	last := table[len(table)-1]
	assert.Equal(t, 4.0, last.CGPA10)
	assert.InDelta(t, 38.0, last.Percentage, 0.001)

	for i := 1; i < len(table); i++ {
		assert.Less(t, table[i].Percentage, table[i-1].Percentage)
	}
}
