// Package grading converts heterogeneous academic scores (CGPA on several
// institutional scales, 4.0 GPA, letter grades) into a canonical percentage
// and back. All functions are pure and validate their inputs against the
// documented domain.
package grading

import (
	"math"
	"strings"
)

// GradeSystem identifies the marking scheme a raw score belongs to.
type GradeSystem string

const (
	SystemPercentage  GradeSystem = "percentage"
	SystemCGPA10      GradeSystem = "cgpa_10"
	SystemCGPA4       GradeSystem = "cgpa_4"
	SystemLetterGrade GradeSystem = "letter_grade"
)

// Letter grade tables. The India table follows the UGC 11-grade scheme, the
// US table the common 13-grade scheme.
var letterGradeIndiaOrder = []string{"O", "A+", "A", "B+", "B", "C+", "C", "D", "E", "F", "AB"}

var letterGradeIndia = map[string]float64{
	"O":  95,
	"A+": 90,
	"A":  85,
	"B+": 75,
	"B":  65,
	"C+": 55,
	"C":  50,
	"D":  45,
	"E":  40,
	"F":  0,
	"AB": 0,
}

var letterGradeUSOrder = []string{"A+", "A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D+", "D", "D-", "F"}

var letterGradeUS = map[string]float64{
	"A+": 97,
	"A":  93,
	"A-": 90,
	"B+": 87,
	"B":  83,
	"B-": 80,
	"C+": 77,
	"C":  73,
	"C-": 70,
	"D+": 67,
	"D":  63,
	"D-": 60,
	"F":  0,
}

var letterGradeToCGPA = map[string]float64{
	"O":  10.0,
	"A+": 9.5,
	"A":  9.0,
	"B+": 8.0,
	"B":  7.0,
	"C+": 6.0,
	"C":  5.0,
	"D":  4.0,
	"E":  3.5,
	"F":  0.0,
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CGPAToPercentageCBSE applies the CBSE board formula pct = cgpa * 9.5.
// This is the default 10-point conversion.
func CGPAToPercentageCBSE(cgpa float64) (float64, error) {
	if cgpa < 0 || cgpa > 10 {
		return 0, &ValidationError{Field: "CGPA", Value: cgpa, Min: 0, Max: 10}
	}
	return round2(cgpa * 9.5), nil
}

// PercentageToCGPACBSE is the CBSE inverse, cgpa = pct / 9.5. The VTU and
// Mumbai forward formulas have no matching inverse here; callers that need
// round-trips must stick to CBSE.
func PercentageToCGPACBSE(percentage float64) (float64, error) {
	if percentage < 0 || percentage > 100 {
		return 0, &ValidationError{Field: "Percentage", Value: percentage, Min: 0, Max: 100}
	}
	return round2(percentage / 9.5), nil
}

// CGPAToPercentageVTU applies the Visvesvaraya Technological University
// formula pct = (cgpa - 0.5) * 10.
func CGPAToPercentageVTU(cgpa float64) (float64, error) {
	if cgpa < 0 || cgpa > 10 {
		return 0, &ValidationError{Field: "CGPA", Value: cgpa, Min: 0, Max: 10}
	}
	return round2((cgpa - 0.5) * 10), nil
}

// CGPAToPercentageMumbai applies the University of Mumbai formula
// pct = 7.1 * cgpa + 11.
func CGPAToPercentageMumbai(cgpa float64) (float64, error) {
	if cgpa < 0 || cgpa > 10 {
		return 0, &ValidationError{Field: "CGPA", Value: cgpa, Min: 0, Max: 10}
	}
	return round2(7.1*cgpa + 11), nil
}

// CGPAToPercentageGeneric scales linearly, pct = (cgpa / scale) * 100.
func CGPAToPercentageGeneric(cgpa, scale float64) (float64, error) {
	if cgpa < 0 || cgpa > scale {
		return 0, &ValidationError{Field: "CGPA", Value: cgpa, Min: 0, Max: scale}
	}
	return round2((cgpa / scale) * 100), nil
}

// gpa4Breakpoints drives the piecewise-linear 4.0 GPA to percentage mapping.
// Each segment interpolates from (gpa, pct) up to the next breakpoint.
var gpa4Breakpoints = []struct {
	gpa  float64
	pct  float64
	next float64 // percentage at the upper edge of the segment
	span float64 // gpa width of the segment
}{
	{3.7, 90, 95, 0.3},
	{3.3, 87, 90, 0.4},
	{3.0, 83, 87, 0.3},
	{2.7, 80, 83, 0.3},
	{2.3, 77, 80, 0.4},
	{2.0, 73, 77, 0.3},
	{1.7, 70, 73, 0.3},
	{1.3, 67, 70, 0.4},
	{1.0, 63, 67, 0.3},
	{0.7, 60, 63, 0.3},
}

// GPA4ToPercentage maps a 4.0-scale GPA to percentage by piecewise-linear
// interpolation. A perfect 4.0 maps to 95, below 0.7 it falls off linearly
// to 0. The inverse, PercentageToGPA4, uses an independent step table and is
// intentionally not an exact inverse.
func GPA4ToPercentage(gpa float64) (float64, error) {
	if gpa < 0 || gpa > 4 {
		return 0, &ValidationError{Field: "GPA", Value: gpa, Min: 0, Max: 4}
	}
	if gpa >= 4.0 {
		return 95.0, nil
	}
	for _, bp := range gpa4Breakpoints {
		if gpa >= bp.gpa {
			return bp.pct + (gpa-bp.gpa)*(bp.next-bp.pct)/bp.span, nil
		}
	}
	return gpa * 60 / 0.7, nil
}

// PercentageToGPA4 maps a percentage onto the 4.0 scale using the standard
// 11-step US table.
func PercentageToGPA4(percentage float64) (float64, error) {
	if percentage < 0 || percentage > 100 {
		return 0, &ValidationError{Field: "Percentage", Value: percentage, Min: 0, Max: 100}
	}
	steps := []struct {
		min float64
		gpa float64
	}{
		{93, 4.0}, {90, 3.7}, {87, 3.3}, {83, 3.0}, {80, 2.7},
		{77, 2.3}, {73, 2.0}, {70, 1.7}, {67, 1.3}, {63, 1.0}, {60, 0.7},
	}
	for _, s := range steps {
		if percentage >= s.min {
			return s.gpa, nil
		}
	}
	return 0.0, nil
}

// LetterGradeToPercentage resolves a letter grade against the named system
// ("india" or "us"). When the exact grade is absent it falls back to a
// substring match before failing with UnknownGradeError.
func LetterGradeToPercentage(grade, system string) (float64, error) {
	upper := strings.ToUpper(strings.TrimSpace(grade))

	table, order := letterGradeIndia, letterGradeIndiaOrder
	if strings.ToLower(system) != "india" && system != "" {
		table, order = letterGradeUS, letterGradeUSOrder
	}

	if pct, ok := table[upper]; ok {
		return pct, nil
	}
	if upper != "" {
		for _, key := range order {
			if strings.Contains(upper, key) || strings.Contains(key, upper) {
				return table[key], nil
			}
		}
	}
	return 0, &UnknownGradeError{Grade: grade}
}

// LetterGradeToCGPA resolves a letter grade to the 10-point scale.
func LetterGradeToCGPA(grade string) (float64, error) {
	upper := strings.ToUpper(strings.TrimSpace(grade))
	if cgpa, ok := letterGradeToCGPA[upper]; ok {
		return cgpa, nil
	}
	return 0, &UnknownGradeError{Grade: grade}
}

// PercentageToLetterGrade bands a percentage into the India letter scheme.
func PercentageToLetterGrade(percentage float64) string {
	switch {
	case percentage >= 90:
		return "O"
	case percentage >= 80:
		return "A+"
	case percentage >= 70:
		return "A"
	case percentage >= 60:
		return "B+"
	case percentage >= 50:
		return "B"
	case percentage >= 45:
		return "C+"
	case percentage >= 40:
		return "C"
	case percentage >= 35:
		return "D"
	default:
		return "F"
	}
}

func isKnownLetterGrade(s string) bool {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if _, ok := letterGradeIndia[upper]; ok {
		return true
	}
	_, ok := letterGradeUS[upper]
	return ok
}
