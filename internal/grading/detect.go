package grading

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NormalizedScore is the canonical result of normalizing any raw score. When
// conversion fails the zero values are returned with ConversionMethod set to
// "failed" and Error carrying the cause, so batch normalization stays
// non-fatal.
type NormalizedScore struct {
	OriginalScore    interface{} `json:"originalScore"`
	DetectedType     string      `json:"detectedType"`
	ConversionMethod string      `json:"conversionMethod"`
	Percentage       float64     `json:"percentage"`
	CGPA10           float64     `json:"cgpa10"`
	GPA4             float64     `json:"gpa4"`
	LetterGrade      string      `json:"letterGrade"`
	Error            string      `json:"error,omitempty"`
}

// DetectScoreType classifies an untyped score and returns the adjusted
// value. Numbers above 10 read as percentages, numbers in (4,10] as 10-point
// CGPA, numbers at or below 4 as 4.0 GPA. The 0-4 band is inherently
// ambiguous, so callers with a type hint should pass it to NormalizeScore
// instead of relying on this heuristic.
func DetectScoreType(score interface{}) (GradeSystem, interface{}) {
	if s, ok := score.(string); ok {
		s = strings.ToUpper(strings.TrimSpace(s))

		if isKnownLetterGrade(s) {
			return SystemLetterGrade, s
		}
		if strings.Contains(s, "%") {
			if v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, "%", "")), 64); err == nil {
				return SystemPercentage, v
			}
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return SystemLetterGrade, s
		}
		score = v
	}

	if v, ok := toFloat(score); ok {
		switch {
		case v > 10:
			return SystemPercentage, v
		case v > 4:
			return SystemCGPA10, v
		default:
			return SystemCGPA4, v
		}
	}
	return SystemPercentage, 0.0
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// NormalizeScore converts any raw score to the canonical percentage along
// with its 10-point CGPA, 4.0 GPA, and letter grade equivalents. scoreType
// ("cgpa", "gpa", "grade", "percentage") overrides autodetection; university
// selects the 10-point conversion formula (VTU, Mumbai, default CBSE).
func NormalizeScore(score interface{}, scoreType, university string) *NormalizedScore {
	result := &NormalizedScore{
		OriginalScore: score,
		LetterGrade:   "F",
	}

	detected, value, err := resolveType(score, scoreType)
	if err != nil {
		result.ConversionMethod = "failed"
		result.Error = err.Error()
		return result
	}
	result.DetectedType = string(detected)

	percentage, method, err := toPercentage(detected, value, university)
	if err != nil {
		result.ConversionMethod = "failed"
		result.Error = err.Error()
		return result
	}
	result.ConversionMethod = method
	result.Percentage = round2(percentage)

	if percentage > 0 {
		if cgpa, err := PercentageToCGPACBSE(percentage); err == nil {
			result.CGPA10 = cgpa
		}
		if gpa, err := PercentageToGPA4(percentage); err == nil {
			result.GPA4 = gpa
		}
	}
	result.LetterGrade = PercentageToLetterGrade(percentage)
	return result
}

func resolveType(score interface{}, scoreType string) (GradeSystem, interface{}, error) {
	if scoreType == "" {
		detected, value := DetectScoreType(score)
		return detected, value, nil
	}

	hint := strings.ToLower(scoreType)
	switch {
	case strings.Contains(hint, "cgpa") && hint != "cgpa_4":
		v, err := coerceFloat(score)
		return SystemCGPA10, v, err
	case strings.Contains(hint, "gpa") || hint == "cgpa_4":
		v, err := coerceFloat(score)
		return SystemCGPA4, v, err
	case strings.Contains(hint, "grade"):
		return SystemLetterGrade, strings.ToUpper(fmt.Sprintf("%v", score)), nil
	default:
		v, err := coerceFloat(score)
		return SystemPercentage, v, err
	}
}

func coerceFloat(score interface{}) (float64, error) {
	if v, ok := toFloat(score); ok {
		return v, nil
	}
	if s, ok := score.(string); ok {
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	}
	return 0, fmt.Errorf("cannot convert %v to a number", score)
}

func toPercentage(system GradeSystem, value interface{}, university string) (float64, string, error) {
	switch system {
	case SystemPercentage:
		v, err := coerceFloat(value)
		if err != nil {
			return 0, "", err
		}
		return v, "direct", nil

	case SystemCGPA10:
		v, err := coerceFloat(value)
		if err != nil {
			return 0, "", err
		}
		uni := strings.ToLower(university)
		switch {
		case strings.Contains(uni, "vtu") || strings.Contains(uni, "visvesvaraya"):
			pct, err := CGPAToPercentageVTU(v)
			return pct, "VTU formula: (CGPA - 0.5) × 10", err
		case strings.Contains(uni, "mumbai"):
			pct, err := CGPAToPercentageMumbai(v)
			return pct, "Mumbai University formula: 7.1 × CGPA + 11", err
		default:
			pct, err := CGPAToPercentageCBSE(v)
			return pct, "CBSE formula: CGPA × 9.5", err
		}

	case SystemCGPA4:
		v, err := coerceFloat(value)
		if err != nil {
			return 0, "", err
		}
		pct, err := GPA4ToPercentage(v)
		return pct, "GPA 4.0 scale conversion", err

	case SystemLetterGrade:
		grade := fmt.Sprintf("%v", value)
		pct, err := LetterGradeToPercentage(grade, "india")
		return pct, "Letter grade mapping", err
	}
	return 0, "unknown", nil
}
