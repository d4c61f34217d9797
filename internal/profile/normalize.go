// Package profile canonicalizes a raw student profile: the overall score is
// normalized to a percentage, per-subject percentages are computed, and the
// income string is parsed into an annual value. The input profile is never
// mutated; callers always get a fresh copy.
package profile

import (
	"math"

	"scholarship-workers/internal/grading"
	"scholarship-workers/internal/income"
	"scholarship-workers/internal/models"
)

// Normalized is a student profile after canonicalization, with the full
// score and income breakdowns attached for downstream explainability.
type Normalized struct {
	models.StudentProfile
	NormalizedScore  *grading.NormalizedScore `json:"normalizedScore,omitempty"`
	NormalizedIncome *income.Normalized       `json:"normalizedIncome,omitempty"`
}

// Normalize canonicalizes a profile. The overall score is converted using
// the profile's scoreType and university hints, subject marks gain a
// percentage (entries with a non-positive max score are passed through
// unchanged), and incomeLevel is parsed into familyAnnualIncome when no
// explicit annual figure is present.
func Normalize(p models.StudentProfile) Normalized {
	out := Normalized{StudentProfile: p}
	out.Marks = normalizeMarks(p.Marks)

	if p.OverallPercentage != 0 || p.ScoreType != "" {
		score := grading.NormalizeScore(p.OverallPercentage, p.ScoreType, p.University)
		out.NormalizedScore = score
		if score.Error == "" {
			out.OverallPercentage = score.Percentage
		}
	}

	if p.IncomeLevel != "" {
		parsed := income.Normalize(p.IncomeLevel)
		out.NormalizedIncome = &parsed
		if p.FamilyAnnualIncome == nil && parsed.IncomeCategory != income.CategoryUnknown {
			annual := float64(parsed.AnnualIncome)
			out.FamilyAnnualIncome = &annual
		}
	}

	return out
}

func normalizeMarks(marks []models.SubjectMark) []models.SubjectMark {
	if len(marks) == 0 {
		return nil
	}
	out := make([]models.SubjectMark, len(marks))
	for i, m := range marks {
		out[i] = m
		if m.MaxScore > 0 {
			out[i].Percentage = math.Round(m.Score/m.MaxScore*100*100) / 100
		}
	}
	return out
}
