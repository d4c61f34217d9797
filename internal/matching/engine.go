// Package matching ranks scholarships for a student. Each catalog entry gets
// an additive weighted score over independent criteria; an axis the
// scholarship does not constrain contributes full credit, so unconstrained
// scholarships never rank below constrained ones a student also satisfies.
package matching

import (
	"fmt"
	"sort"
	"strings"

	"scholarship-workers/internal/catalog"
	"scholarship-workers/internal/models"
)

// Criterion weights. They sum to exactly 100.
const (
	categoryWeight   = 30
	incomeWeight     = 25
	marksWeight      = 20
	genderWeight     = 10
	firstGenWeight   = 5
	occupationWeight = 5
	religionWeight   = 5

	// partial credit
	incomePartial = 15
	marksPartial  = 10

	// DefaultMinScore is the cutoff below which a scholarship is not worth
	// surfacing to the student.
	DefaultMinScore = 50
)

// Engine scores students against an injected read-only catalog.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine wraps a catalog for matching.
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// legacy banded labels still stored on older profiles
var incomeLevelValues = map[string]float64{
	"< 1 LPA": 100000,
	"< 2 LPA": 200000,
	"< 3 LPA": 300000,
	"< 5 LPA": 500000,
	"> 5 LPA": 600000,
	"1-3 LPA": 200000,
	"3-5 LPA": 400000,
}

const assumedIncome = 300000

func studentIncome(student models.StudentProfile) float64 {
	if student.FamilyAnnualIncome != nil {
		return *student.FamilyAnnualIncome
	}
	if v, ok := incomeLevelValues[student.IncomeLevel]; ok {
		return v
	}
	return assumedIncome
}

func studentCategory(student models.StudentProfile) string {
	if student.Category == "" {
		return string(models.CategoryGeneral)
	}
	return string(student.Category)
}

// Score computes the 0-100 weighted match for one student and scholarship.
func Score(student models.StudentProfile, s models.Scholarship) float64 {
	rules := s.Rules
	score := 0.0

	if len(rules.Categories) > 0 {
		if rules.Categories.Contains(studentCategory(student)) {
			score += categoryWeight
		}
	} else {
		score += categoryWeight
	}

	if rules.MaxIncome != nil {
		income := studentIncome(student)
		if income <= *rules.MaxIncome {
			score += incomeWeight
		} else if income-*rules.MaxIncome < income*0.1 {
			score += incomePartial
		}
	} else {
		score += incomeWeight
	}

	if rules.MinMarks != nil {
		switch {
		case student.OverallPercentage >= *rules.MinMarks:
			score += marksWeight
		case student.OverallPercentage >= *rules.MinMarks-5:
			score += marksPartial
		}
	} else {
		score += marksWeight
	}

	if len(rules.Genders) > 0 {
		if rules.Genders.Contains(string(student.Gender)) {
			score += genderWeight
		}
	} else {
		score += genderWeight
	}

	if rules.IsFirstGraduate != nil {
		if student.IsFirstGraduate != nil && *student.IsFirstGraduate == *rules.IsFirstGraduate {
			score += firstGenWeight
		}
	} else {
		score += firstGenWeight
	}

	if len(rules.ParentOccupations) > 0 {
		if rules.ParentOccupations.Contains(student.ParentOccupation) {
			score += occupationWeight
		}
	} else {
		score += occupationWeight
	}

	if len(rules.Religions) > 0 {
		if rules.Religions.Contains(student.Religion) {
			score += religionWeight
		}
	} else {
		score += religionWeight
	}

	if score > 100 {
		score = 100
	}
	return score
}

// FindMatches scores every catalog entry, keeps those at or above minScore,
// and returns them sorted by score descending. Equal scores keep catalog
// order.
func (e *Engine) FindMatches(student models.StudentProfile, minScore float64) []models.MatchResult {
	var matches []models.MatchResult
	for _, s := range e.catalog.All() {
		score := Score(student, s)
		if score < minScore {
			continue
		}
		matches = append(matches, models.MatchResult{
			Scholarship:       s,
			MatchScore:        score,
			Reason:            buildReason(student, s, score),
			AutofillStatement: AutofillStatement(student, s),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	return matches
}

func buildReason(student models.StudentProfile, s models.Scholarship, score float64) string {
	var parts []string

	switch {
	case score >= 90:
		parts = append(parts, "Excellent match!")
	case score >= 75:
		parts = append(parts, "Strong match!")
	case score >= 60:
		parts = append(parts, "Good match")
	default:
		parts = append(parts, "Eligible")
	}

	rules := s.Rules
	if len(rules.Categories) > 0 && rules.Categories.Contains(studentCategory(student)) {
		parts = append(parts, fmt.Sprintf("matches %s category", studentCategory(student)))
	}
	if rules.MinMarks != nil && student.OverallPercentage >= *rules.MinMarks {
		parts = append(parts, fmt.Sprintf("meets %g%% marks requirement", *rules.MinMarks))
	}
	if rules.MaxIncome != nil && studentIncome(student) <= *rules.MaxIncome {
		parts = append(parts, fmt.Sprintf("income under ₹%s", formatAmount(*rules.MaxIncome)))
	}

	return strings.Join(parts, ". ") + "."
}

// AutofillStatement builds a first-person application blurb from the profile
// fields that are actually present. Missing optional fields are skipped, not
// rendered as placeholders.
func AutofillStatement(student models.StudentProfile, s models.Scholarship) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("I am %s, a dedicated student from %s", student.Name, student.Region))

	if student.Category != "" {
		parts = append(parts, fmt.Sprintf("belonging to %s category", student.Category))
	}

	parts = append(parts, fmt.Sprintf("with an overall percentage of %g%%.", student.OverallPercentage))

	if student.FamilyAnnualIncome != nil {
		parts = append(parts, fmt.Sprintf("My family's annual income is ₹%s.", formatAmount(*student.FamilyAnnualIncome)))
	} else if student.IncomeLevel != "" {
		parts = append(parts, fmt.Sprintf("My family income is %s.", student.IncomeLevel))
	}

	if student.IsFirstGraduate != nil && *student.IsFirstGraduate {
		parts = append(parts, "I am the first graduate in my family, striving to break barriers through education.")
	}

	if student.ParentOccupation != "" {
		parts = append(parts, fmt.Sprintf("My parent works as a %s.", student.ParentOccupation))
	}

	parts = append(parts, fmt.Sprintf("I am applying for %s to support my educational journey.", s.Title))

	return strings.Join(parts, " ")
}

// formatAmount renders a rupee amount with thousands separators.
func formatAmount(v float64) string {
	n := int64(v)
	if n < 0 {
		return fmt.Sprintf("-%s", formatAmount(-v))
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
