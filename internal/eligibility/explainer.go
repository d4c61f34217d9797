// Package eligibility produces auditable, per-criterion eligibility reports.
// Unlike the matching engine every present rule is a hard pass/fail gate
// with no partial credit; a student is eligible iff zero checks fail.
// Checks whose required input is missing from the profile emit a warning
// instead of a failure.
package eligibility

import (
	"fmt"
	"math"
	"strings"
	"time"

	"scholarship-workers/internal/catalog"
	"scholarship-workers/internal/income"
	"scholarship-workers/internal/models"

	"github.com/google/uuid"
)

// explainer accumulates check results for one student/scholarship pair.
type explainer struct {
	checks   []models.EligibilityCheck
	passed   []models.EligibilityCheck
	failed   []models.EligibilityCheck
	warnings []string
}

func (e *explainer) addCheck(criterion string, passed bool, reason string, details map[string]interface{}) {
	check := models.EligibilityCheck{
		Criterion: criterion,
		Passed:    passed,
		Reason:    reason,
		Details:   details,
	}
	e.checks = append(e.checks, check)
	if passed {
		e.passed = append(e.passed, check)
	} else {
		e.failed = append(e.failed, check)
	}
}

func (e *explainer) addWarning(message string) {
	e.warnings = append(e.warnings, message)
}

func studentAnnualIncome(student models.StudentProfile) float64 {
	if student.FamilyAnnualIncome != nil {
		return *student.FamilyAnnualIncome
	}
	return float64(income.Normalize(student.IncomeLevel).AnnualIncome)
}

// Explain runs every rule on the scholarship against the student and builds
// the full audit report.
func Explain(student models.StudentProfile, s models.Scholarship) models.EligibilityReport {
	e := &explainer{}
	rules := s.Rules

	e.checkCategory(student, rules)
	e.checkIncome(student, rules)
	e.checkMarks(student, rules)
	e.checkEducationLevel(student, rules)
	e.checkGender(student, rules)
	e.checkRegion(student, rules)
	e.checkFirstGraduate(student, rules)
	e.checkParentOccupation(student, rules)
	e.checkReligion(student, rules)
	e.checkAge(student, rules)
	e.checkSubjects(student, rules)

	report := models.EligibilityReport{
		ReportID: uuid.NewString(),
		Scholarship: models.ScholarshipRef{
			ID:       s.ID,
			Title:    s.Title,
			Provider: s.Provider,
			Amount:   s.Amount,
			Deadline: s.Deadline,
		},
		IsEligible:      len(e.failed) == 0,
		TotalChecks:     len(e.checks),
		PassedChecks:    len(e.passed),
		FailedChecks:    len(e.failed),
		Checks:          e.checks,
		Passed:          e.passed,
		Failed:          e.failed,
		WarningMessages: e.warnings,
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
	}

	if report.IsEligible {
		report.Statement = fmt.Sprintf("ELIGIBLE: Student meets all %d criteria for %s", report.TotalChecks, s.Title)
		report.Recommendation = "Recommended to apply"
	} else {
		var failedCriteria []string
		for _, c := range e.failed {
			failedCriteria = append(failedCriteria, c.Criterion)
		}
		report.Statement = fmt.Sprintf("NOT ELIGIBLE: Failed %d of %d criteria (%s)",
			report.FailedChecks, report.TotalChecks, strings.Join(failedCriteria, ", "))
		report.Recommendation = "Does not meet eligibility requirements"
	}
	return report
}

func (e *explainer) checkCategory(student models.StudentProfile, rules models.RuleSet) {
	if len(rules.Categories) == 0 {
		return
	}
	studentCategory := string(student.Category)
	details := map[string]interface{}{
		"required":     []string(rules.Categories),
		"studentValue": studentCategory,
	}
	if rules.Categories.Contains(studentCategory) {
		e.addCheck("Category", true,
			fmt.Sprintf("[PASS] Student category '%s' is accepted (allowed: %s)",
				studentCategory, strings.Join(rules.Categories, ", ")), details)
	} else {
		e.addCheck("Category", false,
			fmt.Sprintf("[FAIL] Student category '%s' not in allowed categories: %s",
				studentCategory, strings.Join(rules.Categories, ", ")), details)
	}
}

func (e *explainer) checkIncome(student models.StudentProfile, rules models.RuleSet) {
	if rules.MaxIncome == nil && rules.MinIncome == nil {
		return
	}
	studentIncome := studentAnnualIncome(student)
	studentLPA := studentIncome / 100000

	if rules.MaxIncome != nil {
		maxLPA := *rules.MaxIncome / 100000
		if studentIncome <= *rules.MaxIncome {
			e.addCheck("Income Limit", true,
				fmt.Sprintf("[PASS] Family income Rs.%.1f LPA is within limit of Rs.%.1f LPA", studentLPA, maxLPA),
				map[string]interface{}{
					"maxAllowed":    *rules.MaxIncome,
					"studentIncome": studentIncome,
				})
		} else {
			e.addCheck("Income Limit", false,
				fmt.Sprintf("[FAIL] Family income Rs.%.1f LPA exceeds limit of Rs.%.1f LPA", studentLPA, maxLPA),
				map[string]interface{}{
					"maxAllowed":    *rules.MaxIncome,
					"studentIncome": studentIncome,
					"exceededBy":    studentIncome - *rules.MaxIncome,
				})
		}
	}

	if rules.MinIncome != nil {
		minLPA := *rules.MinIncome / 100000
		if studentIncome >= *rules.MinIncome {
			e.addCheck("Income Floor", true,
				fmt.Sprintf("[PASS] Family income Rs.%.1f LPA is above floor of Rs.%.1f LPA", studentLPA, minLPA),
				map[string]interface{}{
					"minRequired":   *rules.MinIncome,
					"studentIncome": studentIncome,
				})
		} else {
			e.addCheck("Income Floor", false,
				fmt.Sprintf("[FAIL] Family income Rs.%.1f LPA is below floor of Rs.%.1f LPA", studentLPA, minLPA),
				map[string]interface{}{
					"minRequired":   *rules.MinIncome,
					"studentIncome": studentIncome,
				})
		}
	}
}

func (e *explainer) checkMarks(student models.StudentProfile, rules models.RuleSet) {
	if rules.MinMarks == nil {
		return
	}
	marks := student.OverallPercentage
	if marks >= *rules.MinMarks {
		e.addCheck("Minimum Marks", true,
			fmt.Sprintf("[PASS] Academic score %g%% meets minimum requirement of %g%%", marks, *rules.MinMarks),
			map[string]interface{}{
				"required":     *rules.MinMarks,
				"studentScore": marks,
				"margin":       marks - *rules.MinMarks,
			})
	} else {
		e.addCheck("Minimum Marks", false,
			fmt.Sprintf("[FAIL] Academic score %g%% is below minimum requirement of %g%%", marks, *rules.MinMarks),
			map[string]interface{}{
				"required":     *rules.MinMarks,
				"studentScore": marks,
				"shortfall":    *rules.MinMarks - marks,
			})
	}
}

func (e *explainer) checkEducationLevel(student models.StudentProfile, rules models.RuleSet) {
	if len(rules.EducationLevels) == 0 {
		return
	}
	level := student.EducationLevel
	if level == "" {
		e.addWarning("Education level not provided - education requirement not verified")
		return
	}
	passed := rules.EducationLevels.Contains(level)
	if !passed {
		for _, required := range rules.EducationLevels {
			if strings.Contains(strings.ToLower(level), strings.ToLower(required)) {
				passed = true
				break
			}
		}
	}
	details := map[string]interface{}{
		"requiredLevels": []string(rules.EducationLevels),
		"studentLevel":   level,
	}
	if passed {
		e.addCheck("Education Level", true,
			fmt.Sprintf("[PASS] Education level '%s' is eligible", level), details)
	} else {
		e.addCheck("Education Level", false,
			fmt.Sprintf("[FAIL] Education level '%s' not in required: %s",
				level, strings.Join(rules.EducationLevels, ", ")), details)
	}
}

func (e *explainer) checkGender(student models.StudentProfile, rules models.RuleSet) {
	if len(rules.Genders) == 0 {
		return
	}
	gender := string(student.Gender)
	details := map[string]interface{}{
		"required":      []string(rules.Genders),
		"studentGender": gender,
	}
	if rules.Genders.Contains(gender) {
		e.addCheck("Gender", true,
			fmt.Sprintf("[PASS] Gender requirement met: %s", gender), details)
	} else {
		e.addCheck("Gender", false,
			fmt.Sprintf("[FAIL] Gender '%s' does not match required: %s",
				gender, strings.Join(rules.Genders, ", ")), details)
	}
}

func (e *explainer) checkRegion(student models.StudentProfile, rules models.RuleSet) {
	required := rules.Regions
	if len(required) == 0 {
		required = rules.States
	}
	if len(required) == 0 {
		return
	}
	region := student.Region
	if region == "" {
		region = "Unknown"
	}
	passed := false
	for _, r := range required {
		rl, sl := strings.ToLower(r), strings.ToLower(region)
		if strings.Contains(sl, rl) || strings.Contains(rl, sl) {
			passed = true
			break
		}
	}
	details := map[string]interface{}{
		"requiredRegions": []string(required),
		"studentRegion":   region,
	}
	if passed {
		e.addCheck("Region/State", true,
			fmt.Sprintf("[PASS] Region '%s' is eligible", region), details)
	} else {
		e.addCheck("Region/State", false,
			fmt.Sprintf("[FAIL] Region '%s' not in eligible regions: %s",
				region, strings.Join(required, ", ")), details)
	}
}

func (e *explainer) checkFirstGraduate(student models.StudentProfile, rules models.RuleSet) {
	if rules.IsFirstGraduate == nil || !*rules.IsFirstGraduate {
		return
	}
	isFirst := student.IsFirstGraduate != nil && *student.IsFirstGraduate
	details := map[string]interface{}{"isFirstGraduate": isFirst}
	if isFirst {
		e.addCheck("First Graduate", true,
			"[PASS] Student is first graduate in family", details)
	} else {
		e.addCheck("First Graduate", false,
			"[FAIL] This scholarship requires the student to be first graduate in family", details)
	}
}

func (e *explainer) checkParentOccupation(student models.StudentProfile, rules models.RuleSet) {
	if len(rules.ParentOccupations) == 0 {
		return
	}
	occupation := student.ParentOccupation
	if occupation == "" {
		e.addWarning("Parent occupation not provided - occupation requirement not verified")
		return
	}
	details := map[string]interface{}{
		"required":          []string(rules.ParentOccupations),
		"studentOccupation": occupation,
	}
	if rules.ParentOccupations.Contains(occupation) {
		e.addCheck("Parent Occupation", true,
			fmt.Sprintf("[PASS] Parent occupation '%s' is accepted", occupation), details)
	} else {
		e.addCheck("Parent Occupation", false,
			fmt.Sprintf("[FAIL] Parent occupation '%s' not in required: %s",
				occupation, strings.Join(rules.ParentOccupations, ", ")), details)
	}
}

func (e *explainer) checkReligion(student models.StudentProfile, rules models.RuleSet) {
	if len(rules.Religions) == 0 {
		return
	}
	religion := student.Religion
	if religion == "" {
		e.addWarning("Religion not provided - religion requirement not verified")
		return
	}
	details := map[string]interface{}{
		"required":        []string(rules.Religions),
		"studentReligion": religion,
	}
	if rules.Religions.Contains(religion) {
		e.addCheck("Religion", true,
			fmt.Sprintf("[PASS] Religion requirement met: %s", religion), details)
	} else {
		e.addCheck("Religion", false,
			fmt.Sprintf("[FAIL] Religion '%s' does not match required: %s",
				religion, strings.Join(rules.Religions, ", ")), details)
	}
}

func (e *explainer) checkAge(student models.StudentProfile, rules models.RuleSet) {
	if rules.MinAge == nil && rules.MaxAge == nil {
		return
	}
	if student.Age == nil {
		e.addWarning("Age not provided - age requirement not verified")
		return
	}
	minAge, maxAge := 0, 100
	if rules.MinAge != nil {
		minAge = *rules.MinAge
	}
	if rules.MaxAge != nil {
		maxAge = *rules.MaxAge
	}
	age := *student.Age
	details := map[string]interface{}{
		"minAge":     minAge,
		"maxAge":     maxAge,
		"studentAge": age,
	}
	if age >= minAge && age <= maxAge {
		e.addCheck("Age Requirement", true,
			fmt.Sprintf("[PASS] Age %d is within allowed range (%d-%d years)", age, minAge, maxAge), details)
	} else {
		e.addCheck("Age Requirement", false,
			fmt.Sprintf("[FAIL] Age %d is outside allowed range (%d-%d years)", age, minAge, maxAge), details)
	}
}

func (e *explainer) checkSubjects(student models.StudentProfile, rules models.RuleSet) {
	required := rules.Subjects
	if len(required) == 0 {
		required = rules.Streams
	}
	if len(required) == 0 {
		return
	}
	var subjects []string
	for _, m := range student.Marks {
		if m.Subject != "" {
			subjects = append(subjects, strings.ToLower(m.Subject))
		}
	}
	if len(subjects) == 0 {
		e.addWarning("Subject details not provided - stream requirement not fully verified")
		return
	}
	matched := false
	for _, req := range required {
		reqLower := strings.ToLower(req)
		for _, subj := range subjects {
			if strings.Contains(subj, reqLower) || strings.Contains(reqLower, subj) {
				matched = true
				break
			}
		}
		if matched {
			break
		}
	}
	details := map[string]interface{}{
		"requiredSubjects": []string(required),
		"studentSubjects":  subjects,
	}
	if matched {
		e.addCheck("Subject/Stream", true,
			"[PASS] Student has relevant subjects for this scholarship", details)
	} else {
		e.addCheck("Subject/Stream", false,
			fmt.Sprintf("[FAIL] Required subjects not found: %s", strings.Join(required, ", ")), details)
	}
}

// ExplainAll evaluates every catalog entry for one student and partitions
// the results. An empty catalog yields an eligibility rate of 0.
func ExplainAll(student models.StudentProfile, c *catalog.Catalog) models.BatchEligibilityReport {
	entries := c.All()
	report := models.BatchEligibilityReport{
		BatchID: uuid.NewString(),
		Student: models.StudentEcho{
			Name:        student.Name,
			Category:    string(student.Category),
			Percentage:  student.OverallPercentage,
			IncomeLevel: student.IncomeLevel,
			Region:      student.Region,
		},
		TotalScholarships: len(entries),
		GeneratedAt:       time.Now().UTC().Format(time.RFC3339),
	}

	for _, s := range entries {
		detail := Explain(student, s)
		report.DetailedReports = append(report.DetailedReports, detail)

		if detail.IsEligible {
			report.Eligible = append(report.Eligible, models.EligibleSummary{
				ID:              s.ID,
				Title:           s.Title,
				Amount:          s.Amount,
				MatchedCriteria: detail.PassedChecks,
			})
			report.EligibleCount++
		} else {
			entry := models.IneligibleSummary{ID: s.ID, Title: s.Title}
			for _, c := range detail.Failed {
				entry.FailedCriteria = append(entry.FailedCriteria, c.Criterion)
				entry.Reasons = append(entry.Reasons, c.Reason)
			}
			report.NotEligible = append(report.NotEligible, entry)
			report.NotEligibleCount++
		}
	}

	rate := 0.0
	if report.TotalScholarships > 0 {
		rate = math.Round(float64(report.EligibleCount)/float64(report.TotalScholarships)*1000) / 10
	}
	report.Summary = models.BatchSummary{
		Message: fmt.Sprintf("Student is eligible for %d out of %d scholarships",
			report.EligibleCount, report.TotalScholarships),
		EligibilityRate: rate,
	}
	return report
}
