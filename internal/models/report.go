// internal/models/report.go
package models

// EligibilityCheck is one criterion's pass/fail record with the inputs that
// produced the decision.
type EligibilityCheck struct {
	Criterion string                 `json:"criterion"`
	Passed    bool                   `json:"passed"`
	Reason    string                 `json:"reason"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// ScholarshipRef echoes the catalog entry a report was produced for.
type ScholarshipRef struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Provider string `json:"provider"`
	Amount   string `json:"amount"`
	Deadline string `json:"deadline"`
}

// EligibilityReport is the binary, per-criterion audit trail for one
// student/scholarship pair.
type EligibilityReport struct {
	ReportID        string             `json:"reportId"`
	Scholarship     ScholarshipRef     `json:"scholarship"`
	IsEligible      bool               `json:"isEligible"`
	TotalChecks     int                `json:"totalChecks"`
	PassedChecks    int                `json:"passedChecks"`
	FailedChecks    int                `json:"failedChecks"`
	Checks          []EligibilityCheck `json:"checks"`
	Passed          []EligibilityCheck `json:"passed"`
	Failed          []EligibilityCheck `json:"failed"`
	WarningMessages []string           `json:"warningMessages"`
	Statement       string             `json:"statement"`
	Recommendation  string             `json:"recommendation"`
	GeneratedAt     string             `json:"generatedAt"`
}

// EligibleSummary is the condensed entry for a scholarship the student
// qualifies for.
type EligibleSummary struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Amount          string `json:"amount"`
	MatchedCriteria int    `json:"matchedCriteria"`
}

// IneligibleSummary lists why a scholarship was ruled out.
type IneligibleSummary struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	FailedCriteria []string `json:"failedCriteria"`
	Reasons        []string `json:"reasons"`
}

// StudentEcho repeats the profile fields a batch report was computed from.
type StudentEcho struct {
	Name        string  `json:"name"`
	Category    string  `json:"category,omitempty"`
	Percentage  float64 `json:"percentage"`
	IncomeLevel string  `json:"incomeLevel,omitempty"`
	Region      string  `json:"region"`
}

// BatchSummary is the one-line outcome of a catalog-wide eligibility run.
type BatchSummary struct {
	Message         string  `json:"message"`
	EligibilityRate float64 `json:"eligibilityRate"`
}

// BatchEligibilityReport covers every catalog entry for one student.
type BatchEligibilityReport struct {
	BatchID           string              `json:"batchId"`
	Student           StudentEcho         `json:"student"`
	TotalScholarships int                 `json:"totalScholarships"`
	Eligible          []EligibleSummary   `json:"eligible"`
	NotEligible       []IneligibleSummary `json:"notEligible"`
	EligibleCount     int                 `json:"eligibleCount"`
	NotEligibleCount  int                 `json:"notEligibleCount"`
	DetailedReports   []EligibilityReport `json:"detailedReports"`
	Summary           BatchSummary        `json:"summary"`
	GeneratedAt       string              `json:"generatedAt"`
}
