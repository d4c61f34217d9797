// internal/models/student.go
package models

// Gender options accepted on a student profile.
type Gender string

const (
	GenderMale           Gender = "Male"
	GenderFemale         Gender = "Female"
	GenderOther          Gender = "Other"
	GenderPreferNotToSay Gender = "Prefer Not to Say"
)

// Category is the student category/caste classification.
type Category string

const (
	CategorySC      Category = "SC"
	CategoryST      Category = "ST"
	CategoryOBC     Category = "OBC"
	CategoryGeneral Category = "General"
	CategoryEWS     Category = "EWS"
)

// ExtractionMethod records how the profile data was captured.
type ExtractionMethod string

const (
	ExtractionAI     ExtractionMethod = "AI"
	ExtractionOCR    ExtractionMethod = "OCR"
	ExtractionManual ExtractionMethod = "Manual"
)

// SubjectMark holds a single subject score. Percentage is filled in during
// normalization and is zero until then.
type SubjectMark struct {
	Subject    string  `json:"subject"`
	Score      float64 `json:"score"`
	MaxScore   float64 `json:"maxScore"`
	Percentage float64 `json:"percentage,omitempty"`
}

// StudentProfile is the demographic, academic and financial record evaluated
// against the scholarship catalog. Optional fields are pointers or empty
// strings; the matching and eligibility engines treat absence as
// "unconstrained" or "cannot verify" rather than as a failure.
type StudentProfile struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Region string `json:"region"`
	Age    *int   `json:"age,omitempty"`

	Gender         Gender   `json:"gender,omitempty"`
	Category       Category `json:"category,omitempty"`
	Religion       string   `json:"religion,omitempty"`
	EducationLevel string   `json:"educationLevel,omitempty"`

	// OverallPercentage carries the raw score before normalization (it may be
	// a CGPA or GPA value); ScoreType and University are conversion hints.
	OverallPercentage float64       `json:"overallPercentage"`
	ScoreType         string        `json:"scoreType,omitempty"`
	University        string        `json:"university,omitempty"`
	Marks             []SubjectMark `json:"marks,omitempty"`

	IncomeLevel        string   `json:"incomeLevel,omitempty"`
	FamilyAnnualIncome *float64 `json:"familyAnnualIncome,omitempty"`
	ParentOccupation   string   `json:"parentOccupation,omitempty"`
	IsFirstGraduate    *bool    `json:"isFirstGraduate,omitempty"`

	ExtractionMethod ExtractionMethod `json:"extractionMethod,omitempty"`
}
