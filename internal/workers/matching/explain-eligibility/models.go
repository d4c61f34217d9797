// internal/workers/matching/explain-eligibility/models.go
package explaineligibility

import "scholarship-workers/internal/models"

type Input struct {
	StudentID      string                 `json:"studentId,omitempty"`
	StudentProfile *models.StudentProfile `json:"studentProfile,omitempty"`
	ScholarshipID  string                 `json:"scholarshipId"`
}

type Output struct {
	EligibilityReport models.EligibilityReport `json:"eligibilityReport"`
}
