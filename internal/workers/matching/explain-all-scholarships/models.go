// internal/workers/matching/explain-all-scholarships/models.go
package explainallscholarships

import "scholarship-workers/internal/models"

type Input struct {
	StudentID      string                 `json:"studentId,omitempty"`
	StudentProfile *models.StudentProfile `json:"studentProfile,omitempty"`
}

type Output struct {
	BatchReport models.BatchEligibilityReport `json:"batchReport"`
}
