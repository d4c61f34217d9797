// internal/workers/normalization/normalize-profile/models.go
package normalizeprofile

import (
	"scholarship-workers/internal/models"
	"scholarship-workers/internal/profile"
)

type Input struct {
	StudentID      string                 `json:"studentId,omitempty"`
	StudentProfile *models.StudentProfile `json:"studentProfile,omitempty"`
}

type Output struct {
	NormalizedProfile profile.Normalized `json:"normalizedProfile"`
}
