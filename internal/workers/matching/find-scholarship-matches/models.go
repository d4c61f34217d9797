// internal/workers/matching/find-scholarship-matches/models.go
package findscholarshipmatches

import "scholarship-workers/internal/models"

type Input struct {
	StudentID      string                 `json:"studentId,omitempty"`
	StudentProfile *models.StudentProfile `json:"studentProfile,omitempty"`
	MinScore       *float64               `json:"minScore,omitempty"`
}

type Output struct {
	Matches      []models.MatchResult `json:"matches"`
	TotalMatches int                  `json:"totalMatches"`
	MinScore     float64              `json:"minScore"`
}
