// internal/workers/normalization/normalize-score/models.go
package normalizescore

import "scholarship-workers/internal/grading"

type Input struct {
	Score      interface{} `json:"score"`
	ScoreType  string      `json:"scoreType,omitempty"`
	University string      `json:"university,omitempty"`
}

type Output struct {
	NormalizedScore *grading.NormalizedScore `json:"normalizedScore"`
}
