// internal/workers/catalog/lookup-scholarship/models.go
package lookupscholarship

import "scholarship-workers/internal/models"

// inputSchema rejects jobs without a usable scholarshipId before decoding.
const inputSchema = `{
	"type": "object",
	"properties": {
		"scholarshipId": {"type": "string", "minLength": 1}
	},
	"required": ["scholarshipId"]
}`

type Input struct {
	ScholarshipID string `json:"scholarshipId"`
}

type Output struct {
	Scholarship    models.Scholarship `json:"scholarship"`
	CatalogVersion string             `json:"catalogVersion"`
}
