// internal/workers/catalog/search-scholarships/models.go
package searchscholarships

import "scholarship-workers/internal/models"

type Input struct {
	Query    string `json:"query,omitempty"`
	Category string `json:"category,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

type Output struct {
	Scholarships []models.Scholarship `json:"scholarships"`
	Total        int                  `json:"total"`
	Source       string               `json:"source"`
}
