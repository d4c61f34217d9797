// internal/models/scholarship.go
package models

import "encoding/json"

// StringList unmarshals from either a single JSON string or an array of
// strings. Catalog rules use both forms ("category": "SC" vs
// "category": ["SC", "ST"]).
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = StringList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = StringList(many)
	return nil
}

// Contains reports whether v is an exact member of the list.
func (s StringList) Contains(v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}

// RuleSet is the collection of optional eligibility constraints attached to a
// scholarship. Nil/empty fields mean the axis is unconstrained.
type RuleSet struct {
	Categories        StringList `json:"category,omitempty"`
	MaxIncome         *float64   `json:"maxIncome,omitempty"`
	MinIncome         *float64   `json:"minIncome,omitempty"`
	MinMarks          *float64   `json:"minMarks,omitempty"`
	EducationLevels   StringList `json:"educationLevel,omitempty"`
	Genders           StringList `json:"gender,omitempty"`
	IsFirstGraduate   *bool      `json:"isFirstGraduate,omitempty"`
	ParentOccupations StringList `json:"parentOccupations,omitempty"`
	Religions         StringList `json:"religions,omitempty"`
	Regions           StringList `json:"region,omitempty"`
	States            StringList `json:"state,omitempty"`
	MinAge            *int       `json:"minAge,omitempty"`
	MaxAge            *int       `json:"maxAge,omitempty"`
	Subjects          StringList `json:"subjects,omitempty"`
	Streams           StringList `json:"streams,omitempty"`
}

// Scholarship is one immutable catalog entry.
type Scholarship struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Provider string   `json:"provider"`
	Amount   string   `json:"amount"`
	Deadline string   `json:"deadline"`
	Category string   `json:"category"`
	Criteria string   `json:"criteria"`
	Tags     []string `json:"tags,omitempty"`
	Rules    RuleSet  `json:"rules"`
}

// MatchResult is a scholarship plus its per-student ranking fields. Computed
// per query, never persisted.
type MatchResult struct {
	Scholarship
	MatchScore        float64 `json:"matchScore"`
	Reason            string  `json:"reason"`
	AutofillStatement string  `json:"autofillStatement"`
}
