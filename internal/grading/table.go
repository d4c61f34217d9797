package grading

import "math"

// TableEntry is one row of the reference conversion table.
type TableEntry struct {
	CGPA10      float64 `json:"cgpa10"`
	Percentage  float64 `json:"percentage"`
	GPA4        float64 `json:"gpa4"`
	LetterGrade string  `json:"letterGrade"`
	Description string  `json:"description"`
}

var gradeDescriptions = map[string]string{
	"O":  "Outstanding",
	"A+": "Excellent",
	"A":  "Very Good",
	"B+": "Good",
	"B":  "Above Average",
	"C+": "Average",
	"C":  "Satisfactory",
	"D":  "Pass",
	"F":  "Fail",
}

// GradeDescription returns the display name for a letter grade.
func GradeDescription(grade string) string {
	if d, ok := gradeDescriptions[grade]; ok {
		return d
	}
	return "Unknown"
}

// ConversionTable builds the reference cross-scale table from 10.0 down to
// 4.0 CGPA in half-point steps, using the CBSE formula throughout.
func ConversionTable() []TableEntry {
	var table []TableEntry
	for cgpa := 10.0; cgpa >= 4.0; cgpa -= 0.5 {
		cgpa = math.Round(cgpa*10) / 10
		pct, err := CGPAToPercentageCBSE(cgpa)
		if err != nil {
			continue
		}
		gpa, _ := PercentageToGPA4(pct)
		grade := PercentageToLetterGrade(pct)
		table = append(table, TableEntry{
			CGPA10:      cgpa,
			Percentage:  pct,
			GPA4:        math.Round(gpa*10) / 10,
			LetterGrade: grade,
			Description: GradeDescription(grade),
		})
	}
	return table
}
