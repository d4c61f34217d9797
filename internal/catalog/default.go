package catalog

import "scholarship-workers/internal/models"

func f(v float64) *float64 { return &v }
func b(v bool) *bool       { return &v }

// DefaultVersion identifies the compiled-in catalog asset.
const DefaultVersion = "2024.1"

// Default returns the compiled-in scholarship catalog. It is rebuilt on each
// call so callers can never alias each other's entries.
func Default() *Catalog {
	c, err := New(DefaultVersion, defaultEntries())
	if err != nil {
		// the compiled-in data is validated by tests
		panic(err)
	}
	return c
}

func defaultEntries() []models.Scholarship {
	return []models.Scholarship{
		{
			ID:       "sc-post-matric",
			Title:    "SC Post Matric Scholarship",
			Provider: "Ministry of Social Justice & Empowerment",
			Amount:   "₹3,000 - ₹5,000/month",
			Deadline: "Every June 30",
			Category: "SC",
			Criteria: "SC category + Family Income < 2.5 LPA",
			Tags:     []string{"SC", "Post-Matric", "Government"},
			Rules: models.RuleSet{
				Categories:      models.StringList{"SC"},
				MaxIncome:       f(250000),
				MinMarks:        f(0),
				EducationLevels: models.StringList{"10th", "12th", "Bachelor", "Master"},
			},
		},
		{
			ID:       "st-post-matric",
			Title:    "ST Post Matric Scholarship",
			Provider: "Ministry of Social Justice & Empowerment",
			Amount:   "₹3,000 - ₹5,000/month",
			Deadline: "Every June 30",
			Category: "ST",
			Criteria: "ST category + Family Income < 2.5 LPA",
			Tags:     []string{"ST", "Post-Matric", "Government"},
			Rules: models.RuleSet{
				Categories:      models.StringList{"ST"},
				MaxIncome:       f(250000),
				MinMarks:        f(0),
				EducationLevels: models.StringList{"10th", "12th", "Bachelor", "Master"},
			},
		},
		{
			ID:       "obc-post-matric",
			Title:    "OBC Post Matric Scholarship",
			Provider: "Ministry of Social Justice & Empowerment",
			Amount:   "₹2,500 - ₹4,000/month",
			Deadline: "Every June 30",
			Category: "OBC",
			Criteria: "OBC category + Family Income < 2 LPA",
			Tags:     []string{"OBC", "Post-Matric", "Government"},
			Rules: models.RuleSet{
				Categories:      models.StringList{"OBC"},
				MaxIncome:       f(200000),
				MinMarks:        f(0),
				EducationLevels: models.StringList{"10th", "12th", "Bachelor", "Master"},
			},
		},
		{
			ID:       "merit-excellence",
			Title:    "Merit Excellence Scholarship",
			Provider: "Department of Education",
			Amount:   "₹50,000 - ₹2,00,000/year",
			Deadline: "Every August 15",
			Category: "Merit",
			Criteria: "Marks > 80% + Any category",
			Tags:     []string{"Merit", "National", "Performance"},
			Rules: models.RuleSet{
				MinMarks:        f(80),
				MaxIncome:       f(500000),
				Categories:      models.StringList{"General", "SC", "ST", "OBC", "EWS"},
				EducationLevels: models.StringList{"12th", "Bachelor", "Master"},
			},
		},
		{
			ID:       "stem-excellence",
			Title:    "STEM Excellence Scholarship",
			Provider: "Science & Technology Ministry",
			Amount:   "₹75,000 - ₹3,00,000/year",
			Deadline: "Every September 30",
			Category: "STEM",
			Criteria: "Science stream + Marks > 85% + Income < 8 LPA",
			Tags:     []string{"STEM", "Science", "Technology", "Merit"},
			Rules: models.RuleSet{
				MinMarks:   f(85),
				MaxIncome:  f(800000),
				Streams:    models.StringList{"Science", "Engineering"},
				Categories: models.StringList{"General", "SC", "ST", "OBC", "EWS"},
				Subjects:   models.StringList{"Physics", "Chemistry", "Mathematics", "Biology", "Computer"},
			},
		},
		{
			ID:       "bpl-scholarship",
			Title:    "Below Poverty Line (BPL) Scholarship",
			Provider: "State Government",
			Amount:   "₹1,000 - ₹3,000/month + Fees",
			Deadline: "Rolling",
			Category: "Income Support",
			Criteria: "Family Income < 1 LPA",
			Tags:     []string{"BPL", "Income", "Welfare"},
			Rules: models.RuleSet{
				MaxIncome:       f(100000),
				MinMarks:        f(0),
				Categories:      models.StringList{"SC", "ST", "OBC", "General", "EWS"},
				EducationLevels: models.StringList{"10th", "12th", "Bachelor", "Master"},
			},
		},
		{
			ID:       "low-income-scholarship",
			Title:    "Low Income Family Scholarship",
			Provider: "Central Government",
			Amount:   "₹2,000 - ₹5,000/month",
			Deadline: "Every July 31",
			Category: "Income Support",
			Criteria: "Family Income 1-3 LPA",
			Tags:     []string{"Income", "Welfare", "Support"},
			Rules: models.RuleSet{
				MinIncome:       f(100000),
				MaxIncome:       f(300000),
				MinMarks:        f(0),
				Categories:      models.StringList{"SC", "ST", "OBC", "General", "EWS"},
				EducationLevels: models.StringList{"10th", "12th", "Bachelor", "Master"},
			},
		},
		{
			ID:       "first-gen-scholar",
			Title:    "First Generation Scholar Program",
			Provider: "Ministry of Education",
			Amount:   "₹3,000 - ₹8,000/month + Mentoring",
			Deadline: "Every October 31",
			Category: "First Generation",
			Criteria: "First graduate in family + Marks > 60%",
			Tags:     []string{"First-Generation", "Education", "Mentoring"},
			Rules: models.RuleSet{
				IsFirstGraduate: b(true),
				MinMarks:        f(60),
				MaxIncome:       f(500000),
				Categories:      models.StringList{"SC", "ST", "OBC", "General", "EWS"},
				EducationLevels: models.StringList{"12th", "Bachelor", "Master"},
			},
		},
		{
			ID:       "minority-scholarship",
			Title:    "Minority Community Scholarship",
			Provider: "Ministry of Minority Affairs",
			Amount:   "₹2,000 - ₹6,000/month",
			Deadline: "Every September 30",
			Category: "Minority",
			Criteria: "Minority religion + Income < 2.5 LPA",
			Tags:     []string{"Minority", "Community", "Religious"},
			Rules: models.RuleSet{
				MaxIncome:       f(250000),
				MinMarks:        f(0),
				Religions:       models.StringList{"Islam", "Christianity", "Sikhism", "Buddhism", "Jainism", "Zoroastrianism"},
				Categories:      models.StringList{"General", "OBC"},
				EducationLevels: models.StringList{"10th", "12th", "Bachelor", "Master"},
			},
		},
		{
			ID:       "farmer-child-scholarship",
			Title:    "Farmer's Child Scholarship",
			Provider: "Agricultural Ministry",
			Amount:   "₹2,500 - ₹7,000/month",
			Deadline: "Every June 30",
			Category: "Rural Support",
			Criteria: "Parent is farmer + Income < 3 LPA + Marks > 50%",
			Tags:     []string{"Farmer", "Rural", "Agriculture"},
			Rules: models.RuleSet{
				ParentOccupations: models.StringList{"Farmer", "Agriculture"},
				MaxIncome:         f(300000),
				MinMarks:          f(50),
				Categories:        models.StringList{"SC", "ST", "OBC", "General"},
				EducationLevels:   models.StringList{"10th", "12th", "Bachelor"},
			},
		},
		{
			ID:       "labour-welfare",
			Title:    "Labour Welfare Scholarship",
			Provider: "Labour Ministry",
			Amount:   "₹2,000 - ₹6,000/month + Health Benefits",
			Deadline: "Every August 31",
			Category: "Labour Support",
			Criteria: "Parent is laborer/daily wage + Income < 2 LPA",
			Tags:     []string{"Labour", "Welfare", "Daily-Wage"},
			Rules: models.RuleSet{
				ParentOccupations: models.StringList{"Labour", "Daily Wage", "Labourer", "Construction Worker"},
				MaxIncome:         f(200000),
				MinMarks:          f(0),
				Categories:        models.StringList{"SC", "ST", "OBC", "General"},
				EducationLevels:   models.StringList{"10th", "12th", "Bachelor"},
			},
		},
		{
			ID:       "women-empowerment",
			Title:    "Women Empowerment Scholarship",
			Provider: "Ministry of Women & Child Development",
			Amount:   "₹3,000 - ₹8,000/month + Mentoring",
			Deadline: "Rolling",
			Category: "Gender Support",
			Criteria: "Female student + Marks > 50% + Income < 3 LPA",
			Tags:     []string{"Women", "Gender", "Empowerment"},
			Rules: models.RuleSet{
				Genders:         models.StringList{"Female"},
				MinMarks:        f(50),
				MaxIncome:       f(300000),
				Categories:      models.StringList{"SC", "ST", "OBC", "General", "EWS"},
				EducationLevels: models.StringList{"10th", "12th", "Bachelor", "Master"},
			},
		},
		{
			ID:       "ews-post-matric",
			Title:    "EWS Post Matric Scholarship",
			Provider: "Ministry of Social Justice",
			Amount:   "₹2,500 - ₹5,000/month",
			Deadline: "Every June 30",
			Category: "EWS",
			Criteria: "EWS category + Family Income < 2.5 LPA",
			Tags:     []string{"EWS", "Post-Matric", "Government"},
			Rules: models.RuleSet{
				Categories:      models.StringList{"EWS"},
				MaxIncome:       f(250000),
				MinMarks:        f(0),
				EducationLevels: models.StringList{"10th", "12th", "Bachelor", "Master"},
			},
		},
		{
			ID:       "delhi-scholar",
			Title:    "Delhi Student Scholarship",
			Provider: "Delhi Government",
			Amount:   "₹3,000 - ₹10,000/month",
			Deadline: "Every December 31",
			Category: "State Specific",
			Criteria: "Resident of Delhi + Marks > 65%",
			Tags:     []string{"Delhi", "State", "Regional"},
			Rules: models.RuleSet{
				Regions:         models.StringList{"Delhi"},
				MinMarks:        f(65),
				MaxIncome:       f(600000),
				Categories:      models.StringList{"General", "SC", "ST", "OBC", "EWS"},
				EducationLevels: models.StringList{"10th", "12th", "Bachelor"},
			},
		},
	}
}
