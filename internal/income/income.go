// Package income parses free-form family income strings ("< 2 LPA",
// "2,00,000", "2 Lakhs") into an annual rupee value plus a banded category.
// Parsing never fails; unrecognized input degrades to income 0 and the
// "unknown" category so profile normalization stays non-fatal.
package income

import (
	"regexp"
	"strconv"
	"strings"
)

// Band labels. The thresholds are cumulative ascending, so each label covers
// everything above the previous band's ceiling.
const (
	CategoryBPL      = "BPL"
	CategoryUnder2   = "< 2 LPA"
	CategoryUnder2_5 = "< 2.5 LPA"
	CategoryUnder5   = "< 5 LPA"
	CategoryUnder8   = "< 8 LPA"
	CategoryOver8    = "> 8 LPA"
	CategoryUnknown  = "unknown"
)

// Normalized carries the parsed income and derived eligibility flags.
type Normalized struct {
	Original       string `json:"original"`
	AnnualIncome   int    `json:"annualIncome"`
	IncomeCategory string `json:"incomeCategory"`
	IsBelowPoverty bool   `json:"isBelowPoverty"`
	IsEWS          bool   `json:"isEws"`
}

var numericToken = regexp.MustCompile(`[\d,]+\.?\d*`)

// Common self-reported phrases with no usable numeric token, mapped to a
// representative annual value.
var phraseValues = map[string]int{
	"BPL":           50000,
	"BELOW POVERTY": 50000,
	"NO INCOME":     0,
	"NIL":           0,
}

// Normalize parses an income string into annual rupees and bands it. Scale
// inference: LPA/LAKH/L multiplies by 100,000, K by 1,000, and a bare value
// under 100 is assumed to be in lakhs.
func Normalize(raw string) Normalized {
	result := Normalized{
		Original:       raw,
		IncomeCategory: CategoryUnknown,
	}

	upper := strings.ToUpper(strings.TrimSpace(raw))
	parsed := false

	if token := numericToken.FindString(upper); token != "" {
		if value, err := strconv.ParseFloat(strings.ReplaceAll(token, ",", ""), 64); err == nil {
			switch {
			case strings.Contains(upper, "LPA") || strings.Contains(upper, "LAKH") || strings.Contains(upper, "L"):
				value *= 100000
			case strings.Contains(upper, "K"):
				value *= 1000
			case value < 100:
				value *= 100000
			}
			result.AnnualIncome = int(value)
			parsed = true
		}
	}

	if !parsed {
		if value, ok := phraseValues[upper]; ok {
			result.AnnualIncome = value
			parsed = true
		}
	}

	if !parsed {
		return result
	}

	result.IncomeCategory = Categorize(result.AnnualIncome)
	result.IsBelowPoverty = result.AnnualIncome <= 100000
	result.IsEWS = result.AnnualIncome <= 250000
	return result
}

// Categorize bands an annual income into its display label.
func Categorize(annual int) string {
	switch {
	case annual <= 100000:
		return CategoryBPL
	case annual <= 200000:
		return CategoryUnder2
	case annual <= 250000:
		return CategoryUnder2_5
	case annual <= 500000:
		return CategoryUnder5
	case annual <= 800000:
		return CategoryUnder8
	default:
		return CategoryOver8
	}
}
