// internal/workers/normalization/normalize-income/models.go
package normalizeincome

import "scholarship-workers/internal/income"

type Input struct {
	IncomeLevel string `json:"incomeLevel"`
}

type Output struct {
	NormalizedIncome income.Normalized `json:"normalizedIncome"`
}
