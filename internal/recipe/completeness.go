package recipe

import "fmt"

// Completeness is the advisory result of the data-quality pass. It
// never blocks a calculation; the UI decides whether to show numbers
// with a caveat.
type Completeness struct {
	IsComplete    bool     `json:"is_complete"`
	MissingPrices []string `json:"missing_prices"`
	Warnings      []string `json:"warnings"`
	ZeroCogs      bool     `json:"zero_cogs"`
}

// CheckCompleteness flags ingredient lines without a positive buying
// price, an empty ingredient list, and an all-zero COGS (a strong
// signal of missing price data rather than a genuinely free recipe).
func CheckCompleteness(lines []IngredientLine) Completeness {
	result := Completeness{
		MissingPrices: []string{},
		Warnings:      []string{},
	}

	if len(lines) == 0 {
		result.Warnings = append(result.Warnings, "recipe has no ingredients")
		return result
	}

	for _, line := range lines {
		if line.BuyPrice <= 0 {
			result.MissingPrices = append(result.MissingPrices, line.Name)
		}
	}

	if len(result.MissingPrices) > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"%d ingredient(s) have no purchase price; their cost counts as 0",
			len(result.MissingPrices),
		))
	}

	if COGS(lines) == 0 {
		result.ZeroCogs = true
		result.Warnings = append(result.Warnings,
			"COGS is zero; ingredient price data is likely missing")
	}

	result.IsComplete = len(result.MissingPrices) == 0
	return result
}
