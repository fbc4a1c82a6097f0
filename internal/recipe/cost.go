package recipe

import (
	"math"

	"github.com/iqbal-codes/fnb-os-web-app-sub000/internal/units"
)

// --------------------------------------------------
// Ingredient Cost
// --------------------------------------------------

// IngredientCost returns how much of the purchased pack's price one
// recipe portion consumes. Never negative; missing or non-positive
// quantities cost 0 (reported by the completeness validator, not here).
//
// When usage and buying units share a known category, both quantities
// are converted to the category base unit and the cost is the base
// ratio of the pack price. When categories differ or either unit is
// unregistered, the cost falls back to the raw usage/buy quantity
// ratio with no conversion. The fallback is intentional: operators can
// type custom units ("bungkus", "sachet") and no cross-dimension
// conversion exists without density data we never collect.
func IngredientCost(line IngredientLine) float64 {
	if line.UsageQty <= 0 || line.BuyPrice <= 0 {
		return 0
	}

	usageCat := units.CategoryOf(line.UsageUnit)
	buyCat := units.CategoryOf(line.BuyUnit)

	if usageCat != units.Unknown && usageCat == buyCat {
		usageBase, _ := units.ToBase(line.UsageUnit, line.UsageQty)
		buyBase, _ := units.ToBase(line.BuyUnit, line.BuyQty)

		// Zero pack size is treated as free/unspecified, not an error.
		if buyBase == 0 {
			return 0
		}
		return nonNegative(line.BuyPrice * (usageBase / buyBase))
	}

	// Fallback: direct ratio, no unit conversion.
	if line.BuyQty <= 0 {
		return 0
	}
	return nonNegative(line.BuyPrice * (line.UsageQty / line.BuyQty))
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

// --------------------------------------------------
// Recipe COGS
// --------------------------------------------------

// COGS sums per-line ingredient costs and rounds up to the next whole
// rupiah. Ceiling is the costing policy: never under-quote cost.
func COGS(lines []IngredientLine) float64 {
	var total float64
	for _, line := range lines {
		total += IngredientCost(line)
	}
	return math.Ceil(total)
}
