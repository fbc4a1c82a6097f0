package shopping

import (
	"math"
	"sort"

	"github.com/iqbal-codes/fnb-os-web-app-sub000/internal/recipe"
	"github.com/iqbal-codes/fnb-os-web-app-sub000/internal/units"
)

// TopDriverCount is how many highest-spend lines are surfaced as cost
// drivers for the procurement UI to flag as negotiation targets.
const TopDriverCount = 3

// PlanLine is one ingredient's purchase recommendation over the
// horizon. A line with missing buying data still appears with zero
// cost so the UI can flag it instead of silently dropping it.
type PlanLine struct {
	Name           string  `json:"name"`
	Category       string  `json:"category,omitempty"`
	TotalUsage     float64 `json:"total_usage"`
	UsageUnit      string  `json:"usage_unit"`
	PacksToBuy     float64 `json:"packs_to_buy"`
	BuyUnit        string  `json:"buy_unit"`
	PackSize       float64 `json:"pack_size"`
	EstimatedCost  float64 `json:"estimated_cost"`
	PercentOfTotal float64 `json:"percent_of_total"`
}

// Plan is the multi-day procurement recommendation for one recipe at
// one production basis (units/day × days).
type Plan struct {
	RecipeName  string     `json:"recipe_name"`
	UnitsPerDay float64    `json:"units_per_day"`
	Days        float64    `json:"days"`
	Lines       []PlanLine `json:"lines"`
	TotalCost   float64    `json:"total_cost"`
	CostDrivers []PlanLine `json:"cost_drivers"`
}

// BuildPlan projects ingredient consumption over the horizon and
// converts it into whole purchase packs, using the same unit matching
// as ingredient costing: shared known category → base-unit ratio,
// otherwise the direct quantity ratio. Whenever there is real usage
// the pack count floors at 1; a fraction of a pack cannot be bought.
func BuildPlan(r recipe.Recipe, unitsPerDay, days float64) Plan {
	plan := Plan{
		RecipeName:  r.Name,
		UnitsPerDay: unitsPerDay,
		Days:        days,
		Lines:       make([]PlanLine, 0, len(r.Ingredients)),
		CostDrivers: []PlanLine{},
	}

	for _, ing := range r.Ingredients {
		line := PlanLine{
			Name:       ing.Name,
			Category:   ing.Category,
			TotalUsage: ing.UsageQty * unitsPerDay * days,
			UsageUnit:  ing.UsageUnit,
			BuyUnit:    ing.BuyUnit,
			PackSize:   ing.BuyQty,
		}

		if line.TotalUsage > 0 && ing.BuyQty > 0 {
			line.PacksToBuy = packsFor(ing, line.TotalUsage)
			if ing.BuyPrice > 0 {
				line.EstimatedCost = line.PacksToBuy * ing.BuyPrice
			}
		}

		plan.TotalCost += line.EstimatedCost
		plan.Lines = append(plan.Lines, line)
	}

	if plan.TotalCost > 0 {
		for i := range plan.Lines {
			plan.Lines[i].PercentOfTotal = plan.Lines[i].EstimatedCost / plan.TotalCost * 100
		}
	}

	plan.CostDrivers = topDrivers(plan.Lines)
	return plan
}

func packsFor(ing recipe.IngredientLine, totalUsage float64) float64 {
	usageCat := units.CategoryOf(ing.UsageUnit)
	buyCat := units.CategoryOf(ing.BuyUnit)

	var ratio float64
	if usageCat != units.Unknown && usageCat == buyCat {
		usageBase, _ := units.ToBase(ing.UsageUnit, totalUsage)
		buyBase, _ := units.ToBase(ing.BuyUnit, ing.BuyQty)
		if buyBase == 0 {
			return 0
		}
		ratio = usageBase / buyBase
	} else {
		ratio = totalUsage / ing.BuyQty
	}

	packs := math.Ceil(ratio)
	if packs < 1 {
		packs = 1
	}
	return packs
}

func topDrivers(lines []PlanLine) []PlanLine {
	ranked := make([]PlanLine, len(lines))
	copy(ranked, lines)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].EstimatedCost > ranked[j].EstimatedCost
	})

	n := TopDriverCount
	if len(ranked) < n {
		n = len(ranked)
	}
	return ranked[:n]
}
