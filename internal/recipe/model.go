package recipe

// IngredientLine is one ingredient of a recipe: how much the recipe
// uses of it, and how it is bought. Usage and buying may use different
// units (UsesDifferentUnit); custom free-text units are allowed and
// fall outside the unit registry.
type IngredientLine struct {
	Name              string  `json:"name"`
	Category          string  `json:"category,omitempty"`
	UsageQty          float64 `json:"usage_qty"`
	UsageUnit         string  `json:"usage_unit"`
	BuyQty            float64 `json:"buy_qty"`
	BuyUnit           string  `json:"buy_unit"`
	BuyPrice          float64 `json:"buy_price"`
	UsesDifferentUnit bool    `json:"uses_different_unit"`
}

// Recipe is one menu item: its ingredient lines plus the selling price
// the operator currently charges. COGS is derived, never stored as
// authoritative state.
type Recipe struct {
	Name         string           `json:"name"`
	Category     string           `json:"category,omitempty"`
	Description  string           `json:"description,omitempty"`
	Ingredients  []IngredientLine `json:"ingredients"`
	SellingPrice float64          `json:"selling_price"`
}
