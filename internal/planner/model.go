package planner

import (
	"time"

	"github.com/iqbal-codes/fnb-os-web-app-sub000/internal/finance"
	"github.com/iqbal-codes/fnb-os-web-app-sub000/internal/recipe"
)

// ComputeInput is one immutable snapshot of everything a calculation
// pass needs. The surrounding app (menu editor, cost forms) supplies
// it; the engine never fetches anything itself.
type ComputeInput struct {
	Recipe      recipe.Recipe            `json:"recipe"`
	Opex        []finance.OpexEntry      `json:"opex"`
	Equipment   []finance.EquipmentEntry `json:"equipment"`
	Assumptions finance.Assumptions      `json:"assumptions"`
}

// Result pairs the financial metrics with the advisory data-quality
// check over the same ingredient list.
type Result struct {
	Metrics    finance.Metrics     `json:"metrics"`
	Validation recipe.Completeness `json:"validation"`
}

// Snapshot is a persisted metrics result, kept so the dashboard can
// show how the numbers moved as the operator tuned inputs.
type Snapshot struct {
	ID         string              `json:"id"`
	RecipeName string              `json:"recipe_name"`
	Metrics    finance.Metrics     `json:"metrics"`
	Validation recipe.Completeness `json:"validation"`
	CreatedAt  time.Time           `json:"created_at"`
}
