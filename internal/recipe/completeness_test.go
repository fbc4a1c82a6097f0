package recipe

import "testing"

func TestCheckCompleteness_AllPriced(t *testing.T) {
	lines := []IngredientLine{
		{Name: "Kopi", UsageQty: 15, UsageUnit: "gram", BuyQty: 1, BuyUnit: "kg", BuyPrice: 150000},
		{Name: "Susu", UsageQty: 100, UsageUnit: "ml", BuyQty: 1, BuyUnit: "liter", BuyPrice: 18000},
	}

	result := CheckCompleteness(lines)

	if !result.IsComplete {
		t.Error("expected complete")
	}
	if len(result.MissingPrices) != 0 {
		t.Errorf("expected no missing prices, got %v", result.MissingPrices)
	}
	if result.ZeroCogs {
		t.Error("expected non-zero COGS")
	}
}

func TestCheckCompleteness_MissingPrices(t *testing.T) {
	lines := []IngredientLine{
		{Name: "Kopi", UsageQty: 15, UsageUnit: "gram", BuyQty: 1, BuyUnit: "kg", BuyPrice: 150000},
		{Name: "Es batu", UsageQty: 100, UsageUnit: "gram", BuyQty: 1, BuyUnit: "kg"},
		{Name: "Cup", UsageQty: 1, UsageUnit: "pcs", BuyQty: 50, BuyUnit: "pcs", BuyPrice: -1},
	}

	result := CheckCompleteness(lines)

	if result.IsComplete {
		t.Error("expected incomplete")
	}
	if len(result.MissingPrices) != 2 {
		t.Fatalf("expected 2 missing prices, got %v", result.MissingPrices)
	}
	if result.MissingPrices[0] != "Es batu" || result.MissingPrices[1] != "Cup" {
		t.Errorf("unexpected names: %v", result.MissingPrices)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected warnings")
	}
}

func TestCheckCompleteness_EmptyRecipe(t *testing.T) {
	result := CheckCompleteness(nil)

	if result.IsComplete {
		t.Error("empty recipe must not be complete")
	}
	if len(result.Warnings) == 0 {
		t.Error("expected empty-recipe warning")
	}
}

func TestCheckCompleteness_ZeroCogsSignal(t *testing.T) {
	lines := []IngredientLine{
		{Name: "Air", UsageQty: 200, UsageUnit: "ml", BuyQty: 19, BuyUnit: "liter"},
	}

	result := CheckCompleteness(lines)

	if !result.ZeroCogs {
		t.Error("expected zero-COGS signal")
	}
	if result.IsComplete {
		t.Error("expected incomplete")
	}
}
