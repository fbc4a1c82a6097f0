package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/iqbal-codes/fnb-os-web-app-sub000/internal/finance"
	"github.com/iqbal-codes/fnb-os-web-app-sub000/internal/recipe"
)

// --------------------------------------------------
// Mock Exporter
// --------------------------------------------------

type MockExporter struct {
	uploads map[string][]byte
	err     error
}

func NewMockExporter() *MockExporter {
	return &MockExporter{uploads: make(map[string][]byte)}
}

func (m *MockExporter) UploadJSON(_ context.Context, key string, v interface{}) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	m.uploads[key] = data
	return fmt.Sprintf("https://cdn.test/%s", key), nil
}

// --------------------------------------------------
// Fixtures
// --------------------------------------------------

func testInput() ComputeInput {
	return ComputeInput{
		Recipe: recipe.Recipe{
			Name:         "Es Kopi Susu",
			SellingPrice: 14000,
			Ingredients: []recipe.IngredientLine{
				// COGS: 2.250 + 2.160 + 1.590 = 6.000
				{Name: "Kopi", UsageQty: 15, UsageUnit: "gram", BuyQty: 1, BuyUnit: "kg", BuyPrice: 150000},
				{Name: "Susu", UsageQty: 120, UsageUnit: "ml", BuyQty: 1, BuyUnit: "liter", BuyPrice: 18000},
				{Name: "Gula aren", UsageQty: 53, UsageUnit: "ml", BuyQty: 1, BuyUnit: "liter", BuyPrice: 30000},
			},
		},
		Opex: []finance.OpexEntry{
			{Name: "Sewa", Amount: 5800000, Frequency: finance.FreqMonthly, Active: true},
			{Name: "Mesin EDC", Amount: 2400000, Frequency: finance.FreqYearly, Active: true},
		},
		Equipment: []finance.EquipmentEntry{
			{Name: "Mesin espresso", Price: 12000000, LifeYears: 5, Selected: true},
		},
		Assumptions: finance.DefaultAssumptions(),
	}
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestComputeMetrics_FullPipeline(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	result, err := service.ComputeMetrics(testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := result.Metrics

	if m.CogsPerPortion != 6000 {
		t.Errorf("cogs = %v, want 6000", m.CogsPerPortion)
	}
	// 6.000/0,4 = 15.000 (healthy mode)
	if m.RecommendedPrice != 15000 {
		t.Errorf("recommended = %v, want 15000", m.RecommendedPrice)
	}
	if m.ContributionMargin != 8000 {
		t.Errorf("margin = %v, want 8000", m.ContributionMargin)
	}
	// OPEX 5.800.000 + 200.000, depreciation 200.000 → fixed 6.200.000
	if m.FixedCostMonthly != 6200000 {
		t.Errorf("fixed = %v, want 6200000", m.FixedCostMonthly)
	}
	// ceil(6.200.000/8.000) = 775/month → 26/day → safe 32/day
	if m.BepUnitsPerMonth != 775 || m.BepUnitsPerDay != 26 {
		t.Errorf("bep = %v/month %v/day, want 775/26", m.BepUnitsPerMonth, m.BepUnitsPerDay)
	}
	if m.SafeTargetPerDay != 32 {
		t.Errorf("safe target = %v, want 32", m.SafeTargetPerDay)
	}
	// 32×30×8.000 − 6.200.000 = 1.480.000 → ceil(12.000.000/1.480.000) = 9
	if m.EstimatedMonthlyProfit != 1480000 {
		t.Errorf("profit = %v, want 1480000", m.EstimatedMonthlyProfit)
	}
	if m.PaybackMonths != 9 {
		t.Errorf("payback = %v, want 9", m.PaybackMonths)
	}
	if m.IsBepInfinite || m.IsPaybackInfinite {
		t.Error("expected finite sentinels")
	}
	if !result.Validation.IsComplete {
		t.Error("expected complete input data")
	}
}

func TestComputeMetrics_UsesRecommendedPriceWhenUnpriced(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	in := testInput()
	in.Recipe.SellingPrice = 0

	result, err := service.ComputeMetrics(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Metrics.SellingPrice != result.Metrics.RecommendedPrice {
		t.Errorf("selling price %v should fall back to recommended %v",
			result.Metrics.SellingPrice, result.Metrics.RecommendedPrice)
	}
}

func TestComputeMetrics_InfiniteSentinels(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	in := testInput()
	in.Recipe.SellingPrice = 5000 // below COGS

	result, err := service.ComputeMetrics(in)
	if err != nil {
		t.Fatalf("sentinels are outcomes, not errors: %v", err)
	}

	m := result.Metrics
	if !m.IsBepInfinite || !m.IsPaybackInfinite || !m.IsNegativeProfit {
		t.Fatalf("expected all infinite/negative flags, got %+v", m)
	}
	if !math.IsInf(m.BepUnitsPerDay, 1) || !math.IsInf(m.PaybackMonths, 1) {
		t.Error("expected +Inf volumes")
	}
}

func TestComputeMetrics_ConfigErrors(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	in := testInput()
	in.Assumptions.Mode = finance.PricingMode("luxury")
	if _, err := service.ComputeMetrics(in); !errors.Is(err, finance.ErrUnknownPricingMode) {
		t.Fatalf("expected ErrUnknownPricingMode, got %v", err)
	}

	in = testInput()
	in.Equipment[0].LifeYears = 0
	if _, err := service.ComputeMetrics(in); !errors.Is(err, finance.ErrInvalidEquipmentLife) {
		t.Fatalf("expected ErrInvalidEquipmentLife, got %v", err)
	}
}

func TestComputeMetrics_Idempotent(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	first, err := service.ComputeMetrics(testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := service.ComputeMetrics(testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("pipeline not deterministic")
	}
}

func TestSaveAndGetSnapshot(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	snap, err := service.SaveSnapshot(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.ID == "" {
		t.Fatal("expected snapshot ID")
	}

	loaded, err := service.GetSnapshot(context.Background(), snap.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.RecipeName != "Es Kopi Susu" {
		t.Errorf("recipe name = %q", loaded.RecipeName)
	}
	if loaded.Metrics.CogsPerPortion != 6000 {
		t.Errorf("persisted cogs = %v, want 6000", loaded.Metrics.CogsPerPortion)
	}
}

func TestGetSnapshot_NotFound(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	if _, err := service.GetSnapshot(context.Background(), "missing"); !errors.Is(err, ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
	}
}

func TestExportShoppingPlan(t *testing.T) {
	exporter := NewMockExporter()
	service := NewService(NewInMemoryRepository(), exporter)

	in := testInput()
	plan, url, err := service.ExportShoppingPlan(
		context.Background(), in.Recipe, in.Assumptions, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if url == "" {
		t.Fatal("expected export URL")
	}
	if len(exporter.uploads) != 1 {
		t.Fatalf("expected 1 upload, got %d", len(exporter.uploads))
	}
	if plan.TotalCost <= 0 {
		t.Error("expected positive plan cost")
	}
}

func TestExportShoppingPlan_NotConfigured(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	in := testInput()
	_, _, err := service.ExportShoppingPlan(
		context.Background(), in.Recipe, in.Assumptions, 7)
	if !errors.Is(err, ErrExportNotConfigured) {
		t.Fatalf("expected ErrExportNotConfigured, got %v", err)
	}
}

// Infinite metrics must survive a JSON round trip (snapshot payloads
// and API responses both marshal them).
func TestMetrics_JSONRoundTripWithInfinity(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	in := testInput()
	in.Recipe.SellingPrice = 5000

	result, err := service.ComputeMetrics(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := json.Marshal(result.Metrics)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var restored finance.Metrics
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !math.IsInf(restored.BepUnitsPerDay, 1) || !math.IsInf(restored.PaybackMonths, 1) {
		t.Error("infinity lost in round trip")
	}
	if !restored.IsBepInfinite {
		t.Error("flag lost in round trip")
	}
}
