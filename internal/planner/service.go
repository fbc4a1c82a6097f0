package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iqbal-codes/fnb-os-web-app-sub000/internal/finance"
	"github.com/iqbal-codes/fnb-os-web-app-sub000/internal/recipe"
	"github.com/iqbal-codes/fnb-os-web-app-sub000/internal/shopping"
)

// DefaultPlanDays is the shopping horizon used when the caller does
// not pick one.
const DefaultPlanDays = 7

var ErrExportNotConfigured = errors.New("plan export storage is not configured")

// Exporter pushes a serialized shopping plan to object storage for the
// procurement UI to download.
type Exporter interface {
	UploadJSON(ctx context.Context, key string, v interface{}) (string, error)
}

type Service struct {
	repo     Repository
	exporter Exporter
}

func NewService(repo Repository, exporter Exporter) *Service {
	return &Service{repo: repo, exporter: exporter}
}

// --------------------------------------------------
// Metrics pipeline
// --------------------------------------------------

// ComputeMetrics runs the fixed calculation order over one input
// snapshot: ingredient cost → COGS → fixed-cost normalize → pricing →
// contribution margin/BEP → safe target → payback. Pure; same input,
// same output. The only errors are config errors (bad pricing mode,
// zero equipment life); business dead-ends come back as Inf sentinels
// on the metrics record.
func (s *Service) ComputeMetrics(in ComputeInput) (*Result, error) {
	a := normalizeAssumptions(in.Assumptions)

	cogs := recipe.COGS(in.Recipe.Ingredients)

	recommended, err := finance.RecommendPrice(cogs, a.Mode)
	if err != nil {
		return nil, err
	}

	price := in.Recipe.SellingPrice
	if price <= 0 {
		price = recommended
	}

	opexMonthly := finance.NormalizeOpexMonthly(in.Opex)
	depMonthly, err := finance.MonthlyDepreciation(in.Equipment)
	if err != nil {
		return nil, err
	}
	fixedMonthly := opexMonthly + depMonthly
	capexTotal := finance.CapexTotal(in.Equipment)

	be := finance.ComputeBreakEven(price, cogs, fixedMonthly, a)
	pb := finance.ComputePayback(be, fixedMonthly, capexTotal, a)

	metrics := finance.Metrics{
		CogsPerPortion:      cogs,
		SellingPrice:        price,
		RecommendedPrice:    recommended,
		EffectiveCogs:       be.EffectiveCogs,
		ChannelFeePerUnit:   be.FeePerUnit,
		ContributionMargin:  be.ContributionMargin,
		OpexMonthly:         opexMonthly,
		DepreciationMonthly: depMonthly,
		FixedCostMonthly:    fixedMonthly,
		CapexTotal:          capexTotal,

		BepUnitsPerMonth: be.UnitsPerMonth,
		BepUnitsPerDay:   be.UnitsPerDay,
		SafeTargetPerDay: be.SafeTargetPerDay,

		MonthlyUnits:           pb.MonthlyUnits,
		EstimatedMonthlyProfit: pb.EstimatedMonthlyProfit,
		PaybackMonths:          pb.Months,

		IsBepInfinite:     be.IsInfinite,
		IsPaybackInfinite: pb.IsInfinite,
		IsNegativeProfit:  pb.IsNegativeProfit,
	}

	return &Result{
		Metrics:    metrics,
		Validation: recipe.CheckCompleteness(in.Recipe.Ingredients),
	}, nil
}

// --------------------------------------------------
// Shopping plan
// --------------------------------------------------

// BuildShoppingPlan projects procurement for the recipe at the
// assumption's target volume over the given horizon.
func (s *Service) BuildShoppingPlan(r recipe.Recipe, a finance.Assumptions, days float64) shopping.Plan {
	a = normalizeAssumptions(a)
	if days <= 0 {
		days = DefaultPlanDays
	}
	return shopping.BuildPlan(r, a.TargetUnitsPerDay, days)
}

// ExportShoppingPlan builds the plan and uploads it as a JSON object;
// returns the public URL alongside the plan.
func (s *Service) ExportShoppingPlan(
	ctx context.Context,
	r recipe.Recipe,
	a finance.Assumptions,
	days float64,
) (shopping.Plan, string, error) {

	plan := s.BuildShoppingPlan(r, a, days)

	if s.exporter == nil {
		return plan, "", ErrExportNotConfigured
	}

	key := fmt.Sprintf("plans/%s.json", uuid.New().String())
	url, err := s.exporter.UploadJSON(ctx, key, plan)
	if err != nil {
		return plan, "", err
	}
	return plan, url, nil
}

// --------------------------------------------------
// Validation only
// --------------------------------------------------

func (s *Service) Validate(lines []recipe.IngredientLine) recipe.Completeness {
	return recipe.CheckCompleteness(lines)
}

// --------------------------------------------------
// Snapshots
// --------------------------------------------------

// SaveSnapshot computes metrics and persists the result.
func (s *Service) SaveSnapshot(ctx context.Context, in ComputeInput) (*Snapshot, error) {
	result, err := s.ComputeMetrics(in)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		ID:         uuid.New().String(),
		RecipeName: in.Recipe.Name,
		Metrics:    result.Metrics,
		Validation: result.Validation,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *Service) GetSnapshot(ctx context.Context, id string) (*Snapshot, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListSnapshots(ctx context.Context, limit int) ([]*Snapshot, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.ListRecent(ctx, limit)
}

// normalizeAssumptions fills the documented defaults without mutating
// the caller's value.
func normalizeAssumptions(a finance.Assumptions) finance.Assumptions {
	if a.TargetUnitsPerDay <= 0 {
		a.TargetUnitsPerDay = finance.DefaultAssumptions().TargetUnitsPerDay
	}
	if a.Mode == "" {
		a.Mode = finance.ModeHealthy
	}
	return a
}
