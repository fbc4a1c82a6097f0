package finance

import (
	"encoding/json"
	"errors"
	"math"
)

// Frequency of an operating-expense entry.
type Frequency string

const (
	FreqDaily   Frequency = "daily"
	FreqWeekly  Frequency = "weekly"
	FreqMonthly Frequency = "monthly"
	FreqYearly  Frequency = "yearly"
	FreqOneTime Frequency = "one_time"
)

// OpexEntry is a recurring operating expense. Only active entries
// contribute to the monthly fixed cost.
type OpexEntry struct {
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Frequency Frequency `json:"frequency"`
	Active    bool      `json:"active"`
}

// EquipmentEntry is a capital expenditure recognized over time as
// depreciation. Only selected items count toward totals.
type EquipmentEntry struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	LifeYears float64 `json:"life_years"`
	Selected  bool    `json:"selected"`
	Quantity  int     `json:"quantity"`
}

// PricingMode names a gross-margin target used to derive a recommended
// selling price from COGS.
type PricingMode string

const (
	ModeThin    PricingMode = "thin"
	ModeHealthy PricingMode = "healthy"
	ModePremium PricingMode = "premium"
)

// Assumptions are the caller-supplied sales and cost parameters for one
// calculation pass. Immutable once passed in.
type Assumptions struct {
	TargetUnitsPerDay     float64     `json:"target_units_per_day"`
	OperatingDaysPerMonth float64     `json:"operating_days_per_month"`
	OpenDaysPerWeek       float64     `json:"open_days_per_week,omitempty"`
	ChannelFeePercent     float64     `json:"channel_fee_percent"`
	WastePercent          float64     `json:"waste_percent"`
	Mode                  PricingMode `json:"pricing_mode"`
}

// DefaultAssumptions mirrors the onboarding defaults: 30 units/day,
// 30 operating days, no channel fee, no waste, healthy margin.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		TargetUnitsPerDay:     30,
		OperatingDaysPerMonth: 30,
		Mode:                  ModeHealthy,
	}
}

// OperatingDays resolves the operating days per month. Days open per
// week, when given, wins and is converted via round(30 × days/7).
func (a Assumptions) OperatingDays() float64 {
	if a.OpenDaysPerWeek > 0 {
		return math.Round(30 * a.OpenDaysPerWeek / 7)
	}
	if a.OperatingDaysPerMonth > 0 {
		return a.OperatingDaysPerMonth
	}
	return 30
}

// Config errors: out-of-contract input, surfaced loudly rather than as
// a misleading number. Business outcomes (no break-even, no payback)
// are numeric sentinels instead, never errors.
var (
	ErrUnknownPricingMode   = errors.New("unknown pricing mode")
	ErrInvalidMarginTarget  = errors.New("margin target must be below 100%")
	ErrInvalidEquipmentLife = errors.New("equipment useful life must be greater than zero")
)

// Metrics is the full financial output of one calculation pass.
// Volume and payback fields may be +Inf, meaning "not achievable under
// current inputs" — a valid business outcome, flagged by the booleans.
type Metrics struct {
	CogsPerPortion      float64 `json:"cogs_per_portion"`
	SellingPrice        float64 `json:"selling_price"`
	RecommendedPrice    float64 `json:"recommended_price"`
	EffectiveCogs       float64 `json:"effective_cogs"`
	ChannelFeePerUnit   float64 `json:"channel_fee_per_unit"`
	ContributionMargin  float64 `json:"contribution_margin"`
	OpexMonthly         float64 `json:"opex_monthly"`
	DepreciationMonthly float64 `json:"depreciation_monthly"`
	FixedCostMonthly    float64 `json:"fixed_cost_monthly"`
	CapexTotal          float64 `json:"capex_total"`

	BepUnitsPerMonth float64 `json:"bep_units_per_month"`
	BepUnitsPerDay   float64 `json:"bep_units_per_day"`
	SafeTargetPerDay float64 `json:"safe_target_per_day"`

	MonthlyUnits           float64 `json:"monthly_units"`
	EstimatedMonthlyProfit float64 `json:"estimated_monthly_profit"`
	PaybackMonths          float64 `json:"payback_months"`

	IsBepInfinite     bool `json:"is_bep_infinite"`
	IsPaybackInfinite bool `json:"is_payback_infinite"`
	IsNegativeProfit  bool `json:"is_negative_profit"`
}

// metricsJSON mirrors Metrics with nullable volume/payback fields.
// encoding/json cannot represent Inf, so infinite values travel as
// null and are restored from the boolean flags on the way back in.
type metricsJSON struct {
	CogsPerPortion      float64 `json:"cogs_per_portion"`
	SellingPrice        float64 `json:"selling_price"`
	RecommendedPrice    float64 `json:"recommended_price"`
	EffectiveCogs       float64 `json:"effective_cogs"`
	ChannelFeePerUnit   float64 `json:"channel_fee_per_unit"`
	ContributionMargin  float64 `json:"contribution_margin"`
	OpexMonthly         float64 `json:"opex_monthly"`
	DepreciationMonthly float64 `json:"depreciation_monthly"`
	FixedCostMonthly    float64 `json:"fixed_cost_monthly"`
	CapexTotal          float64 `json:"capex_total"`

	BepUnitsPerMonth *float64 `json:"bep_units_per_month"`
	BepUnitsPerDay   *float64 `json:"bep_units_per_day"`
	SafeTargetPerDay *float64 `json:"safe_target_per_day"`

	MonthlyUnits           float64  `json:"monthly_units"`
	EstimatedMonthlyProfit float64  `json:"estimated_monthly_profit"`
	PaybackMonths          *float64 `json:"payback_months"`

	IsBepInfinite     bool `json:"is_bep_infinite"`
	IsPaybackInfinite bool `json:"is_payback_infinite"`
	IsNegativeProfit  bool `json:"is_negative_profit"`
}

func finiteOrNil(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

func orInf(v *float64) float64 {
	if v == nil {
		return math.Inf(1)
	}
	return *v
}

func (m Metrics) MarshalJSON() ([]byte, error) {
	return json.Marshal(metricsJSON{
		CogsPerPortion:      m.CogsPerPortion,
		SellingPrice:        m.SellingPrice,
		RecommendedPrice:    m.RecommendedPrice,
		EffectiveCogs:       m.EffectiveCogs,
		ChannelFeePerUnit:   m.ChannelFeePerUnit,
		ContributionMargin:  m.ContributionMargin,
		OpexMonthly:         m.OpexMonthly,
		DepreciationMonthly: m.DepreciationMonthly,
		FixedCostMonthly:    m.FixedCostMonthly,
		CapexTotal:          m.CapexTotal,

		BepUnitsPerMonth: finiteOrNil(m.BepUnitsPerMonth),
		BepUnitsPerDay:   finiteOrNil(m.BepUnitsPerDay),
		SafeTargetPerDay: finiteOrNil(m.SafeTargetPerDay),

		MonthlyUnits:           m.MonthlyUnits,
		EstimatedMonthlyProfit: m.EstimatedMonthlyProfit,
		PaybackMonths:          finiteOrNil(m.PaybackMonths),

		IsBepInfinite:     m.IsBepInfinite,
		IsPaybackInfinite: m.IsPaybackInfinite,
		IsNegativeProfit:  m.IsNegativeProfit,
	})
}

func (m *Metrics) UnmarshalJSON(data []byte) error {
	var raw metricsJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*m = Metrics{
		CogsPerPortion:      raw.CogsPerPortion,
		SellingPrice:        raw.SellingPrice,
		RecommendedPrice:    raw.RecommendedPrice,
		EffectiveCogs:       raw.EffectiveCogs,
		ChannelFeePerUnit:   raw.ChannelFeePerUnit,
		ContributionMargin:  raw.ContributionMargin,
		OpexMonthly:         raw.OpexMonthly,
		DepreciationMonthly: raw.DepreciationMonthly,
		FixedCostMonthly:    raw.FixedCostMonthly,
		CapexTotal:          raw.CapexTotal,

		BepUnitsPerMonth: orInf(raw.BepUnitsPerMonth),
		BepUnitsPerDay:   orInf(raw.BepUnitsPerDay),
		SafeTargetPerDay: orInf(raw.SafeTargetPerDay),

		MonthlyUnits:           raw.MonthlyUnits,
		EstimatedMonthlyProfit: raw.EstimatedMonthlyProfit,
		PaybackMonths:          orInf(raw.PaybackMonths),

		IsBepInfinite:     raw.IsBepInfinite,
		IsPaybackInfinite: raw.IsPaybackInfinite,
		IsNegativeProfit:  raw.IsNegativeProfit,
	}
	return nil
}
