package finance

import "math"

// SafeTargetBuffer is the fixed 20% headroom added on top of the daily
// break-even volume. Policy constant, not user-configurable.
const SafeTargetBuffer = 1.2

// BreakEven carries the contribution-margin and break-even figures of
// one pass. When the contribution margin is zero or negative no finite
// break-even volume exists — selling more only deepens the loss — and
// the volume fields are +Inf with IsInfinite set.
type BreakEven struct {
	EffectiveCogs      float64
	FeePerUnit         float64
	ContributionMargin float64
	UnitsPerMonth      float64
	UnitsPerDay        float64
	SafeTargetPerDay   float64
	IsInfinite         bool
}

// ComputeBreakEven derives the per-unit contribution margin and the
// volume needed to cover the monthly fixed cost.
//
// Waste inflates cost and never deflates it, so negative waste
// percentages are ignored. The channel fee is taken off the selling
// price per unit sold.
func ComputeBreakEven(price, cogs, fixedMonthly float64, a Assumptions) BreakEven {
	waste := a.WastePercent
	if waste < 0 {
		waste = 0
	}

	be := BreakEven{
		EffectiveCogs: cogs * (1 + waste/100),
		FeePerUnit:    price * a.ChannelFeePercent / 100,
	}
	be.ContributionMargin = price - be.EffectiveCogs - be.FeePerUnit

	if be.ContributionMargin <= 0 {
		be.UnitsPerMonth = math.Inf(1)
		be.UnitsPerDay = math.Inf(1)
		be.SafeTargetPerDay = math.Inf(1)
		be.IsInfinite = true
		return be
	}

	be.UnitsPerMonth = math.Ceil(fixedMonthly / be.ContributionMargin)
	be.UnitsPerDay = math.Ceil(be.UnitsPerMonth / a.OperatingDays())
	be.SafeTargetPerDay = math.Ceil(be.UnitsPerDay * SafeTargetBuffer)
	return be
}
