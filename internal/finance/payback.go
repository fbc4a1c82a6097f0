package finance

import "math"

// Payback projects how long accumulated profit at the safe-target
// volume takes to recover the equipment investment.
type Payback struct {
	MonthlyUnits           float64
	EstimatedMonthlyProfit float64
	Months                 float64
	IsInfinite             bool
	IsNegativeProfit       bool
}

// ComputePayback runs the projection. An infinite safe target (no
// break-even exists) or a non-positive projected profit means the
// investment is never recovered under current assumptions: Months is
// +Inf with the flags set, never NaN and never an error.
func ComputePayback(be BreakEven, fixedMonthly, capexTotal float64, a Assumptions) Payback {
	if be.IsInfinite || math.IsInf(be.SafeTargetPerDay, 1) {
		return Payback{
			Months:           math.Inf(1),
			IsInfinite:       true,
			IsNegativeProfit: true,
		}
	}

	pb := Payback{
		MonthlyUnits: be.SafeTargetPerDay * a.OperatingDays(),
	}
	pb.EstimatedMonthlyProfit = pb.MonthlyUnits*be.ContributionMargin - fixedMonthly

	if pb.EstimatedMonthlyProfit <= 0 {
		pb.Months = math.Inf(1)
		pb.IsInfinite = true
		pb.IsNegativeProfit = true
		return pb
	}

	pb.Months = math.Ceil(capexTotal / pb.EstimatedMonthlyProfit)
	return pb
}
