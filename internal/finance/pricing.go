package finance

import "math"

// Gross-margin target per pricing mode.
var modeMargins = map[PricingMode]float64{
	ModeThin:    0.45,
	ModeHealthy: 0.60,
	ModePremium: 0.70,
}

// MarginTarget returns the gross-margin fraction for a mode.
func MarginTarget(mode PricingMode) (float64, error) {
	margin, ok := modeMargins[mode]
	if !ok {
		return 0, ErrUnknownPricingMode
	}
	return margin, nil
}

// RecommendPrice derives a selling price from COGS and the mode's
// margin target, rounded up to the nearest Rp 500. A margin target at
// or above 100% would invert the division; the COGS comes back
// unchanged together with the config error.
func RecommendPrice(cogs float64, mode PricingMode) (float64, error) {
	margin, err := MarginTarget(mode)
	if err != nil {
		return cogs, err
	}
	if margin >= 1 {
		return cogs, ErrInvalidMarginTarget
	}
	if cogs <= 0 {
		return 0, nil
	}
	return ceilTo(cogs/(1-margin), 500), nil
}

// ceilTo rounds v up to the next multiple of step.
func ceilTo(v, step float64) float64 {
	if step <= 0 {
		return math.Ceil(v)
	}
	return math.Ceil(v/step) * step
}
