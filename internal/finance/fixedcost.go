package finance

// NormalizeOpexMonthly folds heterogeneous expense frequencies into one
// monthly figure: daily×30, weekly×4, monthly×1, yearly÷12, and
// one-time amounts amortized over 12 months. Inactive and non-positive
// entries contribute nothing, so the result is never negative.
func NormalizeOpexMonthly(entries []OpexEntry) float64 {
	var total float64
	for _, e := range entries {
		if !e.Active || e.Amount <= 0 {
			continue
		}

		switch e.Frequency {
		case FreqDaily:
			total += e.Amount * 30
		case FreqWeekly:
			total += e.Amount * 4
		case FreqMonthly:
			total += e.Amount
		case FreqYearly:
			total += e.Amount / 12
		case FreqOneTime:
			total += e.Amount / 12
		}
	}
	return total
}

// MonthlyDepreciation spreads each selected equipment purchase over its
// useful life: price × quantity / (life_years × 12). A selected item
// with life ≤ 0 has undefined depreciation and is a config error, not
// something to paper over with a default.
func MonthlyDepreciation(items []EquipmentEntry) (float64, error) {
	var total float64
	for _, item := range items {
		if !item.Selected || item.Price <= 0 {
			continue
		}
		if item.LifeYears <= 0 {
			return 0, ErrInvalidEquipmentLife
		}
		total += item.Price * float64(itemQty(item)) / (item.LifeYears * 12)
	}
	return total, nil
}

// CapexTotal sums the purchase price of selected equipment.
func CapexTotal(items []EquipmentEntry) float64 {
	var total float64
	for _, item := range items {
		if !item.Selected || item.Price <= 0 {
			continue
		}
		total += item.Price * float64(itemQty(item))
	}
	return total
}

func itemQty(item EquipmentEntry) int {
	if item.Quantity > 0 {
		return item.Quantity
	}
	return 1
}

// FixedCostMonthly is normalized OPEX plus monthly depreciation; the
// figure break-even and payback run against.
func FixedCostMonthly(opex []OpexEntry, equipment []EquipmentEntry) (float64, error) {
	dep, err := MonthlyDepreciation(equipment)
	if err != nil {
		return 0, err
	}
	return NormalizeOpexMonthly(opex) + dep, nil
}
