package units

import "strings"

// Category classifies a unit string into one of the known measurement
// dimensions. Anything outside the registry is Unknown; callers must
// handle Unknown explicitly instead of assuming a conversion exists.
type Category int

const (
	Unknown Category = iota
	Mass
	Volume
	Count
)

func (c Category) String() string {
	switch c {
	case Mass:
		return "mass"
	case Volume:
		return "volume"
	case Count:
		return "count"
	default:
		return "unknown"
	}
}

type unitDef struct {
	category Category
	toBase   float64
}

// Base units: gram for mass, ml for volume, pcs for count.
// Includes the Indonesian kitchen units the menu editor offers
// (ons = 100 g, sdm = tablespoon, sdt = teaspoon, lusin = dozen).
var registry = map[string]unitDef{
	// mass (base = gram)
	"mg":   {Mass, 0.001},
	"g":    {Mass, 1},
	"gram": {Mass, 1},
	"ons":  {Mass, 100},
	"kg":   {Mass, 1000},

	// volume (base = ml)
	"ml":    {Volume, 1},
	"cc":    {Volume, 1},
	"sdt":   {Volume, 5},
	"sdm":   {Volume, 15},
	"liter": {Volume, 1000},
	"l":     {Volume, 1000},

	// count (base = pcs)
	"pcs":    {Count, 1},
	"buah":   {Count, 1},
	"butir":  {Count, 1},
	"lembar": {Count, 1},
	"ikat":   {Count, 1},
	"porsi":  {Count, 1},
	"lusin":  {Count, 12},
}

func lookup(unit string) (unitDef, bool) {
	def, ok := registry[strings.ToLower(strings.TrimSpace(unit))]
	return def, ok
}

// CategoryOf returns the category a unit belongs to, or Unknown for
// free-text units the registry does not know.
func CategoryOf(unit string) Category {
	def, ok := lookup(unit)
	if !ok {
		return Unknown
	}
	return def.category
}

// Factor returns the conversion factor of a unit to its category's
// base unit. The second return is false for unknown units, which have
// no factor at all.
func Factor(unit string) (float64, bool) {
	def, ok := lookup(unit)
	if !ok {
		return 0, false
	}
	return def.toBase, true
}

// ToBase converts a quantity expressed in the given unit into the
// category's base unit. Unknown units convert to 0 with ok=false; the
// caller decides the fallback (see the recipe costing ratio path).
func ToBase(unit string, qty float64) (float64, bool) {
	def, ok := lookup(unit)
	if !ok {
		return 0, false
	}
	return qty * def.toBase, true
}

// BaseUnit returns the base unit name of a category.
func BaseUnit(c Category) string {
	switch c {
	case Mass:
		return "gram"
	case Volume:
		return "ml"
	case Count:
		return "pcs"
	default:
		return ""
	}
}
