/*
differential.go - Differential contribution calculation

PURPOSE:
  Computes the monthly dollar contribution of a specific differential
  instance, interpreted through its catalog config. This is where the
  heterogeneous differential shapes (flat premiums, percentage bonuses,
  multiplier overtime, stipends, eligibility flags) collapse into a
  single comparable monthly figure.

DISPATCH MODEL:
  Frequency unit decides the outer branch:
    countable (per shift/week/month) - frequency is a count, normalized
      to occurrences per month; an occurrence of an hourly-denominated or
      rate-based differential covers one shift's worth of hours
    non-countable (yes/no, one-time, annual) - frequency is an
      eligibility flag; 1 pays a fixed monthly-equivalent, 0 pays nothing
  Value unit then decides the formula. Multipliers only count the extra
  portion above 1.0x; the base portion is already in base pay.

CONTRACT:
  Value and frequency are assumed to lie within the catalog-declared
  ranges. Callers validate that once at data entry (see the catalog
  package); contribution calculation does not re-check ranges. A
  non-positive value short-circuits to zero as a guard against
  degenerate configs.

SEE ALSO:
  - catalog.go: TypeConfig and unit semantics
  - breakdown.go: Aggregation of the summed contributions
*/
package compensation

import (
	"github.com/shopspring/decimal"
)

var (
	decOne     = decimal.NewFromInt(1)
	decTwelve  = decimal.NewFromInt(12)
	decHundred = decimal.NewFromInt(100)
)

// occurrencesPerMonth normalizes a countable frequency to a per-month
// occurrence count.
func occurrencesPerMonth(freq decimal.Decimal, unit FrequencyUnit, p ShiftPattern) decimal.Decimal {
	switch unit {
	case FreqPerShift:
		return freq.Mul(p.ShiftsPerMonth())
	case FreqPerWeek:
		return freq.Mul(decimal.NewFromInt(weeksPerYear)).Div(decTwelve)
	}
	return freq // per month
}

// MonthlyContribution computes the monthly dollar contribution of one
// differential instance under its catalog config. baseHourly is needed
// for percentage and multiplier differentials; shiftHours selects the
// work pattern. The result is rounded to cents.
//
// The config must be the catalog entry for inst.Type; resolving the
// entry (and failing loudly when it is missing) is the caller's job —
// see SumMonthlyContributions.
func MonthlyContribution(inst Instance, cfg TypeConfig, baseHourly decimal.Decimal, shiftHours float64) decimal.Decimal {
	if !inst.Value.IsPositive() {
		return decimal.Zero
	}

	p := ResolvePattern(shiftHours)
	funit := cfg.FrequencyUnit()

	if !funit.Countable() {
		return roundMoney(eligibilityContribution(inst, cfg, baseHourly, p, funit))
	}

	occ := occurrencesPerMonth(inst.Frequency, funit, p)
	premiumHours := occ.Mul(p.HoursPerShift)

	var monthly decimal.Decimal
	switch cfg.ValueUnit() {
	case ValueDollarsPerHour:
		monthly = inst.Value.Mul(premiumHours)
	case ValueDollarsPerShift:
		monthly = inst.Value.Mul(occ)
	case ValuePercent:
		monthly = baseHourly.Mul(inst.Value.Div(decHundred)).Mul(premiumHours)
	case ValueMultiplier:
		monthly = baseHourly.Mul(extraRate(inst.Value)).Mul(premiumHours)
	default: // flat lump dollars, paid per occurrence
		monthly = inst.Value.Mul(occ)
	}
	return roundMoney(monthly)
}

// eligibilityContribution handles yes/no, one-time, and annual frequency
// units. Frequency is a 0/1 flag; anything other than 1 pays nothing.
// One-time and annual dollar values divide by 12 into a monthly
// equivalent; yes/no values are treated as already monthly.
func eligibilityContribution(inst Instance, cfg TypeConfig, baseHourly decimal.Decimal, p ShiftPattern, funit FrequencyUnit) decimal.Decimal {
	if !inst.Frequency.Equal(decOne) {
		return decimal.Zero
	}

	var monthly decimal.Decimal
	switch cfg.ValueUnit() {
	case ValueDollarsPerHour:
		monthly = inst.Value.Mul(p.HoursPerMonth)
	case ValueDollarsPerShift:
		monthly = inst.Value.Mul(p.ShiftsPerMonth())
	case ValuePercent:
		monthly = baseHourly.Mul(inst.Value.Div(decHundred)).Mul(p.HoursPerMonth)
	case ValueMultiplier:
		monthly = baseHourly.Mul(extraRate(inst.Value)).Mul(p.HoursPerMonth)
	default:
		monthly = inst.Value
	}

	if funit == FreqOneTime || funit == FreqAnnual {
		monthly = monthly.Div(decTwelve)
	}
	return monthly
}

// extraRate returns the portion of a multiplier above 1.0, floored at
// zero. A 1.0x multiplier is exactly base pay and contributes nothing.
func extraRate(multiplier decimal.Decimal) decimal.Decimal {
	extra := multiplier.Sub(decOne)
	if extra.IsNegative() {
		return decimal.Zero
	}
	return extra
}

// SumMonthlyContributions resolves each instance against the catalog and
// sums the monthly contributions. A type with no catalog entry aborts
// the whole sum with UnknownTypeError: returning a partial total would
// silently understate pay.
func SumMonthlyContributions(instances []Instance, catalog Catalog, baseHourly decimal.Decimal, shiftHours float64) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, inst := range instances {
		cfg, ok := catalog.Lookup(inst.Type)
		if !ok {
			return decimal.Zero, &UnknownTypeError{Type: inst.Type}
		}
		total = total.Add(MonthlyContribution(inst, cfg, baseHourly, shiftHours))
	}
	return total, nil
}
