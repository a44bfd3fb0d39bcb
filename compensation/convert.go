/*
convert.go - Pay unit conversion core

PURPOSE:
  Pure conversions of a scalar pay amount between hourly, monthly, and
  annual representations using the shift pattern, plus the magnitude
  heuristic for free-form input where the unit was never declared.

ROUNDING POLICY:
  Hourly and monthly amounts round to 2 decimal places. Annual amounts
  round to the nearest whole dollar. Round-trip invariant: converting
  hourly → annual → hourly holds within ±0.01 for every canonical pattern.

UNIT INFERENCE:
  When the unit is unspecified or unrecognized, InferUnit applies a
  magnitude heuristic (<200 hourly, <10000 monthly, otherwise annual).
  This is a deliberate, lossy convenience; ResolveUnit reports whether it
  fired so callers can flag the inference instead of trusting it silently.

SEE ALSO:
  - pattern.go: Shift pattern resolution
  - breakdown.go: Aggregation built on these conversions
*/
package compensation

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// PAY UNITS
// =============================================================================

type PayUnit string

const (
	UnitHourly      PayUnit = "hourly"
	UnitMonthly     PayUnit = "monthly"
	UnitAnnual      PayUnit = "annual"
	UnitUnspecified PayUnit = ""
)

// Magnitude heuristic boundaries for unit inference.
var (
	inferMonthlyAt = decimal.NewFromInt(200)
	inferAnnualAt  = decimal.NewFromInt(10000)
)

// Dollars builds a decimal pay amount from a float. Convenience for
// callers and tests working with literal figures.
func Dollars(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// roundMoney rounds hourly/monthly amounts to cents.
func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// roundAnnual rounds annual amounts to whole dollars.
func roundAnnual(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// =============================================================================
// CONVERSIONS
// =============================================================================

// AnnualToHourly converts an annual salary to an hourly rate under the
// pattern implied by shiftHours.
func AnnualToHourly(annual decimal.Decimal, shiftHours float64) decimal.Decimal {
	p := ResolvePattern(shiftHours)
	return roundMoney(annual.Div(p.HoursPerYear))
}

// HourlyToAnnual converts an hourly rate to annual pay, rounded to the
// nearest whole dollar.
func HourlyToAnnual(hourly decimal.Decimal, shiftHours float64) decimal.Decimal {
	p := ResolvePattern(shiftHours)
	return roundAnnual(hourly.Mul(p.HoursPerYear))
}

// HourlyToMonthly converts an hourly rate to monthly pay.
func HourlyToMonthly(hourly decimal.Decimal, shiftHours float64) decimal.Decimal {
	p := ResolvePattern(shiftHours)
	return roundMoney(hourly.Mul(p.HoursPerMonth))
}

// MonthlyToHourly converts monthly pay to an hourly rate.
func MonthlyToHourly(monthly decimal.Decimal, shiftHours float64) decimal.Decimal {
	p := ResolvePattern(shiftHours)
	return roundMoney(monthly.Div(p.HoursPerMonth))
}

// =============================================================================
// UNIT INFERENCE - Explicit fallback path, never the primary contract
// =============================================================================

// InferUnit guesses the pay unit of an amount from its magnitude:
// below 200 → hourly, 200 up to 10000 → monthly, 10000 and above → annual.
// Inherently ambiguous for amounts like 250 (daily stipend? small monthly
// figure?); callers should surface that inference happened.
func InferUnit(amount decimal.Decimal) PayUnit {
	switch {
	case amount.LessThan(inferMonthlyAt):
		return UnitHourly
	case amount.LessThan(inferAnnualAt):
		return UnitMonthly
	}
	return UnitAnnual
}

// ResolveUnit returns the effective unit for an amount and whether the
// magnitude heuristic was applied. A recognized declared unit wins;
// anything else falls through to inference.
func ResolveUnit(amount decimal.Decimal, unit PayUnit) (PayUnit, bool) {
	switch unit {
	case UnitHourly, UnitMonthly, UnitAnnual:
		return unit, false
	}
	return InferUnit(amount), true
}

// ToHourlyRate normalizes an amount in any pay unit to an hourly rate.
// Unrecognized units fall back to the magnitude heuristic rather than
// failing; use ResolveUnit directly when the caller needs to know
// whether inference fired.
func ToHourlyRate(amount decimal.Decimal, unit PayUnit, shiftHours float64) decimal.Decimal {
	effective, _ := ResolveUnit(amount, unit)
	switch effective {
	case UnitMonthly:
		return MonthlyToHourly(amount, shiftHours)
	case UnitAnnual:
		return AnnualToHourly(amount, shiftHours)
	}
	return roundMoney(amount)
}

// =============================================================================
// EFFECTIVE RATE
// =============================================================================

// EffectiveHourlyRate blends monthly differential pay into the base
// hourly rate through the monthly representation: base hourly → monthly,
// add differentials, convert back. Differentials expressed as flat
// monthly-equivalent amounts are thereby diluted across the pattern's
// monthly hours instead of being added directly to the hourly rate.
func EffectiveHourlyRate(baseHourly, monthlyDifferentials decimal.Decimal, shiftHours float64) decimal.Decimal {
	monthly := HourlyToMonthly(baseHourly, shiftHours).Add(monthlyDifferentials)
	return MonthlyToHourly(monthly, shiftHours)
}
