/*
Package compensation provides the core pay calculation engine.

PURPOSE:
  This package contains the domain types and algorithms for converting pay
  figures between hourly/monthly/annual representations under different
  shift-length work patterns, and for computing the monthly dollar
  contribution of heterogeneous differential pay items (night/weekend/
  holiday premiums, percentage bonuses, multiplier overtime rates, flat
  stipends, eligibility flags) into a single comparable breakdown.

KEY CONCEPTS IN THIS FILE (pattern.go):
  - ShiftLength: Closed enum of the three canonical nominal shift lengths
  - ShiftPattern: Derived weekly/monthly/annual work-hour totals
  - ResolvePattern: Fail-soft mapping from any numeric shift length to
    one of the canonical patterns

DESIGN PRINCIPLES:
  1. Purity: Every function is a computation over its arguments. No
     shared mutable state, no I/O, nothing to race on.
  2. Precision: Uses decimal.Decimal to avoid floating-point errors in
     pay math.
  3. Closed enumeration: Shift lengths form a tagged enum mapped to a
     fixed table, not an open-ended numeric lookup.
  4. Fail-soft resolution: Out-of-range shift lengths snap to a canonical
     pattern rather than erroring; the input originates from free-form UI.

USAGE:
  pattern := compensation.ResolvePattern(12)
  annual := compensation.HourlyToAnnual(decimal.NewFromInt(48), 12)

SEE ALSO:
  - convert.go: Pay unit conversions built on these patterns
  - differential.go: Differential contribution calculation
  - breakdown.go: Full compensation breakdown aggregation
*/
package compensation

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// SHIFT LENGTH - Closed enum of canonical nominal shift lengths
// =============================================================================

type ShiftLength int

const (
	EightHour ShiftLength = iota
	TwelveHour
	SixteenHour
)

func (l ShiftLength) String() string {
	switch l {
	case EightHour:
		return "8-hour"
	case TwelveHour:
		return "12-hour"
	case SixteenHour:
		return "16-hour"
	}
	return "unknown"
}

// CanonicalShiftLengths lists every member of the enum, in ascending order.
var CanonicalShiftLengths = []ShiftLength{EightHour, TwelveHour, SixteenHour}

// =============================================================================
// SHIFT PATTERN - Derived work-hour totals for a shift length
// =============================================================================

// ShiftPattern holds the work-hour totals implied by a nominal shift
// length's typical days-per-week pattern. Invariants:
//
//	HoursPerWeek  = HoursPerShift × DaysPerWeek
//	HoursPerYear  = HoursPerWeek × 52
//	HoursPerMonth = HoursPerYear / 12
//
// Patterns are immutable values; Pattern() returns a copy.
type ShiftPattern struct {
	Length        ShiftLength
	HoursPerShift decimal.Decimal
	DaysPerWeek   decimal.Decimal
	HoursPerWeek  decimal.Decimal
	HoursPerMonth decimal.Decimal
	HoursPerYear  decimal.Decimal
}

const weeksPerYear = 52

// newPattern derives the full pattern from shift hours and days per week.
func newPattern(length ShiftLength, hoursPerShift, daysPerWeek int64) ShiftPattern {
	shift := decimal.NewFromInt(hoursPerShift)
	days := decimal.NewFromInt(daysPerWeek)
	week := shift.Mul(days)
	year := week.Mul(decimal.NewFromInt(weeksPerYear))
	return ShiftPattern{
		Length:        length,
		HoursPerShift: shift,
		DaysPerWeek:   days,
		HoursPerWeek:  week,
		HoursPerMonth: year.Div(decimal.NewFromInt(12)),
		HoursPerYear:  year,
	}
}

// The three canonical patterns. 12-hour shifts imply the common 3-day
// hospital week; 16-hour doubles imply 2 days.
var (
	patternEight   = newPattern(EightHour, 8, 5)
	patternTwelve  = newPattern(TwelveHour, 12, 3)
	patternSixteen = newPattern(SixteenHour, 16, 2)
)

// Pattern returns the canonical pattern for a shift length.
func (l ShiftLength) Pattern() ShiftPattern {
	switch l {
	case EightHour:
		return patternEight
	case SixteenHour:
		return patternSixteen
	}
	return patternTwelve
}

// ShiftsPerMonth returns the average number of shifts worked per month
// under this pattern (DaysPerWeek × 52 / 12).
func (p ShiftPattern) ShiftsPerMonth() decimal.Decimal {
	return p.DaysPerWeek.Mul(decimal.NewFromInt(weeksPerYear)).Div(decimal.NewFromInt(12))
}

// =============================================================================
// RESOLUTION - Numeric shift length to canonical pattern
// =============================================================================

// ResolveLength snaps a nominal shift length to the nearest canonical
// length not exceeding it:
//
//	shiftHours ≤ 8        → EightHour
//	8 < shiftHours ≤ 12   → TwelveHour
//	12 < shiftHours ≤ 16  → SixteenHour
//	anything else         → TwelveHour
//
// Never errors: shift length originates from free-form UI input, so
// out-of-range values (zero, negative, unusually large) fall back to the
// 12-hour pattern rather than failing the whole calculation.
func ResolveLength(shiftHours float64) ShiftLength {
	switch {
	case shiftHours > 0 && shiftHours <= 8:
		return EightHour
	case shiftHours > 8 && shiftHours <= 12:
		return TwelveHour
	case shiftHours > 12 && shiftHours <= 16:
		return SixteenHour
	}
	return TwelveHour
}

// ResolvePattern resolves a nominal shift length directly to its pattern.
func ResolvePattern(shiftHours float64) ShiftPattern {
	return ResolveLength(shiftHours).Pattern()
}
