/*
breakdown.go - Compensation breakdown aggregation

PURPOSE:
  Combines base pay and summed monthly differentials into the full
  compensation breakdown: base and total figures in all three pay units,
  the effective hourly rate, and the work-hour context of the shift
  pattern in effect.

LIFECYCLE:
  A Breakdown is a pure value computed per call and discarded after the
  caller consumes it. Every field is derived; nothing is mutated in
  place and nothing is persisted.

ADDITIVITY:
  TotalMonthly = BaseMonthly + DifferentialMonthly exactly, at the
  2-decimal precision of each operand. Annual totals derive from monthly
  by ×12, hourly totals by the monthly→hourly inverse.

SEE ALSO:
  - convert.go: Unit conversions used for every derived field
  - differential.go: Produces the monthly differential sum
*/
package compensation

import (
	"github.com/shopspring/decimal"
)

// Breakdown is the complete compensation picture for one input set.
type Breakdown struct {
	BaseHourly  decimal.Decimal
	BaseMonthly decimal.Decimal
	BaseAnnual  decimal.Decimal

	DifferentialMonthly decimal.Decimal
	DifferentialAnnual  decimal.Decimal

	TotalHourly  decimal.Decimal
	TotalMonthly decimal.Decimal
	TotalAnnual  decimal.Decimal

	// EffectiveHourlyRate blends differentials into the hourly rate
	// through the monthly representation.
	EffectiveHourlyRate decimal.Decimal

	ShiftHours       decimal.Decimal
	MonthlyWorkHours decimal.Decimal
	AnnualWorkHours  decimal.Decimal
	DaysPerWeek      decimal.Decimal
}

// Calculate builds a Breakdown from base pay in any unit plus the
// already-summed monthly differential contribution. Differentials are
// optional: a zero sum still populates every field.
//
// The function is total: degenerate input (zero or negative base pay)
// yields a structurally valid if economically meaningless breakdown.
// Callers gate on ValidateCompensation before trusting results.
func Calculate(basePay decimal.Decimal, unit PayUnit, monthlyDifferentials decimal.Decimal, shiftHours float64) Breakdown {
	p := ResolvePattern(shiftHours)

	baseHourly := ToHourlyRate(basePay, unit, shiftHours)
	baseMonthly := HourlyToMonthly(baseHourly, shiftHours)
	baseAnnual := HourlyToAnnual(baseHourly, shiftHours)

	diffMonthly := roundMoney(monthlyDifferentials)
	diffAnnual := roundAnnual(diffMonthly.Mul(decTwelve))

	totalMonthly := baseMonthly.Add(diffMonthly)
	totalAnnual := roundAnnual(totalMonthly.Mul(decTwelve))
	totalHourly := MonthlyToHourly(totalMonthly, shiftHours)

	return Breakdown{
		BaseHourly:          baseHourly,
		BaseMonthly:         baseMonthly,
		BaseAnnual:          baseAnnual,
		DifferentialMonthly: diffMonthly,
		DifferentialAnnual:  diffAnnual,
		TotalHourly:         totalHourly,
		TotalMonthly:        totalMonthly,
		TotalAnnual:         totalAnnual,
		EffectiveHourlyRate: EffectiveHourlyRate(baseHourly, diffMonthly, shiftHours),
		ShiftHours:          p.HoursPerShift,
		MonthlyWorkHours:    roundMoney(p.HoursPerMonth),
		AnnualWorkHours:     p.HoursPerYear,
		DaysPerWeek:         p.DaysPerWeek,
	}
}

// CalculateFromInstances resolves and sums the differential instances
// against the catalog, then builds the breakdown. Fails with
// UnknownTypeError when any instance references a type missing from the
// catalog; a partial breakdown is never returned for inconsistent input.
func CalculateFromInstances(basePay decimal.Decimal, unit PayUnit, instances []Instance, catalog Catalog, shiftHours float64) (Breakdown, error) {
	baseHourly := ToHourlyRate(basePay, unit, shiftHours)
	diffMonthly, err := SumMonthlyContributions(instances, catalog, baseHourly, shiftHours)
	if err != nil {
		return Breakdown{}, err
	}
	return Calculate(basePay, unit, diffMonthly, shiftHours), nil
}
