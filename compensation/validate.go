/*
validate.go - Validation, outlier, and confidence rules

PURPOSE:
  Sanity bounds on compensation figures and a coarse confidence grade on
  how much differential data backs an estimate. All thresholds are pure
  classifications over arguments; the engine holds no state.

BOUNDS MODEL:
  Only the hourly bound is configured. Monthly and annual bounds derive
  from it through the active shift pattern's hour totals, so they track
  whichever pattern is in effect instead of being tuned separately.

SEE ALSO:
  - convert.go: ToHourlyRate used to normalize before bounds checking
*/
package compensation

import (
	"github.com/shopspring/decimal"
)

// Hourly rate sanity bounds, in dollars.
var (
	MinHourlyRate = decimal.NewFromInt(15)
	MaxHourlyRate = decimal.NewFromInt(200)
)

// outlierFactor marks amounts more than 30% above the supplied median.
var outlierFactor = decimal.NewFromFloat(1.3)

// ValidateCompensation reports whether an amount in the given unit
// implies an hourly rate within [MinHourlyRate, MaxHourlyRate] under the
// shift pattern. Unrecognized units go through the magnitude heuristic,
// the same as every other conversion path.
func ValidateCompensation(amount decimal.Decimal, unit PayUnit, shiftHours float64) bool {
	hourly := ToHourlyRate(amount, unit, shiftHours)
	return hourly.GreaterThanOrEqual(MinHourlyRate) && hourly.LessThanOrEqual(MaxHourlyRate)
}

// IsOutlier reports whether amount exceeds the median by more than 30%.
// The median itself is supplied by the caller; this engine does not
// aggregate population data.
func IsOutlier(amount, median decimal.Decimal) bool {
	return amount.GreaterThan(median.Mul(outlierFactor))
}

// =============================================================================
// CONFIDENCE
// =============================================================================

// ConfidenceLevel is a coarse indicator of how much differential data
// backs a compensation estimate, used to caveat displayed figures.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// ConfidenceFor grades an estimate by differential count: three or more
// differentials rate high, at least one medium, none low.
func ConfidenceFor(differentialCount int) ConfidenceLevel {
	switch {
	case differentialCount >= 3:
		return ConfidenceHigh
	case differentialCount >= 1:
		return ConfidenceMedium
	}
	return ConfidenceLow
}
