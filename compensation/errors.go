/*
errors.go - Centralized error types for the compensation engine

PURPOSE:
  All engine error types in one place for consistency and discoverability.
  Hosting layers (catalog loading, API handlers) wrap these with context.

ERROR CATEGORIES:
  1. Catalog consistency - Unknown differential types
  2. Range violations - Values/frequencies outside catalog-declared ranges
  3. Degenerate input - Non-positive base pay

PROPAGATION POLICY:
  Every calculation is pure and total over its documented domain except
  the unknown-type case, which must propagate as an explicit failure so
  aggregation never silently undercounts pay. Range violations are a
  caller responsibility, validated once at data-entry time; the helpers
  here exist for that caller-side check.

USAGE:
  if errors.Is(err, compensation.ErrUnknownDifferentialType) {
      // catalog/instance mismatch: configuration bug, not zero pay
  }

SEE ALSO:
  - differential.go: Produces UnknownTypeError
  - catalog package: Produces range errors during instance validation
*/
package compensation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrUnknownDifferentialType is returned when an instance references a
	// type with no catalog entry. This is a caller/catalog consistency bug
	// and is never reported as a zero contribution.
	ErrUnknownDifferentialType = errors.New("unknown differential type")

	// ErrValueOutOfRange is returned when an instance value falls outside
	// its catalog-declared range.
	ErrValueOutOfRange = errors.New("differential value out of range")

	// ErrFrequencyOutOfRange is returned when an instance frequency falls
	// outside its catalog-declared range.
	ErrFrequencyOutOfRange = errors.New("differential frequency out of range")

	// ErrNonPositiveBasePay is returned by input validation when base pay
	// is zero or negative. Breakdown calculation itself stays total and
	// still returns a structurally valid result for such input.
	ErrNonPositiveBasePay = errors.New("base pay must be positive")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// UnknownTypeError identifies which instance type had no catalog entry.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown differential type %q: no catalog entry", e.Type)
}

func (e *UnknownTypeError) Unwrap() error {
	return ErrUnknownDifferentialType
}

// RangeError describes an instance field outside its catalog range.
type RangeError struct {
	Type  string
	Field string // "value" or "frequency"
	Got   decimal.Decimal
	Min   decimal.Decimal
	Max   decimal.Decimal
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %s %v outside catalog range [%v, %v]",
		e.Type, e.Field, e.Got, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error {
	if e.Field == "frequency" {
		return ErrFrequencyOutOfRange
	}
	return ErrValueOutOfRange
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValueOutOfRange) ||
		errors.Is(err, ErrFrequencyOutOfRange) ||
		errors.Is(err, ErrNonPositiveBasePay)
}

// IsNotFound returns true if the error indicates a missing catalog entry.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUnknownDifferentialType)
}
