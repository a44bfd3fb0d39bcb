/*
validate.go - Instance range validation against the catalog

PURPOSE:
  Range checks the engine deliberately does not repeat internally. The
  contract is: validate once at data-entry time, then contribution
  calculation trusts the instance. These helpers are the data-entry
  check.

SEE ALSO:
  - compensation/errors.go: RangeError and UnknownTypeError produced here
*/
package catalog

import (
	"github.com/warp/compensation-engine/compensation"
)

// ValidateInstance checks an instance's value and frequency against its
// catalog-declared ranges. Missing catalog entries surface as
// UnknownTypeError, the same failure the calculation path raises.
func ValidateInstance(inst compensation.Instance, cat compensation.Catalog) error {
	cfg, ok := cat.Lookup(inst.Type)
	if !ok {
		return &compensation.UnknownTypeError{Type: inst.Type}
	}
	if !cfg.Value.Contains(inst.Value) {
		return &compensation.RangeError{
			Type: inst.Type, Field: "value",
			Got: inst.Value, Min: cfg.Value.Min, Max: cfg.Value.Max,
		}
	}
	if !cfg.Frequency.Contains(inst.Frequency) {
		return &compensation.RangeError{
			Type: inst.Type, Field: "frequency",
			Got: inst.Frequency, Min: cfg.Frequency.Min, Max: cfg.Frequency.Max,
		}
	}
	return nil
}

// ValidateInstances checks a whole differential list, failing on the
// first violation.
func ValidateInstances(instances []compensation.Instance, cat compensation.Catalog) error {
	for _, inst := range instances {
		if err := ValidateInstance(inst, cat); err != nil {
			return err
		}
	}
	return nil
}
