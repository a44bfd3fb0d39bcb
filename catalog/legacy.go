/*
legacy.go - One-way adapter for the simple additive differential model

PURPOSE:
  Earlier profile data stored differentials as bare {amount, unit} pairs
  summed flatly, with no type semantics. The catalog-driven
  {type, value, frequency} model is authoritative in this engine; this
  adapter converts legacy records into instances bound to synthetic
  flat-rate configs so old data flows through the same calculation path.
  Conversion is one-way - nothing downstream produces the legacy shape.

MAPPING:
  unit "hourly": a flat $/hour premium covering every worked shift
  unit "annual": a flat dollar amount spread over twelve months
  anything else: treated as annual (lump sums dominate free-form data)

SEE ALSO:
  - compensation/differential.go: The calculation both models now share
*/
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/warp/compensation-engine/compensation"
)

// LegacyDifferential is the retired additive model: a bare amount plus
// an hourly/annual unit tag.
type LegacyDifferential struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Unit   string          `json:"unit"` // "hourly" or "annual"
}

const (
	legacyHourlyKey = "legacy_hourly"
	legacyAnnualKey = "legacy_annual"
)

// legacyConfigs are the synthetic catalog entries legacy instances bind
// to. Ranges are wide open: legacy data predates range validation.
func legacyConfigs() []compensation.TypeConfig {
	wide := func(unit string) compensation.Range {
		return compensation.Range{
			Min:  decimal.Zero,
			Max:  decimal.New(1, 6), // 1,000,000
			Unit: unit,
		}
	}
	return []compensation.TypeConfig{
		{
			Key:         legacyHourlyKey,
			Category:    compensation.CategoryCommon,
			Question:    "Imported hourly differential",
			Value:       wide(string(compensation.ValueDollarsPerHour)),
			Frequency:   compensation.Range{Min: decimal.Zero, Max: decimal.NewFromInt(1), Unit: string(compensation.FreqPerShift)},
			Description: "Migrated from the additive differential model",
		},
		{
			Key:         legacyAnnualKey,
			Category:    compensation.CategoryCommon,
			Question:    "Imported annual differential",
			Value:       wide(string(compensation.ValueDollarsFlat)),
			Frequency:   compensation.Range{Min: decimal.Zero, Max: decimal.NewFromInt(1), Unit: string(compensation.FreqAnnual)},
			Description: "Migrated from the additive differential model",
		},
	}
}

// FromLegacy converts legacy records into instances plus a catalog
// extended with the synthetic configs they reference. The returned
// catalog is a copy; base is not mutated.
func FromLegacy(records []LegacyDifferential, base compensation.Catalog) ([]compensation.Instance, compensation.Catalog, error) {
	cat := make(compensation.Catalog, len(base)+2)
	for k, v := range base {
		cat[k] = v
	}
	for _, cfg := range legacyConfigs() {
		cat[cfg.Key] = cfg
	}

	instances := make([]compensation.Instance, 0, len(records))
	for _, rec := range records {
		if rec.Amount.IsNegative() {
			return nil, nil, fmt.Errorf("legacy differential %q: negative amount %v", rec.Name, rec.Amount)
		}
		switch rec.Unit {
		case "hourly":
			instances = append(instances, compensation.Instance{
				Type:      legacyHourlyKey,
				Value:     rec.Amount,
				Frequency: decimal.NewFromInt(1), // every shift
			})
		default: // "annual" and free-form units
			instances = append(instances, compensation.Instance{
				Type:      legacyAnnualKey,
				Value:     rec.Amount,
				Frequency: decimal.NewFromInt(1),
			})
		}
	}
	return instances, cat, nil
}
