/*
catalog.go - Differential-type catalog schema

PURPOSE:
  Defines the configuration schema describing each differential type's
  legal value/frequency semantics. The catalog is supplied externally
  (configuration service, static asset, database) and consumed read-only:
  the engine never fetches, stores, or mutates it. The catalog package
  builds these structs from JSON and ships the default nursing set.

KEY CONCEPTS:
  - ValueUnit: How a differential's value is denominated (flat dollars
    per hour/shift, lump dollars, percentage of base, multiplier of base)
  - FrequencyUnit: How often it applies (countable per shift/week/month,
    boolean eligibility, or lump-sum one-time/annual)
  - TypeConfig: One catalog entry; Category is opaque UI metadata here
  - Instance: A specific differential a caller holds (type, value, freq)

SEE ALSO:
  - differential.go: Interprets instances through these configs
  - catalog package: JSON factory, defaults, range validation
*/
package compensation

import (
	"sort"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CATEGORIES - Opaque grouping metadata for UI presentation
// =============================================================================

type Category string

const (
	CategoryEssential Category = "essential"
	CategoryCommon    Category = "common"
	CategoryRare      Category = "rare"
	CategoryBonus     Category = "bonus"
)

// Categories lists the four fixed categories in display order.
var Categories = []Category{CategoryEssential, CategoryCommon, CategoryRare, CategoryBonus}

// =============================================================================
// UNITS - Value and frequency denominations
// =============================================================================

// ValueUnit describes how a differential value is denominated.
// Catalogs may carry free-form descriptive unit strings; anything not
// matching a known constant is treated as a flat lump-dollar value.
type ValueUnit string

const (
	ValueDollarsPerHour  ValueUnit = "$/hour"
	ValueDollarsPerShift ValueUnit = "$/shift"
	ValueDollarsFlat     ValueUnit = "$"
	ValuePercent         ValueUnit = "%"
	ValueMultiplier      ValueUnit = "x"
)

// FrequencyUnit describes how often a differential applies.
type FrequencyUnit string

const (
	FreqPerShift FrequencyUnit = "per_shift"
	FreqPerWeek  FrequencyUnit = "per_week"
	FreqPerMonth FrequencyUnit = "per_month"
	FreqYesNo    FrequencyUnit = "yes_no"
	FreqOneTime  FrequencyUnit = "one_time"
	FreqAnnual   FrequencyUnit = "annual"
)

// Countable reports whether the unit is a per-period count, as opposed
// to a boolean eligibility flag or a lump sum.
func (u FrequencyUnit) Countable() bool {
	switch u {
	case FreqPerShift, FreqPerWeek, FreqPerMonth:
		return true
	}
	return false
}

// =============================================================================
// TYPE CONFIG - One catalog entry
// =============================================================================

// Range bounds a value or frequency together with its unit.
type Range struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Unit string
}

// Contains reports whether v lies within [Min, Max].
func (r Range) Contains(v decimal.Decimal) bool {
	return v.GreaterThanOrEqual(r.Min) && v.LessThanOrEqual(r.Max)
}

// TypeConfig describes one differential type's legal semantics.
type TypeConfig struct {
	Key         string
	Category    Category
	Question    string
	Value       Range
	Frequency   Range
	Description string
}

// ValueUnit returns the typed value denomination. Unknown descriptive
// strings collapse to flat lump dollars.
func (c TypeConfig) ValueUnit() ValueUnit {
	switch ValueUnit(c.Value.Unit) {
	case ValueDollarsPerHour, ValueDollarsPerShift, ValuePercent, ValueMultiplier:
		return ValueUnit(c.Value.Unit)
	}
	return ValueDollarsFlat
}

// FrequencyUnit returns the typed frequency denomination, defaulting to
// per-month for unknown strings.
func (c TypeConfig) FrequencyUnit() FrequencyUnit {
	switch FrequencyUnit(c.Frequency.Unit) {
	case FreqPerShift, FreqPerWeek, FreqYesNo, FreqOneTime, FreqAnnual:
		return FrequencyUnit(c.Frequency.Unit)
	}
	return FreqPerMonth
}

// =============================================================================
// CATALOG - Read-only mapping from type key to config
// =============================================================================

// Catalog maps differential-type keys to their configs. Loaded once by
// the hosting layer and passed by reference into calculations.
type Catalog map[string]TypeConfig

// Lookup returns the config for a type key. The ok result must be
// honored: a missing entry is a configuration error, never zero pay.
func (c Catalog) Lookup(key string) (TypeConfig, bool) {
	cfg, ok := c[key]
	return cfg, ok
}

// ByCategory groups catalog entries for UI presentation, each group
// sorted by key for stable output.
func (c Catalog) ByCategory() map[Category][]TypeConfig {
	grouped := make(map[Category][]TypeConfig)
	for _, cfg := range c {
		grouped[cfg.Category] = append(grouped[cfg.Category], cfg)
	}
	for _, cfgs := range grouped {
		sort.Slice(cfgs, func(i, j int) bool { return cfgs[i].Key < cfgs[j].Key })
	}
	return grouped
}

// =============================================================================
// INSTANCE - A specific differential held by a caller
// =============================================================================

// Instance is a concrete differential: which type, its value, and how
// often it applies. For boolean-style types Frequency is an eligibility
// flag holding 0 or 1 rather than a count.
type Instance struct {
	Type      string
	Value     decimal.Decimal
	Frequency decimal.Decimal
}
