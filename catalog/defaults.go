/*
defaults.go - Built-in nursing differential catalog

PURPOSE:
  Ships the default set of differential types nursing compensation is
  typically built from. This is the catalog the server seeds on first
  boot; deployments replace or extend it through the store.

CATEGORIES:
  essential: Differentials nearly every bedside role carries
  common:    Frequent premiums tied to role or schedule
  rare:      Specialty premiums
  bonus:     Lump-sum and percentage incentives

RANGE PHILOSOPHY:
  Ranges are deliberately generous sanity bounds for data entry, not
  market statistics. Outlier detection against population medians is a
  separate, caller-supplied concern.

SEE ALSO:
  - factory.go: JSON catalog loading for external definitions
  - compensation/differential.go: How each unit shape is interpreted
*/
package catalog

import (
	"github.com/shopspring/decimal"
	"github.com/warp/compensation-engine/compensation"
)

func entry(key string, cat compensation.Category, question string, value, freq compensation.Range, desc string) compensation.TypeConfig {
	return compensation.TypeConfig{
		Key:         key,
		Category:    cat,
		Question:    question,
		Value:       value,
		Frequency:   freq,
		Description: desc,
	}
}

func bounds(min, max float64, unit string) compensation.Range {
	return compensation.Range{
		Min:  decimal.NewFromFloat(min),
		Max:  decimal.NewFromFloat(max),
		Unit: unit,
	}
}

// DefaultCatalog returns the built-in nursing differential set. The
// result is a fresh value each call; callers own it.
func DefaultCatalog() compensation.Catalog {
	perShiftFlag := bounds(0, 1, string(compensation.FreqPerShift))
	yesNo := bounds(0, 1, string(compensation.FreqYesNo))

	configs := []compensation.TypeConfig{
		entry("night_shift", compensation.CategoryEssential,
			"Do you earn a night shift differential?",
			bounds(1, 15, string(compensation.ValueDollarsPerHour)), perShiftFlag,
			"Hourly premium for overnight shifts"),
		entry("weekend", compensation.CategoryEssential,
			"Do you earn a weekend differential?",
			bounds(1, 20, string(compensation.ValueDollarsPerHour)), perShiftFlag,
			"Hourly premium for Saturday/Sunday shifts"),
		entry("holiday", compensation.CategoryEssential,
			"Do you earn holiday pay?",
			bounds(1, 25, string(compensation.ValueDollarsPerHour)), perShiftFlag,
			"Hourly premium for recognized holidays"),
		entry("charge_nurse", compensation.CategoryCommon,
			"Do you earn charge nurse pay?",
			bounds(0.5, 10, string(compensation.ValueDollarsPerHour)), perShiftFlag,
			"Hourly premium for charge duty"),
		entry("preceptor", compensation.CategoryCommon,
			"Do you earn preceptor pay?",
			bounds(0.5, 8, string(compensation.ValueDollarsPerHour)), perShiftFlag,
			"Hourly premium while precepting new staff"),
		entry("on_call", compensation.CategoryCommon,
			"Do you take paid on-call shifts?",
			bounds(10, 300, string(compensation.ValueDollarsPerShift)),
			bounds(0, 7, string(compensation.FreqPerWeek)),
			"Flat payment per on-call shift"),
		entry("overtime", compensation.CategoryCommon,
			"Do you regularly work overtime shifts?",
			bounds(1, 3, string(compensation.ValueMultiplier)),
			bounds(0, 3, string(compensation.FreqPerWeek)),
			"Overtime rate as a multiple of base (1.5 = time-and-a-half)"),
		entry("float_pool", compensation.CategoryRare,
			"Do you earn float pool differential?",
			bounds(1, 15, string(compensation.ValueDollarsPerHour)), perShiftFlag,
			"Hourly premium for floating between units"),
		entry("certification", compensation.CategoryRare,
			"Do you receive certification pay?",
			bounds(10, 500, string(compensation.ValueDollarsFlat)), yesNo,
			"Monthly stipend for specialty certifications"),
		entry("shift_bonus", compensation.CategoryBonus,
			"Do you pick up incentive shifts?",
			bounds(25, 500, string(compensation.ValueDollarsPerShift)),
			bounds(0, 10, string(compensation.FreqPerMonth)),
			"Flat incentive payment per extra shift"),
		entry("sign_on_bonus", compensation.CategoryBonus,
			"Did you receive a sign-on bonus?",
			bounds(500, 50000, string(compensation.ValueDollarsFlat)),
			bounds(0, 1, string(compensation.FreqOneTime)),
			"One-time bonus, spread over twelve months for comparison"),
		entry("annual_bonus", compensation.CategoryBonus,
			"Do you receive an annual bonus?",
			bounds(1, 20, string(compensation.ValuePercent)),
			bounds(0, 1, string(compensation.FreqAnnual)),
			"Yearly bonus as a percentage of base pay"),
	}

	cat := make(compensation.Catalog, len(configs))
	for _, cfg := range configs {
		cat[cfg.Key] = cfg
	}
	return cat
}
