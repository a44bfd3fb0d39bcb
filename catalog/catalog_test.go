package catalog_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/compensation-engine/catalog"
	"github.com/warp/compensation-engine/compensation"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// =============================================================================
// FACTORY TESTS
// =============================================================================

func TestParseCatalog(t *testing.T) {
	// GIVEN: A JSON catalog document in the published schema
	// WHEN: Parsing it
	// THEN: Typed configs come back with the declared units and ranges

	doc := []byte(`{
		"night_shift": {
			"category": "essential",
			"question": "Do you earn a night shift differential?",
			"value_range": {"min": 1, "max": 15, "unit": "$/hour"},
			"frequency_range": {"min": 0, "max": 1, "unit": "per_shift"},
			"description": "Premium for overnight hours"
		},
		"sign_on_bonus": {
			"category": "bonus",
			"question": "Did you receive a sign-on bonus?",
			"value_range": {"min": 500, "max": 50000, "unit": "$"},
			"frequency_range": {"min": 0, "max": 1, "unit": "one_time"}
		}
	}`)

	cat, err := catalog.ParseCatalog(doc)
	require.NoError(t, err)
	require.Len(t, cat, 2)

	night, ok := cat.Lookup("night_shift")
	require.True(t, ok)
	assert.Equal(t, compensation.CategoryEssential, night.Category)
	assert.Equal(t, compensation.ValueDollarsPerHour, night.ValueUnit())
	assert.Equal(t, compensation.FreqPerShift, night.FrequencyUnit())
	assert.True(t, night.Value.Contains(dec(3)))
	assert.False(t, night.Value.Contains(dec(20)))

	bonus, ok := cat.Lookup("sign_on_bonus")
	require.True(t, ok)
	assert.Equal(t, compensation.ValueDollarsFlat, bonus.ValueUnit())
	assert.Equal(t, compensation.FreqOneTime, bonus.FrequencyUnit())
}

func TestParseCatalog_Defaults(t *testing.T) {
	// Missing category defaults to common; missing frequency unit to per_month.
	doc := []byte(`{
		"stipend": {
			"question": "Monthly stipend?",
			"value_range": {"min": 0, "max": 1000, "unit": "$"},
			"frequency_range": {"min": 0, "max": 1}
		}
	}`)

	cat, err := catalog.ParseCatalog(doc)
	require.NoError(t, err)

	cfg, ok := cat.Lookup("stipend")
	require.True(t, ok)
	assert.Equal(t, compensation.CategoryCommon, cfg.Category)
	assert.Equal(t, compensation.FreqPerMonth, cfg.FrequencyUnit())
}

func TestParseCatalog_Rejections(t *testing.T) {
	cases := map[string]string{
		"inverted value range": `{"x": {
			"value_range": {"min": 10, "max": 1, "unit": "$"},
			"frequency_range": {"min": 0, "max": 1, "unit": "yes_no"}}}`,
		"missing value unit": `{"x": {
			"value_range": {"min": 0, "max": 1},
			"frequency_range": {"min": 0, "max": 1, "unit": "yes_no"}}}`,
		"unknown category": `{"x": {
			"category": "mythic",
			"value_range": {"min": 0, "max": 1, "unit": "$"},
			"frequency_range": {"min": 0, "max": 1, "unit": "yes_no"}}}`,
		"malformed JSON": `{`,
	}

	for name, doc := range cases {
		_, err := catalog.ParseCatalog([]byte(doc))
		assert.Error(t, err, name)
	}
}

func TestMarshalCatalog_RoundTrip(t *testing.T) {
	original := catalog.DefaultCatalog()

	doc, err := catalog.MarshalCatalog(original)
	require.NoError(t, err)

	parsed, err := catalog.ParseCatalog(doc)
	require.NoError(t, err)
	require.Len(t, parsed, len(original))

	for key, cfg := range original {
		got, ok := parsed.Lookup(key)
		require.True(t, ok, key)
		assert.Equal(t, cfg.Category, got.Category, key)
		assert.Equal(t, cfg.ValueUnit(), got.ValueUnit(), key)
		assert.Equal(t, cfg.FrequencyUnit(), got.FrequencyUnit(), key)
		assert.True(t, cfg.Value.Min.Equal(got.Value.Min), key)
		assert.True(t, cfg.Value.Max.Equal(got.Value.Max), key)
	}
}

// =============================================================================
// DEFAULT CATALOG TESTS
// =============================================================================

func TestDefaultCatalog_Shape(t *testing.T) {
	cat := catalog.DefaultCatalog()

	// Every fixed category is represented.
	grouped := cat.ByCategory()
	for _, category := range compensation.Categories {
		assert.NotEmpty(t, grouped[category], "category %s has no entries", category)
	}

	// Every entry has a question and a coherent range.
	for key, cfg := range cat {
		assert.NotEmpty(t, cfg.Question, key)
		assert.Equal(t, key, cfg.Key)
		assert.True(t, cfg.Value.Min.LessThanOrEqual(cfg.Value.Max), key)
		assert.True(t, cfg.Frequency.Min.LessThanOrEqual(cfg.Frequency.Max), key)
	}
}

func TestDefaultCatalog_CoversAllUnitShapes(t *testing.T) {
	cat := catalog.DefaultCatalog()

	valueUnits := map[compensation.ValueUnit]bool{}
	freqUnits := map[compensation.FrequencyUnit]bool{}
	for _, cfg := range cat {
		valueUnits[cfg.ValueUnit()] = true
		freqUnits[cfg.FrequencyUnit()] = true
	}

	for _, u := range []compensation.ValueUnit{
		compensation.ValueDollarsPerHour, compensation.ValueDollarsPerShift,
		compensation.ValueDollarsFlat, compensation.ValuePercent,
		compensation.ValueMultiplier,
	} {
		assert.True(t, valueUnits[u], "no default entry exercises value unit %s", u)
	}
	for _, u := range []compensation.FrequencyUnit{
		compensation.FreqPerShift, compensation.FreqPerWeek, compensation.FreqPerMonth,
		compensation.FreqYesNo, compensation.FreqOneTime, compensation.FreqAnnual,
	} {
		assert.True(t, freqUnits[u], "no default entry exercises frequency unit %s", u)
	}
}

// =============================================================================
// INSTANCE VALIDATION TESTS
// =============================================================================

func TestValidateInstance(t *testing.T) {
	cat := catalog.DefaultCatalog()

	// Within range.
	err := catalog.ValidateInstance(compensation.Instance{
		Type: "night_shift", Value: dec(3), Frequency: dec(1),
	}, cat)
	assert.NoError(t, err)

	// Value above the catalog maximum.
	err = catalog.ValidateInstance(compensation.Instance{
		Type: "night_shift", Value: dec(50), Frequency: dec(1),
	}, cat)
	assert.ErrorIs(t, err, compensation.ErrValueOutOfRange)

	var rangeErr *compensation.RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "value", rangeErr.Field)

	// Frequency outside the eligibility flag range.
	err = catalog.ValidateInstance(compensation.Instance{
		Type: "night_shift", Value: dec(3), Frequency: dec(2),
	}, cat)
	assert.ErrorIs(t, err, compensation.ErrFrequencyOutOfRange)

	// Unknown type.
	err = catalog.ValidateInstance(compensation.Instance{
		Type: "hazard_pay", Value: dec(3), Frequency: dec(1),
	}, cat)
	assert.ErrorIs(t, err, compensation.ErrUnknownDifferentialType)
}

func TestValidateInstances_FailsOnFirstViolation(t *testing.T) {
	cat := catalog.DefaultCatalog()
	err := catalog.ValidateInstances([]compensation.Instance{
		{Type: "night_shift", Value: dec(3), Frequency: dec(1)},
		{Type: "weekend", Value: dec(100), Frequency: dec(1)},
	}, cat)
	assert.ErrorIs(t, err, compensation.ErrValueOutOfRange)
}

// =============================================================================
// LEGACY ADAPTER TESTS
// =============================================================================

func TestFromLegacy(t *testing.T) {
	// GIVEN: Records in the retired additive model
	// WHEN: Converting to catalog-driven instances
	// THEN: Hourly records cover every shift; annual records spread over 12
	//       months; both flow through the shared calculation path

	records := []catalog.LegacyDifferential{
		{Name: "Night", Amount: dec(3), Unit: "hourly"},
		{Name: "Retention", Amount: dec(1200), Unit: "annual"},
	}

	instances, cat, err := catalog.FromLegacy(records, catalog.DefaultCatalog())
	require.NoError(t, err)
	require.Len(t, instances, 2)

	total, err := compensation.SumMonthlyContributions(instances, cat, dec(38), 12)
	require.NoError(t, err)

	// 3 × 156 monthly hours + 1200/12 = 468 + 100.
	assert.True(t, total.Equal(dec(568)), "total = %v, want 568", total)
}

func TestFromLegacy_DoesNotMutateBase(t *testing.T) {
	base := catalog.DefaultCatalog()
	before := len(base)

	_, _, err := catalog.FromLegacy([]catalog.LegacyDifferential{
		{Name: "X", Amount: dec(1), Unit: "hourly"},
	}, base)
	require.NoError(t, err)
	assert.Len(t, base, before)
}

func TestFromLegacy_RejectsNegativeAmounts(t *testing.T) {
	_, _, err := catalog.FromLegacy([]catalog.LegacyDifferential{
		{Name: "Bad", Amount: dec(-5), Unit: "hourly"},
	}, catalog.DefaultCatalog())
	require.Error(t, err)
	assert.False(t, errors.Is(err, compensation.ErrUnknownDifferentialType))
}
