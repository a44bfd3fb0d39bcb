package compensation_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/warp/compensation-engine/compensation"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// =============================================================================
// ROUND-TRIP CONVERSION TESTS
// =============================================================================

func TestConversion_RoundTrip(t *testing.T) {
	// GIVEN: Hourly rates across the plausible range
	// WHEN: Converting hourly → annual → hourly under each canonical pattern
	// THEN: The original rate comes back within ±0.01

	tolerance := dec(0.01)
	rates := []float64{15, 32.5, 75.25, 200}
	shiftHours := []float64{8, 12, 16}

	for _, h := range shiftHours {
		for _, rate := range rates {
			annual := compensation.HourlyToAnnual(dec(rate), h)
			back := compensation.AnnualToHourly(annual, h)
			if back.Sub(dec(rate)).Abs().GreaterThan(tolerance) {
				t.Errorf("round trip %v @ %vh: got %v via annual %v", rate, h, back, annual)
			}
		}
	}
}

func TestConversion_MonthlyRoundTrip(t *testing.T) {
	for _, h := range []float64{8, 12, 16} {
		monthly := compensation.HourlyToMonthly(dec(38), h)
		back := compensation.MonthlyToHourly(monthly, h)
		if back.Sub(dec(38)).Abs().GreaterThan(dec(0.01)) {
			t.Errorf("monthly round trip @ %vh: got %v via %v", h, back, monthly)
		}
	}
}

func TestHourlyToAnnual_TwelveHourPattern(t *testing.T) {
	// $48/hour on the 12-hour/3-day pattern: 48 × 1,872 = 89,856.
	got := compensation.HourlyToAnnual(dec(48), 12)
	if !got.Equal(decimal.NewFromInt(89856)) {
		t.Errorf("HourlyToAnnual(48, 12) = %v, want 89856", got)
	}
}

// =============================================================================
// UNIT INFERENCE TESTS
// =============================================================================

func TestInferUnit_Boundaries(t *testing.T) {
	tests := []struct {
		amount float64
		want   compensation.PayUnit
	}{
		{199, compensation.UnitHourly},
		{199.99, compensation.UnitHourly},
		{200, compensation.UnitMonthly},
		{9999.99, compensation.UnitMonthly},
		{10000, compensation.UnitAnnual},
		{85000, compensation.UnitAnnual},
	}

	for _, tt := range tests {
		if got := compensation.InferUnit(dec(tt.amount)); got != tt.want {
			t.Errorf("InferUnit(%v) = %v, want %v", tt.amount, got, tt.want)
		}
	}
}

func TestToHourlyRate_HeuristicBoundary(t *testing.T) {
	// GIVEN: An amount with no declared unit
	// WHEN: 199 vs 200 cross the documented boundary
	// THEN: 199 stays hourly; 200 is treated as monthly, not hourly

	got := compensation.ToHourlyRate(dec(199), compensation.UnitUnspecified, 12)
	if !got.Equal(dec(199)) {
		t.Errorf("ToHourlyRate(199, unspecified, 12) = %v, want 199", got)
	}

	// 200 / 156 monthly hours ≈ 1.28
	got = compensation.ToHourlyRate(dec(200), compensation.UnitUnspecified, 12)
	if !got.Equal(dec(1.28)) {
		t.Errorf("ToHourlyRate(200, unspecified, 12) = %v, want 1.28", got)
	}
}

func TestResolveUnit_InferenceFlag(t *testing.T) {
	// Declared units pass through without inference.
	unit, inferred := compensation.ResolveUnit(dec(200), compensation.UnitHourly)
	if unit != compensation.UnitHourly || inferred {
		t.Errorf("ResolveUnit(200, hourly) = %v inferred=%v, want hourly without inference", unit, inferred)
	}

	// Unrecognized declared units fall back, flagged.
	unit, inferred = compensation.ResolveUnit(dec(85000), compensation.PayUnit("biweekly"))
	if unit != compensation.UnitAnnual || !inferred {
		t.Errorf("ResolveUnit(85000, biweekly) = %v inferred=%v, want annual with inference", unit, inferred)
	}
}

func TestToHourlyRate_DeclaredUnits(t *testing.T) {
	// Annual: 89,856 / 1,872 = 48.
	got := compensation.ToHourlyRate(dec(89856), compensation.UnitAnnual, 12)
	if !got.Equal(dec(48)) {
		t.Errorf("annual: got %v, want 48", got)
	}

	// Monthly: 5,928 / 156 = 38.
	got = compensation.ToHourlyRate(dec(5928), compensation.UnitMonthly, 12)
	if !got.Equal(dec(38)) {
		t.Errorf("monthly: got %v, want 38", got)
	}
}

// =============================================================================
// EFFECTIVE RATE TESTS
// =============================================================================

func TestEffectiveHourlyRate_BlendsThroughMonthly(t *testing.T) {
	// GIVEN: $38/hour base and $1,560/month of differentials on 12h shifts
	// WHEN: Blending differentials into the hourly rate
	// THEN: (5,928 + 1,560) / 156 = $48/hour

	got := compensation.EffectiveHourlyRate(dec(38), dec(1560), 12)
	if !got.Equal(dec(48)) {
		t.Errorf("EffectiveHourlyRate = %v, want 48", got)
	}
}

func TestEffectiveHourlyRate_ZeroDifferentials(t *testing.T) {
	got := compensation.EffectiveHourlyRate(dec(38), decimal.Zero, 12)
	if !got.Equal(dec(38)) {
		t.Errorf("EffectiveHourlyRate with zero differentials = %v, want 38", got)
	}
}
