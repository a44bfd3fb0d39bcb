package compensation_test

import (
	"testing"

	"github.com/warp/compensation-engine/compensation"
)

// =============================================================================
// BOUNDS TESTS
// =============================================================================

func TestValidateCompensation_HourlyBounds(t *testing.T) {
	tests := []struct {
		amount float64
		want   bool
	}{
		{14.99, false},
		{15, true},
		{38, true},
		{200, true},
		{200.01, false},
		{0, false},
		{-10, false},
	}

	for _, tt := range tests {
		got := compensation.ValidateCompensation(dec(tt.amount), compensation.UnitHourly, 12)
		if got != tt.want {
			t.Errorf("ValidateCompensation(%v, hourly) = %v, want %v", tt.amount, got, tt.want)
		}
	}
}

func TestValidateCompensation_DerivedBoundsTrackPattern(t *testing.T) {
	// GIVEN: The same annual salary under different shift patterns
	// WHEN: Validating against the hourly bound
	// THEN: The implied bound scales with the pattern's annual hours -
	//       $31,000/year is $14.90/hour on 8h shifts (2,080h, invalid) but
	//       $16.56/hour on 12h shifts (1,872h, valid)

	if compensation.ValidateCompensation(dec(31000), compensation.UnitAnnual, 8) {
		t.Error("31000/year @ 8h should fall below the hourly floor")
	}
	if !compensation.ValidateCompensation(dec(31000), compensation.UnitAnnual, 12) {
		t.Error("31000/year @ 12h should clear the hourly floor")
	}
}

func TestIsOutlier(t *testing.T) {
	median := dec(100)

	if compensation.IsOutlier(dec(130), median) {
		t.Error("exactly 30% above the median is not an outlier")
	}
	if !compensation.IsOutlier(dec(130.01), median) {
		t.Error("more than 30% above the median is an outlier")
	}
	if compensation.IsOutlier(dec(95), median) {
		t.Error("below the median is never an outlier")
	}
}

// =============================================================================
// CONFIDENCE TESTS
// =============================================================================

func TestConfidenceFor_Thresholds(t *testing.T) {
	tests := []struct {
		count int
		want  compensation.ConfidenceLevel
	}{
		{0, compensation.ConfidenceLow},
		{1, compensation.ConfidenceMedium},
		{2, compensation.ConfidenceMedium},
		{3, compensation.ConfidenceHigh},
		{7, compensation.ConfidenceHigh},
	}

	for _, tt := range tests {
		if got := compensation.ConfidenceFor(tt.count); got != tt.want {
			t.Errorf("ConfidenceFor(%d) = %v, want %v", tt.count, got, tt.want)
		}
	}
}
