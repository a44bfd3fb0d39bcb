/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's decimal-based domain model from the external API contract:
  clients send and receive plain numbers, the engine keeps decimals.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - catalog/factory.go: TypeConfigJSON reused as the catalog wire shape
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/warp/compensation-engine/catalog"
	"github.com/warp/compensation-engine/compensation"
	"github.com/warp/compensation-engine/display"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// DifferentialDTO is one differential instance as submitted by a client.
type DifferentialDTO struct {
	Type      string  `json:"type"`
	Value     float64 `json:"value"`
	Frequency float64 `json:"frequency"`
}

// PreviewRequest asks for a server-side compensation breakdown.
type PreviewRequest struct {
	BasePay       float64           `json:"base_pay"`
	BasePayUnit   string            `json:"base_pay_unit,omitempty"`
	ShiftHours    float64           `json:"shift_hours"`
	Differentials []DifferentialDTO `json:"differentials,omitempty"`
}

// ValidateRequest asks whether an amount is a plausible pay figure.
type ValidateRequest struct {
	Amount     float64 `json:"amount"`
	Unit       string  `json:"unit,omitempty"`
	ShiftHours float64 `json:"shift_hours"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// BreakdownDTO mirrors compensation.Breakdown with plain numbers.
type BreakdownDTO struct {
	BaseHourly  float64 `json:"base_hourly"`
	BaseMonthly float64 `json:"base_monthly"`
	BaseAnnual  float64 `json:"base_annual"`

	DifferentialMonthly float64 `json:"differential_monthly"`
	DifferentialAnnual  float64 `json:"differential_annual"`

	TotalHourly  float64 `json:"total_hourly"`
	TotalMonthly float64 `json:"total_monthly"`
	TotalAnnual  float64 `json:"total_annual"`

	EffectiveHourlyRate float64 `json:"effective_hourly_rate"`

	ShiftHours       float64 `json:"shift_hours"`
	MonthlyWorkHours float64 `json:"monthly_work_hours"`
	AnnualWorkHours  float64 `json:"annual_work_hours"`
	DaysPerWeek      float64 `json:"days_per_week"`
}

// BreakdownDisplayDTO carries pre-formatted display strings so thin
// clients don't re-implement currency formatting.
type BreakdownDisplayDTO struct {
	TotalHourly  string `json:"total_hourly"`
	TotalMonthly string `json:"total_monthly"`
	TotalAnnual  string `json:"total_annual"`
}

// PreviewResponse is the complete, self-contained preview result.
// Responses for different inputs are independent; last-response-wins is
// acceptable client policy.
type PreviewResponse struct {
	RequestID    string              `json:"request_id"`
	Breakdown    BreakdownDTO        `json:"breakdown"`
	Display      BreakdownDisplayDTO `json:"display"`
	Valid        bool                `json:"valid"`
	Confidence   string              `json:"confidence"`
	ResolvedUnit string              `json:"resolved_unit"`
	UnitInferred bool                `json:"unit_inferred"`
}

// ValidateResponse reports the bounds check and the normalized rate.
type ValidateResponse struct {
	Valid        bool    `json:"valid"`
	HourlyRate   float64 `json:"hourly_rate"`
	MinHourly    float64 `json:"min_hourly"`
	MaxHourly    float64 `json:"max_hourly"`
	ResolvedUnit string  `json:"resolved_unit"`
	UnitInferred bool    `json:"unit_inferred"`
}

// TypeConfigDTO is one catalog entry in API responses, reusing the
// factory's wire shape for the config body.
type TypeConfigDTO struct {
	Key    string                 `json:"key"`
	Config catalog.TypeConfigJSON `json:"config"`
}

// CatalogResponse groups catalog entries by category in display order.
type CatalogResponse struct {
	Categories map[string][]TypeConfigDTO `json:"categories"`
}

// PatternDTO describes one canonical shift pattern.
type PatternDTO struct {
	Length        string  `json:"length"`
	HoursPerShift float64 `json:"hours_per_shift"`
	DaysPerWeek   float64 `json:"days_per_week"`
	HoursPerWeek  float64 `json:"hours_per_week"`
	HoursPerMonth float64 `json:"hours_per_month"`
	HoursPerYear  float64 `json:"hours_per_year"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func f(d decimal.Decimal) float64 {
	v, _ := d.Float64()
	return v
}

func toInstances(dtos []DifferentialDTO) []compensation.Instance {
	instances := make([]compensation.Instance, len(dtos))
	for i, d := range dtos {
		instances[i] = compensation.Instance{
			Type:      d.Type,
			Value:     compensation.Dollars(d.Value),
			Frequency: decimal.NewFromFloat(d.Frequency),
		}
	}
	return instances
}

func toBreakdownDTO(b compensation.Breakdown) BreakdownDTO {
	return BreakdownDTO{
		BaseHourly:          f(b.BaseHourly),
		BaseMonthly:         f(b.BaseMonthly),
		BaseAnnual:          f(b.BaseAnnual),
		DifferentialMonthly: f(b.DifferentialMonthly),
		DifferentialAnnual:  f(b.DifferentialAnnual),
		TotalHourly:         f(b.TotalHourly),
		TotalMonthly:        f(b.TotalMonthly),
		TotalAnnual:         f(b.TotalAnnual),
		EffectiveHourlyRate: f(b.EffectiveHourlyRate),
		ShiftHours:          f(b.ShiftHours),
		MonthlyWorkHours:    f(b.MonthlyWorkHours),
		AnnualWorkHours:     f(b.AnnualWorkHours),
		DaysPerWeek:         f(b.DaysPerWeek),
	}
}

func toDisplayDTO(b compensation.Breakdown, fmtr *display.Formatter) BreakdownDisplayDTO {
	return BreakdownDisplayDTO{
		TotalHourly:  fmtr.Hourly(b.TotalHourly),
		TotalMonthly: fmtr.Monthly(b.TotalMonthly),
		TotalAnnual:  fmtr.Annual(b.TotalAnnual),
	}
}

func toPatternDTO(p compensation.ShiftPattern) PatternDTO {
	return PatternDTO{
		Length:        p.Length.String(),
		HoursPerShift: f(p.HoursPerShift),
		DaysPerWeek:   f(p.DaysPerWeek),
		HoursPerWeek:  f(p.HoursPerWeek),
		HoursPerMonth: f(p.HoursPerMonth.Round(2)),
		HoursPerYear:  f(p.HoursPerYear),
	}
}
