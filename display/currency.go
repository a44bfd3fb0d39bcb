/*
Package display formats compensation figures for presentation.

PURPOSE:
  Thin presentation adapter over golang.org/x/text. Hourly and monthly
  figures show cents; annual figures show whole dollars with grouping
  ("$89,856"). This sits outside the calculation engine - the engine
  returns decimals, the UI layer decides how they read.

LOCALE:
  A single display format (US English, dollar sign) by default. The
  language tag is injectable so test fixtures can pin exact strings.

SEE ALSO:
  - api/dto.go: Attaches formatted strings to breakdown responses
*/
package display

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/warp/compensation-engine/compensation"
)

// Formatter renders dollar amounts for a fixed locale.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter creates a formatter for the given locale tag.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Default is the platform's single display locale.
func Default() *Formatter {
	return NewFormatter(language.AmericanEnglish)
}

// Hourly renders an hourly rate with cents, e.g. "$38.00".
func (f *Formatter) Hourly(d decimal.Decimal) string {
	return f.cents(d)
}

// Monthly renders a monthly amount with cents, e.g. "$5,928.00".
func (f *Formatter) Monthly(d decimal.Decimal) string {
	return f.cents(d)
}

// Annual renders an annual amount in whole dollars, e.g. "$89,856".
func (f *Formatter) Annual(d decimal.Decimal) string {
	v, _ := d.Round(0).Float64()
	return f.printer.Sprintf("$%v", number.Decimal(v, number.MaxFractionDigits(0)))
}

// Amount renders a figure in the style of its pay unit: annual amounts
// drop cents, everything else keeps them.
func (f *Formatter) Amount(d decimal.Decimal, unit compensation.PayUnit) string {
	if unit == compensation.UnitAnnual {
		return f.Annual(d)
	}
	return f.cents(d)
}

func (f *Formatter) cents(d decimal.Decimal) string {
	v, _ := d.Round(2).Float64()
	return f.printer.Sprintf("$%v", number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
