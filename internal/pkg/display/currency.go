// Package display holds the rounding and formatting rules used when payroll
// figures are shown to people or summed into report totals.
package display

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyStep is the granularity payable amounts are rounded to.
var CurrencyStep = decimal.NewFromInt(10)

// RoundToStep rounds d to the nearest multiple of step, ties away from zero.
func RoundToStep(d, step decimal.Decimal) decimal.Decimal {
	if step.Sign() <= 0 {
		return d
	}
	return d.Div(step).Round(0).Mul(step)
}

// Round10 rounds d to the nearest multiple of CurrencyStep.
func Round10(d decimal.Decimal) decimal.Decimal {
	return RoundToStep(d, CurrencyStep)
}

// CurrencyFormatter renders money with locale digit grouping and a currency suffix.
type CurrencyFormatter struct {
	printer *message.Printer
	suffix  string
}

// NewCurrencyFormatter builds a formatter for a BCP 47 locale tag such as "tr" or "en-US".
// Unknown tags fall back to the root locale.
func NewCurrencyFormatter(locale, suffix string) *CurrencyFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &CurrencyFormatter{
		printer: message.NewPrinter(tag),
		suffix:  suffix,
	}
}

// Format rounds d to the currency step, drops decimals and groups thousands.
func (f *CurrencyFormatter) Format(d decimal.Decimal) string {
	return f.printer.Sprintf("%d", Round10(d).IntPart()) + f.suffix
}
