package board

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"parking_kiosk/internal/models"
)

// DefaultLocale matches the kiosk's deployment (vi-VN, amounts in VND).
const DefaultLocale = "vi-VN"

const currencySymbol = "₫"

// Formatter renders numbers and amounts for one locale.
type Formatter struct {
	p *message.Printer
}

// NewFormatter builds a formatter for a BCP 47 tag, falling back to DefaultLocale.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return &Formatter{p: message.NewPrinter(tag)}
}

// Money formats an amount with grouping and the đồng sign, e.g. "5.000 ₫".
func (f *Formatter) Money(m models.Money) string {
	return f.p.Sprintf("%d %s", int64(m), currencySymbol)
}

// Number formats an integer with the locale's grouping.
func (f *Formatter) Number(n int64) string {
	return f.p.Sprintf("%d", n)
}
