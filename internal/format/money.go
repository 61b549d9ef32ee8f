package format

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"tip-calculator/internal/tip"
)

// CurrencySymbol prefixes every money value.
const CurrencySymbol = "$"

// Formatter renders calculator values for one locale.
type Formatter struct {
	printer    *message.Printer
	separators tip.Separators
}

// New returns a Formatter for the given BCP 47 locale tag.
func New(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return newFormatter(message.NewPrinter(tag)), nil
}

// Default returns a Formatter for en-US.
func Default() *Formatter {
	return newFormatter(message.NewPrinter(language.AmericanEnglish))
}

func newFormatter(p *message.Printer) *Formatter {
	return &Formatter{printer: p, separators: separatorsOf(p)}
}

// separatorsOf reads the group and decimal marks back out of a formatted
// sample. Locales with non-ASCII digits fall back to en-US marks.
func separatorsOf(p *message.Printer) tip.Separators {
	sample := p.Sprintf("%.1f", 1234.5)
	i := strings.Index(sample, "234")
	if !strings.HasPrefix(sample, "1") || !strings.HasSuffix(sample, "5") || i < 1 || i+3 >= len(sample)-1 {
		return tip.DefaultSeparators
	}
	return tip.Separators{
		Group:   sample[1:i],
		Decimal: sample[i+3 : len(sample)-1],
	}
}

// Separators returns the locale's group and decimal marks.
func (f *Formatter) Separators() tip.Separators {
	return f.separators
}

// ParseBill reads bill text written with the locale's marks.
func (f *Formatter) ParseBill(text string) (tip.Amount, error) {
	return tip.ParseBillWith(text, f.separators)
}

// PerPerson formats the total owed by each person, e.g. "$1,030.50".
func (f *Formatter) PerPerson(v float64) string {
	return CurrencySymbol + f.printer.Sprintf("%.2f", v)
}

// Tip formats a whole-unit tip amount, e.g. "$20".
func (f *Formatter) Tip(v int64) string {
	return CurrencySymbol + f.printer.Sprintf("%d", v)
}

// Bill formats a bill amount with two decimals.
func (f *Formatter) Bill(a tip.Amount) string {
	return CurrencySymbol + f.printer.Sprintf("%.2f", a.Float())
}

// Percent formats a tip percentage, e.g. "20%".
func (f *Formatter) Percent(p int) string {
	return f.printer.Sprintf("%d%%", p)
}

// Breakdown produces a human-readable summary of one calculation.
func (f *Formatter) Breakdown(bill tip.Amount, split, percent int, r tip.Result) string {
	var b strings.Builder

	b.WriteString("=== Tip Breakdown ===\n")
	b.WriteString(fmt.Sprintf("Bill:             %s\n", f.Bill(bill)))
	b.WriteString(fmt.Sprintf("Tip percent:      %s\n", f.Percent(percent)))
	b.WriteString(fmt.Sprintf("Tip:              %s\n", f.Tip(r.Tip)))
	if split > 1 {
		b.WriteString(fmt.Sprintf("Split:            %d people\n", split))
	}
	b.WriteString(fmt.Sprintf("Total per person: %s\n", f.PerPerson(r.PerPerson)))
	b.WriteString("=====================")
	return b.String()
}
