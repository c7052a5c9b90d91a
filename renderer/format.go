package renderer

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/fra"
	"github.com/shopspring/decimal"
)

// Options tune the presentation.
type Options struct {
	// Lang selects the labels, see Locales.
	Lang string
	// Currency is an ISO 4217 code used to display figures. Figures are plain
	// numbers when it is empty or unknown.
	Currency string
}

func (o Options) labels() *Labels { return LabelsFor(o.Lang) }

// grouped thousands, at most two fraction digits.
var plainFormatter = money.NewFormatter(2, ".", ",", "", "1")

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// FormatAmount formats a figure for display.
func FormatAmount(a fra.Amount, currency string) string {
	if currency != "" {
		if cur := money.GetCurrency(strings.ToUpper(currency)); cur != nil {
			return formatMinor(a.Decimal(), cur.Formatter())
		}
	}
	s := formatMinor(a.Decimal(), plainFormatter)
	if strings.Contains(s, ".") {
		s = strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
	}
	return s
}

// formatMinor formats d with f. Amounts too large to be counted in minor units
// by go-money are grouped from their decimal text, in the same layout.
func formatMinor(d decimal.Decimal, f *money.Formatter) string {
	minor := d.Shift(int32(f.Fraction)).Round(0)
	if minor.LessThanOrEqual(maxMinorUnits) {
		return f.Format(minor.IntPart())
	}
	intPart, frac, _ := strings.Cut(d.StringFixed(int32(f.Fraction)), ".")
	amount := group(intPart, f.Thousand)
	if frac != "" {
		amount += f.Decimal + frac
	}
	return strings.Replace(strings.Replace(f.Template, "1", amount, 1), "$", f.Grapheme, 1)
}

// group inserts sep every three digits of digits, from the right.
func group(digits, sep string) string {
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteRune(r)
	}
	return b.String()
}

var cellEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"|", `\|`,
	"\n", " ",
)

// escape makes user text safe inside a markdown table cell, and inside the
// html produced from it.
func escape(s string) string { return cellEscaper.Replace(s) }
