// Package money parses and formats the euro amounts shown next to devices.
package money

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const noPrice = "-"

var printer = message.NewPrinter(language.Lithuanian)

// FormatEUR renders a price rounded to whole euros with Lithuanian digit
// grouping, e.g. "4 500 €". A nil price renders as "-".
func FormatEUR(v *float64) string {
	if v == nil {
		return noPrice
	}
	whole := decimal.NewFromFloat(*v).Round(0).IntPart()
	return printer.Sprintf("%d", whole) + " €"
}

// ParseBudget keeps only the digits of s and reads them as whole euros, the
// way a form field with "5 000 €" or "5000eur" is meant. Empty, digitless or
// zero input means no budget.
func ParseBudget(s string) (float64, bool) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return 0, false
	}
	d, err := decimal.NewFromString(digits)
	if err != nil || !d.IsPositive() {
		return 0, false
	}
	return d.InexactFloat64(), true
}
