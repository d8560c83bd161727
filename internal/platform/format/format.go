package format

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const currencySymbol = "R$"

var printer = message.NewPrinter(language.BrazilianPortuguese)

// number.Decimal takes an int64, so integer parts from maxGrouped upward are
// printed without separators.
var maxGrouped = decimal.New(1, 18)

// Currency renders v as Brazilian real text, e.g. "R$ 1.234,56".
func Currency(v decimal.Decimal) string {
	v = v.Round(2)
	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Neg()
	}
	whole, frac, _ := strings.Cut(v.StringFixed(2), ".")
	if v.LessThan(maxGrouped) {
		whole = printer.Sprint(number.Decimal(v.IntPart()))
	}
	return sign + currencySymbol + " " + whole + "," + frac
}

// Percent renders a rate annotation with a decimal comma, e.g. "11,33%".
func Percent(rate string) string {
	return strings.ReplaceAll(rate, ".", ",")
}

// ParseMasked reads text typed into a masked currency field: digits fill the
// value from the right with two fraction digits and everything else is
// ignored, so "R$ 1.234,56" and "123456" both yield 1234.56.
func ParseMasked(raw string) decimal.Decimal {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(digits.String())
	if err != nil {
		return decimal.Zero
	}
	return v.Shift(-2)
}
