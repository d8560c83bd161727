package comparison

import "github.com/shopspring/decimal"

// Money is a currency-agnostic decimal amount. Formatting is left to the caller.
type Money = decimal.Decimal

var hundred = decimal.NewFromInt(100)

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// percentOf returns rate% of value.
func percentOf(value Money, rate decimal.Decimal) Money {
	return value.Mul(rate).Div(hundred)
}

func cents(v Money) Money {
	return v.Round(2)
}

func nonNegative(v Money) Money {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

func rateLabel(rate decimal.Decimal) string {
	return rate.String() + "%"
}
