package comparison

import "github.com/shopspring/decimal"

// BracketRow is one row of a progressive table. Upper is inclusive; the next row
// takes every value strictly above it, so sub-cent values between two printed
// bounds belong to the higher row. Lower is the printed lower bound.
type BracketRow struct {
	Lower     Money           `json:"lower"`
	Upper     Money           `json:"upper"`
	Unbounded bool            `json:"unbounded"`
	Rate      decimal.Decimal `json:"rate"`
	Deduction Money           `json:"deduction"`
	// Ceiling, when positive, replaces the percentage with a fixed amount.
	Ceiling Money `json:"ceiling"`
}

func (r BracketRow) Capped() bool {
	return r.Ceiling.IsPositive()
}

func (r BracketRow) contains(v Money) bool {
	return r.Unbounded || v.LessThanOrEqual(r.Upper)
}

type BracketTable []BracketRow

// Lookup returns the first row whose upper bound is not below v.
func (t BracketTable) Lookup(v Money) BracketRow {
	for _, row := range t {
		if row.contains(v) {
			return row
		}
	}
	return t[len(t)-1]
}

func (t BracketTable) clone() BracketTable {
	out := make(BracketTable, len(t))
	copy(out, t)
	return out
}

var socialSecurityTable = BracketTable{
	{Lower: mustDecimal("0"), Upper: mustDecimal("1659.38"), Rate: mustDecimal("8")},
	{Lower: mustDecimal("1659.39"), Upper: mustDecimal("2765.66"), Rate: mustDecimal("9")},
	{Lower: mustDecimal("2765.67"), Upper: mustDecimal("5531.31"), Rate: mustDecimal("11")},
	{Lower: mustDecimal("5531.32"), Unbounded: true, Ceiling: socialSecurityCeiling},
}

var incomeTaxTable = BracketTable{
	{Lower: mustDecimal("0"), Upper: mustDecimal("1903.99")},
	{Lower: mustDecimal("1904.00"), Upper: mustDecimal("2826.65"), Rate: mustDecimal("7.5"), Deduction: mustDecimal("142.80")},
	{Lower: mustDecimal("2826.66"), Upper: mustDecimal("3751.05"), Rate: mustDecimal("15"), Deduction: mustDecimal("354.80")},
	{Lower: mustDecimal("3751.06"), Upper: mustDecimal("4664.68"), Rate: mustDecimal("22.5"), Deduction: mustDecimal("636.13")},
	{Lower: mustDecimal("4664.69"), Unbounded: true, Rate: mustDecimal("27.5"), Deduction: mustDecimal("869.36")},
}

// SocialSecurityBrackets returns a copy of the INSS withholding table.
func SocialSecurityBrackets() BracketTable {
	return socialSecurityTable.clone()
}

// IncomeTaxBrackets returns a copy of the IRRF withholding table.
func IncomeTaxBrackets() BracketTable {
	return incomeTaxTable.clone()
}
