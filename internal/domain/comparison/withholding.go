package comparison

import "github.com/shopspring/decimal"

// SocialSecurity is the outcome of the progressive INSS step. Base is what the
// IRRF step is computed on.
type SocialSecurity struct {
	Rate        decimal.Decimal `json:"rate"`
	Withholding Money           `json:"withholding"`
	Base        Money           `json:"base"`
	Capped      bool            `json:"capped"`
}

// RateLabel is empty when the ceiling applied.
func (s SocialSecurity) RateLabel() string {
	if s.Capped {
		return ""
	}
	return rateLabel(s.Rate)
}

type IncomeTax struct {
	Rate        decimal.Decimal `json:"rate"`
	Deduction   Money           `json:"deduction"`
	Withholding Money           `json:"withholding"`
}

// Applies reports whether the IRRF line is shown at all.
func (t IncomeTax) Applies() bool {
	return !t.Rate.IsZero()
}

func WithholdSocialSecurity(gross Money) SocialSecurity {
	row := socialSecurityTable.Lookup(gross)
	if row.Capped() {
		return SocialSecurity{
			Withholding: row.Ceiling,
			Base:        gross.Sub(row.Ceiling),
			Capped:      true,
		}
	}
	withheld := percentOf(gross, row.Rate)
	return SocialSecurity{
		Rate:        row.Rate,
		Withholding: withheld,
		Base:        gross.Sub(withheld),
	}
}

// WithholdIncomeTax applies the IRRF table to base, the INSS step's output.
// The exempt row keeps the legacy figure gross - base/100, which feeds the net
// income even though the IRRF line itself is suppressed.
func WithholdIncomeTax(gross, base Money) IncomeTax {
	row := incomeTaxTable.Lookup(base)
	if row.Rate.IsZero() {
		return IncomeTax{Withholding: nonNegative(gross.Sub(base.Div(hundred)))}
	}
	return IncomeTax{
		Rate:        row.Rate,
		Deduction:   row.Deduction,
		Withholding: nonNegative(percentOf(base, row.Rate).Sub(row.Deduction)),
	}
}
