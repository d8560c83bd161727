package comparison

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Validate rejects inputs outside the engine's domain.
func Validate(in Input) error {
	if err := ValidateGross(in.Gross); err != nil {
		return err
	}
	if in.ContractorRate < MinContractorRate || in.ContractorRate > MaxContractorRate {
		return fmt.Errorf("%w: got %d", ErrRateOutOfRange, in.ContractorRate)
	}
	return nil
}

// ValidateGross checks scale, sign and magnitude of a gross value. The
// exponent is inspected first so oversized values are never expanded, not
// even for an error message.
func ValidateGross(gross Money) error {
	if exp := gross.Exponent(); exp > maxGrossExponent || exp < -MaxGrossScale {
		return fmt.Errorf("%w: exponent %d", ErrGrossOutOfRange, exp)
	}
	if gross.IsNegative() {
		return fmt.Errorf("%w: got %s", ErrNegativeGross, gross)
	}
	if gross.GreaterThan(MaxGross) {
		return fmt.Errorf("%w: above %s", ErrGrossOutOfRange, MaxGross)
	}
	return nil
}

// Compute returns the report groups for one gross value and contractor rate.
// Identical inputs always yield identical output.
func Compute(gross Money, contractorRate int) ([]LineGroup, error) {
	res, err := Calculate(Input{Gross: gross, ContractorRate: contractorRate})
	if err != nil {
		return nil, err
	}
	return res.Groups, nil
}

func Calculate(in Input) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}
	if in.Gross.IsZero() {
		return Result{
			Input: in,
			Groups: []LineGroup{
				newGroup(GroupError, LineItem{Label: groupTitles[GroupError], Note: NoValueMessage}),
			},
			Summary: []RegimeSummary{},
		}, nil
	}
	s := newSheet(in)
	return Result{Input: in, Groups: s.groups(), Summary: s.summary()}, nil
}

// sheet holds every intermediate figure at full precision. Rounding to cents
// only happens when a figure becomes a LineItem.
type sheet struct {
	gross          Money
	contractorRate decimal.Decimal

	employerINSS      Money
	autonomousINSS    Money
	fgts              Money
	thirteenthProfit  Money
	thirteenthSimples Money
	vacationProfit    Money
	vacationSimples   Money
	fgtsPenalty       Money
	totalProfit       Money
	totalSimples      Money
	totalAutonomous   Money
	flatTaxSimples    Money
	serviceTax        Money
	federalTaxes      Money
	socialSecurity    SocialSecurity
	incomeTax         IncomeTax
}

func newSheet(in Input) *sheet {
	g := in.Gross
	rate := decimal.NewFromInt(int64(in.ContractorRate))
	fgts := percentOf(g, rateFGTS)
	inss := WithholdSocialSecurity(g)
	return &sheet{
		gross:             g,
		contractorRate:    rate,
		employerINSS:      percentOf(g, rateEmployerINSS),
		autonomousINSS:    percentOf(g, rate),
		fgts:              fgts,
		thirteenthProfit:  percentOf(g, rateThirteenthProfit),
		thirteenthSimples: percentOf(g, rateThirteenthSimples),
		vacationProfit:    percentOf(g, rateVacationProfit),
		vacationSimples:   percentOf(g, rateVacationSimples),
		fgtsPenalty:       percentOf(fgts, rateFGTSPenalty),
		totalProfit:       g.Add(percentOf(g, rateChargesProfit)),
		totalSimples:      g.Add(percentOf(g, rateChargesSimples)),
		totalAutonomous:   g.Add(percentOf(g, rate)),
		flatTaxSimples:    percentOf(g, rateContractorSimples),
		serviceTax:        percentOf(g, rateServiceTax),
		federalTaxes:      percentOf(g, rateFederalTaxes),
		socialSecurity:    inss,
		incomeTax:         WithholdIncomeTax(g, inss.Base),
	}
}

func (s *sheet) groups() []LineGroup {
	groups := []LineGroup{
		newGroup(GroupEmployerINSS,
			percentItem(RegimeCLTProfit, rateEmployerINSS, s.employerINSS),
			percentItem(RegimeAutonomous, s.contractorRate, s.autonomousINSS),
		),
		newGroup(GroupFGTS,
			percentItem(RegimeCLTProfit, rateFGTS, s.fgts),
			percentItem(RegimeCLTSimples, rateFGTS, s.fgts),
		),
		newGroup(GroupThirteenthSalary,
			percentItem(RegimeCLTProfit, rateThirteenthProfit, s.thirteenthProfit),
			percentItem(RegimeCLTSimples, rateThirteenthSimples, s.thirteenthSimples),
		),
		newGroup(GroupVacation,
			percentItem(RegimeCLTProfit, rateVacationProfit, s.vacationProfit),
			percentItem(RegimeCLTSimples, rateVacationSimples, s.vacationSimples),
		),
		newGroup(GroupFGTSPenalty,
			percentItem(RegimeCLTProfit, rateFGTSPenalty, s.fgtsPenalty),
			percentItem(RegimeCLTSimples, rateFGTSPenalty, s.fgtsPenalty),
		),
		newGroup(GroupEmployerTotal,
			percentItem(RegimeCLTProfit, rateChargesProfit, s.totalProfit),
			percentItem(RegimeCLTSimples, rateChargesSimples, s.totalSimples),
			percentItem(RegimeAutonomous, s.contractorRate, s.totalAutonomous),
		),
		newGroup(GroupContractorFlatTax,
			percentItem(RegimePJSimples, rateContractorSimples, s.flatTaxSimples),
			s.meiFeeItem(meiMonthlyFee),
		),
		newGroup(GroupServiceTax,
			percentItem(RegimeAutonomous, rateServiceTax, s.serviceTax),
			percentItem(RegimePJProfit, rateServiceTax, s.serviceTax),
		),
		newGroup(GroupFederalTaxes,
			percentItem(RegimePJProfit, rateFederalTaxes, s.federalTaxes),
		),
		s.withholdingGroup(GroupINSSWithholding, s.socialSecurity.RateLabel(), s.socialSecurity.Withholding),
	}
	if s.incomeTax.Applies() {
		groups = append(groups, s.withholdingGroup(GroupIRRFWithholding, rateLabel(s.incomeTax.Rate), s.incomeTax.Withholding))
	}
	return append(groups, newGroup(GroupNetIncome,
		amountItem(RegimeCLTProfit, "", s.net(RegimeCLTProfit)),
		amountItem(RegimeCLTSimples, "", s.net(RegimeCLTSimples)),
		amountItem(RegimeAutonomous, "", s.net(RegimeAutonomous)),
		amountItem(RegimePJProfit, "", s.net(RegimePJProfit)),
		amountItem(RegimePJSimples, "", s.net(RegimePJSimples)),
		amountItem(RegimePJMEI, "", s.net(RegimePJMEI)),
	))
}

func (s *sheet) withholdingGroup(key, rate string, amount Money) LineGroup {
	return newGroup(key,
		amountItem(RegimeCLTProfit, rate, amount),
		amountItem(RegimeCLTSimples, rate, amount),
		amountItem(RegimeAutonomous, rate, amount),
	)
}

func (s *sheet) meiFeeItem(amount Money) LineItem {
	item := amountItem(RegimePJMEI, "", amount)
	item.Note = MEIFeeNote
	return item
}

// net is the contracted party's take-home under regime, never below zero.
func (s *sheet) net(regime Regime) Money {
	withheld := s.socialSecurity.Withholding.Add(s.incomeTax.Withholding)
	var out Money
	switch regime {
	case RegimeCLTProfit, RegimeCLTSimples:
		out = s.gross.Sub(withheld)
	case RegimeAutonomous:
		out = s.gross.Sub(withheld.Add(s.serviceTax))
	case RegimePJProfit:
		out = s.gross.Sub(s.serviceTax.Add(s.federalTaxes))
	case RegimePJSimples:
		out = s.gross.Sub(s.flatTaxSimples)
	case RegimePJMEI:
		out = s.gross.Sub(meiMonthlyFee)
	}
	return nonNegative(out)
}

// employerCost is what the hiring side pays each month. Incorporated
// contractors invoice the gross value and carry their own taxes.
func (s *sheet) employerCost(regime Regime) Money {
	switch regime {
	case RegimeCLTProfit:
		return s.totalProfit
	case RegimeCLTSimples:
		return s.totalSimples
	case RegimeAutonomous:
		return s.totalAutonomous
	}
	return s.gross
}

func (s *sheet) summary() []RegimeSummary {
	out := make([]RegimeSummary, 0, len(regimeOrder))
	for _, regime := range regimeOrder {
		out = append(out, RegimeSummary{
			Regime:       regime,
			Label:        regime.Label(),
			EmployerCost: cents(s.employerCost(regime)),
			NetIncome:    cents(s.net(regime)),
		})
	}
	return out
}
