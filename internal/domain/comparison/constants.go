package comparison

type Regime string

const (
	RegimeCLTProfit  Regime = "clt_lp_lr"
	RegimeCLTSimples Regime = "clt_simples"
	RegimeAutonomous Regime = "autonomo"
	RegimePJProfit   Regime = "pj_lp_lr"
	RegimePJSimples  Regime = "pj_simples"
	RegimePJMEI      Regime = "pj_mei"
)

var regimeOrder = [...]Regime{
	RegimeCLTProfit,
	RegimeCLTSimples,
	RegimeAutonomous,
	RegimePJProfit,
	RegimePJSimples,
	RegimePJMEI,
}

// Regimes lists every hiring regime in report order.
func Regimes() []Regime {
	out := regimeOrder
	return out[:]
}

func (r Regime) Label() string {
	switch r {
	case RegimeCLTProfit:
		return "CLT LP/LR"
	case RegimeCLTSimples:
		return "CLT Simples"
	case RegimeAutonomous:
		return "Autonomous"
	case RegimePJProfit:
		return "PJ LP/LR"
	case RegimePJSimples:
		return "PJ Simples"
	case RegimePJMEI:
		return "PJ MEI"
	}
	return string(r)
}

const (
	GroupError             = "error"
	GroupEmployerINSS      = "employer_inss"
	GroupFGTS              = "fgts"
	GroupThirteenthSalary  = "thirteenth_salary"
	GroupVacation          = "vacation"
	GroupFGTSPenalty       = "fgts_penalty"
	GroupEmployerTotal     = "employer_total"
	GroupContractorFlatTax = "contractor_flat_tax"
	GroupServiceTax        = "service_tax"
	GroupFederalTaxes      = "federal_taxes"
	GroupINSSWithholding   = "inss_withholding"
	GroupIRRFWithholding   = "irrf_withholding"
	GroupNetIncome         = "net_income"
)

var groupTitles = map[string]string{
	GroupError:             "Error",
	GroupEmployerINSS:      "Employer social-security contribution (INSS)",
	GroupFGTS:              "Severance-fund deposit (FGTS)",
	GroupThirteenthSalary:  "13th salary provision + FGTS and INSS charges",
	GroupVacation:          "Vacation + 1/3 provision + FGTS and INSS charges",
	GroupFGTSPenalty:       "Severance-fund penalty provision (on dismissal)",
	GroupEmployerTotal:     "Total employer cost",
	GroupContractorFlatTax: "Contracted party flat-rate tax (Simples)",
	GroupServiceTax:        "Contracted party service tax (ISS)",
	GroupFederalTaxes:      "Contracted party PIS/COFINS/IRPJ and CS",
	GroupINSSWithholding:   "INSS withheld from the contracted party",
	GroupIRRFWithholding:   "IRRF withheld from the contracted party",
	GroupNetIncome:         "Contracted party net income",
}

// NoValueMessage is the single item of the Error group returned for a zero gross value.
const NoValueMessage = "no value supplied"

// MEIFeeNote marks the fixed monthly MEI contribution, which is not a percentage of gross.
const MEIFeeNote = "fixed monthly fee"

// Employer-side and contractor-side flat rates, in percent.
var (
	rateEmployerINSS      = mustDecimal("28")
	rateFGTS              = mustDecimal("8")
	rateThirteenthProfit  = mustDecimal("11.33")
	rateThirteenthSimples = mustDecimal("9")
	rateVacationProfit    = mustDecimal("15.07")
	rateVacationSimples   = mustDecimal("11.97")
	rateFGTSPenalty       = mustDecimal("40")
	rateChargesProfit     = mustDecimal("66")
	rateChargesSimples    = mustDecimal("32")
	rateContractorSimples = mustDecimal("4.5")
	rateServiceTax        = mustDecimal("5")
	rateFederalTaxes      = mustDecimal("11.33")
)

var (
	meiMonthlyFee         = mustDecimal("52.00")
	socialSecurityCeiling = mustDecimal("604.44")
)

const (
	MinContractorRate = 0
	MaxContractorRate = 100
)

// MaxGross is the largest accepted monthly value and MaxGrossScale the most
// fraction digits it may carry.
var MaxGross = mustDecimal("1000000000000")

const (
	MaxGrossScale = 6
	// maxGrossExponent bounds the decimal exponent before any comparison, so
	// inputs like 1e1000000 are refused without being expanded.
	maxGrossExponent = 12
)
