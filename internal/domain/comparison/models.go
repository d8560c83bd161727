package comparison

import "github.com/shopspring/decimal"

type Input struct {
	Gross          Money `json:"grossValue"`
	ContractorRate int   `json:"contractorRate"`
}

// LineItem is one computed figure. Items with HasAmount false carry only Note.
type LineItem struct {
	Regime    Regime `json:"regime,omitempty"`
	Label     string `json:"label"`
	Rate      string `json:"rate,omitempty"`
	Amount    Money  `json:"amount"`
	HasAmount bool   `json:"hasAmount"`
	Note      string `json:"note,omitempty"`
}

type LineGroup struct {
	Key   string     `json:"key"`
	Title string     `json:"title"`
	Items []LineItem `json:"items"`
}

// Item returns the group's line for regime, if present.
func (g LineGroup) Item(regime Regime) (LineItem, bool) {
	for _, item := range g.Items {
		if item.Regime == regime {
			return item, true
		}
	}
	return LineItem{}, false
}

type RegimeSummary struct {
	Regime       Regime `json:"regime"`
	Label        string `json:"label"`
	EmployerCost Money  `json:"employerCost"`
	NetIncome    Money  `json:"netIncome"`
}

type Result struct {
	Input   Input           `json:"input"`
	Groups  []LineGroup     `json:"groups"`
	Summary []RegimeSummary `json:"summary"`
}

// Group returns the group with key, if present.
func (r Result) Group(key string) (LineGroup, bool) {
	return findGroup(r.Groups, key)
}

func findGroup(groups []LineGroup, key string) (LineGroup, bool) {
	for _, g := range groups {
		if g.Key == key {
			return g, true
		}
	}
	return LineGroup{}, false
}

func newGroup(key string, items ...LineItem) LineGroup {
	return LineGroup{Key: key, Title: groupTitles[key], Items: items}
}

func amountItem(regime Regime, rate string, amount Money) LineItem {
	return LineItem{
		Regime:    regime,
		Label:     regime.Label(),
		Rate:      rate,
		Amount:    cents(amount),
		HasAmount: true,
	}
}

func percentItem(regime Regime, rate decimal.Decimal, amount Money) LineItem {
	return amountItem(regime, rateLabel(rate), amount)
}
