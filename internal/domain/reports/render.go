package reports

import (
	"fmt"
	"io"
	"strings"

	"hirecost/internal/domain/comparison"
	"hirecost/internal/platform/format"
)

// Line renders one item the way the comparison screen lists it,
// e.g. "CLT LP/LR: 28%, R$ 280,00".
func Line(item comparison.LineItem) string {
	if !item.HasAmount {
		return item.Note
	}
	label := item.Label
	if item.Note != "" {
		label += " (" + item.Note + ")"
	}
	if item.Rate == "" {
		return label + ": " + format.Currency(item.Amount)
	}
	return label + ": " + format.Percent(item.Rate) + ", " + format.Currency(item.Amount)
}

func heading(in comparison.Input) string {
	return fmt.Sprintf("Monthly value %s, contractor rate %d%%", format.Currency(in.Gross), in.ContractorRate)
}

// WriteText writes a plain-text report: one titled block per group.
func WriteText(w io.Writer, in comparison.Input, groups []comparison.LineGroup) error {
	var b strings.Builder
	b.WriteString(heading(in))
	b.WriteString("\n")
	for _, group := range groups {
		b.WriteString("\n")
		b.WriteString(strings.ToUpper(group.Title))
		b.WriteString("\n")
		for _, item := range group.Items {
			b.WriteString("  ")
			b.WriteString(Line(item))
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
