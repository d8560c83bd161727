package reports

import (
	"encoding/csv"
	"io"

	"hirecost/internal/domain/comparison"
)

var csvHeader = []string{"group", "title", "regime", "rate", "amount", "note"}

func WriteCSV(w io.Writer, groups []comparison.LineGroup) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, group := range groups {
		for _, item := range group.Items {
			amount := ""
			if item.HasAmount {
				amount = item.Amount.StringFixed(2)
			}
			row := []string{group.Key, group.Title, string(item.Regime), item.Rate, amount, item.Note}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}
