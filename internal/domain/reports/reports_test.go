package reports

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"hirecost/internal/domain/comparison"
)

func compute(t *testing.T, gross string, rate int) (comparison.Input, []comparison.LineGroup) {
	t.Helper()
	in := comparison.Input{Gross: decimal.RequireFromString(gross), ContractorRate: rate}
	groups, err := comparison.Compute(in.Gross, in.ContractorRate)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	return in, groups
}

func TestLine(t *testing.T) {
	cases := []struct {
		item comparison.LineItem
		want string
	}{
		{
			comparison.LineItem{Label: "CLT LP/LR", Rate: "11.33%", Amount: decimal.RequireFromString("113.3"), HasAmount: true},
			"CLT LP/LR: 11,33%, R$ 113,30",
		},
		{
			comparison.LineItem{Label: "PJ Simples", Amount: decimal.RequireFromString("4775"), HasAmount: true},
			"PJ Simples: R$ 4.775,00",
		},
		{
			comparison.LineItem{Label: "PJ MEI", Amount: decimal.RequireFromString("52"), HasAmount: true, Note: comparison.MEIFeeNote},
			"PJ MEI (fixed monthly fee): R$ 52,00",
		},
		{
			comparison.LineItem{Label: "Error", Note: comparison.NoValueMessage},
			"no value supplied",
		},
	}
	for _, tc := range cases {
		if got := Line(tc.item); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestWriteText(t *testing.T) {
	in, groups := compute(t, "1000", 20)
	var buf bytes.Buffer
	if err := WriteText(&buf, in, groups); err != nil {
		t.Fatalf("write text: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "Monthly value R$ 1.000,00, contractor rate 20%\n") {
		t.Fatalf("unexpected heading: %q", out)
	}
	if !strings.Contains(out, "  CLT LP/LR: 28%, R$ 280,00\n") {
		t.Fatalf("expected employer INSS line, got:\n%s", out)
	}
	if !strings.Contains(out, "TOTAL EMPLOYER COST\n") {
		t.Fatalf("expected total employer cost block, got:\n%s", out)
	}
}

func TestWriteCSV(t *testing.T) {
	_, groups := compute(t, "1000", 20)
	var buf bytes.Buffer
	if err := WriteCSV(&buf, groups); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}

	items := 0
	for _, group := range groups {
		items += len(group.Items)
	}
	if len(rows) != items+1 {
		t.Fatalf("expected %d rows, got %d", items+1, len(rows))
	}
	if strings.Join(rows[0], ",") != "group,title,regime,rate,amount,note" {
		t.Fatalf("unexpected header %v", rows[0])
	}
	first := rows[1]
	if first[0] != comparison.GroupEmployerINSS || first[2] != "clt_lp_lr" || first[3] != "28%" || first[4] != "280.00" {
		t.Fatalf("unexpected first row %v", first)
	}
}

func TestWriteCSVErrorGroupHasNoAmount(t *testing.T) {
	_, groups := compute(t, "0", 20)
	var buf bytes.Buffer
	if err := WriteCSV(&buf, groups); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	rows, _ := csv.NewReader(&buf).ReadAll()
	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d", len(rows))
	}
	if rows[1][4] != "" || rows[1][5] != comparison.NoValueMessage {
		t.Fatalf("unexpected error row %v", rows[1])
	}
}

func TestWritePDF(t *testing.T) {
	in, groups := compute(t, "5000", 20)
	var buf bytes.Buffer
	if err := WritePDF(&buf, in, groups); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatal("expected PDF header")
	}
}
