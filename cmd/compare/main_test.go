package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"hirecost/internal/domain/comparison"
)

func TestRunText(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-gross", "R$ 5.000,00", "-rate", "20"}, &out, &errOut)
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "R$ 5.000,00") {
		t.Fatalf("expected heading with gross value, got %s", out.String())
	}
	if !strings.Contains(out.String(), "R$ 4.084,88") {
		t.Fatalf("expected CLT net income, got %s", out.String())
	}
}

func TestRunJSON(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-gross", "1000", "-format", "json"}, &out, &errOut); code != exitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, errOut.String())
	}
	var res comparison.Result
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Summary) != len(comparison.Regimes()) {
		t.Fatalf("expected summary rows, got %d", len(res.Summary))
	}
	if res.Input.ContractorRate != 20 {
		t.Fatalf("expected default rate 20, got %d", res.Input.ContractorRate)
	}
}

func TestRunCSV(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-gross", "1000", "-format", "csv"}, &out, &errOut); code != exitOK {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.HasPrefix(out.String(), "group,title,regime,rate,amount,note\n") {
		t.Fatalf("unexpected csv header: %s", out.String())
	}
}

func TestRunRejectsInvalidInput(t *testing.T) {
	cases := [][]string{
		{"-gross", "-10"},
		{"-gross", "1e1000000"},
		{"-gross", "100", "-rate", "101"},
		{"-gross", "100", "-format", "xml"},
		{"-unknown"},
	}
	for _, args := range cases {
		var out, errOut bytes.Buffer
		if code := run(args, &out, &errOut); code != exitUsage {
			t.Fatalf("%v: expected exit %d, got %d", args, exitUsage, code)
		}
	}
}

func TestParseGross(t *testing.T) {
	cases := map[string]string{
		"5000":        "5000",
		"1234.5":      "1234.5",
		"1.234,50":    "1234.5",
		"R$ 5.000,00": "5000",
		"":            "0",
	}
	for raw, want := range cases {
		if got := parseGross(raw); got.String() != want {
			t.Fatalf("%q: expected %s, got %s", raw, want, got)
		}
	}
}
