package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"hirecost/internal/domain/comparison"
	"hirecost/internal/domain/reports"
	"hirecost/internal/platform/format"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	fs.SetOutput(stderr)
	gross := fs.String("gross", "", `monthly gross value, plain ("5000.00") or masked ("R$ 5.000,00")`)
	rate := fs.Int("rate", 20, "contractor INSS rate in whole percent (0-100)")
	output := fs.String("format", "text", "output format: text, csv, json or pdf")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	in := comparison.Input{Gross: parseGross(*gross), ContractorRate: *rate}
	res, err := comparison.Calculate(in)
	if err != nil {
		fmt.Fprintf(stderr, "compare: %v\n", err)
		return exitUsage
	}

	switch strings.ToLower(*output) {
	case "text":
		err = reports.WriteText(stdout, in, res.Groups)
	case "csv":
		err = reports.WriteCSV(stdout, res.Groups)
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(res)
	case "pdf":
		err = reports.WritePDF(stdout, in, res.Groups)
	default:
		fmt.Fprintf(stderr, "compare: unknown format %q\n", *output)
		return exitUsage
	}
	if err != nil {
		fmt.Fprintf(stderr, "compare: %v\n", err)
		return exitFailure
	}
	return exitOK
}

// parseGross accepts a plain decimal first and falls back to masked-field
// rules, so "1234.5" is 1234.50 while "1.234,50" is read digit by digit.
func parseGross(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if v, err := decimal.NewFromString(raw); err == nil {
		return v
	}
	return format.ParseMasked(raw)
}
