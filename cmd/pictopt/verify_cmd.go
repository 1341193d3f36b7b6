package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"

	"github.com/dshills/pictopt/pkg/exitcode"
	"github.com/dshills/pictopt/pkg/model"
	"github.com/dshills/pictopt/pkg/output"
	"github.com/dshills/pictopt/pkg/verify"
)

// runVerify implements `pictopt verify`: checks an already-produced suite
// file against a model, without invoking the generator (SPEC_FULL §6.3).
func runVerify(args []string) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	modelPath := fs.String("model", "", "path to the parameter model file (required)")
	suitePath := fs.String("suite", "", "path to a delimited (CSV) suite file, header = display names (required)")
	strength := fs.Int("strength", 2, "interaction strength")
	format := fs.String("format", "struct", "output format: table, delim, or struct")

	if err := fs.Parse(args); err != nil {
		return exitcode.InputValidation
	}
	if *modelPath == "" || *suitePath == "" {
		fmt.Fprintln(os.Stderr, "pictopt verify: --model and --suite are required")
		return exitcode.InputValidation
	}

	mf, err := os.Open(*modelPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pictopt verify: %v\n", err)
		return exitcode.InputValidation
	}
	m, err := model.Parse(mf)
	_ = mf.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pictopt verify: parsing model: %v\n", err)
		return exitcode.InputValidation
	}

	rows, err := loadSuiteCSV(*suitePath, m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pictopt verify: %v\n", err)
		return exitcode.InputValidation
	}

	report := verify.Verify(m, rows)

	lb, lbOK := lowerBoundFor(m, *strength)
	meta := output.Metadata{
		N:        len(rows),
		Verified: report.Verified(),
		Strength: *strength,
		Attempts: 0,
	}
	if lbOK {
		meta.LB = &lb
	}

	formatter := output.Get(*format)
	if formatter == nil {
		fmt.Fprintf(os.Stderr, "pictopt verify: unknown format %q\n", *format)
		return exitcode.InputValidation
	}
	if err := formatter.Format(os.Stdout, m, meta, rows); err != nil {
		fmt.Fprintf(os.Stderr, "pictopt verify: emitting output: %v\n", err)
		return exitcode.GeneratorError
	}

	if !report.Verified() {
		fmt.Fprintln(os.Stderr, verify.Summary(report))
		return exitcode.VerificationFailed
	}
	return exitcode.Success
}

// loadSuiteCSV reads a CSV suite file whose header names match m's
// declared display names (in any order) and returns rows re-projected into
// m's declared column order.
func loadSuiteCSV(path string, m *model.Model) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening suite file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing suite CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("suite file has no header row")
	}

	header := records[0]
	colOf := make([]int, m.Len())
	for i, p := range m.Parameters {
		idx := -1
		for c, h := range header {
			if h == p.DisplayName {
				idx = c
				break
			}
		}
		if idx == -1 {
			return nil, fmt.Errorf("suite header is missing column %q", p.DisplayName)
		}
		colOf[i] = idx
	}

	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]string, m.Len())
		for i, col := range colOf {
			if col >= len(rec) {
				return nil, fmt.Errorf("row has fewer columns than the header declares")
			}
			row[i] = rec[col]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
