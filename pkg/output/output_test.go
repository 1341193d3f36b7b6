package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dshills/pictopt/pkg/model"
)

func testModel(t *testing.T) *model.Model {
	t.Helper()
	m, err := model.BuildModel([]model.RawParameter{
		{DisplayName: "Browser", Values: []string{"Chrome", "Firefox"}},
		{DisplayName: "OS", Values: []string{"Windows", "Linux"}},
	})
	if err != nil {
		t.Fatalf("BuildModel: %v", err)
	}
	return m
}

func testRows() [][]string {
	return [][]string{
		{"Chrome", "Windows"},
		{"Firefox", "Linux"},
	}
}

func TestRegistry_DefaultFormattersArePresent(t *testing.T) {
	for _, name := range []string{"table", "delim", "struct"} {
		if Get(name) == nil {
			t.Errorf("Get(%q) = nil, want a registered formatter", name)
		}
	}
}

func TestTableFormatter_HeaderUnderlinedAndPadded(t *testing.T) {
	var buf bytes.Buffer
	meta := Metadata{N: 2, Verified: true}
	if err := (TableFormatter{}).Format(&buf, testModel(t), meta, testRows()); err != nil {
		t.Fatalf("Format: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) < 4 {
		t.Fatalf("expected header, dash row, 2 data rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "Browser") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "-------") {
		t.Errorf("dash row = %q", lines[1])
	}
}

func TestDelimitedFormatter_QuotesFieldsContainingComma(t *testing.T) {
	m, err := model.BuildModel([]model.RawParameter{
		{DisplayName: "Label", Values: []string{"a,b", "plain"}},
		{DisplayName: "Other", Values: []string{"x", "y"}},
	})
	if err != nil {
		t.Fatalf("BuildModel: %v", err)
	}

	var buf bytes.Buffer
	meta := Metadata{N: 1}
	if err := (DelimitedFormatter{}).Format(&buf, m, meta, [][]string{{"a,b", "x"}}); err != nil {
		t.Fatalf("Format: %v", err)
	}

	r := csv.NewReader(strings.NewReader(buf.String()))
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("re-parsing CSV output: %v", err)
	}
	if len(records) != 2 || records[1][0] != "a,b" {
		t.Errorf("round-tripped records = %v", records)
	}
}

func TestStructuredFormatter_EmitsMetadataAndTestCases(t *testing.T) {
	var buf bytes.Buffer
	lb := 4
	meta := Metadata{
		N: 4, LB: &lb, Verified: true, OrderingMode: model.OrderingKeep,
		Seed: 7, Strength: 2, Attempts: 1, EarlyStopped: true,
	}
	if err := (StructuredFormatter{}).Format(&buf, testModel(t), meta, testRows()); err != nil {
		t.Fatalf("Format: %v", err)
	}

	var doc structuredDocument
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !doc.Metadata.ProvablyMinimum {
		t.Error("expected provably_minimum=true (verified && n==lb)")
	}
	if len(doc.TestCases) != 2 {
		t.Fatalf("expected 2 test cases, got %d", len(doc.TestCases))
	}
	if doc.TestCases[0]["Browser"] != "Chrome" {
		t.Errorf("test case keyed by display_name: got %v", doc.TestCases[0])
	}
}

func TestMetadata_ProvablyMinimum(t *testing.T) {
	lb := 4
	cases := []struct {
		name string
		meta Metadata
		want bool
	}{
		{"verified and matches lb", Metadata{N: 4, LB: &lb, Verified: true}, true},
		{"unverified", Metadata{N: 4, LB: &lb, Verified: false}, false},
		{"no lb", Metadata{N: 4, LB: nil, Verified: true}, false},
		{"n above lb", Metadata{N: 5, LB: &lb, Verified: true}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.meta.ProvablyMinimum(); got != c.want {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestWritePairCoverageSVG_ProducesWellFormedSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePairCoverageSVG(&buf, testModel(t), testRows(), DefaultSVGOptions()); err != nil {
		t.Fatalf("WritePairCoverageSVG: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Errorf("output does not look like SVG:\n%s", out)
	}
}
