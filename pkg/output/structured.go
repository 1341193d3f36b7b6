package output

import (
	"encoding/json"
	"io"

	"github.com/dshills/pictopt/pkg/model"
)

// StructuredFormatter renders a suite as a JSON object with two top-level
// members, `metadata` and `test_cases` (spec.md §4.5, "Structured").
type StructuredFormatter struct{}

func (StructuredFormatter) Name() string { return "struct" }

type structuredMetadata struct {
	N               int    `json:"n"`
	LB              *int   `json:"lb"`
	Verified        bool   `json:"verified"`
	OrderingMode    string `json:"ordering_mode"`
	Seed            uint64 `json:"seed"`
	Strength        int    `json:"strength"`
	Attempts        int    `json:"attempts"`
	EarlyStopped    bool   `json:"early_stopped"`
	ProvablyMinimum bool   `json:"provably_minimum"`
}

type structuredDocument struct {
	Metadata  structuredMetadata  `json:"metadata"`
	TestCases []map[string]string `json:"test_cases"`
}

func (StructuredFormatter) Format(w io.Writer, m *model.Model, meta Metadata, rows [][]string) error {
	doc := structuredDocument{
		Metadata: structuredMetadata{
			N:               meta.N,
			LB:              meta.LB,
			Verified:        meta.Verified,
			OrderingMode:    string(meta.OrderingMode),
			Seed:            meta.Seed,
			Strength:        meta.Strength,
			Attempts:        meta.Attempts,
			EarlyStopped:    meta.EarlyStopped,
			ProvablyMinimum: meta.ProvablyMinimum(),
		},
		TestCases: make([]map[string]string, len(rows)),
	}

	for i, row := range rows {
		tc := make(map[string]string, m.Len())
		for col, p := range m.Parameters {
			tc[p.DisplayName] = row[col]
		}
		doc.TestCases[i] = tc
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
