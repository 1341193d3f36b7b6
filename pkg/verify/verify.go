package verify

import (
	"fmt"

	"github.com/dshills/pictopt/pkg/model"
)

// maxMissingPairs bounds the diagnostic list returned on failure (spec: "up
// to 20 missing pairs").
const maxMissingPairs = 20

// Kind categorizes why verification did not succeed. KindOK means it did.
type Kind string

const (
	KindOK             Kind = "OK"
	KindMissingPairs   Kind = "MISSING_PAIRS"
	KindUnknownValue   Kind = "UNKNOWN_VALUE"
	KindSchemaMismatch Kind = "SCHEMA_MISMATCH"
)

// MissingPair identifies one uncovered (parameter, parameter, value, value)
// combination.
type MissingPair struct {
	ParamIDisplay string
	ParamJDisplay string
	ValueI        string
	ValueJ        string
}

// UnknownValue identifies a row that used a value label the model never
// declared for that column.
type UnknownValue struct {
	Row           int
	ParamDisplay  string
	OffendingText string
}

// SchemaMismatch identifies a row whose column count does not match the
// model's parameter count.
type SchemaMismatch struct {
	Row      int
	Got      int
	Expected int
}

// Report is the outcome of one verification run.
type Report struct {
	Kind Kind

	// Missing is populated (bounded to maxMissingPairs) when Kind ==
	// KindMissingPairs.
	Missing []MissingPair

	// UnknownVal is populated when Kind == KindUnknownValue.
	UnknownVal UnknownValue

	// Schema is populated when Kind == KindSchemaMismatch.
	Schema SchemaMismatch
}

// Verified reports whether the suite covers every pair.
func (r *Report) Verified() bool {
	return r.Kind == KindOK
}

// Verify checks whether rows (each a declared-order-aligned candidate test
// case) cover every unordered value pair of m. It is deterministic and runs
// in O(rows * params^2).
func Verify(m *model.Model, rows [][]string) *Report {
	n := m.Len()

	valueIndex := make([]map[string]int, n)
	for i, p := range m.Parameters {
		idx := make(map[string]int, len(p.Values))
		for vi, v := range p.Values {
			idx[v] = vi
		}
		valueIndex[i] = idx
	}

	type pairKey struct{ i, j, vi, vj int }
	covered := make(map[pairKey]bool)

	for rowNum, row := range rows {
		if len(row) != n {
			return &Report{
				Kind: KindSchemaMismatch,
				Schema: SchemaMismatch{
					Row:      rowNum,
					Got:      len(row),
					Expected: n,
				},
			}
		}

		rowIdx := make([]int, n)
		for col, val := range row {
			vi, ok := valueIndex[col][val]
			if !ok {
				return &Report{
					Kind: KindUnknownValue,
					UnknownVal: UnknownValue{
						Row:           rowNum,
						ParamDisplay:  m.Parameters[col].DisplayName,
						OffendingText: val,
					},
				}
			}
			rowIdx[col] = vi
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				covered[pairKey{i, j, rowIdx[i], rowIdx[j]}] = true
			}
		}
	}

	var missing []MissingPair
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for vi := 0; vi < m.Parameters[i].Cardinality(); vi++ {
				for vj := 0; vj < m.Parameters[j].Cardinality(); vj++ {
					if covered[pairKey{i, j, vi, vj}] {
						continue
					}
					if len(missing) < maxMissingPairs {
						missing = append(missing, MissingPair{
							ParamIDisplay: m.Parameters[i].DisplayName,
							ParamJDisplay: m.Parameters[j].DisplayName,
							ValueI:        m.Parameters[i].Values[vi],
							ValueJ:        m.Parameters[j].Values[vj],
						})
					}
				}
			}
		}
	}

	if len(missing) == 0 {
		return &Report{Kind: KindOK}
	}
	return &Report{Kind: KindMissingPairs, Missing: missing}
}

// Summary renders a short human-readable description of the report, suitable
// for the diagnostic stream.
func Summary(r *Report) string {
	switch r.Kind {
	case KindOK:
		return "verification passed: all pairs covered"
	case KindSchemaMismatch:
		return fmt.Sprintf("schema mismatch: row %d has %d columns, expected %d", r.Schema.Row, r.Schema.Got, r.Schema.Expected)
	case KindUnknownValue:
		return fmt.Sprintf("unknown value %q for parameter %q at row %d", r.UnknownVal.OffendingText, r.UnknownVal.ParamDisplay, r.UnknownVal.Row)
	case KindMissingPairs:
		s := fmt.Sprintf("verification failed: showing %d missing pair(s) (at most %d are listed)", len(r.Missing), maxMissingPairs)
		for _, mp := range r.Missing {
			s += fmt.Sprintf("\n  %s=%q, %s=%q", mp.ParamIDisplay, mp.ValueI, mp.ParamJDisplay, mp.ValueJ)
		}
		return s
	default:
		return "unknown verification outcome"
	}
}
