package model

import "sort"

// OrderingMode selects how parameters are permuted before being handed to the
// external generator.
type OrderingMode string

const (
	// OrderingKeep is the identity permutation.
	OrderingKeep OrderingMode = "keep"

	// OrderingAuto stably sorts parameters by descending cardinality, ties
	// broken by original index, to help the generator find smaller suites.
	OrderingAuto OrderingMode = "auto"
)

// OrderingPlan is a permutation over parameter indices, computed once per run
// and reused for every attempt so the permutation itself never introduces
// nondeterminism across attempts.
type OrderingPlan struct {
	Mode OrderingMode

	// ToGenerator[i] is the declared-order index of the parameter placed at
	// generator-facing position i.
	ToGenerator []int
}

// NewOrderingPlan computes the ordering plan for m under mode.
func NewOrderingPlan(m *Model, mode OrderingMode) OrderingPlan {
	n := m.Len()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	if mode == OrderingAuto {
		sort.SliceStable(perm, func(a, b int) bool {
			return m.Parameters[perm[a]].Cardinality() > m.Parameters[perm[b]].Cardinality()
		})
	}

	return OrderingPlan{Mode: mode, ToGenerator: perm}
}

// Apply returns a new Model with parameters permuted into generator-facing
// order. The returned model's own declared order IS the generator order; the
// caller is responsible for re-projecting generator output back via
// ReprojectRow.
func (p OrderingPlan) Apply(m *Model) *Model {
	params := make([]Parameter, len(p.ToGenerator))
	for genPos, declPos := range p.ToGenerator {
		params[genPos] = m.Parameters[declPos]
	}
	return &Model{Parameters: params}
}

// ReprojectRow maps a row whose columns are in generator-facing order back to
// the model's declared order. len(row) must equal len(p.ToGenerator).
func (p OrderingPlan) ReprojectRow(row []string) []string {
	out := make([]string, len(p.ToGenerator))
	for genPos, declPos := range p.ToGenerator {
		out[declPos] = row[genPos]
	}
	return out
}
