package model

import (
	"fmt"
	"strings"
)

// Parameter is a named dimension with an ordered list of distinct value labels.
type Parameter struct {
	// DisplayName is the free-text name as declared by the user.
	DisplayName string

	// SafeName is a generator-compatible identifier derived from DisplayName.
	SafeName string

	// Values is the ordered sequence of non-empty, stripped value labels.
	Values []string
}

// Cardinality returns the number of distinct values this parameter declares.
func (p Parameter) Cardinality() int {
	return len(p.Values)
}

// Model is an ordered sequence of Parameters. A Model is immutable once built:
// BuildModel and Parse validate before returning; OrderingPlan.Apply returns
// an unvalidated permuted copy of an already-built Model.
type Model struct {
	Parameters []Parameter
}

// Len returns the number of parameters.
func (m *Model) Len() int {
	return len(m.Parameters)
}

// Cardinalities returns the per-parameter value counts in declared order.
func (m *Model) Cardinalities() []int {
	out := make([]int, len(m.Parameters))
	for i, p := range m.Parameters {
		out[i] = p.Cardinality()
	}
	return out
}

// BuildModel constructs and validates a Model from raw (display_name, values)
// pairs, assigning safe names deterministically. Values are stripped of
// surrounding whitespace; interior whitespace is preserved.
func BuildModel(raw []RawParameter) (*Model, error) {
	used := make(map[string]bool, len(raw))
	params := make([]Parameter, len(raw))

	for i, r := range raw {
		name := strings.TrimSpace(r.DisplayName)
		if name == "" {
			return nil, fmt.Errorf("parameter %d: display name must not be empty", i)
		}

		values := make([]string, 0, len(r.Values))
		seen := make(map[string]bool, len(r.Values))
		for _, v := range r.Values {
			sv := strings.TrimSpace(v)
			if sv == "" {
				return nil, fmt.Errorf("parameter %q: value must not be empty after trimming", name)
			}
			if seen[sv] {
				return nil, fmt.Errorf("parameter %q: duplicate value %q", name, sv)
			}
			seen[sv] = true
			values = append(values, sv)
		}
		if len(values) == 0 {
			return nil, fmt.Errorf("parameter %q: must declare at least one value", name)
		}

		params[i] = Parameter{
			DisplayName: name,
			SafeName:    uniqueSafeName(name, used),
			Values:      values,
		}
	}

	m := &Model{Parameters: params}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// RawParameter is the unvalidated (display_name, values) pair accepted by
// BuildModel, mirroring one declared line of the textual form.
type RawParameter struct {
	DisplayName string
	Values      []string
}

// Validate checks the Model-level invariants: at least two parameters,
// case-insensitively unique display names, and at least one parameter with
// two or more values (otherwise no pair exists to cover).
func (m *Model) Validate() error {
	if len(m.Parameters) < 2 {
		return fmt.Errorf("model: at least two parameters are required, got %d", len(m.Parameters))
	}

	seenNames := make(map[string]string, len(m.Parameters))
	hasPair := false
	for _, p := range m.Parameters {
		lower := strings.ToLower(p.DisplayName)
		if prior, ok := seenNames[lower]; ok {
			return fmt.Errorf("model: duplicate parameter name %q (conflicts with %q, case-insensitive)", p.DisplayName, prior)
		}
		seenNames[lower] = p.DisplayName

		if p.Cardinality() >= 2 {
			hasPair = true
		}
	}
	if !hasPair {
		return fmt.Errorf("model: at least one parameter must have two or more values")
	}
	return nil
}

// ByDisplayName returns the parameter with the given display name and its
// declared index, or ok=false if none matches.
func (m *Model) ByDisplayName(name string) (Parameter, int, bool) {
	for i, p := range m.Parameters {
		if p.DisplayName == name {
			return p, i, true
		}
	}
	return Parameter{}, -1, false
}

// BySafeName returns the parameter with the given safe name and its declared
// index, or ok=false if none matches.
func (m *Model) BySafeName(name string) (Parameter, int, bool) {
	for i, p := range m.Parameters {
		if p.SafeName == name {
			return p, i, true
		}
	}
	return Parameter{}, -1, false
}
