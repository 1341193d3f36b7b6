package main

import (
	"github.com/dshills/pictopt/pkg/lowerbound"
	"github.com/dshills/pictopt/pkg/model"
)

// lowerBoundFor computes the 2-way lower bound for m at the given strength,
// returning ok=false when undefined (strength != 2).
func lowerBoundFor(m *model.Model, strength int) (int, bool) {
	return lowerbound.Compute(m.Cardinalities(), strength)
}
