package output

import "github.com/dshills/pictopt/pkg/model"

// Metadata is the structured metadata block shared by all three emission
// modes (spec.md §4.5).
type Metadata struct {
	N            int
	LB           *int
	Verified     bool
	OrderingMode model.OrderingMode
	Seed         uint64
	Strength     int
	Attempts     int
	EarlyStopped bool
}

// ProvablyMinimum is true iff the suite is verified, the lower bound is
// defined, and the suite size equals it exactly.
func (m Metadata) ProvablyMinimum() bool {
	return m.Verified && m.LB != nil && m.N == *m.LB
}
