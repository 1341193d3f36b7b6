package driver

import "github.com/dshills/pictopt/pkg/model"

// Result is the full outcome of a driver run: the selected best attempt (if
// any candidate qualified), the complete attempt log for diagnostics, and the
// run-level bookkeeping the CLI and exit-code mapper need.
type Result struct {
	Best          *Attempt
	Attempts      []Attempt
	LB            *int // nil when undefined (strength != 2)
	EarlyStopped  bool
	OrderingMode  model.OrderingMode
	SeedBase      uint64
	Deterministic bool
	Warning       string // set when the run ended on TOTAL_TIMEOUT with no qualifying best
}

// Verified reports whether the selected best attempt was verified.
func (r *Result) Verified() bool {
	return r.Best != nil && r.Best.Kind == AttemptVerified
}

// MatchesLowerBound reports whether the best attempt's size provably equals
// the 2-way lower bound.
func (r *Result) MatchesLowerBound() bool {
	return r.Best != nil && r.LB != nil && r.Best.N == *r.LB
}

// InvokedAttempts counts generator invocations consumed by this run,
// excluding the TOTAL_TIMEOUT sentinel appended when the run's total budget
// expires between attempts rather than during one.
func (r *Result) InvokedAttempts() int {
	n := 0
	for _, a := range r.Attempts {
		if a.Kind != AttemptTotalTimeout {
			n++
		}
	}
	return n
}
