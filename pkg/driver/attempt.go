package driver

import (
	"time"

	"github.com/dshills/pictopt/pkg/verify"
)

// AttemptKind tags the outcome of a single generator invocation plus its
// (optional) verification pass — the tagged variant RunAttempt carries,
// rather than an open-ended attribute bag.
type AttemptKind string

const (
	AttemptSuite          AttemptKind = "SUITE"
	AttemptVerified       AttemptKind = "VERIFIED"
	AttemptUnverified     AttemptKind = "UNVERIFIED"
	AttemptTimeout        AttemptKind = "TIMEOUT"
	AttemptGeneratorError AttemptKind = "GENERATOR_ERROR"
	AttemptTotalTimeout   AttemptKind = "TOTAL_TIMEOUT"
)

// Attempt is one record in the driver's append-only attempt log.
type Attempt struct {
	Index    int
	Seed     uint64
	Kind     AttemptKind
	N        int
	Rows     [][]string
	Missing  []verify.MissingPair
	Detail   string // populated for GENERATOR_ERROR
	Stderr   string // populated for GENERATOR_ERROR
	WallTime time.Duration
}

// isCandidate reports whether this attempt is eligible to be selected as
// best under requireVerified: VERIFIED attempts always are; SUITE/UNVERIFIED
// attempts are eligible only when requireVerified is false.
func (a Attempt) isCandidate(requireVerified bool) bool {
	switch a.Kind {
	case AttemptVerified:
		return true
	case AttemptSuite, AttemptUnverified:
		return !requireVerified
	default:
		return false
	}
}

// verifiedClass returns 1 for a VERIFIED attempt, 0 for anything else — used
// by the selection ordering to always prefer verified over unverified.
func (a Attempt) verifiedClass() int {
	if a.Kind == AttemptVerified {
		return 1
	}
	return 0
}
