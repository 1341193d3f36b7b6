package driver

import (
	"bytes"
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dshills/pictopt/pkg/generator"
	"github.com/dshills/pictopt/pkg/lowerbound"
	"github.com/dshills/pictopt/pkg/model"
	"github.com/dshills/pictopt/pkg/seedrng"
	"github.com/dshills/pictopt/pkg/verify"
)

// Driver owns one optimization run against one model: it repeatedly invokes
// the generator adapter across a seed sequence, verifies each candidate,
// and tracks the best suite seen so far.
type Driver struct {
	Adapter *generator.Adapter
	Model   *model.Model
	Options Options
	Log     zerolog.Logger
}

// New builds a Driver. log may be the zero Logger, in which case diagnostics
// are simply discarded.
func New(adapter *generator.Adapter, m *model.Model, opts Options, log zerolog.Logger) *Driver {
	return &Driver{Adapter: adapter, Model: m, Options: opts, Log: log}
}

// Run executes the multi-seed optimization loop described in spec.md §4.6
// step 4, returning once tries is exhausted, the total timeout elapses, or
// early-stop fires.
func (d *Driver) Run(ctx context.Context) *Result {
	opts := d.Options

	result := &Result{
		OrderingMode:  opts.Ordering,
		SeedBase:      opts.Seed,
		Deterministic: opts.Deterministic,
	}
	if lb, ok := lowerbound.Compute(d.Model.Cardinalities(), opts.Strength); ok {
		result.LB = &lb
	}

	plan := model.NewOrderingPlan(d.Model, opts.Ordering)

	var modelBytes bytes.Buffer
	if err := d.Model.Serialize(&modelBytes); err != nil {
		d.Log.Error().Err(err).Msg("serializing model for seed derivation")
	}

	var stream *seedrng.Stream
	if !opts.Deterministic {
		stream = seedrng.NewStream(opts.Seed, modelBytes.Bytes())
	}

	deadline := time.Now().Add(opts.TotalTimeout)

	var best *Attempt
	for k := 0; k < opts.Tries; k++ {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			result.Attempts = append(result.Attempts, Attempt{Index: k, Kind: AttemptTotalTimeout})
			break
		}

		seed := d.attemptSeed(opts, k, stream)
		perAttempt := opts.PictTimeout
		if remaining < perAttempt {
			perAttempt = remaining
		}

		d.Log.Debug().Int("attempt", k).Uint64("seed", seed).Msg("invoking generator")

		outcome := d.Adapter.Run(ctx, d.Model, plan, seed, opts.Strength, perAttempt)

		attempt := d.classify(k, seed, outcome)
		result.Attempts = append(result.Attempts, attempt)

		if attempt.isCandidate(opts.RequireVerified) && better(attempt, best, opts.Deterministic) {
			best = &result.Attempts[len(result.Attempts)-1]
		}

		if d.shouldStop(opts, result.LB, best) {
			result.EarlyStopped = true
			break
		}

		if ctx.Err() != nil {
			break
		}
	}

	result.Best = best
	if result.Best == nil && len(result.Attempts) > 0 {
		last := result.Attempts[len(result.Attempts)-1]
		if last.Kind == AttemptTotalTimeout {
			result.Warning = "total timeout reached before any candidate suite qualified"
		}
	}
	return result
}

// attemptSeed derives the seed for attempt k: seed+k under deterministic
// sequential seeding, or the next draw from the run's seed stream otherwise
// (SPEC_FULL §4.10).
func (d *Driver) attemptSeed(opts Options, k int, stream *seedrng.Stream) uint64 {
	if opts.Deterministic {
		return opts.Seed + uint64(k)
	}
	return stream.Next()
}

// classify turns a raw generator Outcome into an Attempt, running the
// verifier when requested.
func (d *Driver) classify(index int, seed uint64, outcome *generator.Outcome) Attempt {
	a := Attempt{Index: index, Seed: seed, WallTime: outcome.WallTime}

	switch outcome.Kind {
	case generator.KindTimeout:
		a.Kind = AttemptTimeout
		return a
	case generator.KindGeneratorError:
		a.Kind = AttemptGeneratorError
		a.Detail = outcome.Detail
		a.Stderr = outcome.StderrTail
		return a
	}

	a.Rows = outcome.Rows
	a.N = len(outcome.Rows)

	if !d.Options.Verify {
		a.Kind = AttemptSuite
		return a
	}

	report := verify.Verify(d.Model, outcome.Rows)
	if report.Verified() {
		a.Kind = AttemptVerified
	} else {
		a.Kind = AttemptUnverified
		a.Missing = report.Missing
	}
	return a
}

// shouldStop reports whether the early-stop condition from spec.md §4.6 is
// met: early_stop enabled, verification enabled, strength 2, and the best
// attempt so far is VERIFIED with size exactly equal to the lower bound.
func (d *Driver) shouldStop(opts Options, lb *int, best *Attempt) bool {
	if !opts.EarlyStop || !opts.Verify || opts.Strength != 2 {
		return false
	}
	if best == nil || best.Kind != AttemptVerified || lb == nil {
		return false
	}
	return best.N == *lb
}
