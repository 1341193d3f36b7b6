package driver

import (
	"fmt"
	"time"

	"github.com/dshills/pictopt/pkg/model"
)

// Options carries every recognized driver option from spec.md §4.6.
type Options struct {
	Ordering        model.OrderingMode
	Tries           int
	MaxTries        int
	Seed            uint64
	Deterministic   bool
	Strength        int
	EarlyStop       bool
	Verify          bool
	RequireVerified bool
	PictTimeout     time.Duration
	TotalTimeout    time.Duration
}

// DefaultOptions returns sane defaults: keep order, one try, strength 2,
// verification on and required, a generous per-attempt timeout, deterministic
// seeding. Callers override whichever fields the CLI or a run config supply.
func DefaultOptions() Options {
	return Options{
		Ordering:        model.OrderingKeep,
		Tries:           1,
		MaxTries:        1000,
		Seed:            0,
		Deterministic:   true,
		Strength:        2,
		EarlyStop:       false,
		Verify:          true,
		RequireVerified: true,
		PictTimeout:     30 * time.Second,
		TotalTimeout:    5 * time.Minute,
	}
}

// Validate checks every numeric and logical constraint from spec.md §7.
// require_verified implies verify=true; verify=false with require_verified=true
// is treated as contradictory and rejected (spec.md §9, Open Questions).
func (o Options) Validate() error {
	if o.Ordering != model.OrderingKeep && o.Ordering != model.OrderingAuto {
		return fmt.Errorf("ordering: must be %q or %q, got %q", model.OrderingKeep, model.OrderingAuto, o.Ordering)
	}
	if o.Strength < 2 {
		return fmt.Errorf("strength: must be >= 2, got %d", o.Strength)
	}
	if o.Tries < 1 {
		return fmt.Errorf("tries: must be >= 1, got %d", o.Tries)
	}
	if o.Tries > o.MaxTries {
		return fmt.Errorf("tries (%d) exceeds max_tries (%d)", o.Tries, o.MaxTries)
	}
	if o.PictTimeout <= 0 {
		return fmt.Errorf("pict_timeout_sec: must be > 0, got %s", o.PictTimeout)
	}
	if o.TotalTimeout <= 0 {
		return fmt.Errorf("total_timeout_sec: must be > 0, got %s", o.TotalTimeout)
	}
	if !o.Verify && o.RequireVerified {
		return fmt.Errorf("require_verified cannot be set with verify=false")
	}
	return nil
}

// Warnings returns non-fatal warnings about this option set (spec.md §4.6:
// "A warning (not an error) is emitted when total_timeout_sec < pict_timeout_sec").
func (o Options) Warnings() []string {
	var warnings []string
	if o.TotalTimeout < o.PictTimeout {
		warnings = append(warnings, fmt.Sprintf("total_timeout_sec (%s) is less than pict_timeout_sec (%s)", o.TotalTimeout, o.PictTimeout))
	}
	return warnings
}
