package runconfig

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dshills/pictopt/pkg/driver"
	"github.com/dshills/pictopt/pkg/model"
)

// Config is the optional YAML-backed option bag for `pictopt generate
// --config PATH`. Every field is a pointer so the merge step (Config.Apply)
// can tell "not set in the file" apart from "set to the zero value."
type Config struct {
	Ordering        *string  `yaml:"ordering"`
	Tries           *int     `yaml:"tries"`
	MaxTries        *int     `yaml:"maxTries"`
	Seed            *uint64  `yaml:"seed"`
	Deterministic   *bool    `yaml:"deterministic"`
	Strength        *int     `yaml:"strength"`
	EarlyStop       *bool    `yaml:"earlyStop"`
	Verify          *bool    `yaml:"verify"`
	RequireVerified *bool    `yaml:"requireVerified"`
	PictTimeoutSec  *float64 `yaml:"pictTimeoutSec"`
	TotalTimeoutSec *float64 `yaml:"totalTimeoutSec"`
}

// Load reads and strict-decodes a YAML run-config file: unknown keys are a
// validation error rather than being silently ignored (spec.md §7, SPEC_FULL
// §4.8).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	return Parse(data)
}

// Parse strict-decodes YAML run-config bytes.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing run config: %w", err)
	}
	return &cfg, nil
}

// Apply merges cfg's set fields into base, returning a new Options value.
// Flags always win: call Apply on the config-derived Options first, then let
// explicit CLI flags overwrite individual fields afterward in the caller.
// Setting verify without requireVerified derives requireVerified from it.
func (cfg *Config) Apply(base driver.Options) (driver.Options, error) {
	opts := base

	if cfg.Ordering != nil {
		switch *cfg.Ordering {
		case string(model.OrderingKeep):
			opts.Ordering = model.OrderingKeep
		case string(model.OrderingAuto):
			opts.Ordering = model.OrderingAuto
		default:
			return opts, fmt.Errorf("ordering: must be %q or %q, got %q", model.OrderingKeep, model.OrderingAuto, *cfg.Ordering)
		}
	}
	if cfg.Tries != nil {
		opts.Tries = *cfg.Tries
	}
	if cfg.MaxTries != nil {
		opts.MaxTries = *cfg.MaxTries
	}
	if cfg.Seed != nil {
		opts.Seed = *cfg.Seed
	}
	if cfg.Deterministic != nil {
		opts.Deterministic = *cfg.Deterministic
	}
	if cfg.Strength != nil {
		opts.Strength = *cfg.Strength
	}
	if cfg.EarlyStop != nil {
		opts.EarlyStop = *cfg.EarlyStop
	}
	if cfg.Verify != nil {
		opts.Verify = *cfg.Verify
		// require_verified is implied by verify unless the file says otherwise.
		if cfg.RequireVerified == nil {
			opts.RequireVerified = opts.Verify
		}
	}
	if cfg.RequireVerified != nil {
		opts.RequireVerified = *cfg.RequireVerified
	}
	if cfg.PictTimeoutSec != nil {
		opts.PictTimeout = time.Duration(*cfg.PictTimeoutSec * float64(time.Second))
	}
	if cfg.TotalTimeoutSec != nil {
		opts.TotalTimeout = time.Duration(*cfg.TotalTimeoutSec * float64(time.Second))
	}

	return opts, nil
}
