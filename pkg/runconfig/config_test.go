package runconfig

import (
	"testing"
	"time"

	"github.com/dshills/pictopt/pkg/driver"
	"github.com/dshills/pictopt/pkg/model"
)

func TestParse_MergesOverBase(t *testing.T) {
	yamlDoc := []byte(`
ordering: auto
tries: 5
seed: 42
deterministic: false
pictTimeoutSec: 1.5
`)
	cfg, err := Parse(yamlDoc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	opts, err := cfg.Apply(driver.DefaultOptions())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if opts.Ordering != model.OrderingAuto {
		t.Errorf("Ordering = %v, want auto", opts.Ordering)
	}
	if opts.Tries != 5 {
		t.Errorf("Tries = %d, want 5", opts.Tries)
	}
	if opts.Seed != 42 {
		t.Errorf("Seed = %d, want 42", opts.Seed)
	}
	if opts.Deterministic {
		t.Error("Deterministic = true, want false")
	}
	if opts.PictTimeout != 1500*time.Millisecond {
		t.Errorf("PictTimeout = %v, want 1.5s", opts.PictTimeout)
	}
	// Fields not present in the YAML keep the base's values.
	if opts.MaxTries != driver.DefaultOptions().MaxTries {
		t.Errorf("MaxTries should be unchanged from base, got %d", opts.MaxTries)
	}
}

func TestParse_UnknownKeyIsRejected(t *testing.T) {
	_, err := Parse([]byte("bogusField: 1\n"))
	if err == nil {
		t.Fatal("expected an error for an unknown key")
	}
}

func TestConfig_Apply_RejectsInvalidOrdering(t *testing.T) {
	cfg, err := Parse([]byte("ordering: sideways\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := cfg.Apply(driver.DefaultOptions()); err == nil {
		t.Fatal("expected an error for an invalid ordering value")
	}
}
