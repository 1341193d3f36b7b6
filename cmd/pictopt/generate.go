package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dshills/pictopt/pkg/diag"
	"github.com/dshills/pictopt/pkg/driver"
	"github.com/dshills/pictopt/pkg/exitcode"
	"github.com/dshills/pictopt/pkg/generator"
	"github.com/dshills/pictopt/pkg/model"
	"github.com/dshills/pictopt/pkg/output"
	"github.com/dshills/pictopt/pkg/runconfig"
)

func runGenerate(args []string) int {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	modelPath := fs.String("model", "", "path to the parameter model file (required)")
	pictBin := fs.String("pict-bin", os.Getenv("PICTOPT_BIN"), "path to the external generator binary")
	configPath := fs.String("config", "", "optional YAML run-config file")
	format := fs.String("format", "table", "output format: table, delim, or struct")
	outPath := fs.String("out", "", "write the primary artifact here instead of stdout")
	debugSVG := fs.String("debug-svg", "", "write a pair-coverage SVG diagnostic to this path")
	verbose := fs.Bool("verbose", false, "emit per-attempt progress to stderr")
	keepOrder := fs.Bool("keep-order", false, "alias for --ordering keep")
	ordering := fs.String("ordering", "", "auto or keep")
	tries := fs.Int("tries", 0, "maximum generator invocations (0 = use default/config)")
	maxTries := fs.Int("max-tries", 0, "hard upper clamp on tries (0 = use default/config)")
	seed := fs.Uint64("seed", 0, "base seed")
	deterministic := fs.Bool("deterministic", true, "fixed seed+k progression and stable tie-breaking")
	strength := fs.Int("strength", 0, "interaction strength (0 = use default/config)")
	earlyStop := fs.Bool("early-stop", false, "stop once a verified suite matches the lower bound")
	doVerify := fs.Bool("verify", true, "run the verifier against each candidate suite")
	noVerify := fs.Bool("no-verify", false, "alias for --verify=false")
	requireVerified := fs.Bool("require-verified", true, "exclude unverified candidates from selection")
	pictTimeoutSec := fs.Float64("pict-timeout-sec", 0, "per-attempt timeout in seconds (0 = use default/config)")
	totalTimeoutSec := fs.Float64("total-timeout-sec", 0, "whole-run timeout in seconds (0 = use default/config)")

	if err := fs.Parse(args); err != nil {
		return exitcode.InputValidation
	}

	if *modelPath == "" {
		fmt.Fprintln(os.Stderr, "pictopt generate: --model is required")
		return exitcode.InputValidation
	}
	if *pictBin == "" {
		fmt.Fprintln(os.Stderr, "pictopt generate: --pict-bin is required (or set PICTOPT_BIN)")
		return exitcode.InputValidation
	}
	if output.Get(*format) == nil {
		fmt.Fprintf(os.Stderr, "pictopt generate: unknown format %q\n", *format)
		return exitcode.InputValidation
	}

	opts := driver.DefaultOptions()
	if *configPath != "" {
		cfg, err := runconfig.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pictopt generate: %v\n", err)
			return exitcode.InputValidation
		}
		opts, err = cfg.Apply(opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pictopt generate: %v\n", err)
			return exitcode.InputValidation
		}
	}

	// Only flags the user actually typed override the config/defaults —
	// config-then-flag precedence (SPEC_FULL §4.6).
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if *keepOrder {
		opts.Ordering = model.OrderingKeep
	} else if set["ordering"] {
		opts.Ordering = model.OrderingMode(*ordering)
	}
	if set["tries"] {
		opts.Tries = *tries
	}
	if set["max-tries"] {
		opts.MaxTries = *maxTries
	}
	if set["seed"] {
		opts.Seed = *seed
	}
	if set["deterministic"] {
		opts.Deterministic = *deterministic
	}
	if set["strength"] {
		opts.Strength = *strength
	}
	if set["early-stop"] {
		opts.EarlyStop = *earlyStop
	}
	// require_verified is implied by verify (SPEC_FULL §4.6): it only takes
	// its own value when the caller sets it explicitly, otherwise it follows
	// whatever verify just became.
	if set["no-verify"] && *noVerify {
		opts.Verify = false
		if !set["require-verified"] {
			opts.RequireVerified = false
		}
	} else if set["verify"] {
		opts.Verify = *doVerify
		if !set["require-verified"] {
			opts.RequireVerified = opts.Verify
		}
	}
	if set["require-verified"] {
		opts.RequireVerified = *requireVerified
	}
	if set["pict-timeout-sec"] {
		opts.PictTimeout = time.Duration(*pictTimeoutSec * float64(time.Second))
	}
	if set["total-timeout-sec"] {
		opts.TotalTimeout = time.Duration(*totalTimeoutSec * float64(time.Second))
	}

	if err := opts.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "pictopt generate: %v\n", err)
		return exitcode.InputValidation
	}

	log := diag.New(os.Stderr, *verbose)
	for _, w := range opts.Warnings() {
		log.Warn().Msg(w)
	}

	f, err := os.Open(*modelPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pictopt generate: %v\n", err)
		return exitcode.InputValidation
	}
	m, err := model.Parse(f)
	_ = f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pictopt generate: parsing model: %v\n", err)
		return exitcode.InputValidation
	}

	d := driver.New(generator.New(*pictBin), m, opts, log)
	result := d.Run(context.Background())

	code := exitcode.FromResult(result, opts)

	if result.Best != nil {
		if err := emitResult(m, result, opts, *format, *outPath); err != nil {
			fmt.Fprintf(os.Stderr, "pictopt generate: emitting output: %v\n", err)
			return exitcode.GeneratorError
		}
		if *debugSVG != "" {
			if err := writeDebugSVG(m, result, *debugSVG); err != nil {
				log.Warn().Err(err).Msg("writing debug SVG")
			}
		}
	}

	return code
}

func emitResult(m *model.Model, result *driver.Result, opts driver.Options, format, outPath string) error {
	// format was already validated up front; the CLI never reaches this
	// point with an unrecognized name.
	formatter := output.Get(format)

	meta := output.Metadata{
		N:            result.Best.N,
		LB:           result.LB,
		Verified:     result.Verified(),
		OrderingMode: result.OrderingMode,
		Seed:         result.Best.Seed,
		Strength:     opts.Strength,
		Attempts:     result.InvokedAttempts(),
		EarlyStopped: result.EarlyStopped,
	}

	w := os.Stdout
	if outPath != "" {
		file, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer file.Close()
		return formatter.Format(file, m, meta, result.Best.Rows)
	}
	return formatter.Format(w, m, meta, result.Best.Rows)
}

func writeDebugSVG(m *model.Model, result *driver.Result, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return output.WritePairCoverageSVG(file, m, result.Best.Rows, output.DefaultSVGOptions())
}
