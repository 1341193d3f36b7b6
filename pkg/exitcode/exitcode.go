package exitcode

import "github.com/dshills/pictopt/pkg/driver"

// Stable exit codes (spec.md §6.5). Never renumber these: scripts depend on
// them.
const (
	Success            = 0
	InputValidation    = 2
	GeneratorError     = 3
	VerificationFailed = 4
	Timeout            = 5
)

// FromValidationError maps any input-validation failure caught before a run
// ever starts (bad model, bad options, missing file) to exit code 2.
func FromValidationError() int {
	return InputValidation
}

// FromInternalError maps an unexpected fault above the clean-exit barrier —
// one the driver itself did not already translate into an attempt outcome —
// to exit code 3 (spec.md §7, "Internal invariant violation").
func FromInternalError() int {
	return GeneratorError
}

// FromResult maps a completed driver Result to its exit code. The attempt
// kind alone keeps "verification was never requested" (SUITE) apart from
// "verification failed" (UNVERIFIED); opts is not consulted.
func FromResult(result *driver.Result, opts driver.Options) int {
	if result.Best == nil {
		return classifyNoBest(result)
	}

	switch result.Best.Kind {
	case driver.AttemptVerified:
		return Success
	case driver.AttemptSuite:
		// A suite was produced and verification was either skipped
		// (opts.Verify == false) or not required for selection.
		return Success
	case driver.AttemptUnverified:
		return VerificationFailed
	default:
		return FromInternalError()
	}
}

// classifyNoBest handles the case where no attempt ever qualified as best:
// the last attempt in the log tells us why.
func classifyNoBest(result *driver.Result) int {
	if len(result.Attempts) == 0 {
		return FromInternalError()
	}
	last := result.Attempts[len(result.Attempts)-1]
	switch last.Kind {
	case driver.AttemptTimeout, driver.AttemptTotalTimeout:
		return Timeout
	case driver.AttemptGeneratorError:
		return GeneratorError
	case driver.AttemptUnverified, driver.AttemptSuite:
		return VerificationFailed
	default:
		return FromInternalError()
	}
}
