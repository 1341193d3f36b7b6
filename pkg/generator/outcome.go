package generator

import "time"

// Kind tags the shape of an Outcome. This is the tagged-variant the rest of
// the system switches on, rather than an open-ended attribute bag: the
// mapping to exit codes lives in one place downstream (pkg/exitcode), and
// this type is the single source of truth for what an attempt can produce.
type Kind string

const (
	// KindSuite means the generator exited 0 and produced a parseable suite.
	KindSuite Kind = "SUITE"

	// KindTimeout means the per-attempt wall-clock budget was exceeded; no
	// partial rows are ever returned for a timed-out attempt.
	KindTimeout Kind = "TIMEOUT"

	// KindGeneratorError means a non-zero exit, empty stdout on a zero exit,
	// or malformed/unparseable TSV.
	KindGeneratorError Kind = "GENERATOR_ERROR"
)

// Outcome is the result of one child-process invocation.
type Outcome struct {
	Kind Kind

	// Rows holds the suite re-projected into the caller's declared parameter
	// order. Populated only when Kind == KindSuite.
	Rows [][]string

	// StderrTail holds up to stderrTailLimit bytes of the process's stderr,
	// populated when Kind == KindGeneratorError.
	StderrTail string

	// Detail is a short, stable description of what went wrong, populated
	// when Kind == KindGeneratorError.
	Detail string

	// WallTime is how long the invocation took, start to finish.
	WallTime time.Duration
}
