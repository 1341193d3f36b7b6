package diag

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New builds the diagnostic logger. verbose raises the level to Debug so
// per-attempt progress lines are emitted; otherwise only warnings and errors
// surface. w is normally os.Stderr.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// Nop returns a logger that discards everything, for callers that don't
// need diagnostics.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
