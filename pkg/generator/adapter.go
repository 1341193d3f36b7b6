package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"
	"time"

	"github.com/dshills/pictopt/pkg/model"
)

// terminateGrace is how long the adapter waits after sending a graceful
// termination signal before force-killing the child process.
const terminateGrace = 300 * time.Millisecond

// stderrTailLimit bounds the stderr excerpt attached to a GENERATOR_ERROR
// outcome.
const stderrTailLimit = 2 * 1024

// Adapter spawns the external pairwise generator as a child process. It
// resolves the binary path once, at construction, and never re-resolves it:
// the path is a single read-only value handed in, not a mutable global.
type Adapter struct {
	BinaryPath string
}

// New creates an Adapter for the given resolved binary path.
func New(binaryPath string) *Adapter {
	return &Adapter{BinaryPath: binaryPath}
}

// Run invokes the generator once against m, reordered per plan, with the
// given seed, interaction strength, and per-attempt wall-clock timeout. Rows
// in the returned Outcome are re-projected back into m's declared order.
func (a *Adapter) Run(ctx context.Context, m *model.Model, plan model.OrderingPlan, seed uint64, strength int, timeout time.Duration) *Outcome {
	start := time.Now()

	genModel := plan.Apply(m)

	modelFile, err := os.CreateTemp("", "pictopt-model-*.pict")
	if err != nil {
		return &Outcome{Kind: KindGeneratorError, Detail: "creating temp model file", WallTime: time.Since(start)}
	}
	defer os.Remove(modelFile.Name())

	if err := genModel.Serialize(modelFile); err != nil {
		_ = modelFile.Close()
		return &Outcome{Kind: KindGeneratorError, Detail: "writing temp model file", WallTime: time.Since(start)}
	}
	if err := modelFile.Close(); err != nil {
		return &Outcome{Kind: KindGeneratorError, Detail: "closing temp model file", WallTime: time.Since(start)}
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := []string{modelFile.Name(), "/r:" + strconv.FormatUint(seed, 10)}
	if strength != 2 {
		args = append(args, "/o:"+strconv.Itoa(strength))
	}

	cmd := exec.CommandContext(runCtx, a.BinaryPath, args...)
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = terminateGrace

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	wall := time.Since(start)

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return &Outcome{Kind: KindTimeout, WallTime: wall}
	}

	if runErr != nil {
		return &Outcome{
			Kind:       KindGeneratorError,
			Detail:     fmt.Sprintf("generator exited with error: %v", runErr),
			StderrTail: tail(stderr.Bytes(), stderrTailLimit),
			WallTime:   wall,
		}
	}

	if stdout.Len() == 0 {
		return &Outcome{
			Kind:       KindGeneratorError,
			Detail:     "generator exited 0 with empty stdout (contract violation)",
			StderrTail: tail(stderr.Bytes(), stderrTailLimit),
			WallTime:   wall,
		}
	}

	rows, err := parseTSV(stdout.Bytes(), genModel)
	if err != nil {
		return &Outcome{
			Kind:       KindGeneratorError,
			Detail:     fmt.Sprintf("malformed generator output: %v", err),
			StderrTail: tail(stderr.Bytes(), stderrTailLimit),
			WallTime:   wall,
		}
	}

	declaredRows := make([][]string, len(rows))
	for i, row := range rows {
		declaredRows[i] = plan.ReprojectRow(row)
	}

	return &Outcome{Kind: KindSuite, Rows: declaredRows, WallTime: wall}
}

// tail returns the last n bytes of b as a string, without splitting a
// trailing UTF-8 sequence in a way that would produce invalid output for the
// common case of plain-text stderr.
func tail(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[len(b)-n:])
}
