package execution

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"gtp/internal/compare"
	"gtp/internal/config"
	"gtp/internal/discovery"
	"gtp/internal/domain"
)

// Runner executes a single golden case: it spawns the executable under
// test with the input artifact as its sole argument, blocks until the
// child exits, captures stdout and stderr into fresh buffers, and compares
// stdout character for character against the expected output.
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// Run executes one case and returns its result. One invocation is
// authoritative; there are no retries. Environment problems (missing
// input, missing golden, unlaunchable binary, timeout) are reported as
// distinct kinds so broken setup is never confused with wrong output.
func (r *Runner) Run(c domain.Case) domain.CaseResult {
	result := domain.CaseResult{Case: c}
	result.Execution.ExitCode = -1

	expected, err := discovery.LoadExpected(c)
	if err != nil {
		result.Kind = domain.KindGoldenMissing
		result.Execution.Err = err
		return result
	}
	result.Expected = expected

	if _, err := os.Stat(c.InputPath); err != nil {
		result.Kind = domain.KindInputMissing
		result.Execution.Err = err
		return result
	}

	ctx := context.Background()
	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	// No shell interpretation: the input path is the single argv entry.
	cmd := exec.CommandContext(ctx, c.Binary, c.InputPath)
	if r.config.Timeout > 0 {
		// A killed child can leave the stdout pipe open in a grandchild;
		// don't let that hold Wait past the bounded wait.
		cmd.WaitDelay = time.Second
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()
	result.Execution.Duration = time.Since(start)
	result.Execution.Stdout = stdout.String()
	result.Execution.Stderr = stderr.String()
	if cmd.ProcessState != nil {
		result.Execution.ExitCode = cmd.ProcessState.ExitCode()
	}

	if runErr != nil {
		result.Execution.Err = runErr

		// CommandContext killed the child after the bounded wait
		if ctx.Err() == context.DeadlineExceeded {
			result.Kind = domain.KindTimeout
			return result
		}

		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			// Never spawned: missing binary, missing exec permission, etc.
			result.Kind = domain.KindLaunchFailure
			return result
		}
		// The child ran and exited nonzero. Captured stdout stays
		// authoritative unless exit checking is enabled.
		if r.config.CheckExit {
			result.Kind = domain.KindExitStatus
			return result
		}
	}

	if !compare.Exact(expected, result.Execution.Stdout) {
		result.Kind = domain.KindOutputMismatch
		result.Diff = compare.UnifiedDiff(expected, result.Execution.Stdout)
	}

	return result
}
