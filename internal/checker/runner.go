package checker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// waitDelay bounds how long Run waits for the output pipes to close after
// the process has been killed on timeout.
const waitDelay = 500 * time.Millisecond

// Invocation describes a single run of the external checker.
type Invocation struct {
	Path    string
	Args    []string
	WorkDir string
	Input   string
}

// Result captures what the checker produced. It is consumed once by the
// caller and then discarded.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Runner executes the external checker.
//
// A non-zero exit status is reported through Result.ExitCode with a nil
// error. The error return is reserved for failures to start, wait on, or
// talk to the process, and for context cancellation.
type Runner interface {
	Run(ctx context.Context, inv Invocation) (Result, error)
}

// ExecRunner runs the checker as a child process.
type ExecRunner struct{}

// NewExecRunner returns a Runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run writes inv.Input to the child's stdin and collects stdout and stderr.
func (r *ExecRunner) Run(ctx context.Context, inv Invocation) (Result, error) {
	if strings.TrimSpace(inv.Path) == "" {
		return Result{ExitCode: -1}, fmt.Errorf("checker path is empty")
	}

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...)
	cmd.Stdin = strings.NewReader(inv.Input)
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	cmd.WaitDelay = waitDelay
	if inv.WorkDir != "" {
		cmd.Dir = inv.WorkDir
	}

	start := time.Now()
	err := cmd.Run()

	res := Result{
		ExitCode: -1,
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
		Duration: time.Since(start),
	}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err == nil {
		return res, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && res.ExitCode >= 0 {
		return res, nil
	}

	return res, fmt.Errorf("run %s: %w", inv.Path, err)
}

var _ Runner = (*ExecRunner)(nil)
