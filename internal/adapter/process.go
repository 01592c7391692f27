package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"
)

// ErrProcessTimeout is returned when a child process exceeds its wall-clock budget.
var ErrProcessTimeout = errors.New("process timed out")

// processSpec describes one shell command invocation.
type processSpec struct {
	Command string
	Dir     string
	Stdin   []byte
	Env     []string
	Timeout time.Duration
}

// processResult carries the captured output of a finished process.
type processResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Duration time.Duration
}

// Combined returns stdout followed by stderr.
func (r processResult) Combined() string {
	return string(r.Stdout) + string(r.Stderr)
}

// runProcess runs ps.Command through sh in its own process group. When the
// timeout fires the whole group is killed and ErrProcessTimeout is returned.
// A non-zero exit status is reported through ExitCode, not as an error.
func runProcess(ctx context.Context, ps processSpec) (processResult, error) {
	if ps.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, ps.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", ps.Command)
	cmd.Dir = ps.Dir
	cmd.Env = append(cmd.Environ(), ps.Env...)
	cmd.WaitDelay = 5 * time.Second
	isolateProcessGroup(cmd)

	if ps.Stdin != nil {
		cmd.Stdin = bytes.NewReader(ps.Stdin)
	}

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	started := time.Now()
	err := cmd.Run()

	result := processResult{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: cmd.ProcessState.ExitCode(),
		Duration: time.Since(started),
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			slog.Warn("Process timed out", "command", ps.Command, "timeout", ps.Timeout)
			return result, fmt.Errorf("%w after %s: %s", ErrProcessTimeout, ps.Timeout, ps.Command)
		}

		return result, ctxErr
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		slog.Error("Failed to run process", "command", ps.Command, "error", err)
		return result, fmt.Errorf("failed to run %q: %w", ps.Command, err)
	}

	return result, nil
}
