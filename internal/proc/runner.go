// Package proc provides bounded external command execution and process
// control for application reloads.
package proc

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"
)

// Runner executes external commands with a bounded lifetime.
type Runner interface {
	// Run executes a command and waits for it to exit. The context bounds
	// the total duration; on expiry the process is killed after the grace
	// period.
	Run(ctx context.Context, env []string, name string, args ...string) error

	// Start launches a long-lived process without waiting for it.
	Start(name string, args ...string) (pid int, err error)
}

// ExecRunner runs commands through os/exec.
type ExecRunner struct {
	// KillGrace is how long a canceled process gets to exit after SIGKILL
	// is scheduled. Zero means kill immediately on cancellation.
	KillGrace time.Duration
}

// Run executes the command, capturing stderr for error reporting.
func (r *ExecRunner) Run(ctx context.Context, env []string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = r.KillGrace
	if env != nil {
		cmd.Env = env
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s timed out: %w", name, ctx.Err())
		}
		msg := bytes.TrimSpace(stderr.Bytes())
		if len(msg) > 0 {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Start launches the command detached from the caller's lifetime.
func (r *ExecRunner) Start(name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("start %s: %w", name, err)
	}
	pid := cmd.Process.Pid

	// Reap the child when it eventually exits so it never zombies.
	go func() { _ = cmd.Wait() }()

	return pid, nil
}
