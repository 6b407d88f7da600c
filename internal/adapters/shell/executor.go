// Package shell provides an os/exec based executor for running external tools.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
	"time"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// WaitDelay bounds how long Execute keeps waiting for output pipes after the
// process was killed.
const WaitDelay = 2 * time.Second

// Executor implements ports.Executor using os/exec.
type Executor struct{}

// NewExecutor creates a new Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs the invocation and waits for it to complete.
// Non-interactive invocations run in their own process group and the whole
// group is killed when ctx is canceled. Interactive invocations (non-nil Stdin)
// stay in the terminal's foreground group and only the process itself is killed.
func (e *Executor) Execute(ctx context.Context, inv domain.Invocation, stdout, stderr io.Writer) error {
	if inv.Name == "" {
		return zerr.Wrap(domain.ErrCommandFailed, "empty command")
	}

	cmd := exec.CommandContext(ctx, inv.Name, inv.Args...) //nolint:gosec // program comes from project settings
	cmd.Dir = inv.Dir
	cmd.Env = resolveEnvironment(os.Environ(), inv.Environment)
	cmd.Stdin = inv.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.WaitDelay = WaitDelay
	if inv.Stdin == nil {
		setOptNewProcessGroup(cmd)
	}
	cmd.Cancel = func() error { return killProcessGroup(cmd) }

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
		return zerr.With(wrapped, "command", commandLine(inv))
	}

	return nil
}

// resolveEnvironment overlays overrides on top of the inherited environment.
// The result is sorted by key so child processes see a stable order.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range overrides {
		envMap[k] = v
	}

	keys := make([]string, 0, len(envMap))
	for k := range envMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]string, 0, len(keys))
	for _, k := range keys {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// commandLine renders inv for diagnostics, quoting arguments that contain spaces.
func commandLine(inv domain.Invocation) string {
	parts := make([]string, 0, len(inv.Args)+1)
	parts = append(parts, quote(inv.Name))
	for _, arg := range inv.Args {
		parts = append(parts, quote(arg))
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t") {
		return `"` + s + `"`
	}
	return s
}
