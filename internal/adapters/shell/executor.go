// Package shell provides the subprocess executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/vulcan/internal/core/domain"
	"go.trai.ch/vulcan/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the command and captures stdout, stderr and their interleaving.
// The process inherits os.Environ() overlaid with cmd.Env.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command, stream io.Writer) (domain.CommandResult, error) {
	//nolint:gosec // commands are assembled by the installer adapters from trusted paths
	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	c.Dir = cmd.Dir
	c.Env = mergeEnvironment(os.Environ(), cmd.Env)

	var stdout, stderr bytes.Buffer
	combined := &lockedWriter{stream: stream}
	c.Stdout = io.MultiWriter(&stdout, combined)
	c.Stderr = io.MultiWriter(&stderr, combined)

	err := c.Run()
	result := domain.CommandResult{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		Combined: combined.Bytes(),
	}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
	} else {
		result.ExitCode = -1 // Not started or killed by a signal
	}

	cmdErr := zerr.Wrap(domain.ErrCommandFailed, err.Error())
	cmdErr = zerr.With(cmdErr, "command", cmd.String())
	cmdErr = zerr.With(cmdErr, "exit_code", result.ExitCode)
	if e.logger != nil {
		e.logger.Warn("command failed: " + cmd.String())
	}
	return result, cmdErr
}

// lockedWriter collects both output streams in write order. os/exec copies stdout
// and stderr from separate goroutines when they are distinct writers.
type lockedWriter struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	stream io.Writer
}

func (w *lockedWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	if w.stream != nil {
		// A failing progress sink must not abort the subprocess.
		_, _ = w.stream.Write(p)
	}
	return len(p), nil
}

func (w *lockedWriter) Bytes() []byte {
	w.mu.Lock()
	defer w.mu.Unlock()
	return bytes.Clone(w.buf.Bytes())
}

// mergeEnvironment overlays override onto base. Later entries win.
func mergeEnvironment(base, override []string) []string {
	if len(override) == 0 {
		return base
	}

	envMap := make(map[string]string, len(base)+len(override))
	order := make([]string, 0, len(base)+len(override))
	for _, entry := range append(append([]string{}, base...), override...) {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}
