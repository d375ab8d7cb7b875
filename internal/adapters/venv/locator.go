// Package venv provides isolated runtime environments built with the venv module.
package venv

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/vulcan/internal/core/domain"
	"go.trai.ch/vulcan/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	versionScript     = `import sys; print(f"{sys.version_info.major}.{sys.version_info.minor}")`
	fullVersionScript = `import sys; print(".".join(map(str, sys.version_info[:3])))`
)

// Locator implements ports.RuntimeLocator by searching PATH for versioned interpreters.
type Locator struct {
	executor ports.Executor
	lookPath func(string) (string, error)
	getenv   func(string) string
	goos     string
}

// NewLocator creates a Locator that searches the process PATH.
func NewLocator(executor ports.Executor) *Locator {
	return NewLocatorWithLookup(executor, exec.LookPath, os.Getenv, runtime.GOOS)
}

// NewLocatorWithLookup creates a Locator with explicit lookup functions.
func NewLocatorWithLookup(
	executor ports.Executor,
	lookPath func(string) (string, error),
	getenv func(string) string,
	goos string,
) *Locator {
	return &Locator{
		executor: executor,
		lookPath: lookPath,
		getenv:   getenv,
		goos:     goos,
	}
}

// Host returns the interpreter the tool would use without a version selector.
func (l *Locator) Host(_ context.Context) (string, error) {
	for _, name := range []string{"python3", "python"} {
		if path, err := l.lookPath(name); err == nil {
			return path, nil
		}
	}
	return "", zerr.With(zerr.Wrap(domain.ErrEnvironmentUnavailable, "no host runtime on PATH"), "version", "host")
}

// HostVersion runs the host interpreter to report its "major.minor.micro" version.
func (l *Locator) HostVersion(ctx context.Context) (string, error) {
	python, err := l.Host(ctx)
	if err != nil {
		return "", err
	}
	return l.runScript(ctx, python, fullVersionScript)
}

// Locate returns the interpreter for version, trying "python<major>.<minor>" first
// and the selector exactly as given second.
func (l *Locator) Locate(_ context.Context, version string) (string, error) {
	candidates, err := interpreterNames(version)
	if err != nil {
		return "", err
	}

	for _, name := range candidates {
		if path, err := l.lookPath(name); err == nil {
			return path, nil
		}
	}

	notFound := zerr.Wrap(domain.ErrEnvironmentUnavailable, "requested runtime is not installed")
	notFound = zerr.With(notFound, "version", version)
	return "", zerr.With(notFound, "searched", strings.Join(candidates, ", "))
}

// VirtualenvVersion reports the major.minor version of the active virtualenv's interpreter.
// There is no versioned interpreter naming on Windows, so it always reports none there.
func (l *Locator) VirtualenvVersion(ctx context.Context) (string, error) {
	if l.goos == "windows" {
		return "", nil
	}
	if l.getenv("VIRTUAL_ENV") == "" {
		return "", nil
	}
	python, err := l.Virtualenv(ctx)
	if err != nil {
		return "", err
	}

	version, err := l.runScript(ctx, python, versionScript)
	if err != nil {
		return "", zerr.Wrap(err, "failed to read virtualenv runtime version")
	}
	return version, nil
}

// Virtualenv returns the interpreter of the virtualenv named by $VIRTUAL_ENV.
func (l *Locator) Virtualenv(_ context.Context) (string, error) {
	root := l.getenv("VIRTUAL_ENV")
	if root == "" {
		return "", zerr.Wrap(domain.ErrNoVirtualenv, "VIRTUAL_ENV is not set")
	}
	return interpreterPath(root, l.goos), nil
}

func (l *Locator) runScript(ctx context.Context, python, script string) (string, error) {
	res, err := l.executor.Execute(ctx, domain.Command{
		Path: python,
		Args: []string{"-c", script},
	}, nil)
	if err != nil {
		return "", zerr.With(err, "output", strings.TrimSpace(string(res.Combined)))
	}
	return strings.TrimSpace(string(res.Stdout)), nil
}

// interpreterNames turns a version selector like "3.11" or "3.11.4" into executable names.
func interpreterNames(version string) ([]string, error) {
	trimmed := strings.TrimSpace(version)
	v, err := semver.NewVersion(trimmed)
	if err != nil {
		invalid := zerr.Wrap(domain.ErrInvalidRuntimeVersion, err.Error())
		return nil, zerr.With(invalid, "version", version)
	}

	primary := fmt.Sprintf("python%d.%d", v.Major(), v.Minor())
	if !strings.Contains(trimmed, ".") {
		primary = fmt.Sprintf("python%d", v.Major())
	}

	names := []string{primary}
	if exact := "python" + trimmed; exact != primary {
		names = append(names, exact)
	}
	return names, nil
}

// interpreterPath returns the interpreter inside an environment directory.
func interpreterPath(envDir, goos string) string {
	if goos == "windows" {
		return filepath.Join(envDir, "Scripts", "python.exe")
	}
	return filepath.Join(envDir, "bin", "python")
}

var _ ports.RuntimeLocator = (*Locator)(nil)
