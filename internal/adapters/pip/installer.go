// Package pip installs requirement sets with pip and freezes what it installed.
package pip

import (
	"bufio"
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/vulcan/internal/adapters/venv"
	"go.trai.ch/vulcan/internal/core/domain"
	"go.trai.ch/vulcan/internal/core/ports"
	"go.trai.ch/zerr"
)

// Installer implements ports.Installer on top of an environment's pip.
type Installer struct {
	executor  ports.Executor
	telemetry ports.Telemetry
}

// NewInstaller creates a new Installer.
func NewInstaller(executor ports.Executor, telemetry ports.Telemetry) *Installer {
	return &Installer{
		executor:  executor,
		telemetry: telemetry,
	}
}

// InstallAndFreeze installs reqs into targetDir and lists the distributions found there.
func (i *Installer) InstallAndFreeze(
	ctx context.Context,
	env domain.Environment,
	targetDir string,
	reqs []domain.Requirement,
) (domain.FrozenSet, error) {
	if len(reqs) == 0 {
		return domain.FrozenSet{}, nil
	}

	ctx, vertex := i.telemetry.Record(ctx, "install "+filepath.Base(targetDir)+": "+
		strings.Join(domain.RequirementStrings(reqs), " "))

	frozen, err := i.installAndFreeze(ctx, env, targetDir, reqs, vertex)
	vertex.Complete(err)
	return frozen, err
}

func (i *Installer) installAndFreeze(
	ctx context.Context,
	env domain.Environment,
	targetDir string,
	reqs []domain.Requirement,
	vertex ports.Vertex,
) (domain.FrozenSet, error) {
	args := append([]string{"-Im", "pip", "install", "--use-pep517", "--target", targetDir},
		domain.RequirementStrings(reqs)...)
	res, err := i.executor.Execute(ctx, domain.Command{
		Path: env.Python,
		Args: args,
		Env:  venv.QuietInstallerEnv,
	}, vertex.Stdout())
	if err != nil {
		return nil, installError(ctx, err, res, reqs)
	}

	frozen, err := i.freeze(ctx, env.Python, "-Im", "pip", "list", "--format=freeze", "--path", targetDir)
	if err != nil {
		return nil, zerr.With(err, "target", targetDir)
	}
	vertex.Log(domain.LogLevelDebug, "froze "+targetDir)
	return frozen, nil
}

// InstallPackage installs req into the environment that python belongs to and
// lists every package installed there afterwards.
func (i *Installer) InstallPackage(ctx context.Context, python string, req domain.Requirement) (domain.FrozenSet, error) {
	ctx, vertex := i.telemetry.Record(ctx, "add "+req.String())

	res, err := i.executor.Execute(ctx, domain.Command{
		Path: python,
		Args: []string{"-m", "pip", "install", req.String()},
		Env:  venv.QuietInstallerEnv,
	}, vertex.Stdout())
	if err != nil {
		err = installError(ctx, err, res, []domain.Requirement{req})
		vertex.Complete(err)
		return nil, err
	}

	frozen, err := i.freeze(ctx, python, "-m", "pip", "list", "--format=freeze")
	if err != nil {
		err = zerr.With(err, "python", python)
	}
	vertex.Complete(err)
	return frozen, err
}

func (i *Installer) freeze(ctx context.Context, python string, args ...string) (domain.FrozenSet, error) {
	res, err := i.executor.Execute(ctx, domain.Command{
		Path: python,
		Args: args,
		Env:  venv.QuietInstallerEnv,
	}, nil)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, zerr.Wrap(ctxErr, "freeze interrupted")
		}
		freezeErr := zerr.Wrap(domain.ErrFreezeFailed, "failed to list installed packages")
		return nil, zerr.With(freezeErr, "output", strings.TrimSpace(string(res.Combined)))
	}
	return ParseFreeze(res.Stdout)
}

// installError classifies a failed install. Only a pip run that exited with a
// non-zero status is a conflict; cancellation and launch failures keep their cause.
func installError(ctx context.Context, err error, res domain.CommandResult, reqs []domain.Requirement) error {
	joined := strings.Join(domain.RequirementStrings(reqs), " ")

	if ctxErr := ctx.Err(); ctxErr != nil {
		return zerr.With(zerr.Wrap(ctxErr, "install interrupted"), "requirements", joined)
	}

	if res.ExitCode <= 0 {
		runErr := zerr.Wrap(err, "failed to run pip")
		runErr = zerr.With(runErr, "requirements", joined)
		return zerr.With(runErr, "output", strings.TrimSpace(string(res.Combined)))
	}

	conflict := zerr.Wrap(domain.ErrInstallConflict, "requirements could not be installed together")
	conflict = zerr.With(conflict, "requirements", joined)
	conflict = zerr.With(conflict, "exit_code", res.ExitCode)
	return zerr.With(conflict, "output", strings.TrimSpace(string(res.Combined)))
}

// ParseFreeze reads "name==version" lines as printed by "pip list --format=freeze".
// Blank lines and comments are ignored.
func ParseFreeze(out []byte) (domain.FrozenSet, error) {
	var pins []domain.Requirement

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		pin, err := domain.ParseRequirement(line)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid freeze line"), "line", line)
		}
		pins = append(pins, pin)
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(domain.ErrFreezeFailed, err.Error())
	}

	set, err := domain.NewFrozenSet(pins...)
	if err != nil {
		return nil, zerr.Wrap(err, "invalid freeze output")
	}
	return set, nil
}

var (
	_ ports.Installer        = (*Installer)(nil)
	_ ports.PackageInstaller = (*Installer)(nil)
)
