package venv

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/vulcan/internal/core/domain"
	"go.trai.ch/vulcan/internal/core/ports"
	"go.trai.ch/zerr"
)

const dirPerm = 0o750

// QuietInstallerEnv keeps the installer from querying the index for its own updates
// on every invocation.
var QuietInstallerEnv = []string{"PIP_DISABLE_PIP_VERSION_CHECK=1"}

// Provider implements ports.EnvironmentProvider with "python -m venv".
type Provider struct {
	executor ports.Executor
	locator  ports.RuntimeLocator
	logger   ports.Logger
	tempRoot string
	goos     string
}

// NewProvider creates a Provider that places environments in the system temp directory.
func NewProvider(executor ports.Executor, locator ports.RuntimeLocator, logger ports.Logger) *Provider {
	return NewProviderWithTempRoot(executor, locator, logger, "")
}

// NewProviderWithTempRoot creates a Provider that places environments under tempRoot.
// An empty tempRoot selects the system temp directory.
func NewProviderWithTempRoot(
	executor ports.Executor,
	locator ports.RuntimeLocator,
	logger ports.Logger,
	tempRoot string,
) *Provider {
	return &Provider{
		executor: executor,
		locator:  locator,
		logger:   logger,
		tempRoot: tempRoot,
		goos:     runtime.GOOS,
	}
}

// Create builds a fresh environment and upgrades its installer.
// On any failure the environment directory is removed before returning.
func (p *Provider) Create(ctx context.Context, runtimeVersion string) (domain.Environment, func() error, error) {
	base, err := p.baseInterpreter(ctx, runtimeVersion)
	if err != nil {
		return domain.Environment{}, nil, err
	}

	root, err := os.MkdirTemp(p.tempRoot, "vulcan-build-")
	if err != nil {
		return domain.Environment{}, nil, zerr.Wrap(err, "failed to create environment directory")
	}
	release := func() error {
		return os.RemoveAll(root)
	}

	env, err := p.populate(ctx, root, base, runtimeVersion)
	if err != nil {
		if rmErr := release(); rmErr != nil {
			p.logger.Warn("failed to remove environment directory " + root + ": " + rmErr.Error())
		}
		return domain.Environment{}, nil, err
	}

	return env, release, nil
}

func (p *Provider) baseInterpreter(ctx context.Context, runtimeVersion string) (string, error) {
	if runtimeVersion == "" {
		return p.locator.Host(ctx)
	}
	return p.locator.Locate(ctx, runtimeVersion)
}

func (p *Provider) populate(ctx context.Context, root, base, runtimeVersion string) (domain.Environment, error) {
	venvDir := filepath.Join(root, "venv")
	if res, err := p.executor.Execute(ctx, domain.Command{
		Path: base,
		Args: []string{"-m", "venv", venvDir},
	}, nil); err != nil {
		return domain.Environment{}, createError(err, "failed to create virtual environment", res, runtimeVersion)
	}

	python := interpreterPath(venvDir, p.goos)
	if res, err := p.executor.Execute(ctx, domain.Command{
		Path: python,
		Args: []string{"-Im", "pip", "install", "--upgrade", "pip"},
		Env:  QuietInstallerEnv,
	}, nil); err != nil {
		return domain.Environment{}, createError(err, "failed to upgrade package installer", res, runtimeVersion)
	}

	env := domain.Environment{
		Root:           root,
		Python:         python,
		RuntimeVersion: runtimeVersion,
	}
	if err := os.MkdirAll(env.ScratchDir(), dirPerm); err != nil {
		return domain.Environment{}, zerr.Wrap(err, "failed to create scratch directory")
	}

	return env, nil
}

func createError(cause error, msg string, res domain.CommandResult, runtimeVersion string) error {
	err := zerr.Wrap(domain.ErrEnvironmentCreateFailed, msg)
	err = zerr.With(err, "cause", cause.Error())
	if runtimeVersion != "" {
		err = zerr.With(err, "version", runtimeVersion)
	}
	return zerr.With(err, "output", string(res.Combined))
}

var _ ports.EnvironmentProvider = (*Provider)(nil)
