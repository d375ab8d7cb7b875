// Package app implements the application layer for vulcan.
package app

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/vulcan/internal/core/domain"
	"go.trai.ch/vulcan/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.ProjectLoader
	locator   ports.RuntimeLocator
	resolver  ports.LockResolver
	codec     ports.LockfileCodec
	lockfiles ports.LockfileStore
	states    ports.LockStateStore
	hasher    ports.Hasher
	installer ports.PackageInstaller
	editor    ports.ProjectEditor
	logger    ports.Logger

	now func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ProjectLoader,
	locator ports.RuntimeLocator,
	resolver ports.LockResolver,
	codec ports.LockfileCodec,
	lockfiles ports.LockfileStore,
	states ports.LockStateStore,
	hasher ports.Hasher,
	installer ports.PackageInstaller,
	editor ports.ProjectEditor,
	logger ports.Logger,
) *App {
	return &App{
		loader:    loader,
		locator:   locator,
		resolver:  resolver,
		codec:     codec,
		lockfiles: lockfiles,
		states:    states,
		hasher:    hasher,
		installer: installer,
		editor:    editor,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock replaces the clock used to timestamp lock states.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// LockOptions configures a lock run.
type LockOptions struct {
	// Dir is the project directory. Empty means the working directory.
	Dir string
	// Python selects the runtime version to lock with, overriding the project setting.
	Python string
	// IfStale skips resolution when the recorded state says the lockfile is current.
	IfStale bool
}

// CheckOptions configures an up-to-date check.
type CheckOptions struct {
	// Dir is the project directory. Empty means the working directory.
	Dir string
	// Python selects the runtime version, as for LockOptions.
	Python string
}

// Lock resolves the project's dependencies and writes its lockfile.
func (a *App) Lock(ctx context.Context, opts LockOptions) error {
	project, err := a.loadLockable(opts.Dir)
	if err != nil {
		return err
	}

	req := project.Request(a.selectRuntime(ctx, opts.Python, project))
	fingerprint := a.fingerprint(ctx, req)

	if opts.IfStale {
		reason := a.staleReason(project.Lockfile, fingerprint)
		if reason == "" {
			a.logger.Info("Lockfile " + project.Lockfile + " is up to date")
			return nil
		}
		a.logger.Info("Locking " + project.Lockfile + ": " + reason)
	}

	lock, err := a.resolver.Resolve(ctx, req)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve dependencies")
	}

	data, err := a.codec.Encode(lock)
	if err != nil {
		return zerr.Wrap(err, "failed to encode lockfile")
	}

	if err := a.lockfiles.Write(project.Lockfile, data); err != nil {
		return err
	}

	// The lockfile is already written; a missing state only costs a re-resolve next time.
	if err := a.states.Put(domain.LockState{
		Lockfile:     project.Lockfile,
		Fingerprint:  fingerprint,
		LockfileHash: a.hasher.HashBytes(data),
		Timestamp:    a.now().UTC(),
	}); err != nil {
		a.logger.Warn("failed to record lock state: " + err.Error())
	}

	a.logger.Info("Wrote " + project.Lockfile)
	return nil
}

// Check reports whether the lockfile matches the current project configuration.
// A stale lockfile is reported as domain.ErrLockfileStale.
func (a *App) Check(ctx context.Context, opts CheckOptions) error {
	project, err := a.loadLockable(opts.Dir)
	if err != nil {
		return err
	}

	req := project.Request(a.selectRuntime(ctx, opts.Python, project))
	if reason := a.staleReason(project.Lockfile, a.fingerprint(ctx, req)); reason != "" {
		stale := zerr.Wrap(domain.ErrLockfileStale, "lockfile needs to be regenerated")
		stale = zerr.With(stale, "lockfile", project.Lockfile)
		return zerr.With(stale, "reason", reason)
	}

	a.logger.Info("Lockfile " + project.Lockfile + " is up to date")
	return nil
}

func (a *App) loadLockable(dir string) (domain.Project, error) {
	if dir == "" {
		dir = "."
	}

	project, err := a.loader.Load(dir)
	if err != nil {
		return domain.Project{}, zerr.Wrap(err, "failed to load project")
	}

	if project.NoLock {
		disabled := zerr.Wrap(domain.ErrLockDisabled, "locking is disabled for this project (no-lock = true)")
		return domain.Project{}, zerr.With(disabled, "project", project.Root)
	}

	return project, nil
}

// selectRuntime picks the runtime version to lock with: the explicit option, then
// the project setting, then the active virtualenv. Empty means the host runtime.
func (a *App) selectRuntime(ctx context.Context, explicit string, project domain.Project) string {
	if explicit != "" {
		return explicit
	}
	if project.PythonLockWith != "" {
		return project.PythonLockWith
	}

	version, err := a.locator.VirtualenvVersion(ctx)
	if err != nil {
		return ""
	}
	return version
}

// fingerprint hashes req. A request for the host runtime is keyed by the host
// interpreter's version so that upgrading it invalidates the recorded state.
func (a *App) fingerprint(ctx context.Context, req domain.ResolutionRequest) string {
	if req.RuntimeVersion == "" {
		if version, err := a.locator.HostVersion(ctx); err == nil {
			req.RuntimeVersion = version
		}
	}
	return a.hasher.Fingerprint(req)
}

// staleReason explains why the lockfile does not reflect fingerprint, or returns ""
// when it does.
func (a *App) staleReason(lockfile, fingerprint string) string {
	state, err := a.states.Get(lockfile)
	if err != nil {
		a.logger.Warn("ignoring unreadable lock state: " + err.Error())
		return "lock state is unreadable"
	}
	if state == nil {
		return "no lock has been recorded"
	}
	if state.Fingerprint != fingerprint {
		return "dependencies or runtime changed"
	}

	data, err := a.lockfiles.Read(lockfile)
	if err != nil {
		if errors.Is(err, domain.ErrLockfileRead) {
			return "lockfile is missing or unreadable"
		}
		return err.Error()
	}
	if a.hasher.HashBytes(data) != state.LockfileHash {
		return "lockfile was modified"
	}
	if _, err := a.codec.Decode(data); err != nil {
		return "lockfile is invalid"
	}

	return ""
}
