package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/vulcan/internal/core/domain"
	"go.trai.ch/zerr"
)

// AddOptions configures adding a top-level dependency.
type AddOptions struct {
	// Dir is the project directory. Empty means the working directory.
	Dir string
	// Requirement is the PEP 508 requirement to add, e.g. "requests[socks]>=2".
	Requirement string
	// Python selects the runtime version for the follow-up lock.
	Python string
	// NoLock skips regenerating the lockfile.
	NoLock bool
}

// Add installs a requirement into the active virtualenv, records it in the
// project's dependency table and regenerates the lockfile.
//
// Without a version specifier the dependency is pinned compatibly (~=major.minor)
// to whatever the virtualenv ended up with.
func (a *App) Add(ctx context.Context, opts AddOptions) error {
	req, err := domain.ParseRequirement(opts.Requirement)
	if err != nil {
		return zerr.Wrap(err, "invalid requirement")
	}
	parts, err := req.Parts()
	if err != nil {
		return zerr.Wrap(err, "invalid requirement")
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	project, err := a.loader.Load(dir)
	if err != nil {
		return zerr.Wrap(err, "failed to load project")
	}

	python, err := a.locator.Virtualenv(ctx)
	if err != nil {
		return zerr.Wrap(err, "must be in a virtualenv to add dependencies")
	}

	frozen, err := a.installer.InstallPackage(ctx, python, req)
	if err != nil {
		return zerr.Wrap(err, "failed to install requirement")
	}

	specifier := parts.Specifier
	if specifier == "" {
		specifier = a.installedSpecifier(frozen, parts.Name)
	}

	path, err := a.editor.AddDependency(project.Root, parts.Key(), specifier)
	if err != nil {
		return zerr.Wrap(err, "failed to record dependency")
	}
	a.logger.Info("Added " + parts.Key() + specifier + " to " + path)

	if opts.NoLock || project.NoLock {
		return nil
	}
	return a.Lock(ctx, LockOptions{Dir: project.Root, Python: opts.Python})
}

// installedSpecifier derives ~=major.minor from the installed version of name,
// or returns "" when the freeze does not list it.
func (a *App) installedSpecifier(frozen domain.FrozenSet, name string) string {
	pin, ok := frozen[domain.NormalizeName(name)]
	if !ok {
		a.logger.Warn("could not find " + name + " among installed packages, adding it unpinned")
		return ""
	}

	parts, err := pin.Parts()
	if err != nil {
		a.logger.Warn("could not read installed version of " + name + ": " + err.Error())
		return ""
	}

	version, err := semver.NewVersion(releaseSegment(strings.TrimPrefix(parts.Specifier, "==")))
	if err != nil {
		a.logger.Warn("could not read installed version of " + name + ": " + err.Error())
		return ""
	}
	return fmt.Sprintf("~=%d.%d", version.Major(), version.Minor())
}

// releaseSegment keeps the leading dotted numbers of a version, dropping
// pre-release, post-release and local parts, e.g. "2.0rc1" becomes "2.0".
func releaseSegment(version string) string {
	end := strings.IndexFunc(version, func(r rune) bool {
		return r != '.' && (r < '0' || r > '9')
	})
	if end >= 0 {
		version = version[:end]
	}
	return strings.TrimSuffix(version, ".")
}
