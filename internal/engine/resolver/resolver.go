// Package resolver turns a resolution request into a fully pinned lockfile.
package resolver

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.trai.ch/vulcan/internal/core/domain"
	"go.trai.ch/vulcan/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Resolver implements ports.LockResolver.
//
// It builds one environment per request and runs every install against it
// concurrently: the base set, the base set combined with all extras, and the
// base set with each extra alone. The combined install decides the pinned version
// of every package; the individual installs decide which packages belong where.
type Resolver struct {
	provider  ports.EnvironmentProvider
	installer ports.Installer
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new Resolver.
func New(
	provider ports.EnvironmentProvider,
	installer ports.Installer,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Resolver {
	return &Resolver{
		provider:  provider,
		installer: installer,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Resolve pins req. An empty request yields an empty lockfile without creating an environment.
// Either every install succeeds or no lockfile is returned.
func (r *Resolver) Resolve(ctx context.Context, req domain.ResolutionRequest) (domain.Lockfile, error) {
	if req.IsEmpty() {
		return domain.NewLockfile(), nil
	}

	runID := uuid.NewString()
	r.logger.Info("Resolving lock " + runID[:8] + runtimeSuffix(req.RuntimeVersion))

	env, release, err := r.createEnvironment(ctx, req.RuntimeVersion)
	if err != nil {
		return domain.Lockfile{}, err
	}
	defer func() {
		if rmErr := release(); rmErr != nil {
			r.logger.Warn("failed to remove build environment " + env.Root + ": " + rmErr.Error())
		}
	}()

	return r.resolveIn(ctx, env, req)
}

func (r *Resolver) createEnvironment(
	ctx context.Context,
	runtimeVersion string,
) (domain.Environment, func() error, error) {
	ctx, vertex := r.telemetry.Record(ctx, "create environment"+runtimeSuffix(runtimeVersion))
	env, release, err := r.provider.Create(ctx, runtimeVersion)
	vertex.Complete(err)
	return env, release, err
}

func (r *Resolver) resolveIn(
	ctx context.Context,
	env domain.Environment,
	req domain.ResolutionRequest,
) (domain.Lockfile, error) {
	names := req.ExtraNames()

	var (
		base      domain.FrozenSet
		canonical domain.FrozenSet
		perExtra  = make([]domain.FrozenSet, len(names))
	)

	// Every install is awaited even after one fails, so no subprocess is still
	// writing below the environment when it is released.
	var g errgroup.Group

	r.logger.Info("Building base requires")
	g.Go(func() error {
		var err error
		base, err = r.installFresh(ctx, env, "base", req.Base)
		return err
	})

	if len(names) > 0 {
		r.logger.Info("Building requirements for base + all extras")
		g.Go(func() error {
			var err error
			canonical, err = r.installFresh(ctx, env, "all", req.Combined())
			return err
		})

		for i, name := range names {
			r.logger.Info("Building requirements for extra '" + name + "'")
			g.Go(func() error {
				var err error
				perExtra[i], err = r.installFresh(ctx, env, "extra-"+scratchLabel(name), req.WithExtra(name))
				return err
			})
		}
	}

	if err := g.Wait(); err != nil {
		return domain.Lockfile{}, err
	}

	lock := domain.NewLockfile()
	if len(names) == 0 {
		lock.InstallRequires = base.Sorted()
		return lock, nil
	}

	pinnedBase, err := base.PinnedFrom(canonical)
	if err != nil {
		return domain.Lockfile{}, zerr.With(err, "group", "base")
	}
	lock.InstallRequires = pinnedBase

	for i, name := range names {
		pinned, err := perExtra[i].PinnedFrom(canonical)
		if err != nil {
			return domain.Lockfile{}, zerr.With(err, "group", name)
		}
		lock.ExtrasRequire[name] = pinned
	}

	return lock, nil
}

// installFresh installs reqs into a new scratch directory that is removed once frozen.
func (r *Resolver) installFresh(
	ctx context.Context,
	env domain.Environment,
	label string,
	reqs []domain.Requirement,
) (domain.FrozenSet, error) {
	dir, err := os.MkdirTemp(env.ScratchDir(), label+"-")
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create scratch directory"), "group", label)
	}
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			r.logger.Warn("failed to remove scratch directory " + dir + ": " + rmErr.Error())
		}
	}()

	return r.installer.InstallAndFreeze(ctx, env, dir, reqs)
}

func runtimeSuffix(version string) string {
	if version == "" {
		return ""
	}
	return " for python " + version
}

// scratchLabel reduces an extra name to characters that are safe in a directory name.
func scratchLabel(name string) string {
	label := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return -1
		}
	}, domain.NormalizeName(name))
	if label == "" {
		return "unnamed"
	}
	return label
}

var _ ports.LockResolver = (*Resolver)(nil)
