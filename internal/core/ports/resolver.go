package ports

import (
	"context"

	"go.trai.ch/vulcan/internal/core/domain"
)

// LockResolver turns a resolution request into a pinned lockfile.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type LockResolver interface {
	Resolve(ctx context.Context, req domain.ResolutionRequest) (domain.Lockfile, error)
}
