package ports

import "go.trai.ch/vulcan/internal/core/domain"

// LockStateStore remembers the inputs of the last successful lock per lockfile.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type LockStateStore interface {
	// Get returns the recorded state for the lockfile path.
	// Returns nil, nil if not found.
	Get(lockfile string) (*domain.LockState, error)

	// Put records the state.
	Put(state domain.LockState) error
}
