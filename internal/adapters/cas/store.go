// Package cas records the state of past lock runs next to the lockfiles they produced.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/vulcan/internal/core/domain"
	"go.trai.ch/vulcan/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultStatePath is the state file location relative to the lockfile's directory.
const DefaultStatePath = ".vulcan/state.json"

// Store implements ports.LockStateStore using a flat JSON file per project,
// keyed by lockfile path.
type Store struct {
	statePath string
	mu        sync.Mutex
}

// NewStore creates a new LockStateStore that keeps its file at statePath,
// resolved against the directory of each lockfile.
func NewStore(statePath string) *Store {
	return &Store{statePath: filepath.Clean(statePath)}
}

func (s *Store) fileFor(lockfile string) string {
	if filepath.IsAbs(s.statePath) {
		return s.statePath
	}
	return filepath.Join(filepath.Dir(lockfile), s.statePath)
}

func (s *Store) load(path string) (map[string]domain.LockState, error) {
	states := make(map[string]domain.LockState)

	//nolint:gosec // Path is derived from the project lockfile
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return states, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrStateRead, err.Error()), "path", path)
	}

	if len(data) == 0 {
		return states, nil
	}

	if err := json.Unmarshal(data, &states); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStateRead, "failed to unmarshal lock state"), "path", path)
	}

	return states, nil
}

func (s *Store) save(path string, states map[string]domain.LockState) error {
	data, err := json.MarshalIndent(states, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrStateWrite, "failed to marshal lock state")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStateWrite, err.Error()), "path", path)
	}

	//nolint:gosec // Path is derived from the project lockfile
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStateWrite, err.Error()), "path", path)
	}

	return nil
}

// Get retrieves the state recorded for a lockfile.
func (s *Store) Get(lockfile string) (*domain.LockState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	states, err := s.load(s.fileFor(lockfile))
	if err != nil {
		return nil, err
	}

	state, ok := states[lockfile]
	if !ok {
		return nil, nil
	}
	return &state, nil
}

// Put stores the state, replacing any previous state of the same lockfile.
func (s *Store) Put(state domain.LockState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.fileFor(state.Lockfile)
	states, err := s.load(path)
	if err != nil {
		return err
	}

	states[state.Lockfile] = state
	return s.save(path, states)
}

var _ ports.LockStateStore = (*Store)(nil)
