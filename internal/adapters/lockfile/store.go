package lockfile

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/vulcan/internal/core/domain"
	"go.trai.ch/vulcan/internal/core/ports"
	"go.trai.ch/zerr"
)

const filePerm = 0o644

// Store implements ports.LockfileStore on the local filesystem.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Read returns the lockfile document at path.
func (s *Store) Read(path string) ([]byte, error) {
	//nolint:gosec // Path comes from the project descriptor
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrLockfileRead, err), "failed to read lockfile"),
			"path", path)
	}
	return data, nil
}

// Write replaces the document at path. The data is written to a sibling temporary
// file first and renamed into place, so readers never observe a partial lockfile.
func (s *Store) Write(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return writeError(err, path)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return writeError(err, path)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return writeError(err, path)
	}
	if err := tmp.Close(); err != nil {
		return writeError(err, path)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return writeError(err, path)
	}
	return nil
}

func writeError(cause error, path string) error {
	err := zerr.Wrap(domain.ErrLockfileWrite, "failed to write lockfile")
	err = zerr.With(err, "path", path)
	return zerr.With(err, "cause", cause.Error())
}

var _ ports.LockfileStore = (*Store)(nil)
