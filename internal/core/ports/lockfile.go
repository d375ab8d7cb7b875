package ports

import "go.trai.ch/vulcan/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=lockfile.go -destination=mocks/mock_lockfile.go -package=mocks

// LockfileCodec converts lockfiles to and from their persisted document form.
type LockfileCodec interface {
	// Encode renders lock as a deterministic document.
	Encode(lock domain.Lockfile) ([]byte, error)

	// Decode parses a document produced by Encode.
	Decode(data []byte) (domain.Lockfile, error)
}

// LockfileStore reads and writes lockfile documents.
type LockfileStore interface {
	// Read returns the document at path. A missing file is reported as fs.ErrNotExist
	// wrapped in domain.ErrLockfileRead.
	Read(path string) ([]byte, error)

	// Write replaces the document at path atomically.
	Write(path string, data []byte) error
}
