package ports

import "go.trai.ch/vulcan/internal/core/domain"

// Hasher computes content fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint returns a digest of the request that is independent of map iteration
	// and of the order of extra groups.
	Fingerprint(req domain.ResolutionRequest) string

	// HashBytes returns a digest of data.
	HashBytes(data []byte) string
}
