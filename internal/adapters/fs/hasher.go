// Package fs computes content fingerprints for lock inputs and outputs.
package fs

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/vulcan/internal/core/domain"
	"go.trai.ch/vulcan/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// fingerprintVersion is mixed into every fingerprint so that a change to the
// hashing layout invalidates previously recorded states.
const fingerprintVersion = "v1"

// Hasher implements ports.Hasher with XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint computes a single hash representing everything that influences a resolution:
// the runtime version, the base requirements, and every extra group.
func (h *Hasher) Fingerprint(req domain.ResolutionRequest) string {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(fingerprintVersion)
	_, _ = hasher.Write([]byte{0})

	_, _ = hasher.WriteString(req.RuntimeVersion)
	_, _ = hasher.Write([]byte{0})

	h.hashRequirements(req.Base, hasher)

	for _, name := range req.ExtraNames() {
		_, _ = hasher.WriteString(name)
		_, _ = hasher.Write([]byte{'='})
		h.hashRequirements(req.Extras[name], hasher)
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	return fmt.Sprintf("%016x", hasher.Sum64())
}

// HashBytes computes the XXHash of data.
func (h *Hasher) HashBytes(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// hashRequirements hashes a requirement list independently of its order.
func (h *Hasher) hashRequirements(reqs []domain.Requirement, hasher *xxhash.Digest) {
	sorted := slices.Clone(reqs)
	domain.SortRequirements(sorted)

	for _, r := range sorted {
		_, _ = hasher.WriteString(r.String())
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})
}
