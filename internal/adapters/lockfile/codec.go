// Package lockfile persists resolved lockfiles as TOML documents.
package lockfile

import (
	"bytes"
	"maps"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/vulcan/internal/core/domain"
	"go.trai.ch/vulcan/internal/core/ports"
	"go.trai.ch/zerr"
)

const indent = "    "

// document is the on-disk shape of a lockfile.
type document struct {
	InstallRequires []string            `toml:"install_requires"`
	ExtrasRequire   map[string][]string `toml:"extras_require"`
}

// Codec implements ports.LockfileCodec.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Encode renders lock with one requirement per line. Lists are sorted by package name
// and extra tables by extra name, so equal lockfiles always encode to equal bytes.
func (c *Codec) Encode(lock domain.Lockfile) ([]byte, error) {
	doc := document{
		InstallRequires: sortedStrings(lock.InstallRequires),
		ExtrasRequire:   make(map[string][]string, len(lock.ExtrasRequire)),
	}
	for name, reqs := range lock.ExtrasRequire {
		doc.ExtrasRequire[name] = sortedStrings(reqs)
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf).
		SetArraysMultiline(true).
		SetIndentSymbol(indent)
	if err := enc.Encode(doc); err != nil {
		return nil, zerr.Wrap(err, "failed to encode lockfile")
	}
	return buf.Bytes(), nil
}

// Decode parses a lockfile document. Unknown keys are rejected.
func (c *Codec) Decode(data []byte) (domain.Lockfile, error) {
	var doc document
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return domain.Lockfile{}, zerr.With(zerr.Wrap(domain.ErrLockfileDecode, "invalid lockfile document"),
			"cause", err.Error())
	}

	lock := domain.NewLockfile()
	base, err := domain.ParseRequirements(doc.InstallRequires)
	if err != nil {
		return domain.Lockfile{}, zerr.Wrap(domain.ErrLockfileDecode, err.Error())
	}
	lock.InstallRequires = append(lock.InstallRequires, base...)

	for _, name := range slices.Sorted(maps.Keys(doc.ExtrasRequire)) {
		reqs, err := domain.ParseRequirements(doc.ExtrasRequire[name])
		if err != nil {
			return domain.Lockfile{}, zerr.With(zerr.Wrap(domain.ErrLockfileDecode, err.Error()), "extra", name)
		}
		lock.ExtrasRequire[name] = reqs
	}

	return lock, nil
}

func sortedStrings(reqs []domain.Requirement) []string {
	sorted := slices.Clone(reqs)
	domain.SortRequirements(sorted)
	return domain.RequirementStrings(sorted)
}

var _ ports.LockfileCodec = (*Codec)(nil)
