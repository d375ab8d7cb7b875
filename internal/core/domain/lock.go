package domain

import (
	"maps"
	"slices"
)

// Lockfile is the resolved, fully pinned dependency set of a project.
// Every sequence is ordered by package name so that identical inputs yield identical output.
type Lockfile struct {
	// InstallRequires holds the pinned base requirements.
	InstallRequires []Requirement

	// ExtrasRequire maps an extra name to its complete pinned install set,
	// base packages included.
	ExtrasRequire map[string][]Requirement
}

// NewLockfile returns an empty lockfile with non-nil collections.
func NewLockfile() Lockfile {
	return Lockfile{
		InstallRequires: []Requirement{},
		ExtrasRequire:   make(map[string][]Requirement),
	}
}

// ExtraNames returns the locked extra names in sorted order.
func (l Lockfile) ExtraNames() []string {
	return slices.Sorted(maps.Keys(l.ExtrasRequire))
}
