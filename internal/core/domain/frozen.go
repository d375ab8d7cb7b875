package domain

import (
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// FrozenSet maps a normalized package name to the pinned requirement that was
// installed for it. It is the result of freezing one scratch install directory.
type FrozenSet map[string]Requirement

// NewFrozenSet indexes pinned requirements by normalized name.
// A package listed twice violates the freeze contract and is reported as an error.
func NewFrozenSet(pins ...Requirement) (FrozenSet, error) {
	set := make(FrozenSet, len(pins))
	for _, pin := range pins {
		name, err := pin.Name()
		if err != nil {
			return nil, err
		}
		if _, dup := set[name]; dup {
			return nil, zerr.With(zerr.Wrap(ErrDuplicatePackage, "freeze listed a package twice"), "package", name)
		}
		set[name] = pin
	}
	return set, nil
}

// Names returns the package names in sorted order.
func (f FrozenSet) Names() []string {
	return slices.Sorted(maps.Keys(f))
}

// Sorted returns the pinned requirements ordered by package name.
func (f FrozenSet) Sorted() []Requirement {
	pins := slices.Collect(maps.Values(f))
	SortRequirements(pins)
	return pins
}

// PinnedFrom returns, for every package name of f, the pin recorded in canonical,
// ordered by package name. f decides which packages appear; canonical decides their versions.
func (f FrozenSet) PinnedFrom(canonical FrozenSet) ([]Requirement, error) {
	pins := make([]Requirement, 0, len(f))
	for _, name := range f.Names() {
		pin, ok := canonical[name]
		if !ok {
			return nil, zerr.With(zerr.Wrap(ErrMissingPin, "cannot pin package"), "package", name)
		}
		pins = append(pins, pin)
	}
	SortRequirements(pins)
	return pins, nil
}
