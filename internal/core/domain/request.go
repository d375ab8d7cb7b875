package domain

import (
	"maps"
	"slices"
)

// ResolutionRequest is the input of a lock operation: the base requirements, the
// named extra groups layered on top of them, and an optional target runtime version.
type ResolutionRequest struct {
	// Base holds the top-level requirements every install includes.
	Base []Requirement

	// Extras maps an extra name to the requirements it adds on top of Base.
	Extras map[string][]Requirement

	// RuntimeVersion selects the runtime to resolve for (e.g. "3.11").
	// Empty means the host runtime.
	RuntimeVersion string
}

// IsEmpty reports whether the request has neither base requirements nor extra groups.
// An extra group with no requirements still makes the request non-empty.
func (r ResolutionRequest) IsEmpty() bool {
	return len(r.Base) == 0 && len(r.Extras) == 0
}

// ExtraNames returns the extra group names in sorted order.
func (r ResolutionRequest) ExtraNames() []string {
	return slices.Sorted(maps.Keys(r.Extras))
}

// WithExtra returns the base requirements followed by the requirements of the named extra.
func (r ResolutionRequest) WithExtra(name string) []Requirement {
	reqs := make([]Requirement, 0, len(r.Base)+len(r.Extras[name]))
	reqs = append(reqs, r.Base...)
	return append(reqs, r.Extras[name]...)
}

// Combined returns the base requirements followed by the requirements of every extra,
// extras visited in name order.
func (r ResolutionRequest) Combined() []Requirement {
	reqs := slices.Clone(r.Base)
	for _, name := range r.ExtraNames() {
		reqs = append(reqs, r.Extras[name]...)
	}
	return reqs
}
