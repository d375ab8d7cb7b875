package domain

// Project is the lock-relevant part of a project descriptor, already flattened
// into requirement strings.
type Project struct {
	// Root is the directory holding the descriptor.
	Root string

	// Lockfile is the absolute path of the lockfile.
	Lockfile string

	// Dependencies are the base requirements, sorted by package name.
	Dependencies []Requirement

	// Extras maps an extra name to its requirements.
	Extras map[string][]Requirement

	// PythonLockWith is the configured runtime version to lock with, if any.
	PythonLockWith string

	// NoLock disables lockfile generation.
	NoLock bool

	// Plugins names the build plugins configured for the project. They take no
	// part in locking.
	Plugins []string
}

// Request builds the resolution request for this project.
func (p Project) Request(runtimeVersion string) ResolutionRequest {
	return ResolutionRequest{
		Base:           p.Dependencies,
		Extras:         p.Extras,
		RuntimeVersion: runtimeVersion,
	}
}
