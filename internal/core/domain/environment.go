package domain

import "path/filepath"

// Environment is a handle to a disposable runtime with its own package installer.
// It is passed by value; concurrent installs only read it.
type Environment struct {
	// Root is the directory owned by the environment. Removing it removes all of its state.
	Root string

	// Python is the interpreter inside the environment used to drive the installer.
	Python string

	// RuntimeVersion is the runtime version the environment was created for.
	// Empty means the host runtime.
	RuntimeVersion string
}

// ScratchDir is the directory under which per-install target directories are created.
func (e Environment) ScratchDir() string {
	return filepath.Join(e.Root, "scratch")
}
