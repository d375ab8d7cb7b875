package domain

import "go.trai.ch/zerr"

var (
	// ErrEnvironmentUnavailable is returned when the requested target runtime cannot be located.
	ErrEnvironmentUnavailable = zerr.New("environment unavailable")

	// ErrInvalidRuntimeVersion is returned when a runtime version selector cannot be parsed.
	ErrInvalidRuntimeVersion = zerr.New("invalid runtime version")

	// ErrEnvironmentCreateFailed is returned when the isolated environment cannot be built.
	ErrEnvironmentCreateFailed = zerr.New("failed to create isolated environment")

	// ErrInstallConflict is returned when the package installer rejects a requirement set.
	ErrInstallConflict = zerr.New("install conflict")

	// ErrFreezeFailed is returned when the installed packages of a target directory cannot be listed.
	ErrFreezeFailed = zerr.New("failed to freeze installed packages")

	// ErrMalformedRequirement is returned when a requirement string cannot be parsed.
	ErrMalformedRequirement = zerr.New("malformed requirement")

	// ErrDuplicatePackage is returned when a freeze lists the same package twice.
	ErrDuplicatePackage = zerr.New("duplicate package in freeze output")

	// ErrMissingPin is returned when a package resolved for one install set is absent
	// from the combined install that provides the authoritative versions.
	ErrMissingPin = zerr.New("package missing from combined resolution")

	// ErrCommandFailed is returned when a subprocess exits with a non-zero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrProjectNotFound is returned when no project descriptor exists in the working directory.
	ErrProjectNotFound = zerr.New("no vulcan.yaml or pyproject.toml found")

	// ErrInvalidProject is returned when the project descriptor is structurally invalid.
	ErrInvalidProject = zerr.New("invalid project configuration")

	// ErrLockDisabled is returned when locking is requested for a project configured with no-lock.
	ErrLockDisabled = zerr.New("locking is disabled for this project")

	// ErrNoVirtualenv is returned when an operation needs an active virtualenv and none is active.
	ErrNoVirtualenv = zerr.New("no virtualenv active")

	// ErrLockfileRead is returned when the lockfile cannot be read.
	ErrLockfileRead = zerr.New("failed to read lockfile")

	// ErrLockfileDecode is returned when the lockfile content is not a valid lock document.
	ErrLockfileDecode = zerr.New("failed to decode lockfile")

	// ErrLockfileWrite is returned when the lockfile cannot be written.
	ErrLockfileWrite = zerr.New("failed to write lockfile")

	// ErrLockfileStale is returned by the check operation when the lockfile does not match the project.
	ErrLockfileStale = zerr.New("lockfile is out of date")

	// ErrStateRead is returned when the lock state cannot be read.
	ErrStateRead = zerr.New("failed to read lock state")

	// ErrStateWrite is returned when the lock state cannot be written.
	ErrStateWrite = zerr.New("failed to write lock state")
)
