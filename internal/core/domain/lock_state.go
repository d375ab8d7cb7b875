package domain

import "time"

// LockState records the inputs of the last successful lock of a project.
type LockState struct {
	Lockfile     string    `json:"lockfile,omitzero"`
	Fingerprint  string    `json:"fingerprint,omitzero"`
	LockfileHash string    `json:"lockfile_hash,omitzero"`
	Timestamp    time.Time `json:"timestamp,omitzero"`
}
