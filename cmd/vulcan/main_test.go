package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, dir string)
		args         func(dir string) []string
		expectedExit int
	}{
		{
			name:         "version",
			args:         func(string) []string { return []string{"version"} },
			expectedExit: 0,
		},
		{
			name:         "unknown command",
			args:         func(string) []string { return []string{"bogus"} },
			expectedExit: 1,
		},
		{
			name:         "no project descriptor",
			args:         func(dir string) []string { return []string{"lock", "-C", dir} },
			expectedExit: 1,
		},
		{
			name: "locking disabled",
			setup: func(t *testing.T, dir string) {
				t.Helper()
				require.NoError(t, os.WriteFile(filepath.Join(dir, "pyproject.toml"),
					[]byte("[tool.vulcan]\nno-lock = true\n"), 0o600))
			},
			args:         func(dir string) []string { return []string{"lock", "-C", dir} },
			expectedExit: 1,
		},
		{
			name: "check without a lock",
			setup: func(t *testing.T, dir string) {
				t.Helper()
				require.NoError(t, os.WriteFile(filepath.Join(dir, "vulcan.yaml"),
					[]byte("python-lock-with: \"3.11\"\ndependencies:\n  flask: \">=3\"\n"), 0o600))
			},
			args:         func(dir string) []string { return []string{"check", "-C", dir} },
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.setup != nil {
				tt.setup(t, dir)
			}

			assert.Equal(t, tt.expectedExit, run(tt.args(dir)))
		})
	}
}
