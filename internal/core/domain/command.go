package domain

import (
	"strconv"
	"strings"
)

// Command describes a subprocess invocation.
type Command struct {
	Path string
	Args []string
	Dir  string
	Env  []string
}

// String renders the command line with shell-style quoting, for diagnostics.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	for _, p := range append([]string{c.Path}, c.Args...) {
		if p == "" || strings.ContainsAny(p, " \t\n\"'\\$") {
			p = strconv.Quote(p)
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, " ")
}

// CommandResult holds the captured streams of a finished subprocess.
type CommandResult struct {
	Stdout []byte
	Stderr []byte

	// Combined interleaves stdout and stderr in the order they were written.
	Combined []byte

	ExitCode int
}
