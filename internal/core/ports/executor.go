// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/vulcan/internal/core/domain"
)

// Executor runs subprocesses.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd to completion and returns its captured output.
	//
	// If stream is non-nil, stdout and stderr are copied to it as they are produced.
	// A non-zero exit status is reported as domain.ErrCommandFailed; the returned
	// result still carries everything the process wrote.
	Execute(ctx context.Context, cmd domain.Command, stream io.Writer) (domain.CommandResult, error)
}
