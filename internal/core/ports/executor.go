// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/npmbridge/internal/core/domain"
)

// Executor defines the interface for running subprocesses.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command in cmd.WorkingDir and blocks until it exits.
	//
	// Output is streamed to stdout and stderr as it is produced.
	// It returns an error carrying the exit code when the command exits non-zero.
	Execute(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error
}
