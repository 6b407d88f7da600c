// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/kiln/internal/core/domain"
)

// Executor defines the interface for running external processes.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the invocation and blocks until the process exits.
	//
	// The process output is streamed to stdout and stderr as it is produced.
	// It returns an error carrying the exit code if the process fails.
	Execute(ctx context.Context, inv domain.Invocation, stdout, stderr io.Writer) error
}
