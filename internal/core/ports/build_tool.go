package ports

import (
	"context"
	"io"

	"go.trai.ch/kiln/internal/core/domain"
)

// BuildTool defines the external build-system generator driven by the orchestrator.
//
//go:generate mockgen -source=build_tool.go -destination=mocks/mock_build_tool.go -package=mocks
type BuildTool interface {
	// Configure generates native build files in the current directory.
	Configure(ctx context.Context, req domain.ConfigureRequest, stdout, stderr io.Writer) error

	// Compile builds the configured project.
	Compile(ctx context.Context, req domain.CompileRequest, stdout, stderr io.Writer) error
}
