// Package cmake drives the cmake command-line tool through a ports.Executor.
package cmake

import (
	"context"
	"io"
	"strconv"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// CMake implements ports.BuildTool.
type CMake struct {
	executor ports.Executor
}

// New creates a CMake build tool that runs its commands through executor.
func New(executor ports.Executor) *CMake {
	return &CMake{executor: executor}
}

// Configure runs `cmake <source> [-G <generator>] [-A <architecture>]` in the current directory.
func (c *CMake) Configure(ctx context.Context, req domain.ConfigureRequest, stdout, stderr io.Writer) error {
	if err := c.executor.Execute(ctx, configureInvocation(req), stdout, stderr); err != nil {
		return zerr.Wrap(err, "cmake configure failed")
	}
	return nil
}

// Compile runs `cmake --build <dir> --config <configuration> --parallel <threads>`.
func (c *CMake) Compile(ctx context.Context, req domain.CompileRequest, stdout, stderr io.Writer) error {
	if req.Threads < 1 {
		return zerr.With(domain.ErrInvalidThreads, "threads", req.Threads)
	}
	if err := c.executor.Execute(ctx, compileInvocation(req), stdout, stderr); err != nil {
		return zerr.Wrap(err, "cmake build failed")
	}
	return nil
}

func configureInvocation(req domain.ConfigureRequest) domain.Invocation {
	source := req.SourceDir
	if source == "" {
		source = domain.SourceDirFromBuildDir
	}

	args := []string{source}
	if req.Toolchain.Generator != "" {
		args = append(args, "-G", req.Toolchain.Generator)
	}
	if req.Toolchain.Architecture != "" {
		args = append(args, "-A", req.Toolchain.Architecture)
	}

	return domain.Invocation{
		Name:        program(req.Toolchain),
		Args:        args,
		Environment: req.Toolchain.Environment,
	}
}

func compileInvocation(req domain.CompileRequest) domain.Invocation {
	dir := req.BuildDir
	if dir == "" {
		dir = "."
	}

	return domain.Invocation{
		Name: program(req.Toolchain),
		Args: []string{
			"--build", dir,
			"--config", req.Configuration.String(),
			"--parallel", strconv.Itoa(req.Threads),
		},
		Environment: req.Toolchain.Environment,
	}
}

func program(tc domain.Toolchain) string {
	if tc.Program == "" {
		return domain.DefaultCMakeProgram
	}
	return tc.Program
}
