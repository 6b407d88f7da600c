package domain

import "io"

// Invocation describes a single external process run.
type Invocation struct {
	// Name is the program to run, looked up on PATH unless it contains a separator.
	Name string
	// Args are the program arguments.
	Args []string
	// Dir is the working directory. Empty means the current process directory.
	Dir string
	// Environment overrides variables inherited from the current process.
	Environment map[string]string
	// Stdin is attached to the process when non-nil.
	Stdin io.Reader
}

// ConfigureRequest holds the inputs of the cmake configure step.
type ConfigureRequest struct {
	// SourceDir is the project root, relative to the build directory.
	SourceDir string
	Toolchain Toolchain
}

// CompileRequest holds the inputs of the cmake build step.
type CompileRequest struct {
	// BuildDir is the directory passed to --build.
	BuildDir      string
	Configuration Configuration
	Threads       int
	Toolchain     Toolchain
}
