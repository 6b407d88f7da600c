// Package app implements the application layer for kiln.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the build orchestrator.
type App struct {
	configLoader ports.ConfigLoader
	workspace    ports.Workspace
	buildTool    ports.BuildTool
	executor     ports.Executor
	logger       ports.Logger
	tracer       ports.Tracer
	renderer     ports.Renderer

	clock  clockwork.Clock
	goos   string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	workspace ports.Workspace,
	buildTool ports.BuildTool,
	executor ports.Executor,
	log ports.Logger,
	tracer ports.Tracer,
	renderer ports.Renderer,
) *App {
	return &App{
		configLoader: loader,
		workspace:    workspace,
		buildTool:    buildTool,
		executor:     executor,
		logger:       log,
		tracer:       tracer,
		renderer:     renderer,
		clock:        clockwork.NewRealClock(),
		goos:         runtime.GOOS,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithClock replaces the clock used to time the compile step.
func (a *App) WithClock(clock clockwork.Clock) *App {
	a.clock = clock
	return a
}

// WithGOOS overrides the target platform used to resolve the executable suffix.
func (a *App) WithGOOS(goos string) *App {
	a.goos = goos
	return a
}

// WithIO replaces the streams handed to cmake and the launched executable.
func (a *App) WithIO(stdin io.Reader, stdout, stderr io.Writer) *App {
	a.stdin = stdin
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Configuration is the cmake build configuration.
	Configuration domain.Configuration
	// Clean removes the build directory before configuring.
	Clean bool
	// Run launches the built executable after a successful build.
	Run bool
	// Threads is passed to cmake as --parallel.
	Threads int
	// ConfigPath selects a config file. Empty uses kiln.yaml when present.
	ConfigPath string
	// Summary prints the per-phase summary when the run ends.
	Summary bool
}

// Run executes the build: clean, prepare, configure, compile and optionally run.
//
//nolint:cyclop // orchestration function
func (a *App) Run(ctx context.Context, opts RunOptions) (err error) {
	if !opts.Configuration.IsValid() {
		return errors.Join(domain.ErrInvalidUsage,
			zerr.With(domain.ErrInvalidConfiguration, "configuration", opts.Configuration.String()))
	}
	if opts.Threads < 1 {
		return errors.Join(domain.ErrInvalidUsage, zerr.With(domain.ErrInvalidThreads, "threads", opts.Threads))
	}

	if opts.Summary {
		defer func() {
			_ = a.renderer.Stop()
		}()
	}

	origDir, err := a.workspace.Getwd()
	if err != nil {
		return errors.Join(domain.ErrWorkspaceFailed, err)
	}

	settings, err := a.configLoader.Load(origDir, opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if opts.Clean {
		if err := a.clean(ctx, settings.BuildDir); err != nil {
			return errors.Join(domain.ErrWorkspaceFailed, err)
		}
	}

	if err := a.prepare(ctx, settings.BuildDir); err != nil {
		return errors.Join(domain.ErrWorkspaceFailed, err)
	}

	// Enter the build directory for the cmake steps. The original directory is
	// restored on every return path.
	if err := a.workspace.Chdir(settings.BuildDir); err != nil {
		return errors.Join(domain.ErrWorkspaceFailed, zerr.With(err, "build_dir", settings.BuildDir))
	}
	restored := false
	restore := func() error {
		if restored {
			return nil
		}
		restored = true
		return a.workspace.Chdir(origDir)
	}
	defer func() {
		if rErr := restore(); rErr != nil && err == nil {
			err = errors.Join(domain.ErrWorkspaceFailed, rErr)
		}
	}()

	if err := a.configure(ctx, sourceDir(origDir, settings.BuildDir), settings.Toolchain); err != nil {
		return errors.Join(domain.ErrConfigureFailed, err)
	}

	if err := a.compile(ctx, opts, settings.Toolchain); err != nil {
		return errors.Join(domain.ErrCompileFailed, err)
	}

	if err := restore(); err != nil {
		return errors.Join(domain.ErrWorkspaceFailed, err)
	}

	if opts.Run {
		a.runArtifact(ctx, settings.ArtifactPath(opts.Configuration, a.goos), origDir)
	}

	return nil
}

// phase runs fn inside a span named after p, recording a returned error on the span.
func (a *App) phase(ctx context.Context, p domain.Phase, fn func(context.Context, ports.Span) error) error {
	ctx, span := a.tracer.Start(ctx, p.String())
	defer span.End()

	if err := fn(ctx, span); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (a *App) clean(ctx context.Context, buildDir string) error {
	return a.phase(ctx, domain.PhaseClean, func(_ context.Context, span ports.Span) error {
		span.SetAttribute("build_dir", buildDir)

		exists, err := a.workspace.Exists(buildDir)
		if err != nil {
			return err
		}
		span.SetAttribute("existed", exists)
		if !exists {
			return nil
		}

		a.logger.Info(fmt.Sprintf("Cleaning build directory: %s", buildDir))
		return a.workspace.RemoveAll(buildDir)
	})
}

func (a *App) prepare(ctx context.Context, buildDir string) error {
	return a.phase(ctx, domain.PhasePrepare, func(_ context.Context, span ports.Span) error {
		span.SetAttribute("build_dir", buildDir)

		exists, err := a.workspace.Exists(buildDir)
		if err != nil {
			return err
		}
		span.SetAttribute("created", !exists)
		if exists {
			return nil
		}

		if err := a.workspace.MkdirAll(buildDir); err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("Created build directory: %s", buildDir))
		return nil
	})
}

func (a *App) configure(ctx context.Context, source string, toolchain domain.Toolchain) error {
	return a.phase(ctx, domain.PhaseConfigure, func(ctx context.Context, span ports.Span) error {
		span.SetAttribute("generator", toolchain.Generator)
		span.SetAttribute("architecture", toolchain.Architecture)

		a.logger.Info("Running CMake configuration...")
		req := domain.ConfigureRequest{SourceDir: source, Toolchain: toolchain}
		if err := a.buildTool.Configure(ctx, req, a.stdout, a.stderr); err != nil {
			return err
		}
		a.logger.Info("CMake configuration completed.")
		return nil
	})
}

func (a *App) compile(ctx context.Context, opts RunOptions, toolchain domain.Toolchain) error {
	return a.phase(ctx, domain.PhaseCompile, func(ctx context.Context, span ports.Span) error {
		span.SetAttribute("configuration", opts.Configuration.String())
		span.SetAttribute("threads", opts.Threads)

		start := a.clock.Now()
		a.logger.Info("Building the project...")
		req := domain.CompileRequest{
			BuildDir:      ".",
			Configuration: opts.Configuration,
			Threads:       opts.Threads,
			Toolchain:     toolchain,
		}
		if err := a.buildTool.Compile(ctx, req, a.stdout, a.stderr); err != nil {
			return err
		}

		elapsed := a.clock.Since(start)
		span.SetAttribute("elapsed_seconds", elapsed.Seconds())
		a.logger.Info(fmt.Sprintf("Build completed in %.2f seconds.", elapsed.Seconds()))
		return nil
	})
}

// runArtifact launches the built executable from dir. A missing executable or
// a failing run is reported as a warning and never fails the invocation.
func (a *App) runArtifact(ctx context.Context, artifact, dir string) {
	_ = a.phase(ctx, domain.PhaseRun, func(ctx context.Context, span ports.Span) error {
		span.SetAttribute("artifact", artifact)

		exists, err := a.workspace.Exists(artifact)
		if err != nil {
			a.logger.Warn(fmt.Sprintf("Cannot inspect executable %s: %v", artifact, err))
			return err
		}
		if !exists {
			a.logger.Warn(fmt.Sprintf("Executable not found: %s", artifact))
			return nil
		}

		a.logger.Info("Running the executable...")
		inv := domain.Invocation{
			Name:  filepath.Join(dir, artifact),
			Dir:   dir,
			Stdin: a.stdin,
		}
		if err := a.executor.Execute(ctx, inv, a.stdout, a.stderr); err != nil {
			a.logger.Warn(fmt.Sprintf("Executable exited with an error: %v", err))
			return err
		}
		return nil
	})
}

// sourceDir returns the project root as seen from inside buildDir.
func sourceDir(origDir, buildDir string) string {
	rel, err := filepath.Rel(filepath.Join(origDir, buildDir), origDir)
	if err != nil {
		return domain.SourceDirFromBuildDir
	}
	return rel
}
