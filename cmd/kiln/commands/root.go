// Package commands implements the CLI commands for kiln.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/build"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// Log formats accepted by --log-format.
const (
	LogFormatPretty = "pretty"
	LogFormatJSON   = "json"
)

// CLI represents the command line interface for kiln.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	logFormatHook func(format string)

	configuration configurationValue
	clean         bool
	run           bool
	threads       int
	configPath    string
	logFormat     string
	summary       bool
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{
		app:           a,
		configuration: configurationValue(domain.DefaultConfiguration),
	}

	rootCmd := &cobra.Command{
		Use:           "kiln",
		Short:         "Configure, build and run a CMake project",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          noArgs,
		PreRunE:       c.preRun,
		RunE:          c.runBuild,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.Flags()
	flags.Var(&c.configuration, "configuration", "Build configuration (Debug or Release)")
	flags.BoolVar(&c.clean, "clean", false, "Delete the build directory before building")
	flags.BoolVar(&c.run, "run", false, "Run the executable after building")
	flags.IntVar(&c.threads, "threads", runtime.NumCPU(), "Number of parallel build jobs")
	flags.StringVarP(&c.configPath, "config", "c", "", "Path to the config file (default kiln.yaml)")
	flags.StringVar(&c.logFormat, "log-format", LogFormatPretty, "Log output format (pretty or json)")
	flags.BoolVar(&c.summary, "summary", true, "Print a per-phase summary when the build ends")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
		return errors.Join(domain.ErrInvalidUsage, err)
	})

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// SetLogFormatHook registers fn to receive the validated --log-format value
// before the build starts.
func (c *CLI) SetLogFormatHook(fn func(format string)) {
	c.logFormatHook = fn
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) preRun(cmd *cobra.Command, _ []string) error {
	switch c.logFormat {
	case LogFormatPretty, LogFormatJSON:
	default:
		return c.usageError(cmd, zerr.With(domain.ErrInvalidLogFormat, "log_format", c.logFormat))
	}
	if c.logFormatHook != nil {
		c.logFormatHook(c.logFormat)
	}

	if c.threads < 1 {
		return c.usageError(cmd, zerr.With(domain.ErrInvalidThreads, "threads", c.threads))
	}
	return nil
}

func (c *CLI) runBuild(cmd *cobra.Command, _ []string) error {
	return c.app.Run(cmd.Context(), app.RunOptions{
		Configuration: domain.Configuration(c.configuration),
		Clean:         c.clean,
		Run:           c.run,
		Threads:       c.threads,
		ConfigPath:    c.configPath,
		Summary:       c.summary,
	})
}

// usageError prints the usage text and marks err as a usage error.
func (c *CLI) usageError(cmd *cobra.Command, err error) error {
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
	return errors.Join(domain.ErrInvalidUsage, err)
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
	return errors.Join(domain.ErrInvalidUsage, zerr.With(domain.ErrUnexpectedArgs, "args", strings.Join(args, " ")))
}
