package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidUsage marks errors caused by bad command-line input.
	ErrInvalidUsage = zerr.New("invalid usage")

	// ErrInvalidConfiguration is returned when an unsupported build configuration is requested.
	ErrInvalidConfiguration = zerr.New("invalid configuration, expected 'Debug' or 'Release'")

	// ErrInvalidThreads is returned when the requested thread count is below one.
	ErrInvalidThreads = zerr.New("thread count must be at least 1")

	// ErrUnexpectedArgs is returned when positional arguments are passed.
	ErrUnexpectedArgs = zerr.New("unexpected arguments")

	// ErrConfigureFailed is returned when the cmake configuration step fails.
	ErrConfigureFailed = zerr.New("CMake configuration failed")

	// ErrCompileFailed is returned when the cmake build step fails.
	ErrCompileFailed = zerr.New("build failed")

	// ErrCommandFailed is returned when an external command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrWorkspaceFailed is returned when the build directory cannot be prepared or entered.
	ErrWorkspaceFailed = zerr.New("failed to prepare build directory")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned when the config file declares an unknown version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version, expected \"1\"")

	// ErrInvalidBuildDir is returned when the configured build directory is unsafe to manage.
	ErrInvalidBuildDir = zerr.New("build directory must be a relative path inside the working directory")

	// ErrInvalidLogFormat is returned when an unknown log format is requested.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'pretty' or 'json'")
)
