package shell

// Exported for testing.
var (
	ResolveEnvironment = resolveEnvironment
	CommandLine        = commandLine
)
