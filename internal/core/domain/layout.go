package domain

const (
	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "kiln.yaml"

	// ConfigVersion is the only supported config file schema version.
	ConfigVersion = "1"

	// DefaultBuildDirName is the name of the build output directory.
	DefaultBuildDirName = "build"

	// DefaultGenerator is the cmake generator used for the configure step.
	DefaultGenerator = "Visual Studio 17 2022"

	// DefaultArchitecture is the generator platform passed via -A.
	DefaultArchitecture = "x64"

	// DefaultExecutableName is the base name of the produced artifact.
	DefaultExecutableName = "engine"

	// DefaultCMakeProgram is the cmake binary looked up on PATH.
	DefaultCMakeProgram = "cmake"

	// SourceDirFromBuildDir is the project root as seen from inside the build directory.
	SourceDirFromBuildDir = ".."

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750
)
