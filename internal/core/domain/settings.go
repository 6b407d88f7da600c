package domain

import (
	"path/filepath"
	"strings"
)

// Toolchain describes how cmake is invoked for the configure step.
type Toolchain struct {
	// Program is the cmake executable.
	Program string
	// Generator is passed via -G. Empty means cmake picks its default.
	Generator string
	// Architecture is passed via -A. Empty omits the flag.
	Architecture string
	// Environment holds extra variables for every cmake invocation.
	Environment map[string]string
}

// Settings holds the project-level knobs that stay fixed across invocations.
type Settings struct {
	// BuildDir is the build output directory, relative to the working directory.
	BuildDir string
	// ExecutableName is the artifact base name without platform suffix.
	ExecutableName string
	// Toolchain configures the cmake invocations.
	Toolchain Toolchain
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() Settings {
	return Settings{
		BuildDir:       DefaultBuildDirName,
		ExecutableName: DefaultExecutableName,
		Toolchain: Toolchain{
			Program:      DefaultCMakeProgram,
			Generator:    DefaultGenerator,
			Architecture: DefaultArchitecture,
		},
	}
}

// ArtifactPath returns the expected executable location for cfg,
// relative to the working directory: <build-dir>/<configuration>/<name><suffix>.
func (s Settings) ArtifactPath(cfg Configuration, goos string) string {
	return filepath.Join(s.BuildDir, cfg.String(), s.ExecutableName+ExecutableSuffix(goos))
}

// ExecutableSuffix returns the executable file extension for goos.
func ExecutableSuffix(goos string) string {
	if goos == "windows" {
		return ".exe"
	}
	return ""
}

// ValidateBuildDir reports whether dir is safe to create and delete.
// The directory must be relative, non-empty and must not resolve to or
// above the working directory.
func ValidateBuildDir(dir string) error {
	if strings.TrimSpace(dir) == "" || filepath.IsAbs(dir) || filepath.VolumeName(dir) != "" {
		return ErrInvalidBuildDir
	}
	if strings.HasPrefix(dir, "/") || strings.HasPrefix(dir, string(filepath.Separator)) {
		return ErrInvalidBuildDir
	}
	clean := filepath.Clean(dir)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return ErrInvalidBuildDir
	}
	return nil
}
