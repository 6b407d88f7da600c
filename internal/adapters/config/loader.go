// Package config provides the configuration loader for kiln.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the settings for the project rooted at cwd.
//
// With an empty path the default kiln.yaml in cwd is used when it exists,
// otherwise the built-in defaults are returned.
func (l *Loader) Load(cwd, path string) (domain.Settings, error) {
	explicit := path != ""
	if !explicit {
		path = domain.ConfigFileName
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	var kilnfile Kilnfile
	found, err := readAndUnmarshalYAML(path, &kilnfile)
	if err != nil {
		return domain.Settings{}, err
	}
	if !found {
		if explicit {
			return domain.Settings{}, zerr.With(domain.ErrConfigNotFound, "path", path)
		}
		return domain.DefaultSettings(), nil
	}

	settings, err := l.apply(domain.DefaultSettings(), &kilnfile)
	if err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}
	return settings, nil
}

// apply overlays the keys present in kilnfile onto base.
func (l *Loader) apply(base domain.Settings, kilnfile *Kilnfile) (domain.Settings, error) {
	if kilnfile.Version != "" && kilnfile.Version != domain.ConfigVersion {
		return domain.Settings{}, zerr.With(domain.ErrUnsupportedConfigVersion, "version", kilnfile.Version)
	}

	if kilnfile.BuildDir != nil {
		dir := *kilnfile.BuildDir
		if err := domain.ValidateBuildDir(dir); err != nil {
			return domain.Settings{}, zerr.With(err, "build_dir", dir)
		}
		base.BuildDir = filepath.Clean(dir)
	}

	if kilnfile.Generator != nil {
		base.Toolchain.Generator = *kilnfile.Generator
	}
	if kilnfile.Architecture != nil {
		base.Toolchain.Architecture = *kilnfile.Architecture
	}
	if kilnfile.Executable != "" {
		base.ExecutableName = kilnfile.Executable
	}
	if kilnfile.CMake != "" {
		base.Toolchain.Program = kilnfile.CMake
	}

	if len(kilnfile.Environment) > 0 {
		if _, ok := kilnfile.Environment["PATH"]; ok {
			l.Logger.Warn(fmt.Sprintf("'environment' in %s replaces PATH for cmake", domain.ConfigFileName))
		}
		env := make(map[string]string, len(kilnfile.Environment))
		for k, v := range kilnfile.Environment {
			env[k] = v
		}
		base.Toolchain.Environment = env
	}

	return base, nil
}

// readAndUnmarshalYAML decodes the file at configPath into target.
// It reports false without error when the file does not exist.
func readAndUnmarshalYAML[T any](configPath string, target *T) (bool, error) {
	// #nosec G304 -- configPath is chosen by the user
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(configFile))
	decoder.KnownFields(true)
	if parseErr := decoder.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return false, zerr.With(zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	return true, nil
}
