package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Configuration is the build variant passed to cmake via --config.
type Configuration string

const (
	// ConfigurationDebug builds unoptimized binaries with debug information.
	ConfigurationDebug Configuration = "Debug"
	// ConfigurationRelease builds optimized binaries.
	ConfigurationRelease Configuration = "Release"

	// DefaultConfiguration is used when no configuration is requested.
	DefaultConfiguration = ConfigurationRelease
)

// Configurations lists every supported configuration in help-text order.
func Configurations() []Configuration {
	return []Configuration{ConfigurationDebug, ConfigurationRelease}
}

// ParseConfiguration returns the configuration named by s.
// Matching is exact, as cmake treats configuration names case-sensitively.
func ParseConfiguration(s string) (Configuration, error) {
	for _, c := range Configurations() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", zerr.With(ErrInvalidConfiguration, "choices", configurationChoices())
}

// String returns the cmake name of the configuration.
func (c Configuration) String() string {
	return string(c)
}

// IsValid reports whether c is one of the supported configurations.
func (c Configuration) IsValid() bool {
	_, err := ParseConfiguration(string(c))
	return err == nil
}

func configurationChoices() string {
	names := make([]string, 0, len(Configurations()))
	for _, c := range Configurations() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
