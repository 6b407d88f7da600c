package commands

import (
	"strings"

	"github.com/spf13/pflag"
	"go.trai.ch/kiln/internal/core/domain"
)

// configurationValue implements pflag.Value for --configuration.
type configurationValue domain.Configuration

var _ pflag.Value = (*configurationValue)(nil)

func (v *configurationValue) String() string {
	return string(*v)
}

func (v *configurationValue) Set(s string) error {
	cfg, err := domain.ParseConfiguration(s)
	if err != nil {
		return err
	}
	*v = configurationValue(cfg)
	return nil
}

func (v *configurationValue) Type() string {
	names := make([]string, 0, 2)
	for _, cfg := range domain.Configurations() {
		names = append(names, cfg.String())
	}
	return strings.Join(names, "|")
}
