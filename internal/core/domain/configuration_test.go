package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParseConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Configuration
		wantErr bool
	}{
		{name: "debug", input: "Debug", want: domain.ConfigurationDebug},
		{name: "release", input: "Release", want: domain.ConfigurationRelease},
		{name: "lowercase is rejected", input: "release", wantErr: true},
		{name: "unknown", input: "RelWithDebInfo", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseConfiguration(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				zErr, ok := err.(*zerr.Error)
				require.True(t, ok, "expected *zerr.Error, got %T", err)
				assert.Equal(t, "Debug, Release", zErr.Metadata()["choices"])
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfiguration_Defaults(t *testing.T) {
	assert.Equal(t, domain.ConfigurationRelease, domain.DefaultConfiguration)
	assert.True(t, domain.DefaultConfiguration.IsValid())
	assert.False(t, domain.Configuration("Profile").IsValid())
	assert.Equal(t, []domain.Configuration{domain.ConfigurationDebug, domain.ConfigurationRelease}, domain.Configurations())
}
