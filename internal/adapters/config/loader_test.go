package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/config"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeKilnfile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	return config.NewLoader(mockLogger), mockLogger
}

func TestLoader_Load_DefaultsWhenAbsent(t *testing.T) {
	loader, _ := newLoader(t)

	settings, err := loader.Load(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestLoader_Load_ExplicitMissing(t *testing.T) {
	loader, _ := newLoader(t)
	tmpDir := t.TempDir()

	_, err := loader.Load(tmpDir, "custom.yaml")
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Contains(t, err.Error(), domain.ErrConfigNotFound.Error())
	assert.Equal(t, filepath.Join(tmpDir, "custom.yaml"), zErr.Metadata()["path"])
}

func TestLoader_Load_FullFile(t *testing.T) {
	loader, _ := newLoader(t)
	tmpDir := t.TempDir()
	writeKilnfile(t, tmpDir, domain.ConfigFileName, `
version: "1"
build_dir: out/cmake
generator: Ninja Multi-Config
architecture: ""
executable: game
cmake: /opt/cmake/bin/cmake
environment:
  CMAKE_EXPORT_COMPILE_COMMANDS: "1"
`)

	settings, err := loader.Load(tmpDir, "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("out", "cmake"), settings.BuildDir)
	assert.Equal(t, "game", settings.ExecutableName)
	assert.Equal(t, "/opt/cmake/bin/cmake", settings.Toolchain.Program)
	assert.Equal(t, "Ninja Multi-Config", settings.Toolchain.Generator)
	assert.Empty(t, settings.Toolchain.Architecture)
	assert.Equal(t, map[string]string{"CMAKE_EXPORT_COMPILE_COMMANDS": "1"}, settings.Toolchain.Environment)
}

func TestLoader_Load_PartialFileKeepsDefaults(t *testing.T) {
	loader, _ := newLoader(t)
	tmpDir := t.TempDir()
	writeKilnfile(t, tmpDir, domain.ConfigFileName, "executable: editor\n")

	settings, err := loader.Load(tmpDir, "")
	require.NoError(t, err)

	want := domain.DefaultSettings()
	want.ExecutableName = "editor"
	assert.Equal(t, want, settings)
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	loader, _ := newLoader(t)
	tmpDir := t.TempDir()
	writeKilnfile(t, tmpDir, domain.ConfigFileName, "")

	settings, err := loader.Load(tmpDir, "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestLoader_Load_ExplicitRelativeAndAbsolute(t *testing.T) {
	loader, _ := newLoader(t)
	tmpDir := t.TempDir()
	path := writeKilnfile(t, tmpDir, "ci.yaml", "build_dir: ci-build\n")

	settings, err := loader.Load(tmpDir, "ci.yaml")
	require.NoError(t, err)
	assert.Equal(t, "ci-build", settings.BuildDir)

	settings, err = loader.Load(t.TempDir(), path)
	require.NoError(t, err)
	assert.Equal(t, "ci-build", settings.BuildDir)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "unknown key",
			content: "bulid_dir: build\n",
			wantMsg: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:    "malformed yaml",
			content: "build_dir: [unterminated\n",
			wantMsg: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:    "unsupported version",
			content: "version: \"2\"\n",
			wantMsg: domain.ErrUnsupportedConfigVersion.Error(),
		},
		{
			name:    "absolute build dir",
			content: "build_dir: /tmp/build\n",
			wantMsg: domain.ErrInvalidBuildDir.Error(),
		},
		{
			name:    "escaping build dir",
			content: "build_dir: ../elsewhere\n",
			wantMsg: domain.ErrInvalidBuildDir.Error(),
		},
		{
			name:    "empty build dir",
			content: "build_dir: \"\"\n",
			wantMsg: domain.ErrInvalidBuildDir.Error(),
		},
		{
			name:    "current dir as build dir",
			content: "build_dir: .\n",
			wantMsg: domain.ErrInvalidBuildDir.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t)
			tmpDir := t.TempDir()
			writeKilnfile(t, tmpDir, domain.ConfigFileName, tt.content)

			_, err := loader.Load(tmpDir, "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoader_Load_ReadFailure(t *testing.T) {
	loader, _ := newLoader(t)
	tmpDir := t.TempDir()
	// A directory in place of the file cannot be read.
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, domain.ConfigFileName), 0o750))

	_, err := loader.Load(tmpDir, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigReadFailed.Error())
}

func TestLoader_Load_WarnsOnPathOverride(t *testing.T) {
	loader, mockLogger := newLoader(t)
	tmpDir := t.TempDir()
	writeKilnfile(t, tmpDir, domain.ConfigFileName, "environment:\n  PATH: /opt/bin\n")

	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	settings, err := loader.Load(tmpDir, "")
	require.NoError(t, err)
	assert.Equal(t, "/opt/bin", settings.Toolchain.Environment["PATH"])
}
