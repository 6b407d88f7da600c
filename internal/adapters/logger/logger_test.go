package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		goldenName string
	}{
		{name: "simple message", msg: "Running CMake configuration...", goldenName: "info_basic"},
		{name: "empty message", msg: "", goldenName: "info_empty"},
		{name: "multiline message", msg: "line1\nline2", goldenName: "info_multiline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Info(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("Executable not found: build/Release/engine")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "standard error",
			err:        errors.New("permission denied"),
			goldenName: "error_standard",
		},
		{
			name:       "zerr with cause",
			err:        zerr.Wrap(errors.New("exit status 1"), "command failed"),
			goldenName: "error_wrapped",
		},
		{
			name: "joined category with metadata",
			err: errors.Join(
				zerr.New("build failed"),
				zerr.With(zerr.Wrap(errors.New("exit status 2"), "command failed"), "exit_code", 2),
			),
			goldenName: "error_joined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("Building the project...")
	lg.Error(fmt.Errorf("boom"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var info map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &info))
	assert.Equal(t, "INFO", info["level"])
	assert.Equal(t, "Building the project...", info["msg"])

	var errRecord map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &errRecord))
	assert.Equal(t, "ERROR", errRecord["level"])
	assert.Equal(t, "boom", errRecord["error"])
}

func TestLogger_SetJSON_PreservesOutput(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.SetJSON(false)

	lg.Info("back to pretty")

	assert.Equal(t, "back to pretty\n", buf.String())
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	lg := logger.New().(*logger.Logger)

	assert.NotPanics(t, func() { lg.SetOutput(nil) })
}
