package cmake_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/cmake"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestCMake_Configure_DefaultToolchain(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	tool := cmake.New(executor)

	var stdout, stderr bytes.Buffer
	want := domain.Invocation{
		Name: "cmake",
		Args: []string{"..", "-G", "Visual Studio 17 2022", "-A", "x64"},
	}
	executor.EXPECT().Execute(gomock.Any(), want, &stdout, &stderr).Return(nil)

	req := domain.ConfigureRequest{
		SourceDir: "..",
		Toolchain: domain.DefaultSettings().Toolchain,
	}
	require.NoError(t, tool.Configure(context.Background(), req, &stdout, &stderr))
}

func TestCMake_Configure_OmitsEmptyGeneratorAndArchitecture(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	tool := cmake.New(executor)

	env := map[string]string{"CMAKE_EXPORT_COMPILE_COMMANDS": "1"}
	want := domain.Invocation{
		Name:        "/opt/cmake/bin/cmake",
		Args:        []string{".."},
		Environment: env,
	}
	executor.EXPECT().Execute(gomock.Any(), want, gomock.Any(), gomock.Any()).Return(nil)

	req := domain.ConfigureRequest{
		Toolchain: domain.Toolchain{Program: "/opt/cmake/bin/cmake", Environment: env},
	}
	require.NoError(t, tool.Configure(context.Background(), req, io.Discard, io.Discard))
}

func TestCMake_Configure_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	tool := cmake.New(executor)

	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("exit status 1"))

	err := tool.Configure(context.Background(), domain.ConfigureRequest{}, io.Discard, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cmake configure failed")
}

func TestCMake_Compile(t *testing.T) {
	tests := []struct {
		name string
		req  domain.CompileRequest
		args []string
	}{
		{
			name: "release",
			req:  domain.CompileRequest{BuildDir: ".", Configuration: domain.ConfigurationRelease, Threads: 8},
			args: []string{"--build", ".", "--config", "Release", "--parallel", "8"},
		},
		{
			name: "debug single thread",
			req:  domain.CompileRequest{BuildDir: ".", Configuration: domain.ConfigurationDebug, Threads: 1},
			args: []string{"--build", ".", "--config", "Debug", "--parallel", "1"},
		},
		{
			name: "empty build dir means current",
			req:  domain.CompileRequest{Configuration: domain.ConfigurationRelease, Threads: 4},
			args: []string{"--build", ".", "--config", "Release", "--parallel", "4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			executor := mocks.NewMockExecutor(ctrl)
			tool := cmake.New(executor)

			executor.EXPECT().
				Execute(gomock.Any(), domain.Invocation{Name: "cmake", Args: tt.args}, gomock.Any(), gomock.Any()).
				Return(nil)

			require.NoError(t, tool.Compile(context.Background(), tt.req, io.Discard, io.Discard))
		})
	}
}

func TestCMake_Compile_InvalidThreads(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	tool := cmake.New(executor)

	req := domain.CompileRequest{Configuration: domain.ConfigurationRelease, Threads: 0}
	err := tool.Compile(context.Background(), req, io.Discard, io.Discard)

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidThreads.Error())
}

func TestCMake_Compile_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	tool := cmake.New(executor)

	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("exit status 2"))

	req := domain.CompileRequest{Configuration: domain.ConfigurationRelease, Threads: 2}
	err := tool.Compile(context.Background(), req, io.Discard, io.Discard)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cmake build failed")
}
