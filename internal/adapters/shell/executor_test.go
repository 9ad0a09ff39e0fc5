package shell_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/npmbridge/internal/adapters/shell"
	"go.trai.ch/npmbridge/internal/core/domain"
	"go.trai.ch/npmbridge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Execute_StreamsToWriters(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	var stdout, stderr bytes.Buffer
	err := executor.Execute(t.Context(), domain.Command{
		Args:       []string{"sh", "-c", "echo out; echo err >&2"},
		WorkingDir: t.TempDir(),
	}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestExecutor_Execute_WorkingDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	dir := t.TempDir()
	var stdout bytes.Buffer
	err := executor.Execute(t.Context(), domain.Command{
		Args:       []string{"sh", "-c", "touch here"},
		WorkingDir: dir,
	}, &stdout, &stdout)

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "here"))
}

func TestExecutor_Execute_EnvironmentOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	var stdout bytes.Buffer
	err := executor.Execute(t.Context(), domain.Command{
		Args:        []string{"sh", "-c", "printf %s \"$NPM_CONFIG_FUND\""},
		WorkingDir:  t.TempDir(),
		Environment: map[string]string{"NPM_CONFIG_FUND": "false"},
	}, &stdout, &stdout)

	require.NoError(t, err)
	assert.Equal(t, "false", stdout.String())
}

func TestExecutor_Execute_LogsWhenNoWriters(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		mockLogger.EXPECT().Info("line1"),
		mockLogger.EXPECT().Info("line2"),
	)
	mockLogger.EXPECT().Warn("problem")

	executor := shell.NewExecutor(mockLogger)
	err := executor.Execute(t.Context(), domain.Command{
		Args:       []string{"sh", "-c", "echo line1; echo line2; echo problem >&2"},
		WorkingDir: t.TempDir(),
	}, nil, nil)

	require.NoError(t, err)
}

func TestExecutor_Execute_FragmentedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("part1part2")
	mockLogger.EXPECT().Info("tail")

	executor := shell.NewExecutor(mockLogger)
	err := executor.Execute(t.Context(), domain.Command{
		Args:       []string{"sh", "-c", "printf part1; sleep 0.1; echo part2; printf tail"},
		WorkingDir: t.TempDir(),
	}, nil, &bytes.Buffer{})

	require.NoError(t, err)
}

func TestExecutor_Execute_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	var out bytes.Buffer
	err := executor.Execute(t.Context(), domain.Command{
		Args:       []string{"sh", "-c", "exit 3"},
		WorkingDir: t.TempDir(),
	}, &out, &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "command failed")
}

func TestExecutor_Execute_MissingWorkingDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	var out bytes.Buffer
	err := executor.Execute(t.Context(), domain.Command{
		Args:       []string{"sh", "-c", "true"},
		WorkingDir: filepath.Join(t.TempDir(), "missing"),
	}, &out, &out)

	require.Error(t, err)
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	require.NoError(t, executor.Execute(t.Context(), domain.Command{}, nil, nil))
}

func TestResolveEnvironment(t *testing.T) {
	env := shell.ResolveEnvironment(
		[]string{"PATH=/usr/bin", "HOME=/root"},
		map[string]string{"HOME": "/tmp/home", "NPM_CONFIG_FUND": "false"},
	)

	assert.Equal(t, []string{"HOME=/tmp/home", "NPM_CONFIG_FUND=false", "PATH=/usr/bin"}, env)
}

func TestLookPath(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "npm")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755)) //nolint:gosec // test executable

	got, err := shell.LookPath("npm", []string{"PATH=" + dir})
	require.NoError(t, err)
	assert.Equal(t, bin, got)

	_, err = shell.LookPath("npm", []string{"HOME=/root"})
	assert.Error(t, err)
}
