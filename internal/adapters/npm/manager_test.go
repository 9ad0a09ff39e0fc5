package npm_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/npmbridge/internal/adapters/npm"
	"go.trai.ch/npmbridge/internal/core/domain"
	"go.trai.ch/npmbridge/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestManager_Install(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	dir := t.TempDir()

	executor.EXPECT().Execute(gomock.Any(), domain.Command{
		Args:        []string{"/usr/local/bin/npm", "install"},
		WorkingDir:  dir,
		Environment: map[string]string{"NPM_CONFIG_FUND": "false"},
	}, io.Discard, io.Discard).Return(nil)

	m := npm.NewManager(executor, "/usr/local/bin/npm", map[string]string{"NPM_CONFIG_FUND": "false"})
	require.NoError(t, m.Install(t.Context(), dir, io.Discard, io.Discard))
}

func TestManager_Install_DefaultBinary(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command, _, _ io.Writer) error {
			assert.Equal(t, []string{"npm", "install"}, cmd.Args)
			return nil
		})

	require.NoError(t, npm.NewManager(executor, "", nil).Install(t.Context(), t.TempDir(), nil, nil))
}

func TestManager_Install_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("exit status 1"))

	err := npm.NewManager(executor, "npm", nil).Install(t.Context(), "vendor/acme/widgets", nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInstallToolFailed.Error())
	assert.Contains(t, err.Error(), "exit status 1")

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "vendor/acme/widgets", zErr.Metadata()["location"])
	assert.Equal(t, "install", zErr.Metadata()["operation"])
}

func TestManager_Shrinkwrap(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	dir := t.TempDir()

	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command, _, _ io.Writer) error {
			assert.Equal(t, []string{"npm", "shrinkwrap"}, cmd.Args)
			return os.WriteFile(filepath.Join(cmd.WorkingDir, domain.ShrinkwrapFileName), []byte(`{
  "name": "composer-npm",
  "lockfileVersion": 1,
  "dependencies": {
    "left-pad": {"version": "1.3.0", "resolved": "https://registry.npmjs.org/left-pad/-/left-pad-1.3.0.tgz"}
  }
}`), 0o600)
		})

	snap, err := npm.NewManager(executor, "npm", nil).Shrinkwrap(t.Context(), dir, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, domain.Snapshot{
		"left-pad": map[string]any{
			"version":  "1.3.0",
			"resolved": "https://registry.npmjs.org/left-pad/-/left-pad-1.3.0.tgz",
		},
	}, snap)
}

func TestManager_Shrinkwrap_PackagesLayout(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	dir := t.TempDir()

	// npm 9 and later write lockfileVersion 3 without a dependencies key.
	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command, _, _ io.Writer) error {
			return os.WriteFile(filepath.Join(cmd.WorkingDir, domain.ShrinkwrapFileName), []byte(`{
  "name": "composer-npm",
  "lockfileVersion": 3,
  "requires": true,
  "packages": {
    "": {"name": "composer-npm", "dependencies": {"left-pad": "^1.3.0"}},
    "node_modules/left-pad": {"version": "1.3.0"}
  }
}`), 0o600)
		})

	snap, err := npm.NewManager(executor, "npm", nil).Shrinkwrap(t.Context(), dir, nil, nil)

	require.NoError(t, err)
	assert.True(t, snap.PackagesLayout())
	assert.Equal(t, map[string]any{"version": "1.3.0"}, snap["node_modules/left-pad"])
}

func TestManager_Shrinkwrap_NoTree(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command, _, _ io.Writer) error {
			return os.WriteFile(filepath.Join(cmd.WorkingDir, domain.ShrinkwrapFileName),
				[]byte(`{"name": "composer-npm", "lockfileVersion": 3, "packages": {}}`), 0o600)
		})

	snap, err := npm.NewManager(executor, "npm", nil).Shrinkwrap(t.Context(), t.TempDir(), nil, nil)

	require.Error(t, err)
	assert.Nil(t, snap)
	assert.Contains(t, err.Error(), domain.ErrSnapshotCaptureFailed.Error())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "npm-shrinkwrap.json records no dependency tree", zErr.Metadata()["reason"])
}

func TestManager_Shrinkwrap_Errors(t *testing.T) {
	tests := []struct {
		name    string
		run     func(cmd domain.Command) error
		wantErr string
	}{
		{
			name:    "tool fails",
			run:     func(domain.Command) error { return errors.New("exit status 1") },
			wantErr: domain.ErrSnapshotCaptureFailed.Error(),
		},
		{
			name:    "no shrinkwrap written",
			run:     func(domain.Command) error { return nil },
			wantErr: domain.ErrSnapshotCaptureFailed.Error(),
		},
		{
			name: "invalid json",
			run: func(cmd domain.Command) error {
				return os.WriteFile(filepath.Join(cmd.WorkingDir, domain.ShrinkwrapFileName), []byte("{"), 0o600)
			},
			wantErr: domain.ErrSnapshotCaptureFailed.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			executor := mocks.NewMockExecutor(ctrl)
			executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, cmd domain.Command, _, _ io.Writer) error {
					return tt.run(cmd)
				})

			_, err := npm.NewManager(executor, "npm", nil).Shrinkwrap(t.Context(), t.TempDir(), nil, nil)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
