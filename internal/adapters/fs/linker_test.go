package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/npmbridge/internal/adapters/fs"
	"go.trai.ch/npmbridge/internal/core/domain"
)

func TestLinker_Link(t *testing.T) {
	root := t.TempDir()
	src := domain.ModulesBinPath(root)
	touch(t, filepath.Join(src, "gulp"))
	touch(t, filepath.Join(src, "eslint"))
	binDir := filepath.Join(root, "vendor", "bin")

	n, err := fs.NewLinker(fs.NewWalker(), 2).Link(t.Context(), src, binDir)

	require.NoError(t, err)
	assert.Equal(t, 2, n)

	target, err := os.Readlink(filepath.Join(binDir, "gulp"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("..", "..", "node_modules", ".bin", "gulp"), target)
	assert.FileExists(t, filepath.Join(binDir, "eslint"))
}

func TestLinker_Link_ReplacesExisting(t *testing.T) {
	root := t.TempDir()
	src := domain.ModulesBinPath(root)
	touch(t, filepath.Join(src, "gulp"))
	binDir := filepath.Join(root, "bin")
	touch(t, filepath.Join(binDir, "gulp"))

	n, err := fs.NewLinker(fs.NewWalker(), 1).Link(t.Context(), src, binDir)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	info, err := os.Lstat(filepath.Join(binDir, "gulp"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)
}

func TestLinker_Link_NothingToLink(t *testing.T) {
	root := t.TempDir()
	binDir := filepath.Join(root, "bin")

	n, err := fs.NewLinker(fs.NewWalker(), 0).Link(t.Context(), domain.ModulesBinPath(root), binDir)

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoDirExists(t, binDir, "no bin dir is created when nothing is linked")
}
