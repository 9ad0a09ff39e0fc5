package lockfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/npmbridge/internal/adapters/lockfile"
	"go.trai.ch/npmbridge/internal/core/domain"
)

func sampleLock() *domain.ProjectLock {
	lock := domain.NewProjectLock()
	lock.Set("acme/widgets", domain.Snapshot{
		"left-pad": map[string]any{"version": "1.3.0"},
	})
	lock.Set(domain.SelfKey, domain.Snapshot{
		"gulp": map[string]any{
			"version":  "4.0.2",
			"requires": map[string]any{"glob-watcher": "^5.0.3"},
		},
	})
	return lock
}

func TestStore_RoundTrip(t *testing.T) {
	root := t.TempDir()
	store := lockfile.NewStore("")

	require.NoError(t, store.Save(root, sampleLock()))

	got, err := store.Load(root)
	require.NoError(t, err)
	require.NotNil(t, got)

	want := sampleLock()
	assert.Len(t, got.Dependencies, len(want.Dependencies))
	for key, snap := range want.Dependencies {
		loaded, ok := got.Get(key)
		require.True(t, ok, key)
		assert.True(t, snap.Equal(loaded), key)
	}
}

func TestStore_Save_Format(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, lockfile.NewStore("").Save(root, sampleLock()))

	data, err := os.ReadFile(filepath.Join(root, domain.LockFileName))
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "lock", data)
}

func TestStore_Save_OverwritesAndDropsEmpty(t *testing.T) {
	root := t.TempDir()
	store := lockfile.NewStore("")
	require.NoError(t, store.Save(root, sampleLock()))

	next := domain.NewProjectLock()
	next.Dependencies["acme/empty"] = domain.Snapshot{}
	next.Set(domain.SelfKey, domain.Snapshot{"left-pad": map[string]any{"version": "1.3.0"}})
	require.NoError(t, store.Save(root, next))

	got, err := store.Load(root)
	require.NoError(t, err)
	assert.Len(t, got.Dependencies, 1)
	_, ok := got.Get("acme/widgets")
	assert.False(t, ok, "a save fully replaces the previous lock")
}

func TestStore_Save_Nil(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, lockfile.NewStore("").Save(root, nil))

	data, err := os.ReadFile(filepath.Join(root, domain.LockFileName))
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"npm-dependencies\": {}\n}\n", string(data))
}

func TestStore_Load_Missing(t *testing.T) {
	got, err := lockfile.NewStore("").Load(t.TempDir())

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Load_PHPEmptyArrays(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "empty file", content: "", want: 0},
		{name: "empty dependency array", content: `{"npm-dependencies": []}`, want: 0},
		{name: "empty snapshot array", content: `{"npm-dependencies": {"self": [], "acme/widgets": {"a": {"version": "1"}}}}`, want: 1},
		{name: "missing key", content: `{}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(root, domain.LockFileName), []byte(tt.content), 0o600))

			got, err := lockfile.NewStore("").Load(root)

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Len(t, got.Dependencies, tt.want)
		})
	}
}

func TestStore_Load_Corrupt(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.LockFileName), []byte("{not json"), 0o600))

	_, err := lockfile.NewStore("").Load(root)

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrLockUnmarshalFailed.Error())
}

func TestStore_CustomFileName(t *testing.T) {
	root := t.TempDir()
	store := lockfile.NewStore(filepath.Join("build", "npm.lock"))

	require.NoError(t, store.Save(root, sampleLock()))
	assert.FileExists(t, filepath.Join(root, "build", "npm.lock"))

	got, err := store.Load(root)
	require.NoError(t, err)
	assert.Len(t, got.Dependencies, 2)
}
