// Package lockfile persists the project-wide npm lock in Composer's JSON file format.
package lockfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/npmbridge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.LockStore using a JSON file at the project root.
type Store struct {
	filename string
}

// NewStore creates a new LockStore reading and writing filename, relative to the project root.
func NewStore(filename string) *Store {
	if filename == "" {
		filename = domain.LockFileName
	}
	return &Store{filename: filepath.Clean(filename)}
}

// document is the on-disk layout of the lock file.
type document struct {
	Dependencies json.RawMessage `json:"npm-dependencies"`
}

// Load reads the lock of the project at root. Returns nil, nil if the file does not exist.
func (s *Store) Load(root string) (*domain.ProjectLock, error) {
	path := filepath.Join(root, s.filename)

	//nolint:gosec // path is built from the project root and configured file name
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockReadFailed.Error()), "path", path)
	}

	lock := domain.NewProjectLock()
	if len(bytes.TrimSpace(data)) == 0 {
		return lock, nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockUnmarshalFailed.Error()), "path", path)
	}

	if isEmpty(doc.Dependencies) {
		return lock, nil
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(doc.Dependencies, &entries); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockUnmarshalFailed.Error()), "path", path)
	}

	for key, raw := range entries {
		if isEmpty(raw) {
			continue
		}
		var snap domain.Snapshot
		if err := json.Unmarshal(raw, &snap); err != nil {
			unmarshalErr := zerr.Wrap(err, domain.ErrLockUnmarshalFailed.Error())
			unmarshalErr = zerr.With(unmarshalErr, "path", path)
			return nil, zerr.With(unmarshalErr, "location", key)
		}
		lock.Set(key, snap)
	}

	return lock, nil
}

// Save replaces the lock of the project at root.
func (s *Store) Save(root string, lock *domain.ProjectLock) error {
	path := filepath.Join(root, s.filename)

	deps := map[string]domain.Snapshot{}
	if lock != nil {
		for key, snap := range lock.Dependencies {
			if !snap.Empty() {
				deps[key] = snap
			}
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(map[string]any{"npm-dependencies": deps}); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLockMarshalFailed.Error()), "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLockWriteFailed.Error()), "path", path)
	}

	//nolint:gosec // path is built from the project root and configured file name
	if err := os.WriteFile(path, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLockWriteFailed.Error()), "path", path)
	}

	return nil
}

// isEmpty reports whether raw holds no value, null, or the empty array
// PHP writes in place of an empty map.
func isEmpty(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte("[]"))
}
