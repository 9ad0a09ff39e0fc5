package npm

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/npmbridge/internal/core/domain"
	"go.trai.ch/npmbridge/internal/core/ports"
	"go.trai.ch/zerr"
)

// MarkerStore implements ports.MarkerStore with a hidden file inside node_modules.
type MarkerStore struct {
	logger ports.Logger
}

// NewMarkerStore creates a new MarkerStore.
func NewMarkerStore(logger ports.Logger) *MarkerStore {
	return &MarkerStore{logger: logger}
}

// Get returns the snapshot installed in dir.
// A missing or unparsable marker yields nil, nil.
func (s *MarkerStore) Get(dir string) (domain.Snapshot, error) {
	path := domain.MarkerPath(dir)

	data, err := os.ReadFile(path) //nolint:gosec // path is built from the install location
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMarkerReadFailed.Error()), "path", path)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn("ignoring unreadable install marker " + path)
		return nil, nil
	}
	return snap, nil
}

// Put records snap as installed in dir.
func (s *MarkerStore) Put(dir string, snap domain.Snapshot) error {
	path := domain.MarkerPath(dir)

	data, err := json.Marshal(snap)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMarkerWriteFailed.Error()), "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMarkerWriteFailed.Error()), "path", path)
	}

	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMarkerWriteFailed.Error()), "path", path)
	}
	return nil
}
