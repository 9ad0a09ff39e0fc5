package npm

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/npmbridge/internal/core/domain"
	"go.trai.ch/zerr"
)

// ManifestWriter implements ports.ManifestWriter on the local filesystem.
type ManifestWriter struct{}

// NewManifestWriter creates a new ManifestWriter.
func NewManifestWriter() *ManifestWriter {
	return &ManifestWriter{}
}

// manifest is the package.json written for npm. Field order is the output key order.
type manifest struct {
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	Private      bool                `json:"private"`
	Dependencies domain.Requirements `json:"dependencies"`
	Scripts      map[string]any      `json:"scripts"`
	Config       map[string]any      `json:"config"`
}

type shrinkwrapManifest struct {
	Name         string          `json:"name"`
	Dependencies domain.Snapshot `json:"dependencies"`
}

type packagesShrinkwrapManifest struct {
	Name            string          `json:"name"`
	LockfileVersion int             `json:"lockfileVersion"`
	Requires        bool            `json:"requires"`
	Packages        domain.Snapshot `json:"packages"`
}

// CheckOwnership fails if dir holds a package.json npmbridge did not write.
func (w *ManifestWriter) CheckOwnership(dir string) error {
	return checkOwnership(filepath.Join(dir, domain.ManifestFileName))
}

// Write generates package.json in dir from res.
func (w *ManifestWriter) Write(dir string, res domain.Resolution) error {
	path := filepath.Join(dir, domain.ManifestFileName)

	if err := checkOwnership(path); err != nil {
		return err
	}

	m := manifest{
		Name:         domain.ManifestOwner,
		Description:  domain.ManifestDescription,
		Private:      true,
		Dependencies: nonNil(res.Requirements),
		Scripts:      nonNil(res.Scripts),
		Config:       nonNil(res.Settings),
	}

	if err := writeJSON(path, m); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}
	return nil
}

const packagesLockfileVersion = 3

// WriteLock pins snap in dir through npm-shrinkwrap.json.
func (w *ManifestWriter) WriteLock(dir string, snap domain.Snapshot) error {
	path := filepath.Join(dir, domain.ShrinkwrapFileName)

	if snap.Empty() {
		if err := removeIfExists(path); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrManifestCleanupFailed.Error()), "path", path)
		}
		return nil
	}

	var sw any = shrinkwrapManifest{Name: domain.ManifestOwner, Dependencies: snap}
	if snap.PackagesLayout() {
		sw = packagesShrinkwrapManifest{
			Name:            domain.ManifestOwner,
			LockfileVersion: packagesLockfileVersion,
			Requires:        true,
			Packages:        snap,
		}
	}
	if err := writeJSON(path, sw); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}
	return nil
}

// Cleanup removes the transient files npm consumed in dir.
func (w *ManifestWriter) Cleanup(dir string, keepManifest bool) error {
	paths := []string{filepath.Join(dir, domain.ShrinkwrapFileName)}
	if !keepManifest {
		paths = append(paths, filepath.Join(dir, domain.ManifestFileName))
	}

	for _, path := range paths {
		if err := removeIfExists(path); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrManifestCleanupFailed.Error()), "path", path)
		}
	}
	return nil
}

// checkOwnership fails if path holds a manifest npmbridge did not write.
func checkOwnership(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is built from the install location
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var existing struct {
		Name any `json:"name"`
	}
	if err := json.Unmarshal(data, &existing); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	if name, ok := existing.Name.(string); !ok || name != domain.ManifestOwner {
		return zerr.With(domain.ErrManifestConflict, "path", path)
	}
	return nil
}

// writeJSON writes v the way Composer writes JSON files: four-space indent,
// unescaped slashes and unicode, trailing newline.
func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), domain.FilePerm)
}

func nonNil[M ~map[K]V, K comparable, V any](m M) M {
	if m == nil {
		return M{}
	}
	return m
}
