package ports

import "go.trai.ch/npmbridge/internal/core/domain"

// ManifestWriter manages the transient files npm reads at a location.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestWriter interface {
	// CheckOwnership fails with domain.ErrManifestConflict when dir holds a
	// manifest not owned by npmbridge. A missing manifest is fine.
	CheckOwnership(dir string) error

	// Write creates or overwrites the manifest in dir.
	// It fails with domain.ErrManifestConflict, writing nothing, when a manifest
	// not owned by npmbridge already exists there.
	Write(dir string, res domain.Resolution) error

	// WriteLock pins snap in dir. An empty snapshot removes any stale pin instead.
	WriteLock(dir string, snap domain.Snapshot) error

	// Cleanup removes the pin and, unless keepManifest is set, the manifest.
	// Missing files are ignored.
	Cleanup(dir string, keepManifest bool) error
}
