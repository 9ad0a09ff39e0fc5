package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestConflict is returned when a manifest not written by npmbridge already exists at a location.
	ErrManifestConflict = zerr.New("can't install npm dependencies as there is already a package.json")

	// ErrManifestReadFailed is returned when an existing manifest cannot be read or parsed.
	ErrManifestReadFailed = zerr.New("failed to read package.json")

	// ErrManifestWriteFailed is returned when a manifest or shrinkwrap file cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write npm manifest")

	// ErrManifestCleanupFailed is returned when transient manifest files cannot be removed.
	ErrManifestCleanupFailed = zerr.New("failed to remove npm manifest")

	// ErrInstallToolFailed is returned when npm install exits non-zero.
	ErrInstallToolFailed = zerr.New("npm install failed")

	// ErrSnapshotCaptureFailed is returned when npm shrinkwrap exits non-zero or its output is unusable.
	ErrSnapshotCaptureFailed = zerr.New("npm shrinkwrap failed")

	// ErrTreeRemoveFailed is returned when an installed dependency tree cannot be removed.
	ErrTreeRemoveFailed = zerr.New("failed to remove installed dependency tree")

	// ErrMarkerReadFailed is returned when the installed marker cannot be read.
	ErrMarkerReadFailed = zerr.New("failed to read installed marker")

	// ErrMarkerWriteFailed is returned when the installed marker cannot be written.
	ErrMarkerWriteFailed = zerr.New("failed to write installed marker")

	// ErrLockReadFailed is returned when the project lock cannot be read.
	ErrLockReadFailed = zerr.New("failed to read lock file")

	// ErrLockUnmarshalFailed is returned when the project lock cannot be parsed.
	ErrLockUnmarshalFailed = zerr.New("failed to unmarshal lock file")

	// ErrLockMarshalFailed is returned when the project lock cannot be encoded.
	ErrLockMarshalFailed = zerr.New("failed to marshal lock file")

	// ErrLockWriteFailed is returned when the project lock cannot be written.
	ErrLockWriteFailed = zerr.New("failed to write lock file")

	// ErrPackagesReadFailed is returned when the installed package metadata cannot be read.
	ErrPackagesReadFailed = zerr.New("failed to read installed packages")

	// ErrPackagesParseFailed is returned when the installed package metadata cannot be parsed.
	ErrPackagesParseFailed = zerr.New("failed to parse installed packages")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the config file contains invalid values.
	ErrInvalidConfig = zerr.New("invalid config")

	// ErrLinkFailed is returned when an npm binary cannot be linked into the bin dir.
	ErrLinkFailed = zerr.New("failed to link npm binary")

	// ErrFailedToGetRoot is returned when the project root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")

	// ErrRootMismatch is returned when a run targets a root other than the one its settings were loaded for.
	ErrRootMismatch = zerr.New("project root differs from the directory npmbridge.yaml was read from")

	// ErrRunFailed is returned when an install or update run fails.
	ErrRunFailed = zerr.New("npm dependency run failed")
)
