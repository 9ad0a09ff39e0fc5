package domain

import "path/filepath"

const (
	// LockFileName is the default name of the project-wide lock file.
	LockFileName = "composer-npm.lock"

	// ConfigFileName is the name of the optional tool configuration file.
	ConfigFileName = "npmbridge.yaml"

	// ManifestFileName is the name of the manifest consumed by npm.
	ManifestFileName = "package.json"

	// ShrinkwrapFileName is the name of the exact-version lock consumed and produced by npm.
	ShrinkwrapFileName = "npm-shrinkwrap.json"

	// ModulesDirName is the name of the installed dependency tree.
	ModulesDirName = "node_modules"

	// BinDirName is the name of the executable directory inside the installed dependency tree.
	BinDirName = ".bin"

	// MarkerFileName is the name of the hidden marker recording the installed snapshot.
	MarkerFileName = ".composer-npm-installed.json"

	// ManifestOwner is the reserved manifest name identifying a manifest written by npmbridge.
	ManifestOwner = "composer-npm"

	// ManifestDescription is written into every generated manifest.
	ManifestDescription = "this file is auto-generated and will be overwritten by 'npmbridge'"

	// ComposerFileName is the name of the root Composer manifest.
	ComposerFileName = "composer.json"

	// DefaultVendorDir is Composer's default vendor directory.
	DefaultVendorDir = "vendor"

	// DefaultBinDir is Composer's default bin directory.
	DefaultBinDir = "vendor/bin"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ModulesPath returns the installed dependency tree of a location.
func ModulesPath(dir string) string {
	return filepath.Join(dir, ModulesDirName)
}

// ModulesBinPath returns the executable directory of a location's installed dependency tree.
func ModulesBinPath(dir string) string {
	return filepath.Join(dir, ModulesDirName, BinDirName)
}

// MarkerPath returns the marker file of a location.
// It joins node_modules and .composer-npm-installed.json.
func MarkerPath(dir string) string {
	return filepath.Join(dir, ModulesDirName, MarkerFileName)
}

// InstalledJSONPath returns the path of Composer's installed repository for a vendor dir.
func InstalledJSONPath(vendorDir string) string {
	return filepath.Join(vendorDir, "composer", "installed.json")
}
