// Package composer reads the root package and the installed packages of a Composer project.
package composer

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/npmbridge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Extra keys read from each package's "extra" block.
const (
	extraRequire     = "require-npm"
	extraRequireDev  = "require-dev-npm"
	extraScripts     = "scripts-npm"
	extraConfig      = "config-npm"
	extraExpose      = "expose-npm-packages"
	extraRootConfig  = "npm-config"
	vendorDirEnv     = "COMPOSER_VENDOR_DIR"
	binDirEnv        = "COMPOSER_BIN_DIR"
	vendorDirPattern = "{$vendor-dir}"
)

// Source implements ports.PackageSource from composer.json and vendor/composer/installed.json.
type Source struct {
	getenv func(string) string
}

// NewSource creates a new PackageSource reading Composer's metadata files.
func NewSource() *Source {
	return &Source{getenv: os.Getenv}
}

type rootFile struct {
	Name   string          `json:"name"`
	Extra  json.RawMessage `json:"extra"`
	Config struct {
		VendorDir string `json:"vendor-dir"`
		BinDir    string `json:"bin-dir"`
	} `json:"config"`
}

type packageEntry struct {
	Name  string          `json:"name"`
	Extra json.RawMessage `json:"extra"`
}

// Load returns the root package and every installed package of the project at root.
// A project with nothing installed yet has no packages.
func (s *Source) Load(root string) (*domain.Project, error) {
	composerPath := filepath.Join(root, domain.ComposerFileName)

	var rf rootFile
	if err := readJSON(composerPath, &rf); err != nil {
		return nil, err
	}

	rootExtra, err := decodeExtra(rf.Extra)
	if err != nil {
		return nil, zerr.With(extraError(err, rf.Name, "extra"), "path", composerPath)
	}

	rootPkg, err := toPackage(rf.Name, "", rootExtra)
	if err != nil {
		return nil, zerr.With(err, "path", composerPath)
	}

	npmConfig, err := decodeMap(rootExtra[extraRootConfig])
	if err != nil {
		parseErr := zerr.Wrap(err, domain.ErrPackagesParseFailed.Error())
		return nil, zerr.With(zerr.With(parseErr, "path", composerPath), "key", extraRootConfig)
	}

	vendorDir := s.vendorDir(rf.Config.VendorDir)
	project := &domain.Project{
		Root:      rootPkg,
		NPMConfig: npmConfig,
		BinDir:    s.binDir(rf.Config.BinDir, vendorDir),
	}

	installedPath := domain.InstalledJSONPath(vendorDir)
	if !filepath.IsAbs(installedPath) {
		installedPath = filepath.Join(root, installedPath)
	}
	entries, err := readInstalled(installedPath)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		extra, err := decodeExtra(entry.Extra)
		if err != nil {
			return nil, zerr.With(extraError(err, entry.Name, "extra"), "path", installedPath)
		}
		pkg, err := toPackage(entry.Name, filepath.Join(vendorDir, filepath.FromSlash(entry.Name)), extra)
		if err != nil {
			return nil, zerr.With(err, "path", installedPath)
		}
		project.Packages = append(project.Packages, pkg)
	}

	return project, nil
}

func (s *Source) vendorDir(configured string) string {
	if env := s.getenv(vendorDirEnv); env != "" {
		return filepath.Clean(env)
	}
	if configured != "" {
		return filepath.Clean(configured)
	}
	return domain.DefaultVendorDir
}

func (s *Source) binDir(configured, vendorDir string) string {
	if env := s.getenv(binDirEnv); env != "" {
		return filepath.Clean(env)
	}
	if configured == "" {
		return filepath.Join(vendorDir, "bin")
	}
	return filepath.Clean(strings.ReplaceAll(configured, vendorDirPattern, vendorDir))
}

// readInstalled reads installed.json in either the Composer 1 (array) or Composer 2 (object) layout.
func readInstalled(path string) ([]packageEntry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is built from the project root
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackagesReadFailed.Error()), "path", path)
	}

	trimmed := bytes.TrimSpace(data)
	var entries []packageEntry
	if bytes.HasPrefix(trimmed, []byte("[")) {
		err = json.Unmarshal(trimmed, &entries)
	} else {
		var repo struct {
			Packages []packageEntry `json:"packages"`
		}
		err = json.Unmarshal(trimmed, &repo)
		entries = repo.Packages
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackagesParseFailed.Error()), "path", path)
	}
	return entries, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is built from the project root
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPackagesReadFailed.Error()), "path", path)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPackagesParseFailed.Error()), "path", path)
	}
	return nil
}

func toPackage(name, installPath string, extra map[string]json.RawMessage) (domain.Package, error) {
	pkg := domain.Package{
		Name:         name,
		InstallPath:  installPath,
		ExposeToRoot: truthy(extra[extraExpose]),
	}

	var err error
	if pkg.Require, err = decodeRequirements(extra[extraRequire]); err != nil {
		return pkg, extraError(err, name, extraRequire)
	}
	if pkg.RequireDev, err = decodeRequirements(extra[extraRequireDev]); err != nil {
		return pkg, extraError(err, name, extraRequireDev)
	}
	if pkg.Scripts, err = decodeMap(extra[extraScripts]); err != nil {
		return pkg, extraError(err, name, extraScripts)
	}
	if pkg.Config, err = decodeMap(extra[extraConfig]); err != nil {
		return pkg, extraError(err, name, extraConfig)
	}
	return pkg, nil
}

func extraError(err error, pkg, key string) error {
	parseErr := zerr.Wrap(err, domain.ErrPackagesParseFailed.Error())
	parseErr = zerr.With(parseErr, "package", pkg)
	return zerr.With(parseErr, "key", key)
}
