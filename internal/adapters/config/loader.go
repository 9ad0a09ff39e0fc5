// Package config provides the configuration loader for npmbridge.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/npmbridge/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// supportedVersion is the only configuration schema version understood.
const supportedVersion = "1"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// NewLoader creates a loader reading npmbridge.yaml.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{Filename: domain.ConfigFileName}
}

// Load reads the configuration from dir. A missing file yields the defaults.
// The returned config is bound to dir.
func (l *FileConfigLoader) Load(dir string) (*domain.Config, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "root", dir)
	}

	cfg, err := Load(filepath.Join(abs, l.Filename))
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = domain.DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg.Dir = abs
	return cfg, nil
}

// Load reads a configuration file from path and layers it over the defaults.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Bridgefile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if err := validate(&file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	cfg := domain.DefaultConfig()
	if file.NPM != "" {
		cfg.NPM = file.NPM
	}
	if file.LockFile != "" {
		cfg.LockFile = filepath.Clean(file.LockFile)
	}
	if file.BinDir != "" {
		cfg.BinDir = filepath.Clean(file.BinDir)
	}
	if file.LinkConcurrency > 0 {
		cfg.LinkConcurrency = file.LinkConcurrency
	}
	cfg.Environment = file.Environment

	return cfg, nil
}

func validate(file *Bridgefile) error {
	if file.Version != "" && file.Version != supportedVersion {
		return zerr.With(domain.ErrInvalidConfig, "version", file.Version)
	}
	if filepath.IsAbs(file.LockFile) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "lock-file must be relative to the project root"),
			"lock-file", file.LockFile)
	}
	if file.LinkConcurrency < 0 {
		return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "link-concurrency must not be negative"),
			"link-concurrency", file.LinkConcurrency)
	}
	return nil
}
