// Package npm drives the npm CLI and manages the files it reads and writes at an install location.
package npm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/npmbridge/internal/core/domain"
	"go.trai.ch/npmbridge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Manager implements ports.PackageManager using the npm CLI.
type Manager struct {
	executor ports.Executor
	binary   string
	env      map[string]string
}

// NewManager creates a new PackageManager running the given npm binary with env layered
// over the inherited environment.
func NewManager(executor ports.Executor, binary string, env map[string]string) *Manager {
	if binary == "" {
		binary = "npm"
	}
	return &Manager{executor: executor, binary: binary, env: env}
}

// Install runs `npm install` in dir.
func (m *Manager) Install(ctx context.Context, dir string, stdout, stderr io.Writer) error {
	if err := m.run(ctx, dir, "install", stdout, stderr); err != nil {
		installErr := zerr.Wrap(err, domain.ErrInstallToolFailed.Error())
		installErr = zerr.With(installErr, "location", dir)
		return zerr.With(installErr, "operation", "install")
	}
	return nil
}

// Shrinkwrap runs `npm shrinkwrap` in dir and returns the dependency tree it recorded.
func (m *Manager) Shrinkwrap(ctx context.Context, dir string, stdout, stderr io.Writer) (domain.Snapshot, error) {
	if err := m.run(ctx, dir, "shrinkwrap", stdout, stderr); err != nil {
		captureErr := zerr.Wrap(err, domain.ErrSnapshotCaptureFailed.Error())
		captureErr = zerr.With(captureErr, "location", dir)
		return nil, zerr.With(captureErr, "operation", "shrinkwrap")
	}

	path := filepath.Join(dir, domain.ShrinkwrapFileName)
	data, err := os.ReadFile(path) //nolint:gosec // path is built from the install location
	if err != nil {
		captureErr := zerr.Wrap(err, domain.ErrSnapshotCaptureFailed.Error())
		return nil, zerr.With(captureErr, "path", path)
	}

	return parseShrinkwrap(data, path)
}

func (m *Manager) run(ctx context.Context, dir, operation string, stdout, stderr io.Writer) error {
	return m.executor.Execute(ctx, domain.Command{
		Args:        []string{m.binary, operation},
		WorkingDir:  dir,
		Environment: m.env,
	}, stdout, stderr)
}

// shrinkwrapFile is the subset of npm-shrinkwrap.json npmbridge reads back.
// lockfileVersion 1 records the tree under dependencies; npm 7 and later
// record it under packages, and version 3 drops dependencies entirely.
type shrinkwrapFile struct {
	Dependencies domain.Snapshot `json:"dependencies"`
	Packages     domain.Snapshot `json:"packages"`
}

func parseShrinkwrap(data []byte, path string) (domain.Snapshot, error) {
	var sw shrinkwrapFile
	if err := json.Unmarshal(data, &sw); err != nil {
		captureErr := zerr.Wrap(err, domain.ErrSnapshotCaptureFailed.Error())
		captureErr = zerr.With(captureErr, "path", path)
		return nil, zerr.With(captureErr, "reason", "invalid npm-shrinkwrap.json")
	}

	switch {
	case !sw.Dependencies.Empty():
		return sw.Dependencies, nil
	case !sw.Packages.Empty():
		return sw.Packages, nil
	}

	captureErr := zerr.With(domain.ErrSnapshotCaptureFailed, "path", path)
	return nil, zerr.With(captureErr, "reason", "npm-shrinkwrap.json records no dependency tree")
}

// removeIfExists deletes path, ignoring a missing file.
func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
