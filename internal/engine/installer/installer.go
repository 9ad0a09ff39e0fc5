// Package installer brings a single install location to a requested dependency state.
package installer

import (
	"context"
	"fmt"

	"go.trai.ch/npmbridge/internal/core/domain"
	"go.trai.ch/npmbridge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Installer drives npm for one location at a time.
type Installer struct {
	manifests ports.ManifestWriter
	markers   ports.MarkerStore
	manager   ports.PackageManager
	remover   ports.TreeRemover
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new Installer.
func New(
	manifests ports.ManifestWriter,
	markers ports.MarkerStore,
	manager ports.PackageManager,
	remover ports.TreeRemover,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Installer {
	return &Installer{
		manifests: manifests,
		markers:   markers,
		manager:   manager,
		remover:   remover,
		telemetry: telemetry,
		logger:    logger,
	}
}

// IsUpToDate reports whether the tree installed in dir already matches desired.
// It is never true for an empty desired snapshot.
func (i *Installer) IsUpToDate(dir string, desired domain.Snapshot) (bool, error) {
	if desired.Empty() {
		return false, nil
	}

	installed, err := i.markers.Get(dir)
	if err != nil {
		return false, err
	}
	if installed.Empty() {
		return false, nil
	}

	return installed.Equal(desired), nil
}

// Install brings loc to the state described by res.
//
// With a desired snapshot the install is pinned to it and nothing is returned.
// Without one, npm resolves freely and the captured snapshot is returned for the lock.
// A location whose marker already matches desired is left untouched.
func (i *Installer) Install(
	ctx context.Context,
	loc domain.Location,
	res domain.Resolution,
	desired domain.Snapshot,
) (captured domain.Snapshot, err error) {
	ctx, vertex := i.telemetry.Record(ctx, "npm "+loc.Path)
	defer func() {
		if err != nil {
			err = zerr.With(err, "location", loc.Path)
		}
		vertex.Complete(err)
	}()

	upToDate, err := i.IsUpToDate(loc.Dir, desired)
	if err != nil {
		return nil, err
	}
	if upToDate {
		i.logger.Info(fmt.Sprintf("npm dependencies in '%s' are up to date...", loc.Path))
		vertex.Cached()
		return nil, nil
	}

	// A foreign package.json means the location is not ours; leave its tree alone.
	if err := i.manifests.CheckOwnership(loc.Dir); err != nil {
		return nil, err
	}

	// npm only honors a shrinkwrap against an empty tree.
	if err := i.remover.RemoveTree(loc.Dir); err != nil {
		return nil, err
	}

	if err := i.manifests.Write(loc.Dir, res); err != nil {
		return nil, err
	}
	if err := i.manifests.WriteLock(loc.Dir, desired); err != nil {
		return nil, err
	}

	i.logger.Info(fmt.Sprintf("installing npm dependencies in '%s'...", loc.Path))
	if err := i.manager.Install(ctx, loc.Dir, vertex.Stdout(), vertex.Stderr()); err != nil {
		return nil, err
	}

	marker := desired
	if desired.Empty() {
		captured, err = i.manager.Shrinkwrap(ctx, loc.Dir, vertex.Stdout(), vertex.Stderr())
		if err != nil {
			return nil, err
		}
		marker = captured
		vertex.Log(domain.LogLevelInfo, "captured snapshot "+captured.Fingerprint())
	}

	if err := i.manifests.Cleanup(loc.Dir, loc.IsRoot); err != nil {
		return nil, err
	}

	if err := i.markers.Put(loc.Dir, marker); err != nil {
		return nil, err
	}

	return captured, nil
}
