// Package app implements the application layer for npmbridge.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/npmbridge/internal/core/domain"
	"go.trai.ch/npmbridge/internal/core/ports"
	"go.trai.ch/npmbridge/internal/engine/installer"
	"go.trai.ch/zerr"
)

// RunOptions configures a single install or update run.
type RunOptions struct {
	// Root is the project root. Empty means the current directory.
	// When the app's config is bound to a directory, Root must resolve to it.
	Root string

	// DevMode includes the root package's dev requirements.
	DevMode bool
}

// DefaultRunOptions returns the options Composer uses by default: current directory, dev mode on.
func DefaultRunOptions() RunOptions {
	return RunOptions{Root: ".", DevMode: true}
}

// App represents the main application logic.
type App struct {
	source    ports.PackageSource
	installer *installer.Installer
	locks     ports.LockStore
	linker    ports.BinaryLinker
	logger    ports.Logger
	config    *domain.Config
}

// New creates a new App instance.
func New(
	source ports.PackageSource,
	inst *installer.Installer,
	locks ports.LockStore,
	linker ports.BinaryLinker,
	logger ports.Logger,
	cfg *domain.Config,
) *App {
	if cfg == nil {
		cfg = domain.DefaultConfig()
	}
	return &App{
		source:    source,
		installer: inst,
		locks:     locks,
		linker:    linker,
		logger:    logger,
		config:    cfg,
	}
}

// AfterInstall reproduces the locked npm dependencies of every location.
// Without a lock it behaves like AfterUpdate.
func (a *App) AfterInstall(ctx context.Context, opts RunOptions) error {
	root, err := a.resolveRoot(opts.Root)
	if err != nil {
		return zerr.Wrap(err, domain.ErrRunFailed.Error())
	}

	lock, err := a.locks.Load(root)
	if err != nil {
		return zerr.Wrap(err, domain.ErrRunFailed.Error())
	}
	if lock == nil {
		a.logger.Info("no " + a.config.LockFile + " found, resolving npm dependencies")
		return a.AfterUpdate(ctx, opts)
	}

	project, err := a.source.Load(root)
	if err != nil {
		return zerr.Wrap(err, domain.ErrRunFailed.Error())
	}

	var merged []domain.Package
	for _, pkg := range project.Packages {
		if pkg.ExposeToRoot {
			merged = append(merged, pkg)
			continue
		}

		desired, ok := lock.Get(pkg.Name)
		if !ok {
			continue
		}

		res := domain.Resolve(pkg, false, nil).WithSettings(project.NPMConfig)
		if _, err := a.install(ctx, packageLocation(root, pkg), res, desired); err != nil {
			return zerr.Wrap(err, domain.ErrRunFailed.Error())
		}
	}

	if desired, ok := lock.Get(domain.SelfKey); ok {
		res := domain.Resolve(project.Root, opts.DevMode, merged).WithSettings(project.NPMConfig)
		if _, err := a.install(ctx, rootLocation(root), res, desired); err != nil {
			return zerr.Wrap(err, domain.ErrRunFailed.Error())
		}
	}

	return nil
}

// AfterUpdate resolves every location afresh, links npm binaries and rewrites the lock.
func (a *App) AfterUpdate(ctx context.Context, opts RunOptions) error {
	root, err := a.resolveRoot(opts.Root)
	if err != nil {
		return zerr.Wrap(err, domain.ErrRunFailed.Error())
	}

	project, err := a.source.Load(root)
	if err != nil {
		return zerr.Wrap(err, domain.ErrRunFailed.Error())
	}

	lock := domain.NewProjectLock()

	var merged []domain.Package
	for _, pkg := range project.Packages {
		if pkg.ExposeToRoot {
			merged = append(merged, pkg)
			continue
		}

		res := domain.Resolve(pkg, false, nil).WithSettings(project.NPMConfig)
		snap, err := a.install(ctx, packageLocation(root, pkg), res, nil)
		if err != nil {
			return zerr.Wrap(err, domain.ErrRunFailed.Error())
		}
		lock.Set(pkg.Name, snap)
	}

	res := domain.Resolve(project.Root, opts.DevMode, merged).WithSettings(project.NPMConfig)
	snap, err := a.install(ctx, rootLocation(root), res, nil)
	if err != nil {
		return zerr.Wrap(err, domain.ErrRunFailed.Error())
	}
	lock.Set(domain.SelfKey, snap)

	if err := a.linkBinaries(ctx, root, project); err != nil {
		return zerr.Wrap(err, domain.ErrRunFailed.Error())
	}

	if err := a.locks.Save(root, lock); err != nil {
		return zerr.Wrap(err, domain.ErrRunFailed.Error())
	}

	return nil
}

// install skips locations with nothing to install; they get no manifest and no lock entry.
func (a *App) install(
	ctx context.Context,
	loc domain.Location,
	res domain.Resolution,
	desired domain.Snapshot,
) (domain.Snapshot, error) {
	if res.Empty() {
		return nil, nil
	}
	return a.installer.Install(ctx, loc, res, desired)
}

func (a *App) linkBinaries(ctx context.Context, root string, project *domain.Project) error {
	binDir := project.BinDir
	if a.config.BinDir != "" {
		binDir = a.config.BinDir
	}
	if binDir == "" {
		binDir = domain.DefaultBinDir
	}

	n, err := a.linker.Link(ctx, domain.ModulesBinPath(root), absolute(root, binDir))
	if err != nil {
		return err
	}
	if n > 0 {
		a.logger.Info(fmt.Sprintf("linked %d npm binaries into '%s'", n, filepath.ToSlash(binDir)))
	}
	return nil
}

func (a *App) resolveRoot(root string) (string, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "root", root)
	}
	if a.config.Dir != "" && abs != a.config.Dir {
		mismatch := zerr.With(domain.ErrRootMismatch, "root", abs)
		return "", zerr.With(mismatch, "config_dir", a.config.Dir)
	}
	return abs, nil
}

func rootLocation(root string) domain.Location {
	return domain.Location{Key: domain.SelfKey, Path: ".", Dir: root, IsRoot: true}
}

func packageLocation(root string, pkg domain.Package) domain.Location {
	return domain.Location{
		Key:  pkg.Name,
		Path: filepath.ToSlash(pkg.InstallPath),
		Dir:  absolute(root, pkg.InstallPath),
	}
}

func absolute(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
