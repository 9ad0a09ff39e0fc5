package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"go.trai.ch/npmbridge/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Linker implements ports.BinaryLinker with relative symlinks.
type Linker struct {
	walker      *Walker
	concurrency int
}

// NewLinker creates a new Linker linking at most concurrency entries at once.
func NewLinker(walker *Walker, concurrency int) *Linker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Linker{walker: walker, concurrency: concurrency}
}

// Link creates binDir/<name> for every entry of srcDir, replacing existing entries.
func (l *Linker) Link(ctx context.Context, srcDir, binDir string) (int, error) {
	var linked atomic.Int64
	created := false

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for src := range l.walker.Entries(srcDir) {
		if !created {
			if err := os.MkdirAll(binDir, domain.DirPerm); err != nil {
				return 0, zerr.With(zerr.Wrap(err, domain.ErrLinkFailed.Error()), "path", binDir)
			}
			created = true
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := link(src, filepath.Join(binDir, filepath.Base(src))); err != nil {
				return err
			}
			linked.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(linked.Load()), err
	}
	return int(linked.Load()), nil
}

func link(src, dst string) error {
	target, err := filepath.Rel(filepath.Dir(dst), src)
	if err != nil {
		target = src
	}

	if err := os.Remove(dst); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrLinkFailed.Error()), "path", dst)
	}

	if err := os.Symlink(target, dst); err != nil {
		linkErr := zerr.Wrap(err, domain.ErrLinkFailed.Error())
		linkErr = zerr.With(linkErr, "path", dst)
		return zerr.With(linkErr, "target", target)
	}
	return nil
}
