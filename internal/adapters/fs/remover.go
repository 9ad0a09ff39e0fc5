package fs

import (
	"os"

	"go.trai.ch/npmbridge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Remover implements ports.TreeRemover.
type Remover struct{}

// NewRemover creates a new Remover.
func NewRemover() *Remover {
	return &Remover{}
}

// RemoveTree deletes dir/node_modules and everything below it.
// Symlinks inside the tree are removed, never followed.
func (r *Remover) RemoveTree(dir string) error {
	path := domain.ModulesPath(dir)
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTreeRemoveFailed.Error()), "path", path)
	}
	return nil
}
