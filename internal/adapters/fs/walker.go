// Package fs provides file system adapters for installed dependency trees and their binaries.
package fs

import (
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// Walker lists directory entries.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Entries yields the paths of the visible entries directly inside dir, in name order.
// Hidden entries are skipped, matching a shell glob of dir/*. A missing or unreadable
// dir yields nothing.
func (w *Walker) Entries(dir string) iter.Seq[string] {
	return func(yield func(string) bool) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return
		}
		for _, entry := range entries {
			if strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			if !yield(filepath.Join(dir, entry.Name())) {
				return
			}
		}
	}
}
