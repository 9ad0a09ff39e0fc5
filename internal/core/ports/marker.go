package ports

import "go.trai.ch/npmbridge/internal/core/domain"

// MarkerStore persists the snapshot installed at each location, next to the installed tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=marker.go -destination=mocks/mock_marker.go -package=mocks
type MarkerStore interface {
	// Get returns the snapshot installed in dir.
	// Returns nil, nil if no usable marker exists.
	Get(dir string) (domain.Snapshot, error)

	// Put records snap as installed in dir.
	Put(dir string, snap domain.Snapshot) error
}
