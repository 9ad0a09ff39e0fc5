package ports

import "go.trai.ch/npmbridge/internal/core/domain"

// LockStore reads and writes the project-wide lock.
//
//go:generate go run go.uber.org/mock/mockgen -source=lock_store.go -destination=mocks/mock_lock_store.go -package=mocks
type LockStore interface {
	// Load reads the lock of the project at root.
	// Returns nil, nil if no lock exists.
	Load(root string) (*domain.ProjectLock, error)

	// Save replaces the lock of the project at root.
	Save(root string, lock *domain.ProjectLock) error
}
