package ports

import (
	"context"
	"io"

	"go.trai.ch/npmbridge/internal/core/domain"
)

// PackageManager drives the external npm tool at one location.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type PackageManager interface {
	// Install runs the install operation in dir against the manifest already written there.
	Install(ctx context.Context, dir string, stdout, stderr io.Writer) error

	// Shrinkwrap asks the tool to capture the exact installed tree in dir and returns it.
	Shrinkwrap(ctx context.Context, dir string, stdout, stderr io.Writer) (domain.Snapshot, error)
}
