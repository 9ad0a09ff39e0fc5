package ports

import "go.trai.ch/npmbridge/internal/core/domain"

// PackageSource enumerates the primary packages of a project and their npm declarations.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_source.go -destination=mocks/mock_package_source.go -package=mocks
type PackageSource interface {
	// Load returns the root package and every installed package of the project at root,
	// in the order the host package manager lists them.
	Load(root string) (*domain.Project, error)
}
