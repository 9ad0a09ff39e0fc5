package ports

// TreeRemover removes installed dependency trees.
//
//go:generate go run go.uber.org/mock/mockgen -source=tree.go -destination=mocks/mock_tree.go -package=mocks
type TreeRemover interface {
	// RemoveTree recursively deletes the installed dependency tree under dir.
	// A missing tree is not an error.
	RemoveTree(dir string) error
}
