package ports

import "context"

// BinaryLinker exposes installed npm executables in the project's bin dir.
//
//go:generate go run go.uber.org/mock/mockgen -source=linker.go -destination=mocks/mock_linker.go -package=mocks
type BinaryLinker interface {
	// Link links every entry of srcDir into binDir and returns how many were linked.
	// A missing srcDir links nothing.
	Link(ctx context.Context, srcDir, binDir string) (int, error)
}
