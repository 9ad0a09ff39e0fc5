package domain

// Package is a primary (Composer) package together with its npm declarations.
type Package struct {
	// Name is the canonical package name (e.g., "acme/widgets").
	Name string

	// InstallPath is the package's install directory, relative to the project root.
	// It is empty for the root package.
	InstallPath string

	// Require holds the "require-npm" declarations.
	Require Requirements

	// RequireDev holds the "require-dev-npm" declarations. Only honored for the root package.
	RequireDev Requirements

	// Scripts holds the "scripts-npm" declarations.
	Scripts map[string]any

	// Config holds the "config-npm" declarations.
	Config map[string]any

	// ExposeToRoot is set by "expose-npm-packages". Such a package is not installed in its own
	// directory; its declarations are merged into the root location instead.
	ExposeToRoot bool
}

// Project is the enumerated set of primary packages of one project.
type Project struct {
	// Root is the project's own package.
	Root Package

	// Packages lists the installed packages in enumeration order.
	Packages []Package

	// NPMConfig holds the root "npm-config" settings layered over every location's config block.
	NPMConfig map[string]any

	// BinDir is the directory binaries are linked into, relative to the project root.
	BinDir string
}
