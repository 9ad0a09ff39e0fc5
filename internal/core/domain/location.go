package domain

// Location is the root directory of one npm install tree.
type Location struct {
	// Key identifies the location in the project lock: a package name or SelfKey.
	Key string

	// Path is the directory as shown to users, relative to the project root.
	Path string

	// Dir is the absolute directory npm runs in.
	Dir string

	// IsRoot marks the project root. Its manifest is kept after the install.
	IsRoot bool
}
