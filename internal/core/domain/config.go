package domain

// Config holds the npmbridge settings read from npmbridge.yaml.
type Config struct {
	// Dir is the absolute project root the settings were read for.
	// Empty when they are not tied to a directory.
	Dir string

	// NPM is the npm executable to run.
	NPM string

	// LockFile is the name of the project lock file, relative to the project root.
	LockFile string

	// BinDir overrides Composer's bin-dir when set.
	BinDir string

	// LinkConcurrency bounds how many binaries are linked at once.
	LinkConcurrency int

	// Environment holds variables set for every npm invocation.
	Environment map[string]string
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		NPM:             "npm",
		LockFile:        LockFileName,
		LinkConcurrency: 4,
	}
}
