package config

// Bridgefile represents the structure of the npmbridge.yaml configuration file.
type Bridgefile struct {
	Version         string            `yaml:"version"`
	NPM             string            `yaml:"npm"`
	LockFile        string            `yaml:"lock-file"`
	BinDir          string            `yaml:"bin-dir"`
	LinkConcurrency int               `yaml:"link-concurrency"`
	Environment     map[string]string `yaml:"environment"`
}
