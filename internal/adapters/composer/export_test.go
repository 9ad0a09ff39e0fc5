package composer

import "encoding/json"

// Truthy exposes the expose-npm-packages flag evaluation for tests.
func Truthy(raw string) bool {
	return truthy(json.RawMessage(raw))
}

// NewSourceWithEnv creates a Source reading Composer environment overrides from env.
func NewSourceWithEnv(env map[string]string) *Source {
	return &Source{getenv: func(key string) string { return env[key] }}
}
