package domain

// Command is a subprocess invocation.
type Command struct {
	// Args holds the executable followed by its arguments.
	Args []string

	// WorkingDir is the directory the process runs in. It is never inherited implicitly.
	WorkingDir string

	// Environment holds variables overriding the inherited environment.
	Environment map[string]string
}
