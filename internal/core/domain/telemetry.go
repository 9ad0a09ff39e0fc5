package domain

// LogLevel is the severity of a line of tool output or a vertex message.
type LogLevel int

const (
	// LogLevelInfo marks regular progress output.
	LogLevelInfo LogLevel = iota
	// LogLevelWarn marks output the user should look at, such as npm's stderr.
	LogLevelWarn
)

// String returns the lower-case level name. Unknown levels at or above warn are "warn".
func (l LogLevel) String() string {
	if l >= LogLevelWarn {
		return "warn"
	}
	return "info"
}
