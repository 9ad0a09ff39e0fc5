package logger

// Exported for white-box testing of the error chain formatting.
var (
	CollectMessages = collectMessages
	FormatChain     = formatChain
)
