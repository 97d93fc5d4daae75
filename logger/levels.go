// logger/levels.go
package logger

// LogLevel represents the level of logging. Higher values denote more severe log messages.
type LogLevel int

const (
	// LogLevelDebug is for messages that are useful during software debugging.
	LogLevelDebug LogLevel = -1 // Zap's DEBUG level
	// LogLevelInfo is for informational messages, indicating normal operation.
	LogLevelInfo LogLevel = 0 // Zap's INFO level
	// LogLevelWarn is for messages that highlight potential issues in the system.
	LogLevelWarn LogLevel = 1 // Zap's WARN level
	// LogLevelError is for messages that highlight errors in the application's execution.
	LogLevelError LogLevel = 2 // Zap's ERROR level
	// LogLevelFatal is for errors that require immediate program termination.
	LogLevelFatal LogLevel = 5 // Zap's FATAL level
	LogLevelNone  LogLevel = 6
)

// ParseLogLevelFromString takes a string representation of the log level and returns the corresponding LogLevel.
// Used to convert a string log level from a configuration file to a strongly-typed LogLevel.
func ParseLogLevelFromString(levelStr string) LogLevel {
	switch levelStr {
	case "LogLevelDebug", "debug":
		return LogLevelDebug
	case "LogLevelInfo", "info":
		return LogLevelInfo
	case "LogLevelWarn", "warn":
		return LogLevelWarn
	case "LogLevelError", "error":
		return LogLevelError
	case "LogLevelFatal", "fatal":
		return LogLevelFatal
	default:
		return LogLevelInfo
	}
}

// LogLevelFromVerbosity maps the CLI verbosity counter onto a LogLevel.
// Zero and one keep the default info level, two and above enables full
// debug output.
func LogLevelFromVerbosity(verbosity int) LogLevel {
	if verbosity >= 2 {
		return LogLevelDebug
	}
	return LogLevelInfo
}
