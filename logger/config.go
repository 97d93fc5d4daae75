// logger/config.go
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// BuildLogger creates and returns a new zap logger instance wrapped in the Logger interface.
// It configures the logger with the requested encoding ("json" or "console") and ensures
// timestamps are RFC3339 encoded. The function panics if the logger cannot be initialized.
func BuildLogger(logLevel LogLevel, encoding string, logConsoleSeparator string) Logger {

	// Set up custom encoder configuration
	encoderCfg := zap.NewProductionEncoderConfig()

	// Time settings
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder

	// Log level settings
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	// Additional settings
	encoderCfg.MessageKey = "msg"
	encoderCfg.LevelKey = "level"
	encoderCfg.NameKey = "logger"
	encoderCfg.LineEnding = zapcore.DefaultLineEnding
	encoderCfg.EncodeDuration = zapcore.StringDurationEncoder

	// Console-specific settings (if using console encoding)
	if encoding == "console" {
		encoderCfg.ConsoleSeparator = logConsoleSeparator
	}

	// Convert the custom LogLevel to zap's logging level
	zapLogLevel := convertToZapLevel(logLevel)

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(zapLogLevel),
		Development:       false,
		Encoding:          encoding,
		DisableCaller:     true,
		DisableStacktrace: true,
		Sampling:          nil,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}

	// Build the logger from the configuration
	logger := zap.Must(config.Build())

	return &defaultLogger{
		logger:   logger,
		logLevel: logLevel,
	}
}

// convertToZapLevel converts the custom LogLevel to a zapcore.Level
func convertToZapLevel(level LogLevel) zapcore.Level {
	switch level {
	case LogLevelDebug:
		return zap.DebugLevel
	case LogLevelInfo:
		return zap.InfoLevel
	case LogLevelWarn:
		return zap.WarnLevel
	case LogLevelError:
		return zap.ErrorLevel
	case LogLevelFatal:
		return zap.FatalLevel
	default:
		return zap.InfoLevel
	}
}
