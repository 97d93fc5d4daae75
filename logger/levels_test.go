// logger/levels_test.go
package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevelFromString(t *testing.T) {
	assert.Equal(t, LogLevelDebug, ParseLogLevelFromString("debug"))
	assert.Equal(t, LogLevelWarn, ParseLogLevelFromString("LogLevelWarn"))
	assert.Equal(t, LogLevelError, ParseLogLevelFromString("error"))
	assert.Equal(t, LogLevelInfo, ParseLogLevelFromString("not-a-level"))
}

func TestLogLevelFromVerbosity(t *testing.T) {
	assert.Equal(t, LogLevelInfo, LogLevelFromVerbosity(0))
	assert.Equal(t, LogLevelInfo, LogLevelFromVerbosity(1))
	assert.Equal(t, LogLevelDebug, LogLevelFromVerbosity(2))
	assert.Equal(t, LogLevelDebug, LogLevelFromVerbosity(3))
}

func TestBuildLoggerLevel(t *testing.T) {
	log := BuildLogger(LogLevelWarn, "console", "\t")
	assert.Equal(t, LogLevelWarn, log.GetLogLevel())

	log.SetLevel(LogLevelDebug)
	assert.Equal(t, LogLevelDebug, log.GetLogLevel())
}
