// logger/logfields.go
package logger

import (
	"time"

	"go.uber.org/zap"
)

// LogError logs an error that occurs during the processing of an HTTP request, including the HTTP
// method, URL, status code, server status message and raw response body for debugging.
func (d *defaultLogger) LogError(event string, method string, url string, statusCode int, serverStatusMessage string, err error, rawResponse string) {
	fields := []zap.Field{
		zap.String("event", event),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status_code", statusCode),
		zap.String("status_message", serverStatusMessage),
		zap.Error(err),
		zap.String("raw_response", rawResponse),
	}
	d.logger.Error("Error during HTTP request", fields...)
}

// LogRetryAttempt logs a retry attempt for an HTTP request, including the attempt number,
// the reason for the retry and the wait duration before the next attempt.
func (d *defaultLogger) LogRetryAttempt(event string, method string, url string, attempt int, reason string, waitDuration time.Duration, err error) {
	fields := []zap.Field{
		zap.String("event", event),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("attempt", attempt),
		zap.String("reason", reason),
		zap.Duration("wait_duration", waitDuration),
		zap.Error(err),
	}
	d.logger.Warn("HTTP request retry", fields...)
}

// LogRequestEnd logs the completion of an HTTP request, including the HTTP method, URL,
// status code, and duration. Intended to be called at the end of a request lifecycle.
func (d *defaultLogger) LogRequestEnd(event string, method string, url string, statusCode int, duration time.Duration) {
	fields := []zap.Field{
		zap.String("event", event),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status_code", statusCode),
		zap.Duration("duration", duration),
	}
	d.logger.Info("HTTP request completed", fields...)
}
