package logging

import (
	"log/slog"
	"net/url"
	"strings"
)

var sensitiveParams = []string{"apikey", "api_key", "token", "key"}

// Info logs an info message when a logger is configured.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs a warning when a logger is configured.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs an error when a logger is configured.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, "error", err)
	}
	logger.Error(msg, args...)
}

// RedactQuery masks values of credential-like query parameters.
func RedactQuery(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "[unparseable]"
	}
	changed := false
	for key := range values {
		if isSensitive(key) {
			values[key] = []string{"REDACTED"}
			changed = true
		}
	}
	if !changed {
		return rawQuery
	}
	return values.Encode()
}

func isSensitive(key string) bool {
	lower := strings.ToLower(key)
	for _, s := range sensitiveParams {
		if lower == s {
			return true
		}
	}
	return false
}
