// ABOUTME: Standard logger implementation backed by logrus
// ABOUTME: Provides structured logging with level and format support

package standard

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// StandardLogger implements the Logger interface using logrus
type StandardLogger struct {
	log *logrus.Logger
}

// Option configures a StandardLogger
type Option func(*logrus.Logger)

// WithLevel sets the minimum level. Unknown levels fall back to info.
func WithLevel(level string) Option {
	return func(l *logrus.Logger) {
		parsed, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
		if err != nil {
			parsed = logrus.InfoLevel
		}
		l.SetLevel(parsed)
	}
}

// WithFormat selects "json" or "text" output
func WithFormat(format string) Option {
	return func(l *logrus.Logger) {
		if strings.EqualFold(format, "text") {
			l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			return
		}
		l.SetFormatter(&logrus.JSONFormatter{})
	}
}

// WithOutput redirects log output
func WithOutput(w io.Writer) Option {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

// NewStandardLogger creates a new logger writing JSON at info level to stdout
func NewStandardLogger(opts ...Option) *StandardLogger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	for _, opt := range opts {
		opt(l)
	}
	return &StandardLogger{log: l}
}

// Debug logs a debug message
func (l *StandardLogger) Debug(msg string, fields map[string]interface{}) {
	l.entry(fields).Debug(msg)
}

// Info logs an info message
func (l *StandardLogger) Info(msg string, fields map[string]interface{}) {
	l.entry(fields).Info(msg)
}

// Warn logs a warning message
func (l *StandardLogger) Warn(msg string, fields map[string]interface{}) {
	l.entry(fields).Warn(msg)
}

// Error logs an error message
func (l *StandardLogger) Error(msg string, fields map[string]interface{}) {
	l.entry(fields).Error(msg)
}

// Logrus exposes the underlying logger
func (l *StandardLogger) Logrus() *logrus.Logger {
	return l.log
}

func (l *StandardLogger) entry(fields map[string]interface{}) *logrus.Entry {
	if len(fields) == 0 {
		return logrus.NewEntry(l.log)
	}
	return l.log.WithFields(logrus.Fields(fields))
}
