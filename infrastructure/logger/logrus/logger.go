// ABOUTME: Logrus-backed implementation of the core Logger interface
// ABOUTME: Emits structured fields at configurable level and format

package logrus

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger implements the core interfaces.Logger using logrus.
type Logger struct {
	log *logrus.Logger
}

// NewLogger creates a logrus logger. level accepts the usual names
// (debug/info/warn/error); anything else defaults to info. When json is true,
// entries are emitted as JSON lines instead of text.
func NewLogger(level string, json bool) *Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if json {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return &Logger{log: log}
}

// Debug logs a debug message with structured fields.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message with structured fields.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message with structured fields.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message with structured fields.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
