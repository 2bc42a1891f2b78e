package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

// Logger is a wrapper around logrus.Logger.
type Logger struct {
	*logrus.Logger
}

// New creates a logger writing text to stderr at info level.
func New() *Logger {
	return NewWithOutput(os.Stderr)
}

// NewWithOutput creates a logger writing to w.
func NewWithOutput(w io.Writer) *Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	log.SetLevel(logrus.InfoLevel)

	return &Logger{Logger: log}
}

// SetLevel sets the logging level by name. Unknown names mean info.
func (l *Logger) SetLevel(level string) {
	switch strings.ToLower(level) {
	case "trace":
		l.Logger.SetLevel(logrus.TraceLevel)
	case "debug":
		l.Logger.SetLevel(logrus.DebugLevel)
	case "warn":
		l.Logger.SetLevel(logrus.WarnLevel)
	case "error":
		l.Logger.SetLevel(logrus.ErrorLevel)
	default:
		l.Logger.SetLevel(logrus.InfoLevel)
	}
}

// SetFormat switches between "text" and "json" output.
func (l *Logger) SetFormat(format string) {
	if strings.EqualFold(format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
		return
	}

	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// Dump logs a deep dump of v at trace level.
func (l *Logger) Dump(label string, v any) {
	if !l.IsLevelEnabled(logrus.TraceLevel) {
		return
	}

	l.Trace(label + "\n" + spew.Sdump(v))
}
