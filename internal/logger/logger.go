package logger

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the leveled logger handed to every component. The context
// argument keeps call sites uniform even where no request-scoped
// fields exist yet.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
	WithField(key string, value interface{}) Logger
}

type implLogger struct {
	entry *logrus.Entry
}

// New creates a Logger writing to stdout. level is one of
// debug/info/warn/error, anything else defaults to info. format "json"
// switches to the JSON formatter, any other value keeps text output.
func New(level, format string) Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	if format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	return &implLogger{entry: logrus.NewEntry(l)}
}

// WithField returns a Logger that stamps every line with key=value.
// The pipeline uses this to tag all output of a run with its run ID.
func (l *implLogger) WithField(key string, value interface{}) Logger {
	return &implLogger{entry: l.entry.WithField(key, value)}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.entry.Debugf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.entry.Infof(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.entry.Warnf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.entry.Errorf(msg, args...)
}
