// Package logger provides logging functionality for the KWS application.
package logger

import (
	"io"
	"os"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Level is the minimum severity a logger writes.
type Level string

// Supported log levels.
const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

// Logger interface provides structured logging capabilities.
type Logger interface {
	Debug(msg string, keyvals ...interface{})
	Info(msg string, keyvals ...interface{})
	Warn(msg string, keyvals ...interface{})
	Error(msg string, keyvals ...interface{})
}

// Options configures a charm backed logger.
type Options struct {
	Level  Level
	Output io.Writer
	JSON   bool
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

func (n *noopLogger) Debug(_ string, _ ...interface{}) {}
func (n *noopLogger) Info(_ string, _ ...interface{})  {}
func (n *noopLogger) Warn(_ string, _ ...interface{})  {}
func (n *noopLogger) Error(_ string, _ ...interface{}) {}

// charmLogger writes leveled key/value records through charmbracelet/log.
type charmLogger struct {
	mu     sync.Mutex
	logger *charmlog.Logger
}

// New creates a logger from the given options.
func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	l := charmlog.NewWithOptions(out, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           opts.Level.toCharm(),
	})
	if opts.JSON {
		l.SetFormatter(charmlog.JSONFormatter)
	}

	return &charmLogger{logger: l}
}

// NewDefaultLogger creates a logger that only reports warnings and errors to stderr.
func NewDefaultLogger() Logger {
	return New(Options{Level: WarnLevel})
}

// NewVerboseLogger creates a logger that reports everything down to debug level to stderr.
func NewVerboseLogger() Logger {
	return New(Options{Level: DebugLevel})
}

func (c *charmLogger) Debug(msg string, keyvals ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger.Debug(msg, keyvals...)
}

func (c *charmLogger) Info(msg string, keyvals ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger.Info(msg, keyvals...)
}

func (c *charmLogger) Warn(msg string, keyvals ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger.Warn(msg, keyvals...)
}

func (c *charmLogger) Error(msg string, keyvals ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger.Error(msg, keyvals...)
}

// ParseLevel converts a configuration string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch Level(s) {
	case DebugLevel, InfoLevel, WarnLevel, ErrorLevel:
		return Level(s)
	default:
		return InfoLevel
	}
}

func (l Level) toCharm() charmlog.Level {
	switch l {
	case DebugLevel:
		return charmlog.DebugLevel
	case WarnLevel:
		return charmlog.WarnLevel
	case ErrorLevel:
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}
