// Package logging defines the structured logger used across canon and its
// default construction on top of github.com/baditaflorin/l.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/baditaflorin/l"
)

// Logger is the key/value logger port. Any l.Logger satisfies it.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Close() error
}

// Config selects where and how log lines are written.
type Config struct {
	Output io.Writer // defaults to os.Stderr
	File   string    // appended to instead of Output when set
	JSON   bool
}

// createLogger is the l factory call, replaced in tests.
var createLogger = func(cfg l.Config) (l.Logger, error) {
	return l.NewStandardFactory().CreateLogger(cfg)
}

// New builds a Logger through the standard l factory. When cfg.File is set the
// returned logger owns the file and closes it on Close.
func New(cfg Config) (Logger, error) {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	var file *os.File
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		file = f
		output = f
	}

	logger, err := createLogger(l.Config{
		Output:      output,
		JsonFormat:  cfg.JSON,
		AsyncWrite:  false,
		BufferSize:  64 * 1024,
		MaxFileSize: 10 * 1024 * 1024, // 10MB max file size
		MaxBackups:  3,
		AddSource:   false,
		Metrics:     false,
	})
	if err != nil {
		if file != nil {
			file.Close()
		}
		return nil, fmt.Errorf("create logger: %w", err)
	}
	if file != nil {
		return &fileLogger{Logger: logger, file: file}, nil
	}
	return logger, nil
}

// fileLogger closes the log file after the logger has flushed. The l logger
// leaves a synchronous writer's output open.
type fileLogger struct {
	Logger
	file *os.File
}

func (f *fileLogger) Close() error {
	err := f.Logger.Close()
	if cerr := f.file.Close(); err == nil {
		err = cerr
	}
	return err
}

type nop struct{}

func (nop) Debug(string, ...interface{}) {}
func (nop) Info(string, ...interface{})  {}
func (nop) Warn(string, ...interface{})  {}
func (nop) Error(string, ...interface{}) {}
func (nop) Close() error                 { return nil }

// Nop returns a Logger that discards everything. Library components use it
// until a real logger is assigned.
func Nop() Logger { return nop{} }

// OrNop returns logger, or Nop when logger is nil.
func OrNop(logger Logger) Logger {
	if logger == nil {
		return Nop()
	}
	return logger
}
