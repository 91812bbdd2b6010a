package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/baditaflorin/l"
)

func TestNopDiscards(t *testing.T) {
	logger := Nop()
	logger.Debug("debug", "k", 1)
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error", "err", "boom")
	if err := logger.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatal("OrNop(nil) returned nil")
	}
	custom := Nop()
	if OrNop(custom) != custom {
		t.Error("OrNop should keep a non-nil logger")
	}
}

func TestNewWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hello", "stage", "case-fold")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("hello")) {
		t.Errorf("expected log output to contain message, got %q", buf.String())
	}
}

func TestNewBadFile(t *testing.T) {
	_, err := New(Config{File: filepath.Join(t.TempDir(), "missing", "dir", "canon.log")})
	if err == nil {
		t.Error("expected error for unwritable log file")
	}
}

func TestNewFileClosedWithLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canon.log")

	var file *os.File
	orig := createLogger
	createLogger = func(cfg l.Config) (l.Logger, error) {
		file, _ = cfg.Output.(*os.File)
		return orig(cfg)
	}
	defer func() { createLogger = orig }()

	logger, err := New(Config{File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("written to file")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("log file = %q, want the message", data)
	}
	if file == nil {
		t.Fatal("logger output was not the log file")
	}
	if _, err := file.Write([]byte("x")); !errors.Is(err, os.ErrClosed) {
		t.Errorf("write after Close = %v, want os.ErrClosed", err)
	}
}

func TestNewClosesFileWhenLoggerFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canon.log")

	var file *os.File
	orig := createLogger
	createLogger = func(cfg l.Config) (l.Logger, error) {
		file, _ = cfg.Output.(*os.File)
		return nil, errors.New("factory down")
	}
	defer func() { createLogger = orig }()

	if _, err := New(Config{File: path}); err == nil {
		t.Fatal("expected error from the logger factory")
	}
	if file == nil {
		t.Fatal("log file was not opened")
	}
	if _, err := file.Write([]byte("x")); !errors.Is(err, os.ErrClosed) {
		t.Errorf("write after failed New = %v, want os.ErrClosed", err)
	}
}
