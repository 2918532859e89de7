package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "wordle-demo.log")

	cleanup, err := Setup(Config{Path: path, Level: "debug"})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	if Path() != path {
		t.Fatalf("expected path %s, got %s", path, Path())
	}

	l := L()
	l.Debug().Str("word", "slate").Msg("check.dispatched")

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"message":"logger.initialized"`) {
		t.Errorf("expected init line, got %s", out)
	}
	if !strings.Contains(out, `"word":"slate"`) {
		t.Errorf("expected debug line, got %s", out)
	}
	if Path() != "" {
		t.Errorf("expected path reset after cleanup")
	}
}

func TestSetupRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordle-demo.log")

	cleanup, err := Setup(Config{Path: path, Level: "warn"})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	l := L()
	l.Info().Msg("should.not.appear")
	cleanup()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "should.not.appear") {
		t.Fatalf("info line written at warn level")
	}
}

func TestSetupWithoutPathIsNoop(t *testing.T) {
	cleanup, err := Setup(Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if Path() != "" {
		t.Fatalf("expected no log path")
	}
}

func TestSetupAgainClosesPreviousFile(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	if _, err := Setup(Config{Path: first}); err != nil {
		t.Fatalf("setup: %v", err)
	}
	mu.RLock()
	firstFile := logFile
	mu.RUnlock()

	cleanup, err := Setup(Config{Path: second})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer cleanup()

	if _, err := firstFile.Write([]byte("x")); !errors.Is(err, os.ErrClosed) {
		t.Fatalf("expected first log file to be closed, got %v", err)
	}
	if Path() != second {
		t.Fatalf("expected path %s, got %s", second, Path())
	}
}

func TestSetupWithoutPathClosesOpenFile(t *testing.T) {
	if _, err := Setup(Config{Path: filepath.Join(t.TempDir(), "wordle-demo.log")}); err != nil {
		t.Fatalf("setup: %v", err)
	}
	mu.RLock()
	open := logFile
	mu.RUnlock()

	if _, err := Setup(Config{}); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := open.Write([]byte("x")); !errors.Is(err, os.ErrClosed) {
		t.Fatalf("expected log file to be closed, got %v", err)
	}
}
