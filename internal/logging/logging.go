// Package logging sets up the file logger. The TUI owns the terminal, so
// log output never goes to stdout or stderr.
package logging

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config controls where and how much is logged.
type Config struct {
	Path  string // Empty disables logging
	Level string // zerolog level name, defaults to info
}

var (
	mu      sync.RWMutex
	global  = zerolog.Nop()
	logFile *os.File
	logPath string
)

// Setup opens the log file and installs the logger returned by L.
// The returned func closes the file and restores the no-op logger.
func Setup(cfg Config) (func() error, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		reset()
		return func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		reset()
		return nil, err
	}

	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		reset()
		return nil, err
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	l := zerolog.New(f).Level(level).With().Timestamp().Logger()

	mu.Lock()
	closeFileLocked()
	global = l
	logFile = f
	logPath = cfg.Path
	mu.Unlock()

	l.Info().Str("path", cfg.Path).Str("level", level.String()).Msg("logger.initialized")

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		// A later Setup owns the current file.
		if logFile != f {
			return nil
		}
		cerr := logFile.Close()
		logFile = nil
		logPath = ""
		global = zerolog.Nop()
		return cerr
	}

	return cleanup, nil
}

// L returns the current logger.
func L() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Path returns the active log file path, or "".
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	closeFileLocked()
	global = zerolog.Nop()
	logPath = ""
}

// closeFileLocked closes the open log file, if any. mu must be held.
func closeFileLocked() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}
