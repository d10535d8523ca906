// Package logging routes the standard logger to a rotated file so log output
// never lands on the terminal the UI is drawing.
package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"filetable/internal/config"
)

// EnvPath overrides the configured log file when set
const EnvPath = "FILETABLE_LOG"

const (
	defaultMaxSizeMB  = 5
	defaultMaxBackups = 3
	defaultMaxAgeDays = 28
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup points the standard logger at the configured destination.
// The returned closer must be closed on exit.
func Setup(cfg config.LogSettings) (io.Closer, error) {
	if cfg.Disabled {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}

	path := ResolvePath(cfg)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.SetOutput(io.Discard)
		return nopCloser{}, err
	}

	maxSize := cfg.MaxSizeMB
	if maxSize <= 0 {
		maxSize = defaultMaxSizeMB
	}

	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSize,
		MaxBackups: defaultMaxBackups,
		MaxAge:     defaultMaxAgeDays,
	}
	log.SetOutput(writer)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return writer, nil
}

// ResolvePath picks the log file: env override, then config, then the user cache dir
func ResolvePath(cfg config.LogSettings) string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	if cfg.Path != "" {
		return cfg.Path
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "filetable", "filetable.log")
}
