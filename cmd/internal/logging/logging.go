// Package logging points the global logrus logger at stderr or a rotating file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	writerMu  sync.Mutex
	logWriter *lumberjack.Logger
)

type Opts struct {
	Debug bool

	// if set, logs go to this file instead of stderr
	File string

	// rotation limits for File, in megabytes and days
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Configure sets the level and output of the standard logrus logger. It is
// safe to call more than once; a previous log file is closed.
func Configure(opts Opts) error {
	writerMu.Lock()
	defer writerMu.Unlock()

	if opts.Debug {
		log.SetLevel(log.DebugLevel)
	}

	if logWriter != nil {
		_ = logWriter.Close()
		logWriter = nil
	}

	if opts.File == "" {
		log.SetOutput(os.Stderr)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return fmt.Errorf("logging: failed to create log directory: %w", err)
	}
	maxSize := opts.MaxSizeMB
	if maxSize == 0 {
		maxSize = 10
	}
	logWriter = &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    maxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	}
	log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	log.SetOutput(logWriter)
	log.RegisterExitHandler(Close)
	return nil
}

// Close flushes and closes the log file, if any, and restores stderr.
func Close() {
	writerMu.Lock()
	defer writerMu.Unlock()

	if logWriter != nil {
		_ = logWriter.Close()
		logWriter = nil
		log.SetOutput(os.Stderr)
	}
}
