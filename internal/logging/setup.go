// Package logging configures the process-wide zerolog logger and owns the
// read side of the daemon's log file (tail, size, clear).
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation bounds for the daemon log. Rotation is size-triggered only; the
// active file never grows past MaxSizeMB and at most MaxBackups shifted
// files are retained.
const (
	MaxSizeMB  = 1
	MaxBackups = 3
)

// Setup initializes process-wide logging for the daemon: console output on
// stderr plus a rotating file sink at logFile. Level names follow the
// persisted settings (debug, info, warn, error); anything else means info.
func Setup(level, logFile string) error {
	if err := os.MkdirAll(filepath.Dir(logFile), 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	fileWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    MaxSizeMB,
		MaxBackups: MaxBackups,
		MaxAge:     0,
		Compress:   false,
	}

	// Log files hold container and network names only, but keep them
	// owner-readable like the config document.
	if err := os.Chmod(logFile, 0600); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("file", logFile).Msg("Failed to set secure permissions on log file")
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}
	log.Logger = zerolog.New(io.MultiWriter(consoleWriter, fileWriter)).With().Timestamp().Logger()

	ApplyLevel(level)

	log.Info().Str("log_file", logFile).Str("level", zerolog.GlobalLevel().String()).Msg("File logging initialized")
	return nil
}

// ConsoleOnly configures console-only logging for short-lived CLI commands
// that must not touch the daemon's log file.
func ConsoleOnly(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	ApplyLevel(level)
}

// ApplyLevel re-applies the configured threshold. The daemon calls this per
// event so a settings edit takes effect without a restart.
func ApplyLevel(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}
