// Package logging configures the global zerolog logger.
//
// The terminal belongs to the game screen while it runs, so log output goes
// to a file or nowhere at all.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config selects the log level and destination.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...). Empty means info.
	Level string
	// File receives JSON log lines. Empty discards all output.
	File string
}

// Setup installs the global logger and returns a function that closes the
// log file, if one was opened.
func Setup(cfg Config) (closeFn func() error, err error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		level, err = zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
		}
	}
	zerolog.SetGlobalLevel(level)

	if cfg.File == "" {
		log.Logger = zerolog.New(io.Discard)
		return func() error { return nil }, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f.Close, nil
}
