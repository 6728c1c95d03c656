// Package logging builds the zerolog logger used by the demo driver.
package logging

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/kumarlokesh/sysd/exercises/persistent-trie/internal/config"
)

// New returns a logger writing to w at the configured level and format
func New(cfg config.LogConfig, w io.Writer) (zerolog.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return zerolog.Nop(), err
	}
	level, err := cfg.ZerologLevel()
	if err != nil {
		return zerolog.Nop(), err
	}

	out := w
	if cfg.Format == config.FormatConsole {
		out = zerolog.ConsoleWriter{Out: w}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
