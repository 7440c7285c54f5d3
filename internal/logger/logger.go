// Package logger builds the zerolog.Logger used by the huffle command.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/chronos-tachyon/huffle/internal/config"
)

// New builds a logger writing to w, configured by logger.level,
// logger.prettier and logger.time-format.
func New(conf *config.Conf, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(conf.String(config.KeyLoggerLevel, "info"))
	if err != nil {
		return zerolog.Nop(), err
	}

	timeFormat := conf.String(config.KeyLoggerTimeFormat, time.RFC3339)
	zerolog.TimeFieldFormat = timeFormat

	if conf.Bool(config.KeyLoggerPrettier, true) {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: timeFormat}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
