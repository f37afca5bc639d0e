package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

func setupLogger(cfg logConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(err, "invalid log level %#v", cfg.Level)
	}

	out := w
	if !cfg.JSON {
		out = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
