package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/phsym/console-slog"
	"github.com/urfave/cli/v3"
)

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(console.NewHandler(w, &console.HandlerOptions{
		Level:      level,
		TimeFormat: time.RFC3339Nano,
		NoColor:    true,
	}))
}

func (me runner) logger(cmd *cli.Command) *slog.Logger {
	return newLogger(me.errOut, cmd.Bool("verbose")).With(slog.String("command", cmd.Name))
}
