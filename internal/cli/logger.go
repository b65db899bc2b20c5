package cli

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"betfair/internal/config"
)

// setupLogger builds the logger described by cfg. When cfg.File is set the output
// goes to a rotated file instead of stderr and the returned closer must be closed.
func setupLogger(cfg config.LoggingConfig, stderr io.Writer) (zerolog.Logger, io.Closer) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var (
		out    io.Writer = stderr
		closer io.Closer
	)
	color := cfg.Color
	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		out, closer = file, file
		color = false
	}

	if cfg.Format == "json" {
		return zerolog.New(out).Level(level).With().Timestamp().Logger(), closer
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger(), closer
}
