package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvpair/internal/config"
)

// NewLogger builds the application logger writing to out.
//
// The text format is a human-readable console output. The GELF format
// writes one GELF 1.1 message per line; zerolog's global settings are left
// untouched.
func NewLogger(conf config.LoggingConfig, out io.Writer) zerolog.Logger {
	if conf.Format == config.LogGelfFormat {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}

		return zerolog.New(newGelfWriter(out, hostname)).Level(conf.Level)
	}

	return zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = out
		w.TimeFormat = time.RFC3339
	})).Level(conf.Level).With().Timestamp().Logger()
}
