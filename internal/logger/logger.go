package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the application logger for the given environment. Development
// gets a human-readable console writer on stderr; production logs JSON.
func New(env string) zerolog.Logger {
	if env == "production" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(out).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}
