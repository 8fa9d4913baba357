package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New creates a component-tagged logger. APP_ENV=dev switches to the console
// writer, anything else logs JSON to stdout.
func New(component string) zerolog.Logger {
	env := strings.ToLower(os.Getenv("APP_ENV"))
	if env == "dev" {
		writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		return zerolog.New(writer).With().Timestamp().Str("component", component).Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Str("component", component).Logger()
}

// SetLevel applies a global level by name.
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
