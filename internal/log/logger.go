package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger. Production writes plain JSON for log
// shippers; anything else gets the console writer and debug level.
func New(environment string) zerolog.Logger {
	var logger zerolog.Logger
	if environment == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(os.Stdout)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}

	return logger.With().
		Timestamp().
		Str("service", "kinea-api").
		Str("env", environment).
		Logger()
}
