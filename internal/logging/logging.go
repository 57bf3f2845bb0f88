// Package logging builds the diagnostic logger behind the verbose flag.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls how much the tool says about its work.
type Config struct {
	Verbose bool
	Output  io.Writer
}

// New returns a console logger writing to cfg.Output, or a disabled logger
// when verbose diagnostics are off. Output defaults to stderr so log lines
// never mix with the run summary.
func New(cfg Config) zerolog.Logger {
	if !cfg.Verbose {
		return zerolog.Nop()
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	writer := zerolog.ConsoleWriter{
		Out:        output,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
