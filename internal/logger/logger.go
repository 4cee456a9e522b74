// Package logger configures the zerolog logger behind the --verbose flag.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a console logger at debug level when verbose is set, and a
// no-op logger otherwise. Log lines go to stderr so they never mix with
// pipeable output.
func New(verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(out).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
