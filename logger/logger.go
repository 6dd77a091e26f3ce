/* logger.go
 * Contains the zerolog constructor shared by main and the packages that log.
 */

package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a logger writing JSON lines to stdout at the given level.
// Unknown or empty level names fall back to info.
func New(level string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).With().Timestamp().Logger().Level(parsed)
}
