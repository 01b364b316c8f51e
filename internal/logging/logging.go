package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// LevelEnv names the environment variable holding the log level.
const LevelEnv = "SMSTX_LOG_LEVEL"

// New creates a logger writing to w at the given level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "smstx",
	})
}

// LevelFromEnv parses SMSTX_LOG_LEVEL. Unknown or empty values yield info.
func LevelFromEnv() log.Level {
	level, err := log.ParseLevel(strings.TrimSpace(os.Getenv(LevelEnv)))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
