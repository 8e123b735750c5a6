package utils

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger builds the application logger. Every component receives this
// handle from the caller that constructed it; nothing logs through a global.
func NewLogger(level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.DebugLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
}
