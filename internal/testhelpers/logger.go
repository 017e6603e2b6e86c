package testhelpers

import (
	"io"
	"log/slog"

	"github.com/fitevolve/fitevolve/internal/logging"
)

// NewLogger creates a new logger with the given log sink such as testhelpers.Writer.
func NewLogger(logSink io.Writer) *slog.Logger {
	return logging.New(logSink, slog.LevelDebug)
}
