package telemetry

import (
	"log/slog"
	"os"
)

// InitSlog installs the default logger, verbose turns on debug records
// (http message ids, intermediate record sets).
func InitSlog(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: verbose,
	})
	slog.SetDefault(slog.New(handler))
}
