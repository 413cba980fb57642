package config

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// SetupLogger creates a dual-output logger: text to console, JSON to file.
// The terminal UI passes io.Discard as console so the screen stays clean.
// Returns the logger and a cleanup function to close the file.
func SetupLogger(logFile string, level slog.Level, console io.Writer) (*slog.Logger, func() error) {
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger := slog.New(slog.NewTextHandler(console, &slog.HandlerOptions{Level: level}))
		logger.Error("failed to open log file, using console only", "error", err, "file", logFile)
		return logger, func() error { return nil }
	}

	logger := newFanoutLogger(console, file, level)

	cleanup := func() error {
		return file.Close()
	}

	return logger, cleanup
}

// newFanoutLogger writes text to console and JSON to file.
func newFanoutLogger(console, file io.Writer, level slog.Level) *slog.Logger {
	consoleHandler := slog.NewTextHandler(console, &slog.HandlerOptions{Level: level})
	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	return slog.New(slogmulti.Fanout(consoleHandler, fileHandler))
}
