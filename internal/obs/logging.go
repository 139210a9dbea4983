// Package obs contains observability utilities such as logging.
package obs

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the global structured logger used by the service.
//
// It defaults to slog's default logger until InitLogger is called.
var Logger = slog.Default()

// InitLogger initializes the global Logger with a JSON handler on stdout.
// Unknown levels fall back to info.
func InitLogger(level string) {
	InitLoggerTo(os.Stdout, level)
}

// InitLoggerTo is InitLogger with an explicit writer.
func InitLoggerTo(w io.Writer, level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	Logger = slog.New(h)
}
