package app

import (
	"io"
	"log/slog"

	"extenum-generator/internal/diagnostic"
)

// LevelFromFlags returns the log level for the given verbosity flags: -vv
// shows debug, -v info and -q errors only. The default shows warnings.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger returns a text logger writing to w at the given level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// logDiagnostics logs warnings and infos; errors are returned instead.
func logDiagnostics(logger *slog.Logger, diags diagnostic.Diagnostics) {
	for _, d := range diags.Warnings {
		logger.Warn(d.Message, "code", d.Code, "enum", d.Enum, "member", d.Member)
	}

	for _, d := range diags.Infos {
		logger.Info(d.Message, "code", d.Code, "enum", d.Enum, "member", d.Member)
	}
}
