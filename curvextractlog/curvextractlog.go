// Package curvextractlog is the ambient logging shim Design Notes calls for
// ("route verbose logging through a single callback with levels"): a small
// leveled interface over log/slog, grounded on udisondev-la2go's
// cmd/loginserver/main.go (slog.New(slog.NewTextHandler(...)), Info/Warn
// call shape).
package curvextractlog

import (
	"fmt"
	"log/slog"
	"os"
)

func sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// Logger is the leveled interface every component in this module accepts as
// an option, instead of calling log/slog directly, so a host can swap in
// its own handler (or silence logging entirely via Noop) without this
// module importing anything beyond log/slog itself.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// noop discards every log call. It is the default used when a component is
// constructed without an explicit Logger.
type noop struct{}

func (noop) Debugf(string, ...any) {}
func (noop) Infof(string, ...any)  {}
func (noop) Warnf(string, ...any)  {}

// Noop is the shared no-op Logger.
var Noop Logger = noop{}

// slogLogger adapts a *slog.Logger to the Logger interface.
type slogLogger struct {
	base *slog.Logger
}

func (l slogLogger) Debugf(format string, args ...any) {
	l.base.Debug(sprintf(format, args...))
}

func (l slogLogger) Infof(format string, args ...any) {
	l.base.Info(sprintf(format, args...))
}

func (l slogLogger) Warnf(format string, args ...any) {
	l.base.Warn(sprintf(format, args...))
}

// New wraps a *slog.Logger as a Logger.
func New(base *slog.Logger) Logger {
	return slogLogger{base: base}
}

// NewText builds a Logger writing leveled text lines to os.Stderr, matching
// la2go's cmd/loginserver construction.
func NewText(level slog.Level) Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return New(slog.New(handler))
}
