// Package logging builds the process logger from the settings and carries
// it through contexts. Nothing here touches the slog default logger.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"

	"cloudeng.io/logging/ctxlog"
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/config"
)

// Enabled reports whether s turns logging on: always in development, and
// elsewhere only when debug is forced.
func Enabled(s *config.Settings) bool {
	return s != nil && (s.IsDevelopment() || s.Debug)
}

// New returns a JSON logger writing to w when logging is enabled and a
// logger that discards everything otherwise.
func New(w io.Writer, s *config.Settings) *slog.Logger {
	if !Enabled(s) {
		return slog.New(slog.DiscardHandler)
	}

	level := slog.LevelInfo
	if s.Debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: s.Debug,
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// NewContext attaches the logger built by New to ctx.
func NewContext(ctx context.Context, w io.Writer, s *config.Settings) context.Context {
	return ctxlog.WithLogger(ctx, New(w, s))
}

// FromContext returns the logger carried by ctx, or a discarding logger.
func FromContext(ctx context.Context) *slog.Logger {
	return ctxlog.Logger(ctx)
}

// WithComponent returns a context whose logger tags records with component.
func WithComponent(ctx context.Context, component string) context.Context {
	return ctxlog.WithAttributes(ctx, config.LogKeyComponent, component)
}

// LogStartup logs environment details useful for debugging.
func LogStartup(logger *slog.Logger, s *config.Settings) {
	logger.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.String(config.LogKeyRunEnv, s.RunEnv),
		slog.String(config.LogKeyLang, s.Language),
		slog.Int(config.LogKeyPID, os.Getpid()),
	)
}
