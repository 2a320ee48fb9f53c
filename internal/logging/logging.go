// Package logging provides the structured logger used throughout this
// module, replacing the teacher's stdlib-log-based internal/logger with
// go.uber.org/zap — the structured logger already present in this
// dependency pack's agent services.
package logging

import "go.uber.org/zap"

// Nop returns a logger that discards everything, the default for a Hook
// constructed without WithLogger.
func Nop() *zap.Logger { return zap.NewNop() }

// Default returns a human-readable development logger, or a no-op logger
// if that cannot be built. The demo CLI (cmd/uiohook-tap) builds its own
// level-configured logger instead of calling this.
func Default() *zap.Logger {
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
