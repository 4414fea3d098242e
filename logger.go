package trtc

import (
	"log/slog"
	"sync/atomic"
)

// silent is installed until SetLogger is called.
var silent = slog.New(slog.DiscardHandler)

// current holds the *slog.Logger used by Div, NewCanvas and the canvas
// accessors. ForEachRow workers read it concurrently.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger configures the logger for trtc.
// By default, trtc produces no log output. Pass nil to restore the
// default silent behavior.
//
// Log levels used by trtc:
//   - [slog.LevelDebug]: canvas allocation, row partitioning, rejected
//     pixel coordinates
//   - [slog.LevelError]: invalid divisor, logged right before the panic
//
// Example:
//
//	trtc.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the current logger used by trtc.
func Logger() *slog.Logger {
	return current.Load()
}
