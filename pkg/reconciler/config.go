package reconciler

import (
	"log/slog"
	"sync/atomic"
)

// DevMode enables the eager hook-order sequence diagnostic described in
// hookstate.go. When false (production default) no sequence is recorded and
// divergent hook order is caught only by the cheaper, always-on cell-tag
// mismatch check in HookState.nextCell.
var DevMode = false

var logger atomic.Pointer[slog.Logger]

// SetLogger installs the structured logger this package uses for
// diagnostic-only events. The one event logged is an unhandled error that
// unmounts a root during a background flush (guardedBackground in
// scheduler.go); effect-cleanup panics and hook-order violations are not
// logged. Logging never substitutes for the error-boundary/unhandled-error
// data flow in errorboundary.go and scheduler.go. Defaults to slog.Default().
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func log() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}
