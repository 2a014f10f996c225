package ultralight

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	logger    atomic.Pointer[zap.Logger]
	nopLogger = zap.NewNop()
)

// Logger returns the package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nopLogger
}

// SetLogger configures the package's logger. It receives loader diagnostics
// and lifecycle events; engine log messages go through SetPlatformLogger.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
