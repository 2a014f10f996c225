package ultralight

import (
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// LogLevel is the severity of an engine log message.
type LogLevel int32

const (
	LogLevelError   = LogLevel(kLogLevel_Error)
	LogLevelWarning = LogLevel(kLogLevel_Warning)
	LogLevelInfo    = LogLevel(kLogLevel_Info)
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelError:
		return "error"
	case LogLevelWarning:
		return "warning"
	case LogLevelInfo:
		return "info"
	}
	return fmt.Sprintf("LogLevel(%d)", int32(l))
}

// LoggerFunc receives engine log messages. It is called from engine threads.
type LoggerFunc func(level LogLevel, message string)

var platformLog struct {
	mu       sync.RWMutex
	handler  LoggerFunc
	poisoned atomic.Bool
}

// SetPlatformLogger routes engine log messages to fn, replacing any previous
// handler. If an earlier handler panicked, logging stays disabled and the
// call is ignored.
func SetPlatformLogger(fn LoggerFunc) {
	mustLoad()
	if platformLog.poisoned.Load() {
		Logger().Warn("platform logger disabled by an earlier panic, ignoring new handler")
		return
	}
	platformLog.mu.Lock()
	platformLog.handler = fn
	platformLog.mu.Unlock()
	ulPlatformSetLogger(loggerCallbacks)
}

// ZapLogger returns a LoggerFunc writing engine messages to l.
func ZapLogger(l *zap.Logger) LoggerFunc {
	l = l.Named("engine")
	return func(level LogLevel, message string) {
		switch level {
		case LogLevelError:
			l.Error(message)
		case LogLevelWarning:
			l.Warn(message)
		default:
			l.Info(message)
		}
	}
}

func logMessageCallback(level, message uintptr) uintptr {
	dispatchLog(LogLevel(int32(level)), copyString(ULString(message)))
	return 0
}

// dispatchLog never panics. A panicking handler disables engine logging.
func dispatchLog(level LogLevel, message string) {
	if platformLog.poisoned.Load() {
		return
	}
	platformLog.mu.RLock()
	defer platformLog.mu.RUnlock()
	fn := platformLog.handler
	if fn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			platformLog.poisoned.Store(true)
			Logger().Error("platform logger panicked, dropping engine messages", zap.Any("panic", r))
		}
	}()
	fn(level, message)
}
