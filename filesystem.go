package ultralight

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// FileSystem serves file:/// URLs to the engine. Methods are called from
// engine threads, possibly concurrently.
type FileSystem interface {
	FileExists(path string) bool
	// FileMimeType returns the MIME type of path, such as "text/html".
	FileMimeType(path string) string
	// FileCharset returns the encoding of path, such as "utf-8".
	FileCharset(path string) string
	// OpenFile returns the contents of path. Returning an error or a nil
	// buffer reports the file as unreadable.
	OpenFile(path string) (*Buffer, error)
}

var platformFS struct {
	mu       sync.RWMutex
	handler  FileSystem
	poisoned atomic.Bool
}

const fsPoisoned = "ultralight: file system lock poisoned by an earlier panic"

// SetPlatformFileSystem installs fs as the engine's file system, replacing
// any previous one. It must be called before NewRenderer to take effect.
func SetPlatformFileSystem(fs FileSystem) {
	mustLoad()
	if platformFS.poisoned.Load() {
		panic(fsPoisoned)
	}
	platformFS.mu.Lock()
	platformFS.handler = fs
	platformFS.mu.Unlock()
	ulPlatformSetFileSystem(fileSystemCallbacks)
}

// withFileSystem runs fn with the installed handler. A panic in the handler
// poisons the registry: it propagates, and every later call panics too.
func withFileSystem[T any](fn func(FileSystem) T) T {
	if platformFS.poisoned.Load() {
		panic(fsPoisoned)
	}
	platformFS.mu.RLock()
	defer platformFS.mu.RUnlock()
	if platformFS.handler == nil {
		panic("ultralight: file system callback without SetPlatformFileSystem")
	}
	defer func() {
		if r := recover(); r != nil {
			platformFS.poisoned.Store(true)
			panic(r)
		}
	}()
	return fn(platformFS.handler)
}

func fileExistsCallback(path uintptr) uintptr {
	p := copyString(ULString(path))
	return withFileSystem(func(fs FileSystem) uintptr {
		return boolToInt(fs.FileExists(p))
	})
}

// The engine takes ownership of returned strings and buffers.

func fileMimeTypeCallback(path uintptr) uintptr {
	p := copyString(ULString(path))
	return withFileSystem(func(fs FileSystem) uintptr {
		return uintptr(createString(fs.FileMimeType(p)))
	})
}

func fileCharsetCallback(path uintptr) uintptr {
	p := copyString(ULString(path))
	return withFileSystem(func(fs FileSystem) uintptr {
		return uintptr(createString(fs.FileCharset(p)))
	})
}

func openFileCallback(path uintptr) uintptr {
	p := copyString(ULString(path))
	return withFileSystem(func(fs FileSystem) uintptr {
		buf, err := fs.OpenFile(p)
		if err != nil {
			Logger().Debug("file system open failed", zap.String("path", p), zap.Error(err))
			return 0
		}
		if buf == nil {
			return 0
		}
		return uintptr(buf.IntoRaw())
	})
}
