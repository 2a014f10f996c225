package ultralight

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"
)

// SDKPathEnv names the environment variable pointing at the SDK root.
const SDKPathEnv = "ULTRALIGHT_SDK_PATH"

type nativeLib int

// capiSymbol binds one C entry point to its function variable.
type capiSymbol struct {
	fn      any
	lib     nativeLib
	name    string
	byValue bool
}

var (
	loadOnce sync.Once
	loadErr  error
)

// Load opens the native libraries and binds every entry point. It is safe to
// call more than once; the result of the first call is returned. Constructors
// call Load and panic if it fails.
func Load() error {
	loadOnce.Do(func() {
		loadErr = load()
		if loadErr != nil {
			Logger().Error("failed to load native libraries", zap.Error(loadErr))
		}
	})
	return loadErr
}

func mustLoad() {
	if err := Load(); err != nil {
		panic(err)
	}
}

func load() error {
	dirs := searchDirs()

	var libs [len(nativeLibNames)]uintptr
	for i, name := range nativeLibNames {
		h, err := openLibrary(dirs, name)
		if err != nil {
			return err
		}
		libs[i] = h
	}

	for _, s := range capiSymbols {
		sym, err := lookupSymbol(libs[s.lib], s.name)
		if err != nil || sym == 0 {
			return &SymbolError{Library: nativeLibNames[s.lib], Symbol: s.name, Err: err}
		}
		if s.byValue {
			if err := bindByValue(s.name, sym); err != nil {
				return err
			}
			continue
		}
		purego.RegisterFunc(s.fn, sym)
	}

	installTrampolines(purego.NewCallback)
	Logger().Debug("native libraries loaded", zap.Strings("search", dirs), zap.Int("symbols", len(capiSymbols)))
	return nil
}

// searchDirs lists the directories probed for the native libraries, in order.
func searchDirs() []string {
	var dirs []string
	if sdk := os.Getenv(SDKPathEnv); sdk != "" {
		dirs = append(dirs, filepath.Join(sdk, "bin"), filepath.Join(sdk, "lib"))
	} else {
		Logger().Warn(SDKPathEnv+" not set, falling back to system paths", zap.String("dir", defaultLibDir))
	}
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		dirs = append(dirs, dir)
		if runtime.GOOS == "darwin" {
			dirs = append(dirs, filepath.Join(dir, "..", "Frameworks"))
		}
	}
	return append(dirs, defaultLibDir)
}

func openLibrary(dirs []string, name string) (uintptr, error) {
	file := libraryFile(name)
	path := file // left to the system loader if no directory has it
	for _, dir := range dirs {
		p := filepath.Join(dir, file)
		if _, err := os.Stat(p); err == nil {
			path = p
			break
		}
	}
	h, err := openPath(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrNotLoaded, file, err)
	}
	if h == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNotLoaded, file)
	}
	Logger().Debug("opened native library", zap.String("path", path))
	return h, nil
}

// C-callable entry points handed to the engine.
var (
	bufferDestroyCallback uintptr
	fileSystemCallbacks   ULFileSystem
	loggerCallbacks       ULLogger
	viewCallbacks         [numViewEvents]uintptr
)

func installTrampolines(newCallback func(fn any) uintptr) {
	bufferDestroyCallback = newCallback(destroyBorrowedBuffer)
	fileSystemCallbacks = ULFileSystem{
		FileExists:      newCallback(fileExistsCallback),
		GetFileMimeType: newCallback(fileMimeTypeCallback),
		GetFileCharset:  newCallback(fileCharsetCallback),
		OpenFile:        newCallback(openFileCallback),
	}
	loggerCallbacks = ULLogger{LogMessage: newCallback(logMessageCallback)}
	viewCallbacks = [numViewEvents]uintptr{
		eventBeginLoading:  newCallback(beginLoadingCallback),
		eventFinishLoading: newCallback(finishLoadingCallback),
		eventFailLoading:   newCallback(failLoadingCallback),
		eventDOMReady:      newCallback(domReadyCallback),
		eventChangeTitle:   newCallback(changeTitleCallback),
		eventChangeURL:     newCallback(changeURLCallback),
	}
}

// boolToInt is a helper to convert Go bool to uintptr 0/1.
func boolToInt(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}

// cBool reads a C bool passed through a callback register. Only the low byte
// is defined.
func cBool(v uintptr) bool {
	return v&0xff != 0
}

// cString converts a Go string to a NUL-terminated byte slice.
func cString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}
