//go:build darwin || linux

package ultralight

import (
	"runtime"

	"github.com/ebitengine/purego"
)

func libraryFile(name string) string {
	if runtime.GOOS == "darwin" {
		return "lib" + name + ".dylib"
	}
	return "lib" + name + ".so"
}

func openPath(path string) (uintptr, error) {
	// RTLD_GLOBAL lets Ultralight and AppCore resolve WebCore's symbols.
	return purego.Dlopen(path, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
}

func lookupSymbol(lib uintptr, name string) (uintptr, error) {
	return purego.Dlsym(lib, name)
}
