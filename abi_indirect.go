//go:build arm64 || windows

package ultralight

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// bindByValue binds entry points taking a struct by value. AAPCS64 and the
// Windows x64 convention pass large aggregates as a pointer to a caller-owned
// copy and pointer-sized ones in a register.
func bindByValue(name string, sym uintptr) error {
	switch name {
	case "ulPlatformSetFileSystem":
		ulPlatformSetFileSystem = func(fs ULFileSystem) {
			arg := new(ULFileSystem)
			*arg = fs
			var pinner runtime.Pinner
			pinner.Pin(arg)
			defer pinner.Unpin()
			purego.SyscallN(sym, uintptr(unsafe.Pointer(arg)))
		}
	case "ulPlatformSetLogger":
		ulPlatformSetLogger = func(l ULLogger) {
			purego.SyscallN(sym, l.LogMessage)
		}
	default:
		return fmt.Errorf("ultralight: no by-value binding for %s", name)
	}
	return nil
}
