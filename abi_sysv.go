//go:build amd64 && !windows

package ultralight

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// bindByValue binds entry points taking a struct by value. The System V
// AMD64 ABI passes aggregates larger than 16 bytes in memory, so the six
// integer registers are filled with padding and the fields follow on the
// stack. Aggregates of one eightbyte travel in a single register.
func bindByValue(name string, sym uintptr) error {
	switch name {
	case "ulPlatformSetFileSystem":
		ulPlatformSetFileSystem = func(fs ULFileSystem) {
			purego.SyscallN(sym, 0, 0, 0, 0, 0, 0,
				fs.FileExists, fs.GetFileMimeType, fs.GetFileCharset, fs.OpenFile)
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
