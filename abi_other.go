//go:build !amd64 && !arm64 && !windows

package ultralight

import (
	"fmt"
	"runtime"
)

func bindByValue(name string, _ uintptr) error {
	return fmt.Errorf("ultralight: %s is not supported on %s", name, runtime.GOARCH)
}
