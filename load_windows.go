package ultralight

import "golang.org/x/sys/windows"

func libraryFile(name string) string {
	return name + ".dll"
}

func openPath(path string) (uintptr, error) {
	h, err := windows.LoadLibrary(path)
	return uintptr(h), err
}

func lookupSymbol(lib uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(lib), name)
}
