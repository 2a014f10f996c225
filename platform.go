package ultralight

// EnablePlatformFontLoader uses the operating system's font loader. Call it
// before NewRenderer.
func EnablePlatformFontLoader() {
	mustLoad()
	ulEnablePlatformFontLoader()
}

// EnablePlatformFileSystem installs AppCore's file system rooted at baseDir.
// It replaces a handler set with SetPlatformFileSystem.
func EnablePlatformFileSystem(baseDir string) {
	mustLoad()
	withString(baseDir, ulEnablePlatformFileSystem)
}

// EnableDefaultLogger makes AppCore append engine messages to logPath. It
// replaces a handler set with SetPlatformLogger.
func EnableDefaultLogger(logPath string) {
	mustLoad()
	withString(logPath, ulEnableDefaultLogger)
}
