package ultralight

import "golang.design/x/mainthread"

// Main runs fn on the main OS thread and returns when it does. It must be
// called from the program's main function. Every engine call made by fn
// directly stays on that thread.
//
// While fn runs the main thread is busy, so Call must not be used from fn
// itself or from anything fn waits on; it would deadlock.
func Main(fn func()) {
	mainthread.Init(func() { mainthread.Call(fn) })
}

// Call runs fn on the main thread and waits for it to return. It may only be
// used from goroutines other than the one running Main's fn, and only while
// Main is running; it blocks until the main thread is free.
func Call(fn func()) { mainthread.Call(fn) }
