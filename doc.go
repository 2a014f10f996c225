// Package ultralight binds the Ultralight HTML renderer without cgo.
//
// The native libraries (WebCore, Ultralight and AppCore) are opened at runtime
// from $ULTRALIGHT_SDK_PATH, the executable's directory or the system library
// path, and every C entry point is bound to a typed function variable declared
// in capi_gen.go.
//
// Every wrapper owns exactly one native handle and releases it in Destroy.
// Destroy may be called more than once; only the first call reaches the
// engine. Handles can be moved across the native boundary with IntoRaw and
// taken back with the matching FromRaw function; pairing those is the
// caller's job.
//
// A typical program:
//
//	ultralight.EnablePlatformFontLoader()
//	fs, _ := ultralight.NewDirFileSystem("./assets")
//	ultralight.SetPlatformFileSystem(fs)
//
//	r := ultralight.NewRenderer(ultralight.NewConfig())
//	view := r.DefaultSession().CreateView(1024, 768, nil)
//	done := false
//	view.OnFinishLoading(func(_ *ultralight.View, ev ultralight.LoadEvent) {
//		done = ev.IsMainFrame
//	})
//	view.LoadHTML("<html><body>hi</body></html>")
//	for !done {
//		r.Update()
//		r.Render()
//	}
//	view.Surface().Bitmap().WritePNG("out.png")
//
// The renderer, sessions, views and surfaces must be driven from a single
// OS thread. Main runs its function on the program's main thread, which is
// the usual way to satisfy this. Config and ViewConfig are safe for
// concurrent use.
package ultralight

//go:generate go run ./cmd/ulgen -symbols symbols.txt -o capi_gen.go
