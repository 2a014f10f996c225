//go:build !ultralight

package ultralight

import (
	"bytes"
	"os"
	"reflect"
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// fakeEngine stands in for the native libraries. It replaces every bound
// entry point with an in-process implementation and records what the
// bindings ask of it.
type fakeEngine struct {
	t         testing.TB
	next      uintptr
	callbacks map[uintptr]any
	calls     map[string]int

	strings     map[ULString]*fakeString
	buffers     map[ULBuffer]*fakeBuffer
	configs     map[ULConfig]map[string]any
	viewConfigs map[ULViewConfig]map[string]any
	renderers   map[ULRenderer]*fakeRenderer
	sessions    map[ULSession]*fakeSession
	views       map[ULView]*fakeView
	surfaces    map[ULSurface]*fakeView
	bitmaps     map[ULBitmap]*fakeView

	fileSystem     ULFileSystem
	logger         ULLogger
	fontLoader     bool
	platformDir    string
	defaultLogPath string
}

type fakeString struct {
	data  []byte // NUL-terminated
	owned bool   // created by the caller, who must destroy it
}

type fakeBuffer struct {
	data     []byte
	ptr      unsafe.Pointer
	size     uintptr
	owns     bool
	userData uintptr
	destroy  uintptr
}

type fakeRenderer struct {
	config         map[string]any
	defaultSession ULSession
	updates        int
	renders        int
}

type fakeSession struct {
	renderer   ULRenderer
	persistent bool
	id         uint64
	name       ULString
	diskPath   ULString
}

type fakeLoad struct {
	url   string
	title string
	fail  bool
	step  int
}

type fakeView struct {
	renderer    ULRenderer
	session     ULSession
	config      map[string]any
	width       uint32
	height      uint32
	scale       float64
	focused     bool
	needsPaint  bool
	url         ULString
	title       ULString
	history     []string
	pos         int
	pending     *fakeLoad
	callbacks   [numViewEvents]struct{ fn, userData uintptr }
	surface     ULSurface
	bitmap      ULBitmap
	surfaceW    uint32
	surfaceH    uint32
	rowBytes    uint32
	pixels      []byte
	locked      int
	dirtyClears int
}

func newFakeEngine(t testing.TB) *fakeEngine {
	e := &fakeEngine{
		t:           t,
		callbacks:   make(map[uintptr]any),
		calls:       make(map[string]int),
		strings:     make(map[ULString]*fakeString),
		buffers:     make(map[ULBuffer]*fakeBuffer),
		configs:     make(map[ULConfig]map[string]any),
		viewConfigs: make(map[ULViewConfig]map[string]any),
		renderers:   make(map[ULRenderer]*fakeRenderer),
		sessions:    make(map[ULSession]*fakeSession),
		views:       make(map[ULView]*fakeView),
		surfaces:    make(map[ULSurface]*fakeView),
		bitmaps:     make(map[ULBitmap]*fakeView),
	}
	loadOnce.Do(func() {})
	resetState()
	e.install()
	installTrampolines(e.newCallback)
	return e
}

func resetState() {
	rendererCreated.Store(false)

	views.Lock()
	views.m = make(map[uintptr]*View)
	views.Unlock()

	borrowed.Lock()
	borrowed.entries = make(map[uintptr]*borrowedEntry)
	borrowed.Unlock()

	platformFS.mu.Lock()
	platformFS.handler = nil
	platformFS.mu.Unlock()
	platformFS.poisoned.Store(false)

	platformLog.mu.Lock()
	platformLog.handler = nil
	platformLog.mu.Unlock()
	platformLog.poisoned.Store(false)
}

func (e *fakeEngine) handle() uintptr {
	e.next++
	return 0x1000 + e.next*0x10
}

func (e *fakeEngine) newCallback(fn any) uintptr {
	ptr := 0xcb000000 + e.handle()
	e.callbacks[ptr] = fn
	return ptr
}

// invoke calls the Go function behind a trampoline pointer the way the
// engine would call the C function.
func (e *fakeEngine) invoke(cb uintptr, args ...uintptr) uintptr {
	fn, ok := e.callbacks[cb]
	require.True(e.t, ok, "unknown callback %#x", cb)
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		in[i] = reflect.ValueOf(a)
	}
	out := reflect.ValueOf(fn).Call(in)
	return uintptr(out[0].Uint())
}

func (e *fakeEngine) newString(s string, owned bool) ULString {
	h := ULString(e.handle())
	e.strings[h] = &fakeString{data: append([]byte(s), 0), owned: owned}
	return h
}

func (e *fakeEngine) str(h ULString) string {
	s, ok := e.strings[h]
	require.True(e.t, ok, "unknown string %#x", h)
	return string(s.data[:len(s.data)-1])
}

// takeString reads and frees a string the engine received ownership of.
func (e *fakeEngine) takeString(h ULString) string {
	s := e.str(h)
	ulDestroyString(h)
	return s
}

// liveStrings counts caller-created strings not yet destroyed.
func (e *fakeEngine) liveStrings() int {
	n := 0
	for _, s := range e.strings {
		if s.owned {
			n++
		}
	}
	return n
}

func (e *fakeEngine) view(h ULView) *fakeView {
	v, ok := e.views[h]
	require.True(e.t, ok, "unknown view %#x", h)
	return v
}

func (e *fakeEngine) fire(v *fakeView, ev viewEvent, args ...uintptr) {
	cb := v.callbacks[ev]
	if cb.fn == 0 {
		return
	}
	e.invoke(cb.fn, append([]uintptr{cb.userData, 0xca11e5}, args...)...)
}

// The upper bits of a C bool in a register are unspecified.
func cBoolArg(b bool) uintptr {
	if b {
		return 0xab01
	}
	return 0xab00
}

func (e *fakeEngine) setURL(v *fakeView, url string) {
	v.url = e.newString(url, false)
}

func (e *fakeEngine) navigate(v *fakeView, load *fakeLoad) {
	v.pending = load
	if v.pos < len(v.history) {
		v.history = v.history[:v.pos]
	}
	v.history = append(v.history, load.url)
	v.pos = len(v.history)
}

// advance moves a pending load forward by one update. The main frame begins
// on the first update; a subframe and then the main frame finish on the
// second.
func (e *fakeEngine) advance(v *fakeView) {
	load := v.pending
	if load == nil {
		return
	}
	load.step++
	url := e.newString(load.url, false)
	switch load.step {
	case 1:
		e.fire(v, eventBeginLoading, 1, cBoolArg(true), uintptr(url))
	case 2:
		v.pending = nil
		if load.fail {
			desc := e.newString("Could not resolve host", false)
			domain := e.newString("NSURLErrorDomain", false)
			code := int32(-1003)
			e.fire(v, eventFailLoading, 1, cBoolArg(true), uintptr(url), uintptr(desc), uintptr(domain), uintptr(uint32(code)))
			return
		}
		e.setURL(v, load.url)
		e.fire(v, eventChangeURL, uintptr(url))
		e.fire(v, eventDOMReady, 1, cBoolArg(true), uintptr(url))
		if load.title != "" {
			v.title = e.newString(load.title, false)
			e.fire(v, eventChangeTitle, uintptr(v.title))
		}
		e.fire(v, eventFinishLoading, 2, cBoolArg(false), uintptr(url))
		e.fire(v, eventFinishLoading, 1, cBoolArg(true), uintptr(url))
	}
}

func (v *fakeView) resizeSurface(w, h uint32) {
	v.surfaceW, v.surfaceH = w, h
	v.rowBytes = (w*4 + 15) &^ 15
	v.pixels = make([]byte, int(v.rowBytes)*int(h))
}

// paint fills the visible area with one BGRA color.
func (v *fakeView) paint() {
	for y := 0; y < int(v.surfaceH); y++ {
		row := v.pixels[y*int(v.rowBytes):]
		for x := 0; x < int(v.surfaceW); x++ {
			copy(row[x*4:], []byte{0x10, 0x20, 0x30, 0xff})
		}
	}
}

func (e *fakeEngine) surfaceView(h ULSurface) *fakeView {
	v, ok := e.surfaces[h]
	require.True(e.t, ok, "unknown surface %#x", h)
	return v
}

func (e *fakeEngine) bitmapView(h ULBitmap) *fakeView {
	v, ok := e.bitmaps[h]
	require.True(e.t, ok, "unknown bitmap %#x", h)
	return v
}

func lockedPointer(v *fakeView) unsafe.Pointer {
	v.locked++
	if len(v.pixels) == 0 {
		return nil
	}
	return unsafe.Pointer(&v.pixels[0])
}

func (e *fakeEngine) unlock(v *fakeView) {
	v.locked--
	if v.locked < 0 {
		e.t.Errorf("pixels unlocked more often than locked")
	}
}

func goStringFromC(p *byte) string {
	var b bytes.Buffer
	for ; *p != 0; p = (*byte)(unsafe.Add(unsafe.Pointer(p), 1)) {
		b.WriteByte(*p)
	}
	return b.String()
}

func (e *fakeEngine) install() {
	// Strings.
	ulCreateStringUTF8 = func(str *byte, n uintptr) ULString {
		e.calls["ulCreateStringUTF8"]++
		return e.newString(string(unsafe.Slice(str, n)), true)
	}
	ulDestroyString = func(str ULString) {
		e.calls["ulDestroyString"]++
		s, ok := e.strings[str]
		if !ok {
			e.t.Errorf("destroy of unknown string %#x", str)
			return
		}
		if !s.owned {
			e.t.Errorf("destroy of engine-owned string %q", s.data)
		}
		delete(e.strings, str)
	}
	ulStringGetData = func(str ULString) *byte { return &e.strings[str].data[0] }
	ulStringGetLength = func(str ULString) uintptr { return uintptr(len(e.strings[str].data) - 1) }
	ulStringIsEmpty = func(str ULString) bool { return len(e.strings[str].data) == 1 }

	// Buffers.
	ulCreateBufferFromCopy = func(data unsafe.Pointer, size uintptr) ULBuffer {
		h := ULBuffer(e.handle())
		b := &fakeBuffer{owns: true, size: size}
		if data != nil {
			b.data = bytes.Clone(unsafe.Slice((*byte)(data), size))
		}
		e.buffers[h] = b
		return h
	}
	ulCreateBuffer = func(data unsafe.Pointer, size, userData, destructionCallback uintptr) ULBuffer {
		h := ULBuffer(e.handle())
		e.buffers[h] = &fakeBuffer{ptr: data, size: size, userData: userData, destroy: destructionCallback}
		return h
	}
	ulDestroyBuffer = func(buffer ULBuffer) {
		e.calls["ulDestroyBuffer"]++
		b, ok := e.buffers[buffer]
		if !ok {
			e.t.Errorf("destroy of unknown buffer %#x", buffer)
			return
		}
		delete(e.buffers, buffer)
		if b.destroy != 0 {
			e.invoke(b.destroy, b.userData, uintptr(b.ptr))
		}
	}
	ulBufferGetData = func(buffer ULBuffer) unsafe.Pointer {
		b := e.buffers[buffer]
		if b.owns {
			if len(b.data) == 0 {
				return nil
			}
			return unsafe.Pointer(&b.data[0])
		}
		return b.ptr
	}
	ulBufferGetSize = func(buffer ULBuffer) uintptr { return e.buffers[buffer].size }
	ulBufferOwnsData = func(buffer ULBuffer) bool { return e.buffers[buffer].owns }

	// Config.
	ulCreateConfig = func() ULConfig {
		h := ULConfig(e.handle())
		e.configs[h] = map[string]any{}
		return h
	}
	ulDestroyConfig = func(config ULConfig) {
		e.calls["ulDestroyConfig"]++
		delete(e.configs, config)
	}
	setConfig := func(config ULConfig, key string, v any) {
		c, ok := e.configs[config]
		require.True(e.t, ok, "unknown config %#x", config)
		c[key] = v
	}
	ulConfigSetCachePath = func(c ULConfig, s ULString) { setConfig(c, "cachePath", e.str(s)) }
	ulConfigSetResourcePathPrefix = func(c ULConfig, s ULString) { setConfig(c, "resourcePathPrefix", e.str(s)) }
	ulConfigSetFaceWinding = func(c ULConfig, v ULFaceWinding) { setConfig(c, "faceWinding", v) }
	ulConfigSetFontHinting = func(c ULConfig, v ULFontHinting) { setConfig(c, "fontHinting", v) }
	ulConfigSetFontGamma = func(c ULConfig, v float64) { setConfig(c, "fontGamma", v) }
	ulConfigSetUserStylesheet = func(c ULConfig, s ULString) { setConfig(c, "userStylesheet", e.str(s)) }
	ulConfigSetForceRepaint = func(c ULConfig, v bool) { setConfig(c, "forceRepaint", v) }
	ulConfigSetAnimationTimerDelay = func(c ULConfig, v float64) { setConfig(c, "animationTimerDelay", v) }
	ulConfigSetScrollTimerDelay = func(c ULConfig, v float64) { setConfig(c, "scrollTimerDelay", v) }
	ulConfigSetRecycleDelay = func(c ULConfig, v float64) { setConfig(c, "recycleDelay", v) }
	ulConfigSetMemoryCacheSize = func(c ULConfig, v uint32) { setConfig(c, "memoryCacheSize", v) }
	ulConfigSetPageCacheSize = func(c ULConfig, v uint32) { setConfig(c, "pageCacheSize", v) }
	ulConfigSetOverrideRAMSize = func(c ULConfig, v uint32) { setConfig(c, "overrideRAMSize", v) }
	ulConfigSetMinLargeHeapSize = func(c ULConfig, v uint32) { setConfig(c, "minLargeHeapSize", v) }
	ulConfigSetMinSmallHeapSize = func(c ULConfig, v uint32) { setConfig(c, "minSmallHeapSize", v) }
	ulConfigSetNumRendererThreads = func(c ULConfig, v uint32) { setConfig(c, "numRendererThreads", v) }
	ulConfigSetMaxUpdateTime = func(c ULConfig, v float64) { setConfig(c, "maxUpdateTime", v) }
	ulConfigSetBitmapAlignment = func(c ULConfig, v uint32) { setConfig(c, "bitmapAlignment", v) }

	// View config.
	ulCreateViewConfig = func() ULViewConfig {
		h := ULViewConfig(e.handle())
		e.viewConfigs[h] = map[string]any{}
		return h
	}
	ulDestroyViewConfig = func(config ULViewConfig) {
		e.calls["ulDestroyViewConfig"]++
		delete(e.viewConfigs, config)
	}
	setViewConfig := func(config ULViewConfig, key string, v any) {
		c, ok := e.viewConfigs[config]
		require.True(e.t, ok, "unknown view config %#x", config)
		c[key] = v
	}
	ulViewConfigSetIsAccelerated = func(c ULViewConfig, v bool) { setViewConfig(c, "isAccelerated", v) }
	ulViewConfigSetIsTransparent = func(c ULViewConfig, v bool) { setViewConfig(c, "isTransparent", v) }
	ulViewConfigSetInitialDeviceScale = func(c ULViewConfig, v float64) { setViewConfig(c, "initialDeviceScale", v) }
	ulViewConfigSetInitialFocus = func(c ULViewConfig, v bool) { setViewConfig(c, "initialFocus", v) }
	ulViewConfigSetEnableImages = func(c ULViewConfig, v bool) { setViewConfig(c, "enableImages", v) }
	ulViewConfigSetEnableJavaScript = func(c ULViewConfig, v bool) { setViewConfig(c, "enableJavaScript", v) }
	ulViewConfigSetFontFamilyStandard = func(c ULViewConfig, s ULString) { setViewConfig(c, "fontFamilyStandard", e.str(s)) }
	ulViewConfigSetFontFamilyFixed = func(c ULViewConfig, s ULString) { setViewConfig(c, "fontFamilyFixed", e.str(s)) }
	ulViewConfigSetFontFamilySerif = func(c ULViewConfig, s ULString) { setViewConfig(c, "fontFamilySerif", e.str(s)) }
	ulViewConfigSetFontFamilySansSerif = func(c ULViewConfig, s ULString) { setViewConfig(c, "fontFamilySansSerif", e.str(s)) }
	ulViewConfigSetUserAgent = func(c ULViewConfig, s ULString) { setViewConfig(c, "userAgent", e.str(s)) }

	// Renderer.
	ulCreateRenderer = func(config ULConfig) ULRenderer {
		e.calls["ulCreateRenderer"]++
		c, ok := e.configs[config]
		require.True(e.t, ok, "renderer created from unknown config %#x", config)
		h := ULRenderer(e.handle())
		r := &fakeRenderer{config: make(map[string]any, len(c))}
		for k, v := range c {
			r.config[k] = v
		}
		e.renderers[h] = r
		r.defaultSession = ulCreateSession(h, false, e.newString("default", false))
		return h
	}
	ulDestroyRenderer = func(renderer ULRenderer) {
		e.calls["ulDestroyRenderer"]++
		delete(e.renderers, renderer)
	}
	ulUpdate = func(renderer ULRenderer) {
		e.renderers[renderer].updates++
		for _, v := range e.views {
			if v.renderer == renderer {
				e.advance(v)
			}
		}
	}
	ulRender = func(renderer ULRenderer) {
		e.renderers[renderer].renders++
		for _, v := range e.views {
			if v.renderer == renderer && v.surface != 0 {
				v.paint()
			}
		}
	}
	ulPurgeMemory = func(ULRenderer) { e.calls["ulPurgeMemory"]++ }
	ulLogMemoryUsage = func(ULRenderer) {
		e.calls["ulLogMemoryUsage"]++
		if e.logger.LogMessage != 0 {
			msg := e.newString("memory usage: 0 MiB", false)
			e.invoke(e.logger.LogMessage, uintptr(kLogLevel_Info), uintptr(msg))
		}
	}

	// Sessions.
	ulCreateSession = func(renderer ULRenderer, isPersistent bool, name ULString) ULSession {
		h := ULSession(e.handle())
		n := e.str(name)
		s := &fakeSession{
			renderer:   renderer,
			persistent: isPersistent,
			id:         uint64(len(e.sessions) + 1),
			name:       e.newString(n, false),
		}
		if isPersistent {
			s.diskPath = e.newString("/cache/"+n, false)
		} else {
			s.diskPath = e.newString("", false)
		}
		e.sessions[h] = s
		return h
	}
	ulDestroySession = func(session ULSession) {
		e.calls["ulDestroySession"]++
		s, ok := e.sessions[session]
		if !ok {
			e.t.Errorf("destroy of unknown session %#x", session)
			return
		}
		if r := e.renderers[s.renderer]; r != nil && r.defaultSession == session {
			e.t.Errorf("default session destroyed")
		}
		delete(e.sessions, session)
	}
	ulDefaultSession = func(renderer ULRenderer) ULSession { return e.renderers[renderer].defaultSession }
	ulSessionIsPersistent = func(session ULSession) bool { return e.sessions[session].persistent }
	ulSessionGetName = func(session ULSession) ULString { return e.sessions[session].name }
	ulSessionGetId = func(session ULSession) uint64 { return e.sessions[session].id }
	ulSessionGetDiskPath = func(session ULSession) ULString { return e.sessions[session].diskPath }

	// Views.
	ulCreateView = func(renderer ULRenderer, width, height uint32, viewConfig ULViewConfig, session ULSession) ULView {
		c, ok := e.viewConfigs[viewConfig]
		require.True(e.t, ok, "view created from unknown config %#x", viewConfig)
		_, ok = e.sessions[session]
		require.True(e.t, ok, "view created in unknown session %#x", session)

		h := ULView(e.handle())
		v := &fakeView{
			renderer: renderer,
			session:  session,
			config:   make(map[string]any, len(c)),
			width:    width,
			height:   height,
			scale:    1,
		}
		for k, val := range c {
			v.config[k] = val
		}
		if s, ok := c["initialDeviceScale"].(float64); ok {
			v.scale = s
		}
		v.focused, _ = c["initialFocus"].(bool)
		e.setURL(v, "")
		v.title = e.newString("", false)
		if accel, _ := c["isAccelerated"].(bool); !accel {
			v.surface = ULSurface(e.handle())
			v.bitmap = ULBitmap(e.handle())
			v.resizeSurface(width, height)
			e.surfaces[v.surface] = v
			e.bitmaps[v.bitmap] = v
		}
		e.views[h] = v
		return h
	}
	ulDestroyView = func(view ULView) {
		e.calls["ulDestroyView"]++
		v := e.view(view)
		for ev, cb := range v.callbacks {
			if cb.fn != 0 {
				e.t.Errorf("view destroyed with callback %d attached", ev)
			}
		}
		delete(e.surfaces, v.surface)
		delete(e.bitmaps, v.bitmap)
		delete(e.views, view)
	}
	ulViewGetURL = func(view ULView) ULString { return e.view(view).url }
	ulViewGetTitle = func(view ULView) ULString { return e.view(view).title }
	ulViewGetWidth = func(view ULView) uint32 { return e.view(view).width }
	ulViewGetHeight = func(view ULView) uint32 { return e.view(view).height }
	ulViewGetDeviceScale = func(view ULView) float64 { return e.view(view).scale }
	ulViewSetDeviceScale = func(view ULView, scale float64) { e.view(view).scale = scale }
	ulViewIsAccelerated = func(view ULView) bool { return e.view(view).surface == 0 }
	ulViewIsTransparent = func(view ULView) bool {
		t, _ := e.view(view).config["isTransparent"].(bool)
		return t
	}
	ulViewIsLoading = func(view ULView) bool { return e.view(view).pending != nil }
	ulViewGetSurface = func(view ULView) ULSurface { return e.view(view).surface }
	ulViewLoadHTML = func(view ULView, html ULString) {
		markup := e.str(html)
		load := &fakeLoad{url: "about:blank"}
		if _, rest, ok := strings.Cut(markup, "<title>"); ok {
			load.title, _, _ = strings.Cut(rest, "</title>")
		}
		e.navigate(e.view(view), load)
	}
	ulViewLoadURL = func(view ULView, url ULString) {
		u := e.str(url)
		e.navigate(e.view(view), &fakeLoad{url: u, fail: strings.HasPrefix(u, "fail:")})
	}
	ulViewResize = func(view ULView, width, height uint32) {
		v := e.view(view)
		v.width, v.height = width, height
		if v.surface != 0 {
			v.resizeSurface(width, height)
		}
	}
	ulViewEvaluateScript = func(view ULView, js ULString, exception *ULString) ULString {
		e.view(view)
		script := e.str(js)
		switch {
		case script == "1+1":
			return e.newString("2", false)
		case strings.HasPrefix(script, "throw "):
			*exception = e.newString(strings.Trim(strings.TrimPrefix(script, "throw "), `'"`), false)
			return e.newString("", false)
		case script == "document.title":
			return e.view(view).title
		}
		return e.newString("undefined", false)
	}
	ulViewCanGoBack = func(view ULView) bool { return e.view(view).pos > 1 }
	ulViewCanGoForward = func(view ULView) bool {
		v := e.view(view)
		return v.pos < len(v.history)
	}
	ulViewGoBack = func(view ULView) {
		v := e.view(view)
		if v.pos > 1 {
			v.pos--
			v.pending = &fakeLoad{url: v.history[v.pos-1]}
		}
	}
	ulViewGoForward = func(view ULView) {
		v := e.view(view)
		if v.pos < len(v.history) {
			v.pos++
			v.pending = &fakeLoad{url: v.history[v.pos-1]}
		}
	}
	ulViewReload = func(view ULView) {
		v := e.view(view)
		if v.pos > 0 {
			v.pending = &fakeLoad{url: v.history[v.pos-1]}
		}
	}
	ulViewStop = func(view ULView) { e.view(view).pending = nil }
	ulViewFocus = func(view ULView) { e.view(view).focused = true }
	ulViewUnfocus = func(view ULView) { e.view(view).focused = false }
	ulViewHasFocus = func(view ULView) bool { return e.view(view).focused }
	ulViewSetNeedsPaint = func(view ULView, needsPaint bool) { e.view(view).needsPaint = needsPaint }
	ulViewGetNeedsPaint = func(view ULView) bool { return e.view(view).needsPaint }

	setCallback := func(ev viewEvent) func(ULView, uintptr, uintptr) {
		return func(view ULView, callback, userData uintptr) {
			e.view(view).callbacks[ev] = struct{ fn, userData uintptr }{callback, userData}
		}
	}
	ulViewSetBeginLoadingCallback = setCallback(eventBeginLoading)
	ulViewSetFinishLoadingCallback = setCallback(eventFinishLoading)
	ulViewSetFailLoadingCallback = setCallback(eventFailLoading)
	ulViewSetDOMReadyCallback = setCallback(eventDOMReady)
	ulViewSetChangeTitleCallback = setCallback(eventChangeTitle)
	ulViewSetChangeURLCallback = setCallback(eventChangeURL)

	// Surfaces.
	ulSurfaceGetWidth = func(s ULSurface) uint32 { return e.surfaceView(s).surfaceW }
	ulSurfaceGetHeight = func(s ULSurface) uint32 { return e.surfaceView(s).surfaceH }
	ulSurfaceGetRowBytes = func(s ULSurface) uint32 { return e.surfaceView(s).rowBytes }
	ulSurfaceGetSize = func(s ULSurface) uintptr { return uintptr(len(e.surfaceView(s).pixels)) }
	ulSurfaceLockPixels = func(s ULSurface) unsafe.Pointer { return lockedPointer(e.surfaceView(s)) }
	ulSurfaceUnlockPixels = func(s ULSurface) { e.unlock(e.surfaceView(s)) }
	ulSurfaceResize = func(s ULSurface, width, height uint32) { e.surfaceView(s).resizeSurface(width, height) }
	ulSurfaceClearDirtyBounds = func(s ULSurface) { e.surfaceView(s).dirtyClears++ }
	ulBitmapSurfaceGetBitmap = func(s ULBitmapSurface) ULBitmap { return e.surfaceView(s).bitmap }

	// Bitmaps.
	ulBitmapGetWidth = func(b ULBitmap) uint32 { return e.bitmapView(b).surfaceW }
	ulBitmapGetHeight = func(b ULBitmap) uint32 { return e.bitmapView(b).surfaceH }
	ulBitmapGetRowBytes = func(b ULBitmap) uint32 { return e.bitmapView(b).rowBytes }
	ulBitmapGetSize = func(b ULBitmap) uintptr { return uintptr(len(e.bitmapView(b).pixels)) }
	ulBitmapGetBpp = func(ULBitmap) uint32 { return 4 }
	ulBitmapGetFormat = func(ULBitmap) ULBitmapFormat { return kBitmapFormat_BGRA8_UNORM_SRGB }
	ulBitmapLockPixels = func(b ULBitmap) unsafe.Pointer { return lockedPointer(e.bitmapView(b)) }
	ulBitmapUnlockPixels = func(b ULBitmap) { e.unlock(e.bitmapView(b)) }
	ulBitmapIsEmpty = func(b ULBitmap) bool { return len(e.bitmapView(b).pixels) == 0 }
	ulBitmapErase = func(b ULBitmap) { clear(e.bitmapView(b).pixels) }
	ulBitmapSwapRedBlueChannels = func(b ULBitmap) {
		px := e.bitmapView(b).pixels
		for i := 0; i+3 < len(px); i += 4 {
			px[i], px[i+2] = px[i+2], px[i]
		}
	}
	ulBitmapWritePNG = func(b ULBitmap, path *byte) bool {
		e.bitmapView(b)
		return os.WriteFile(goStringFromC(path), []byte("\x89PNG fake"), 0o644) == nil
	}

	// Platform.
	ulPlatformSetFileSystem = func(fs ULFileSystem) { e.fileSystem = fs }
	ulPlatformSetLogger = func(l ULLogger) { e.logger = l }
	ulEnablePlatformFontLoader = func() { e.fontLoader = true }
	ulEnablePlatformFileSystem = func(baseDir ULString) { e.platformDir = e.str(baseDir) }
	ulEnableDefaultLogger = func(logPath ULString) { e.defaultLogPath = e.str(logPath) }
}

// The helpers below play the engine's side of the platform hooks.

func (e *fakeEngine) fsFileExists(path string) bool {
	p := e.newString(path, false)
	defer delete(e.strings, p)
	return cBool(e.invoke(e.fileSystem.FileExists, uintptr(p)))
}

func (e *fakeEngine) fsMimeType(path string) string {
	p := e.newString(path, false)
	defer delete(e.strings, p)
	return e.takeString(ULString(e.invoke(e.fileSystem.GetFileMimeType, uintptr(p))))
}

func (e *fakeEngine) fsCharset(path string) string {
	p := e.newString(path, false)
	defer delete(e.strings, p)
	return e.takeString(ULString(e.invoke(e.fileSystem.GetFileCharset, uintptr(p))))
}

// fsOpenFile returns the file contents, or nil if the handler returned no
// buffer. The buffer is destroyed as the engine would.
func (e *fakeEngine) fsOpenFile(path string) []byte {
	p := e.newString(path, false)
	defer delete(e.strings, p)
	h := ULBuffer(e.invoke(e.fileSystem.OpenFile, uintptr(p)))
	if h == 0 {
		return nil
	}
	data := bytes.Clone(unsafe.Slice((*byte)(ulBufferGetData(h)), ulBufferGetSize(h)))
	ulDestroyBuffer(h)
	return data
}

func (e *fakeEngine) log(level ULLogLevel, message string) {
	m := e.newString(message, false)
	defer delete(e.strings, m)
	e.invoke(e.logger.LogMessage, uintptr(level), uintptr(m))
}
