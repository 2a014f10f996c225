package ultralight

import (
	"sync"

	"go.uber.org/zap"
)

// View is a web page rendered into a surface.
type View struct {
	h        ULView
	session  *Session
	key      uintptr
	mu       sync.Mutex
	handlers viewHandlers
}

// CreateView creates a view of the given size in pixels. A nil cfg uses the
// engine's defaults; otherwise cfg can no longer be modified.
func (s *Session) CreateView(width, height uint32, cfg *ViewConfig) *View {
	if cfg == nil {
		cfg = NewViewConfig()
		defer cfg.Destroy()
	}
	v := &View{
		h:       ulCreateView(s.renderer.h, width, height, cfg.consume(), s.h),
		session: s,
	}
	v.key = registerView(v)
	Logger().Debug("view created", zap.Uint32("width", width), zap.Uint32("height", height))
	return v
}

func (v *View) Raw() ULView { return v.h }

// Session returns the session the view was created in.
func (v *View) Session() *Session { return v.session }

// URL returns the current page address.
func (v *View) URL() string { return copyString(ulViewGetURL(v.h)) }

// Title returns the current page title.
func (v *View) Title() string { return copyString(ulViewGetTitle(v.h)) }

func (v *View) Width() uint32  { return ulViewGetWidth(v.h) }
func (v *View) Height() uint32 { return ulViewGetHeight(v.h) }

func (v *View) DeviceScale() float64 { return ulViewGetDeviceScale(v.h) }

func (v *View) SetDeviceScale(scale float64) { ulViewSetDeviceScale(v.h, scale) }

func (v *View) IsAccelerated() bool { return ulViewIsAccelerated(v.h) }
func (v *View) IsTransparent() bool { return ulViewIsTransparent(v.h) }

// IsLoading reports whether the main frame is still loading.
func (v *View) IsLoading() bool { return ulViewIsLoading(v.h) }

// Surface returns the surface the view paints into, or nil for accelerated
// views.
func (v *View) Surface() *GenericSurface {
	h := ulViewGetSurface(v.h)
	if h == 0 {
		return nil
	}
	return &GenericSurface{h: h, view: v}
}

// LoadHTML replaces the page with markup.
func (v *View) LoadHTML(html string) {
	withString(html, func(s ULString) { ulViewLoadHTML(v.h, s) })
}

// LoadURL navigates to url, such as "https://example.com" or
// "file:///index.html".
func (v *View) LoadURL(url string) {
	withString(url, func(s ULString) { ulViewLoadURL(v.h, s) })
}

func (v *View) Resize(width, height uint32) { ulViewResize(v.h, width, height) }

// EvaluateScript runs js in the main frame and returns its result converted
// to a string. A thrown exception is returned as a *ScriptError. An exception
// whose message is empty cannot be told apart from success.
func (v *View) EvaluateScript(js string) (string, error) {
	var result, exception ULString
	withString(js, func(s ULString) { result = ulViewEvaluateScript(v.h, s, &exception) })

	// Both strings belong to the view.
	if msg := copyString(exception); msg != "" {
		return "", &ScriptError{Message: msg}
	}
	return copyString(result), nil
}

func (v *View) CanGoBack() bool    { return ulViewCanGoBack(v.h) }
func (v *View) CanGoForward() bool { return ulViewCanGoForward(v.h) }
func (v *View) GoBack()            { ulViewGoBack(v.h) }
func (v *View) GoForward()         { ulViewGoForward(v.h) }
func (v *View) Reload()            { ulViewReload(v.h) }
func (v *View) Stop()              { ulViewStop(v.h) }

// Focus gives the view keyboard focus.
func (v *View) Focus()         { ulViewFocus(v.h) }
func (v *View) Unfocus()       { ulViewUnfocus(v.h) }
func (v *View) HasFocus() bool { return ulViewHasFocus(v.h) }

// SetNeedsPaint forces the next Render to repaint the view.
func (v *View) SetNeedsPaint(needsPaint bool) { ulViewSetNeedsPaint(v.h, needsPaint) }
func (v *View) NeedsPaint() bool              { return ulViewGetNeedsPaint(v.h) }

// Destroy detaches every callback and releases the view.
func (v *View) Destroy() {
	if v.h == 0 {
		return
	}
	for ev := range numViewEvents {
		setViewCallback(ev, v.h, 0, 0)
	}
	unregisterView(v.key)
	ulDestroyView(v.h)
	v.h = 0
	Logger().Debug("view destroyed")
}
