package ultralight

import (
	"fmt"
	"sync"
)

// LoadEvent describes a frame's load progress.
type LoadEvent struct {
	FrameID     uint64
	IsMainFrame bool
	URL         string
}

// LoadError describes a failed load.
type LoadError struct {
	LoadEvent
	Description string
	Domain      string
	Code        int
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("ultralight: loading %s failed: %s (%s %d)", e.URL, e.Description, e.Domain, e.Code)
}

type viewEvent int

const (
	eventBeginLoading viewEvent = iota
	eventFinishLoading
	eventFailLoading
	eventDOMReady
	eventChangeTitle
	eventChangeURL
	numViewEvents
)

type viewHandlers struct {
	beginLoading  func(*View, LoadEvent)
	finishLoading func(*View, LoadEvent)
	failLoading   func(*View, *LoadError)
	domReady      func(*View, LoadEvent)
	changeTitle   func(*View, string)
	changeURL     func(*View, string)
}

// Views are keyed by the user data handed to the engine with each callback.
var views = struct {
	sync.RWMutex
	m    map[uintptr]*View
	next uintptr
}{m: make(map[uintptr]*View), next: 1}

func registerView(v *View) uintptr {
	views.Lock()
	defer views.Unlock()
	key := views.next
	views.next++
	views.m[key] = v
	return key
}

func unregisterView(key uintptr) {
	views.Lock()
	delete(views.m, key)
	views.Unlock()
}

func lookupView(key uintptr) *View {
	views.RLock()
	defer views.RUnlock()
	return views.m[key]
}

func setViewCallback(ev viewEvent, view ULView, callback, userData uintptr) {
	switch ev {
	case eventBeginLoading:
		ulViewSetBeginLoadingCallback(view, callback, userData)
	case eventFinishLoading:
		ulViewSetFinishLoadingCallback(view, callback, userData)
	case eventFailLoading:
		ulViewSetFailLoadingCallback(view, callback, userData)
	case eventDOMReady:
		ulViewSetDOMReadyCallback(view, callback, userData)
	case eventChangeTitle:
		ulViewSetChangeTitleCallback(view, callback, userData)
	case eventChangeURL:
		ulViewSetChangeURLCallback(view, callback, userData)
	}
}

// on stores a handler and attaches or detaches the native callback.
func (v *View) on(ev viewEvent, set func(*viewHandlers), enabled bool) {
	v.mu.Lock()
	set(&v.handlers)
	v.mu.Unlock()
	if enabled {
		setViewCallback(ev, v.h, viewCallbacks[ev], v.key)
	} else {
		setViewCallback(ev, v.h, 0, 0)
	}
}

// OnBeginLoading calls fn when a frame starts loading. A nil fn removes the
// handler. Callbacks run inside Renderer.Update.
func (v *View) OnBeginLoading(fn func(*View, LoadEvent)) {
	v.on(eventBeginLoading, func(h *viewHandlers) { h.beginLoading = fn }, fn != nil)
}

// OnFinishLoading calls fn when a frame finishes loading.
func (v *View) OnFinishLoading(fn func(*View, LoadEvent)) {
	v.on(eventFinishLoading, func(h *viewHandlers) { h.finishLoading = fn }, fn != nil)
}

// OnFailLoading calls fn when a frame fails to load.
func (v *View) OnFailLoading(fn func(*View, *LoadError)) {
	v.on(eventFailLoading, func(h *viewHandlers) { h.failLoading = fn }, fn != nil)
}

// OnDOMReady calls fn once a frame's document is parsed, before subresources
// finish loading. Scripts can be evaluated from here.
func (v *View) OnDOMReady(fn func(*View, LoadEvent)) {
	v.on(eventDOMReady, func(h *viewHandlers) { h.domReady = fn }, fn != nil)
}

func (v *View) OnChangeTitle(fn func(*View, string)) {
	v.on(eventChangeTitle, func(h *viewHandlers) { h.changeTitle = fn }, fn != nil)
}

func (v *View) OnChangeURL(fn func(*View, string)) {
	v.on(eventChangeURL, func(h *viewHandlers) { h.changeURL = fn }, fn != nil)
}

func (v *View) handler() viewHandlers {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.handlers
}

func loadEvent(frameID, isMainFrame, url uintptr) LoadEvent {
	return LoadEvent{
		FrameID:     uint64(frameID),
		IsMainFrame: cBool(isMainFrame),
		URL:         copyString(ULString(url)),
	}
}

func beginLoadingCallback(userData, _, frameID, isMainFrame, url uintptr) uintptr {
	if v := lookupView(userData); v != nil {
		if fn := v.handler().beginLoading; fn != nil {
			fn(v, loadEvent(frameID, isMainFrame, url))
		}
	}
	return 0
}

func finishLoadingCallback(userData, _, frameID, isMainFrame, url uintptr) uintptr {
	if v := lookupView(userData); v != nil {
		if fn := v.handler().finishLoading; fn != nil {
			fn(v, loadEvent(frameID, isMainFrame, url))
		}
	}
	return 0
}

func failLoadingCallback(userData, _, frameID, isMainFrame, url, description, domain, code uintptr) uintptr {
	if v := lookupView(userData); v != nil {
		if fn := v.handler().failLoading; fn != nil {
			fn(v, &LoadError{
				LoadEvent:   loadEvent(frameID, isMainFrame, url),
				Description: copyString(ULString(description)),
				Domain:      copyString(ULString(domain)),
				Code:        int(int32(uint32(code))),
			})
		}
	}
	return 0
}

func domReadyCallback(userData, _, frameID, isMainFrame, url uintptr) uintptr {
	if v := lookupView(userData); v != nil {
		if fn := v.handler().domReady; fn != nil {
			fn(v, loadEvent(frameID, isMainFrame, url))
		}
	}
	return 0
}

func changeTitleCallback(userData, _, title uintptr) uintptr {
	if v := lookupView(userData); v != nil {
		if fn := v.handler().changeTitle; fn != nil {
			fn(v, copyString(ULString(title)))
		}
	}
	return 0
}

func changeURLCallback(userData, _, url uintptr) uintptr {
	if v := lookupView(userData); v != nil {
		if fn := v.handler().changeURL; fn != nil {
			fn(v, copyString(ULString(url)))
		}
	}
	return 0
}
