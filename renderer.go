package ultralight

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var rendererCreated atomic.Bool

// Renderer drives layout, scripting and painting for every view. Only one
// may be created per process.
type Renderer struct {
	h              ULRenderer
	defaultSession *Session
}

// NewRenderer creates the process's renderer. A nil cfg uses the engine's
// defaults. Platform handlers should be installed first. It panics if a
// renderer was already created or cfg was destroyed.
func NewRenderer(cfg *Config) *Renderer {
	mustLoad()
	if cfg == nil {
		cfg = NewConfig()
		defer cfg.Destroy()
	}
	h := cfg.consume()
	if !rendererCreated.CompareAndSwap(false, true) {
		panic("ultralight: renderer already created, only one is allowed per process")
	}

	r := &Renderer{h: ulCreateRenderer(h)}
	Logger().Debug("renderer created")
	return r
}

func (r *Renderer) Raw() ULRenderer { return r.h }

// Update dispatches timers, network and script callbacks. Call it often,
// ideally once per frame; view callbacks run inside it.
func (r *Renderer) Update() { ulUpdate(r.h) }

// Render paints every view with pending changes into its surface.
func (r *Renderer) Render() { ulRender(r.h) }

// PurgeMemory frees as much cached memory as possible.
func (r *Renderer) PurgeMemory() { ulPurgeMemory(r.h) }

// LogMemoryUsage writes memory statistics to the platform logger.
func (r *Renderer) LogMemoryUsage() { ulLogMemoryUsage(r.h) }

// DefaultSession returns the renderer's built-in non-persistent session.
// Destroying it has no effect.
func (r *Renderer) DefaultSession() *Session {
	if r.defaultSession == nil {
		r.defaultSession = &Session{h: ulDefaultSession(r.h), renderer: r}
	}
	return r.defaultSession
}

// CreateSession creates a session. Persistent sessions store cookies and
// local storage under the config's cache path, in a directory named after
// name.
func (r *Renderer) CreateSession(persistent bool, name string) *Session {
	var h ULSession
	withString(name, func(s ULString) { h = ulCreateSession(r.h, persistent, s) })
	Logger().Debug("session created", zap.String("name", name), zap.Bool("persistent", persistent))
	return &Session{h: h, renderer: r}
}

// Destroy releases the renderer. Every view and session must be destroyed
// first. The process cannot create another renderer afterwards.
func (r *Renderer) Destroy() {
	if r.h == 0 {
		return
	}
	ulDestroyRenderer(r.h)
	r.h = 0
	Logger().Debug("renderer destroyed")
}
