package ultralight

import "sync"

// ViewConfig holds per-view settings. It is safe for concurrent use. Once
// passed to CreateView it can no longer be modified.
type ViewConfig struct {
	mu       sync.Mutex
	h        ULViewConfig
	consumed bool
}

func NewViewConfig() *ViewConfig {
	mustLoad()
	return &ViewConfig{h: ulCreateViewConfig()}
}

func (c *ViewConfig) set(fn func(ULViewConfig)) *ViewConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.consumed {
		panic(ErrConfigConsumed)
	}
	fn(c.h)
	return c
}

func (c *ViewConfig) consume() ULViewConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.h == 0 {
		panic("ultralight: view config used after Destroy")
	}
	c.consumed = true
	return c.h
}

// SetIsAccelerated renders through the GPU driver instead of a bitmap.
// Accelerated views have no Surface.
func (c *ViewConfig) SetIsAccelerated(accelerated bool) *ViewConfig {
	return c.set(func(h ULViewConfig) { ulViewConfigSetIsAccelerated(h, accelerated) })
}

func (c *ViewConfig) SetIsTransparent(transparent bool) *ViewConfig {
	return c.set(func(h ULViewConfig) { ulViewConfigSetIsTransparent(h, transparent) })
}

func (c *ViewConfig) SetInitialDeviceScale(scale float64) *ViewConfig {
	return c.set(func(h ULViewConfig) { ulViewConfigSetInitialDeviceScale(h, scale) })
}

func (c *ViewConfig) SetInitialFocus(focused bool) *ViewConfig {
	return c.set(func(h ULViewConfig) { ulViewConfigSetInitialFocus(h, focused) })
}

func (c *ViewConfig) SetEnableImages(enabled bool) *ViewConfig {
	return c.set(func(h ULViewConfig) { ulViewConfigSetEnableImages(h, enabled) })
}

func (c *ViewConfig) SetEnableJavaScript(enabled bool) *ViewConfig {
	return c.set(func(h ULViewConfig) { ulViewConfigSetEnableJavaScript(h, enabled) })
}

func (c *ViewConfig) SetFontFamilyStandard(name string) *ViewConfig {
	return c.setString(name, ulViewConfigSetFontFamilyStandard)
}

func (c *ViewConfig) SetFontFamilyFixed(name string) *ViewConfig {
	return c.setString(name, ulViewConfigSetFontFamilyFixed)
}

func (c *ViewConfig) SetFontFamilySerif(name string) *ViewConfig {
	return c.setString(name, ulViewConfigSetFontFamilySerif)
}

func (c *ViewConfig) SetFontFamilySansSerif(name string) *ViewConfig {
	return c.setString(name, ulViewConfigSetFontFamilySansSerif)
}

func (c *ViewConfig) SetUserAgent(agent string) *ViewConfig {
	return c.setString(agent, ulViewConfigSetUserAgent)
}

func (c *ViewConfig) setString(v string, setter func(ULViewConfig, ULString)) *ViewConfig {
	return c.set(func(h ULViewConfig) {
		withString(v, func(s ULString) { setter(h, s) })
	})
}

func (c *ViewConfig) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.h == 0 {
		return
	}
	ulDestroyViewConfig(c.h)
	c.h = 0
	c.consumed = true
}
