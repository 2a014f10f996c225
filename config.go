package ultralight

import (
	"sync"
	"time"
)

// FaceWinding is the winding order of front-facing triangles.
type FaceWinding int32

const (
	FaceWindingClockwise        = FaceWinding(kFaceWinding_Clockwise)
	FaceWindingCounterClockwise = FaceWinding(kFaceWinding_CounterClockwise)
)

// FontHinting controls glyph outline adjustment.
type FontHinting int32

const (
	// FontHintingSmooth is lighter hinting, similar to macOS.
	FontHintingSmooth = FontHinting(kFontHinting_Smooth)
	// FontHintingNormal is the default, similar to Windows.
	FontHintingNormal = FontHinting(kFontHinting_Normal)
	// FontHintingMonochrome is for aliased, black and white text.
	FontHintingMonochrome = FontHinting(kFontHinting_Monochrome)
)

// Config holds renderer settings. It is safe for concurrent use. Once passed
// to NewRenderer it can no longer be modified.
type Config struct {
	mu       sync.Mutex
	h        ULConfig
	consumed bool
}

// NewConfig returns a Config with the engine's defaults.
func NewConfig() *Config {
	mustLoad()
	return &Config{h: ulCreateConfig()}
}

func (c *Config) set(fn func(ULConfig)) *Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.consumed {
		panic(ErrConfigConsumed)
	}
	fn(c.h)
	return c
}

func (c *Config) consume() ULConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.h == 0 {
		panic("ultralight: config used after Destroy")
	}
	c.consumed = true
	return c.h
}

// SetCachePath sets the directory for persistent session data.
func (c *Config) SetCachePath(path string) *Config {
	return c.set(func(h ULConfig) {
		withString(path, func(s ULString) { ulConfigSetCachePath(h, s) })
	})
}

// SetResourcePathPrefix sets the path, relative to the file system root, of
// the engine's bundled resources.
func (c *Config) SetResourcePathPrefix(prefix string) *Config {
	return c.set(func(h ULConfig) {
		withString(prefix, func(s ULString) { ulConfigSetResourcePathPrefix(h, s) })
	})
}

func (c *Config) SetFaceWinding(w FaceWinding) *Config {
	return c.set(func(h ULConfig) { ulConfigSetFaceWinding(h, ULFaceWinding(w)) })
}

func (c *Config) SetFontHinting(fh FontHinting) *Config {
	return c.set(func(h ULConfig) { ulConfigSetFontHinting(h, ULFontHinting(fh)) })
}

func (c *Config) SetFontGamma(gamma float64) *Config {
	return c.set(func(h ULConfig) { ulConfigSetFontGamma(h, gamma) })
}

// SetUserStylesheet sets CSS applied to every page.
func (c *Config) SetUserStylesheet(css string) *Config {
	return c.set(func(h ULConfig) {
		withString(css, func(s ULString) { ulConfigSetUserStylesheet(h, s) })
	})
}

// SetForceRepaint repaints the whole view every frame. Useful for debugging.
func (c *Config) SetForceRepaint(enabled bool) *Config {
	return c.set(func(h ULConfig) { ulConfigSetForceRepaint(h, enabled) })
}

func (c *Config) SetAnimationTimerDelay(d time.Duration) *Config {
	return c.set(func(h ULConfig) { ulConfigSetAnimationTimerDelay(h, d.Seconds()) })
}

func (c *Config) SetScrollTimerDelay(d time.Duration) *Config {
	return c.set(func(h ULConfig) { ulConfigSetScrollTimerDelay(h, d.Seconds()) })
}

// SetRecycleDelay sets how often unused memory is returned to the system.
func (c *Config) SetRecycleDelay(d time.Duration) *Config {
	return c.set(func(h ULConfig) { ulConfigSetRecycleDelay(h, d.Seconds()) })
}

func (c *Config) SetMemoryCacheSize(size uint32) *Config {
	return c.set(func(h ULConfig) { ulConfigSetMemoryCacheSize(h, size) })
}

// SetPageCacheSize sets the number of pages kept for back/forward navigation.
func (c *Config) SetPageCacheSize(size uint32) *Config {
	return c.set(func(h ULConfig) { ulConfigSetPageCacheSize(h, size) })
}

func (c *Config) SetOverrideRAMSize(size uint32) *Config {
	return c.set(func(h ULConfig) { ulConfigSetOverrideRAMSize(h, size) })
}

func (c *Config) SetMinLargeHeapSize(size uint32) *Config {
	return c.set(func(h ULConfig) { ulConfigSetMinLargeHeapSize(h, size) })
}

func (c *Config) SetMinSmallHeapSize(size uint32) *Config {
	return c.set(func(h ULConfig) { ulConfigSetMinSmallHeapSize(h, size) })
}

// SetNumRendererThreads sets the number of paint threads. Zero picks a
// default based on the number of cores.
func (c *Config) SetNumRendererThreads(n uint32) *Config {
	return c.set(func(h ULConfig) { ulConfigSetNumRendererThreads(h, n) })
}

// SetMaxUpdateTime caps the time spent per Update.
func (c *Config) SetMaxUpdateTime(d time.Duration) *Config {
	return c.set(func(h ULConfig) { ulConfigSetMaxUpdateTime(h, d.Seconds()) })
}

// SetBitmapAlignment sets the row alignment of bitmap surfaces in bytes.
func (c *Config) SetBitmapAlignment(align uint32) *Config {
	return c.set(func(h ULConfig) { ulConfigSetBitmapAlignment(h, align) })
}

// Destroy releases the config. A renderer built from it is unaffected.
func (c *Config) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.h == 0 {
		return
	}
	ulDestroyConfig(c.h)
	c.h = 0
	c.consumed = true
}
