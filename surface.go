package ultralight

import "unsafe"

// Surface is a pixel buffer the renderer paints into.
type Surface interface {
	Width() uint32
	Height() uint32
	RowBytes() uint32
	// Size returns the size of the pixel buffer in bytes.
	Size() int
	LockPixels() *PixelGuard
}

type pixelLocker interface {
	lockPixels() unsafe.Pointer
	unlockPixels()
	Size() int
}

// PixelGuard gives access to the pixels of a locked surface. The pixels stay
// locked until Unlock.
type PixelGuard struct {
	surface pixelLocker
	pixels  []byte
	locked  bool
}

func lockPixels(s pixelLocker) *PixelGuard {
	p := s.lockPixels()
	g := &PixelGuard{surface: s, locked: true}
	if n := s.Size(); p != nil && n > 0 {
		g.pixels = unsafe.Slice((*byte)(p), n)
	}
	return g
}

// Pixels returns the locked pixel buffer, or nil once unlocked.
func (g *PixelGuard) Pixels() []byte {
	if !g.locked {
		return nil
	}
	return g.pixels
}

// Unlock releases the lock. Further calls do nothing.
func (g *PixelGuard) Unlock() {
	if !g.locked {
		return
	}
	g.locked = false
	g.pixels = nil
	g.surface.unlockPixels()
}

// WithPixels locks s for the duration of fn.
func WithPixels(s Surface, fn func(pixels []byte)) {
	g := s.LockPixels()
	defer g.Unlock()
	fn(g.Pixels())
}

// GenericSurface is the surface of a View. It is valid while the view is.
type GenericSurface struct {
	h    ULSurface
	view *View
}

func (s *GenericSurface) Raw() ULSurface { return s.h }

func (s *GenericSurface) Width() uint32    { return ulSurfaceGetWidth(s.h) }
func (s *GenericSurface) Height() uint32   { return ulSurfaceGetHeight(s.h) }
func (s *GenericSurface) RowBytes() uint32 { return ulSurfaceGetRowBytes(s.h) }
func (s *GenericSurface) Size() int        { return int(ulSurfaceGetSize(s.h)) }

func (s *GenericSurface) LockPixels() *PixelGuard { return lockPixels(s) }

func (s *GenericSurface) lockPixels() unsafe.Pointer { return ulSurfaceLockPixels(s.h) }
func (s *GenericSurface) unlockPixels()              { ulSurfaceUnlockPixels(s.h) }

// Resize changes the surface dimensions. The view is not resized.
func (s *GenericSurface) Resize(width, height uint32) {
	ulSurfaceResize(s.h, width, height)
}

// ClearDirtyBounds marks the whole surface clean.
func (s *GenericSurface) ClearDirtyBounds() {
	ulSurfaceClearDirtyBounds(s.h)
}

// Bitmap returns the bitmap backing the surface. It is only meaningful for
// the default CPU renderer.
func (s *GenericSurface) Bitmap() *BitmapSurface {
	return &BitmapSurface{h: ulBitmapSurfaceGetBitmap(s.h), surface: s}
}
