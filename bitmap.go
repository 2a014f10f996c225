package ultralight

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"unsafe"
)

// BitmapFormat is the pixel layout of a bitmap.
type BitmapFormat int32

const (
	// BitmapFormatA8 stores one alpha byte per pixel.
	BitmapFormatA8 = BitmapFormat(kBitmapFormat_A8_UNORM)
	// BitmapFormatBGRA8 stores blue, green, red and alpha bytes per pixel
	// with sRGB color and premultiplied alpha.
	BitmapFormatBGRA8 = BitmapFormat(kBitmapFormat_BGRA8_UNORM_SRGB)
)

func (f BitmapFormat) String() string {
	switch f {
	case BitmapFormatA8:
		return "A8"
	case BitmapFormatBGRA8:
		return "BGRA8"
	}
	return fmt.Sprintf("BitmapFormat(%d)", int32(f))
}

// BitmapSurface is the bitmap behind a view's surface.
type BitmapSurface struct {
	h       ULBitmap
	surface *GenericSurface
}

func (b *BitmapSurface) Raw() ULBitmap { return b.h }

func (b *BitmapSurface) Width() uint32    { return ulBitmapGetWidth(b.h) }
func (b *BitmapSurface) Height() uint32   { return ulBitmapGetHeight(b.h) }
func (b *BitmapSurface) RowBytes() uint32 { return ulBitmapGetRowBytes(b.h) }
func (b *BitmapSurface) Size() int        { return int(ulBitmapGetSize(b.h)) }

func (b *BitmapSurface) Format() BitmapFormat { return BitmapFormat(ulBitmapGetFormat(b.h)) }

// BytesPerPixel returns 1 for A8 and 4 for BGRA8.
func (b *BitmapSurface) BytesPerPixel() int { return int(ulBitmapGetBpp(b.h)) }

func (b *BitmapSurface) IsEmpty() bool { return ulBitmapIsEmpty(b.h) }

// Erase clears every pixel to zero.
func (b *BitmapSurface) Erase() { ulBitmapErase(b.h) }

// SwapRedBlue converts between BGRA and RGBA in place.
func (b *BitmapSurface) SwapRedBlue() { ulBitmapSwapRedBlueChannels(b.h) }

func (b *BitmapSurface) LockPixels() *PixelGuard { return lockPixels(b) }

func (b *BitmapSurface) lockPixels() unsafe.Pointer { return ulBitmapLockPixels(b.h) }
func (b *BitmapSurface) unlockPixels()              { ulBitmapUnlockPixels(b.h) }

// WritePNG lets the engine encode the bitmap to path.
func (b *BitmapSurface) WritePNG(path string) error {
	p := cString(path)
	if !ulBitmapWritePNG(b.h, &p[0]) {
		return fmt.Errorf("%w: %s", ErrPNGWrite, path)
	}
	return nil
}

// Image copies the bitmap into a Go image: *image.RGBA for BGRA8 and
// *image.Alpha for A8.
func (b *BitmapSurface) Image() image.Image {
	w, h := int(b.Width()), int(b.Height())
	stride := int(b.RowBytes())
	rect := image.Rect(0, 0, w, h)

	g := b.LockPixels()
	defer g.Unlock()
	src := g.Pixels()

	if b.Format() == BitmapFormatA8 {
		img := image.NewAlpha(rect)
		for y := 0; y < h && src != nil; y++ {
			copy(img.Pix[y*img.Stride:y*img.Stride+w], src[y*stride:])
		}
		return img
	}

	img := image.NewRGBA(rect)
	for y := 0; y < h && src != nil; y++ {
		row := src[y*stride : y*stride+w*4]
		dst := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < len(row); x += 4 {
			dst[x+0] = row[x+2]
			dst[x+1] = row[x+1]
			dst[x+2] = row[x+0]
			dst[x+3] = row[x+3]
		}
	}
	return img
}

// EncodePNG writes the bitmap to w as PNG without going through the engine.
func (b *BitmapSurface) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.Image()); err != nil {
		return fmt.Errorf("%w: %v", ErrPNGWrite, err)
	}
	return nil
}
