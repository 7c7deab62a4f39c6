package renderer

import (
	"encoding/binary"
	"fmt"
	"image"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Surface is the display side of a frame: something that can take a
// completed row-major buffer of packed pixels and show it. The pixel slice
// is only valid for the duration of Upload; implementations must copy what
// they keep.
type Surface interface {
	Upload(width, height int, pixels []uint32) error
}

// ImageBuffer owns the packed pixels of one frame. Pixels are stored row
// major, index x + y*width, in the layout produced by PackRGBA.
//
// The zero value is an empty 0x0 buffer ready for Resize.
type ImageBuffer struct {
	width  int
	height int
	pixels []uint32
}

// NewImageBuffer creates a zeroed buffer of the given size
func NewImageBuffer(width, height int) *ImageBuffer {
	b := &ImageBuffer{}
	b.Resize(width, height)
	return b
}

// Resize makes the buffer width x height. If the size is unchanged it does
// nothing and returns false, leaving the previous frame intact. Otherwise
// the old pixels are dropped, a new zeroed array is allocated and Resize
// returns true. Negative sizes are treated as zero.
func (b *ImageBuffer) Resize(width, height int) bool {
	width, height = max(width, 0), max(height, 0)
	if b.pixels != nil && width == b.width && height == b.height {
		return false
	}

	b.width = width
	b.height = height
	b.pixels = make([]uint32, width*height)

	core.Logger().Debug("image buffer reallocated", "width", width, "height", height)
	return true
}

// Width returns the width in pixels
func (b *ImageBuffer) Width() int {
	return b.width
}

// Height returns the height in pixels
func (b *ImageBuffer) Height() int {
	return b.height
}

// Bounds returns the pixel rectangle covered by the buffer
func (b *ImageBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// SetPixel stores a packed color at (x, y). Out of range coordinates are
// the caller's bug; the render loop never produces them.
func (b *ImageBuffer) SetPixel(x, y int, packed uint32) {
	b.pixels[x+y*b.width] = packed
}

// Pixel returns the packed color at (x, y)
func (b *ImageBuffer) Pixel(x, y int) uint32 {
	return b.pixels[x+y*b.width]
}

// Pixels returns the backing row-major array. Callers must treat it as
// read-only; it is replaced by the next reallocating Resize.
func (b *ImageBuffer) Pixels() []uint32 {
	return b.pixels
}

// Commit publishes the current frame to a display surface
func (b *ImageBuffer) Commit(surface Surface) error {
	if err := surface.Upload(b.width, b.height, b.pixels); err != nil {
		return fmt.Errorf("failed to upload %dx%d frame: %w", b.width, b.height, err)
	}
	return nil
}

// AppendRGBA appends the frame as 8-bit R, G, B, A bytes per pixel, the
// memory order of the packed layout on little-endian machines and of
// image.RGBA.Pix.
func (b *ImageBuffer) AppendRGBA(dst []byte) []byte {
	return AppendRGBA(dst, b.pixels)
}

// AppendRGBA appends packed pixels to dst as R, G, B, A bytes
func AppendRGBA(dst []byte, pixels []uint32) []byte {
	dst = growBytes(dst, len(pixels)*4)
	for _, p := range pixels {
		dst = binary.LittleEndian.AppendUint32(dst, p)
	}
	return dst
}

// ToRGBA copies the frame into a new image.RGBA
func (b *ImageBuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	img.Pix = b.AppendRGBA(img.Pix[:0])
	return img
}

func growBytes(dst []byte, n int) []byte {
	if cap(dst)-len(dst) >= n {
		return dst
	}
	grown := make([]byte, len(dst), len(dst)+n)
	copy(grown, dst)
	return grown
}
