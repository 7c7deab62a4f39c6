package renderer

import (
	"image/color"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// PackRGBA converts a normalized color to a packed 32-bit pixel laid out
// as (A<<24)|(B<<16)|(G<<8)|R. Channels are clamped to [0,1] and scaled by
// 255 with truncation, not rounding: 0.999 becomes 254.
func PackRGBA(rgb core.Vec3, alpha float64) uint32 {
	rgb = rgb.Clamp(0, 1)
	alpha = max(0, min(1, alpha))

	r := uint32(uint8(rgb.X * 255.0))
	g := uint32(uint8(rgb.Y * 255.0))
	b := uint32(uint8(rgb.Z * 255.0))
	a := uint32(uint8(alpha * 255.0))
	return a<<24 | b<<16 | g<<8 | r
}

// UnpackRGBA splits a packed pixel back into 8-bit channels
func UnpackRGBA(packed uint32) color.RGBA {
	return color.RGBA{
		R: uint8(packed),
		G: uint8(packed >> 8),
		B: uint8(packed >> 16),
		A: uint8(packed >> 24),
	}
}
