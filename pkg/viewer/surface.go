package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// textureSurface receives committed frames into an ebiten image. The image
// is reallocated only when the frame size changes.
type textureSurface struct {
	image   *ebiten.Image
	width   int
	height  int
	scratch []byte
}

// Upload implements renderer.Surface
func (s *textureSurface) Upload(width, height int, pixels []uint32) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	if s.image == nil || s.width != width || s.height != height {
		if s.image != nil {
			s.image.Deallocate()
		}
		s.image = ebiten.NewImage(width, height)
		s.width, s.height = width, height
	}

	s.scratch = renderer.AppendRGBA(s.scratch[:0], pixels)
	s.image.WritePixels(s.scratch)
	return nil
}

// Image returns the last uploaded frame, or nil before the first upload
func (s *textureSurface) Image() *ebiten.Image {
	return s.image
}
