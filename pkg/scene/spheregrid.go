package scene

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH -> OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB -> LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS -> linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

const (
	gridSize    = 10
	gridSpacing = 1.0
	gridRadius  = 0.4
)

// NewSphereGridScene creates a scene with a 10x10 grid of spheres in the XY
// plane, hue varying along X and lightness along Y
func NewSphereGridScene() *Scene {
	s := New()

	offset := float64(gridSize-1) * gridSpacing / 2
	for j := 0; j < gridSize; j++ {
		for i := 0; i < gridSize; i++ {
			center := core.NewVec3(
				float64(i)*gridSpacing-offset,
				float64(j)*gridSpacing-offset,
				-float64((i+j)%3)*0.5, // Stagger depth so neighbours overlap in view
			)
			hue := float64(i) * 360.0 / gridSize
			lightness := 0.55 + 0.35*float64(j)/float64(gridSize-1)
			s.Add(geometry.NewSphere(center, gridRadius, oklchToRGB(lightness, 0.15, hue)))
		}
	}

	// Pull the camera back far enough to frame the whole grid
	s.CameraConfig.Position = core.NewVec3(0, 0, 16)
	return s
}
