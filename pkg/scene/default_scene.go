package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// NewDefaultScene creates the demo scene: a small magenta sphere at the
// origin and a larger blue sphere behind it, off to the right.
func NewDefaultScene() *Scene {
	return New(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 0.5, core.NewVec3(1, 0, 1)),
		geometry.NewSphere(core.NewVec3(1, 0, -5), 1.5, core.NewVec3(0.2, 0.3, 1.0)),
	)
}

// NewSingleSphereScene creates a scene with one white unit sphere at the origin
func NewSingleSphereScene() *Scene {
	return New(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, core.NewVec3(1, 1, 1)),
	)
}
