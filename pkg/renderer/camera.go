package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Position    core.Vec3 // Eye position, shared origin of every primary ray
	Forward     core.Vec3 // View direction
	VerticalFOV float32   // Vertical field of view in degrees
	NearClip    float32
	FarClip     float32
}

// DefaultCameraConfig returns a camera six units back on +Z looking at the origin
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Position:    core.NewVec3(0, 0, 6),
		Forward:     core.NewVec3(0, 0, -1),
		VerticalFOV: 45.0,
		NearClip:    0.1,
		FarClip:     100.0,
	}
}

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera is a perspective fly camera. Ray directions are cached per
// resolution and rebuilt only when the viewport size or the view changes.
type Camera struct {
	config CameraConfig

	position mgl32.Vec3
	forward  mgl32.Vec3

	inverseProjection mgl32.Mat4
	inverseView       mgl32.Mat4

	width, height int
	rayDirections []core.Vec3
}

// NewCamera creates a camera; call Resize before rendering
func NewCamera(config CameraConfig) *Camera {
	forward := mgl32.Vec3{0, 0, -1}
	if f := toMgl(config.Forward); f.Len() > 0 {
		forward = f.Normalize()
	}

	c := &Camera{
		config:   config,
		position: toMgl(config.Position),
		forward:  forward,
	}
	c.recalculateView()
	return c
}

// Resize sets the viewport size. It returns false and keeps the cached rays
// when the size is unchanged.
func (c *Camera) Resize(width, height int) bool {
	if width == c.width && height == c.height && c.rayDirections != nil {
		return false
	}
	c.width, c.height = width, height
	c.recalculateProjection()
	c.recalculateRayDirections()
	return true
}

// Position implements core.Camera
func (c *Camera) Position() core.Vec3 {
	return fromMgl(c.position)
}

// Forward returns the unit view direction
func (c *Camera) Forward() core.Vec3 {
	return fromMgl(c.forward)
}

// RayDirection implements core.Camera. Directions for the current viewport
// come from the cache; any other resolution is computed on the fly.
func (c *Camera) RayDirection(x, y, width, height int) core.Vec3 {
	if width == c.width && height == c.height && len(c.rayDirections) == width*height {
		return c.rayDirections[x+y*width]
	}
	inverseProjection := c.inverseProjection
	if width != c.width || height != c.height {
		inverseProjection = perspectiveInverse(c.config, width, height)
	}
	return c.computeRayDirection(inverseProjection, x, y, width, height)
}

// Move translates the camera along its own forward, right and up axes
func (c *Camera) Move(forward, right, up float32) {
	if forward == 0 && right == 0 && up == 0 {
		return
	}
	rightDir := c.forward.Cross(worldUp).Normalize()
	c.position = c.position.
		Add(c.forward.Mul(forward)).
		Add(rightDir.Mul(right)).
		Add(worldUp.Mul(up))
	c.recalculateView()
	c.recalculateRayDirections()
}

// Rotate turns the camera by pitch (about its right axis) and yaw (about
// world up), both in radians. Rotations that would look straight up or
// down are ignored to keep the view basis well defined.
func (c *Camera) Rotate(pitch, yaw float32) {
	if pitch == 0 && yaw == 0 {
		return
	}
	rightDir := c.forward.Cross(worldUp).Normalize()
	q := mgl32.QuatRotate(-pitch, rightDir).Mul(mgl32.QuatRotate(-yaw, worldUp)).Normalize()

	forward := q.Rotate(c.forward).Normalize()
	if abs32(forward.Dot(worldUp)) > 0.999 {
		return
	}
	c.forward = forward
	c.recalculateView()
	c.recalculateRayDirections()
}

func (c *Camera) recalculateView() {
	view := mgl32.LookAtV(c.position, c.position.Add(c.forward), worldUp)
	c.inverseView = view.Inv()
}

func (c *Camera) recalculateProjection() {
	c.inverseProjection = perspectiveInverse(c.config, c.width, c.height)
}

func (c *Camera) recalculateRayDirections() {
	if c.width <= 0 || c.height <= 0 {
		c.rayDirections = c.rayDirections[:0]
		return
	}
	if cap(c.rayDirections) < c.width*c.height {
		c.rayDirections = make([]core.Vec3, c.width*c.height)
	}
	c.rayDirections = c.rayDirections[:c.width*c.height]

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.rayDirections[x+y*c.width] = c.computeRayDirection(c.inverseProjection, x, y, c.width, c.height)
		}
	}
}

// computeRayDirection unprojects pixel (x, y) to a world space direction.
// NDC x runs -1..1 left to right, NDC y runs 1..-1 top to bottom.
func (c *Camera) computeRayDirection(inverseProjection mgl32.Mat4, x, y, width, height int) core.Vec3 {
	ndcX := float32(x)/float32(width)*2.0 - 1.0
	ndcY := 1.0 - float32(y)/float32(height)*2.0

	target := inverseProjection.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1, 1})
	eyeDir := target.Vec3().Mul(1.0 / target.W()).Normalize()
	worldDir := c.inverseView.Mul4x1(eyeDir.Vec4(0)).Vec3()
	return fromMgl(worldDir)
}

func perspectiveInverse(config CameraConfig, width, height int) mgl32.Mat4 {
	if width <= 0 || height <= 0 {
		return mgl32.Ident4()
	}
	aspect := float32(width) / float32(height)
	projection := mgl32.Perspective(mgl32.DegToRad(config.VerticalFOV), aspect, config.NearClip, config.FarClip)
	return projection.Inv()
}

func toMgl(v core.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func fromMgl(v mgl32.Vec3) core.Vec3 {
	return core.NewVec3(float64(v.X()), float64(v.Y()), float64(v.Z()))
}

func abs32(f float32) float32 {
	return float32(math.Abs(float64(f)))
}
