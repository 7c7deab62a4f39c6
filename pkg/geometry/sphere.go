package geometry

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	Albedo core.Vec3 // Base color, each channel in [0,1]
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, albedo core.Vec3) Sphere {
	return Sphere{
		Center: center,
		Radius: radius,
		Albedo: albedo,
	}
}

// Hit intersects the ray with the sphere and returns the smaller root of
// the ray/sphere quadratic. The far root is never returned: callers assume
// the ray origin is outside every sphere. A tangent ray (zero discriminant)
// is a hit. Spheres with a non-positive radius never hit.
//
// The returned distance may be negative when the sphere lies behind the
// ray origin.
func (s Sphere) Hit(ray core.Ray) (float64, bool) {
	if !(s.Radius > 0) {
		return 0, false
	}

	// Ray origin in sphere-local space
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4.0*a*c
	if discriminant < 0 {
		return 0, false
	}

	t := (-b - math.Sqrt(discriminant)) / (2.0 * a)
	if math.IsNaN(t) {
		// Zero-length direction
		return 0, false
	}
	return t, true
}

// Normal returns the outward unit normal at a point on the surface
func (s Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
