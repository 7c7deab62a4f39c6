package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

const cameraTolerance = 1e-5

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestCamera_CenterRayIsForward(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())
	camera.Resize(4, 4)

	// Pixel (2,2) of a 4x4 image sits at NDC (0,0)
	direction := camera.RayDirection(2, 2, 4, 4)
	expected := core.NewVec3(0, 0, -1)
	if !vecNear(direction, expected, cameraTolerance) {
		t.Errorf("Expected forward direction %v, got %v", expected, direction)
	}
	if camera.Position() != core.NewVec3(0, 0, 6) {
		t.Errorf("Expected position (0,0,6), got %v", camera.Position())
	}
}

func TestCamera_ImageOrientation(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())
	camera.Resize(8, 8)

	top := camera.RayDirection(4, 0, 8, 8)
	if top.Y <= 0 {
		t.Errorf("Expected row 0 to look up, got %v", top)
	}
	left := camera.RayDirection(0, 4, 8, 8)
	if left.X >= 0 {
		t.Errorf("Expected column 0 to look left, got %v", left)
	}
}

func TestCamera_VerticalFieldOfView(t *testing.T) {
	config := DefaultCameraConfig()
	config.VerticalFOV = 60
	camera := NewCamera(config)
	camera.Resize(10, 10)

	// Row 0 of column 5 is the top edge of the frustum at NDC (0,1)
	direction := camera.RayDirection(5, 0, 10, 10)
	angle := math.Atan2(direction.Y, -direction.Z)
	expected := 30 * math.Pi / 180
	if math.Abs(angle-expected) > 1e-4 {
		t.Errorf("Expected half FOV %f rad, got %f rad", expected, angle)
	}
}

func TestCamera_ResizeCachesDirections(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())

	if !camera.Resize(6, 4) {
		t.Fatal("First Resize should rebuild directions")
	}
	if camera.Resize(6, 4) {
		t.Error("Resize to the same size should keep the cache")
	}

	// Directions for a resolution that is not cached match a resized camera
	uncached := camera.RayDirection(3, 1, 12, 8)
	other := NewCamera(DefaultCameraConfig())
	other.Resize(12, 8)
	cached := other.RayDirection(3, 1, 12, 8)
	if !vecNear(uncached, cached, cameraTolerance) {
		t.Errorf("Uncached direction %v differs from cached %v", uncached, cached)
	}
}

func TestCamera_Move(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())
	camera.Resize(4, 4)

	camera.Move(2, 1, 0.5)

	// Right of a camera looking down -Z is +X
	expected := core.NewVec3(1, 0.5, 4)
	if !vecNear(camera.Position(), expected, cameraTolerance) {
		t.Errorf("Expected position %v, got %v", expected, camera.Position())
	}
	if !vecNear(camera.RayDirection(2, 2, 4, 4), core.NewVec3(0, 0, -1), cameraTolerance) {
		t.Error("Moving should not change ray directions")
	}
}

func TestCamera_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		pitch    float32
		yaw      float32
		expected core.Vec3
	}{
		{"yaw right", 0, math.Pi / 2, core.NewVec3(1, 0, 0)},
		{"small pitch looks down", 0.1, 0, core.NewVec3(0, -math.Sin(0.1), -math.Cos(0.1))},
		{"straight down is rejected", math.Pi / 2, 0, core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(DefaultCameraConfig())
			camera.Resize(4, 4)

			camera.Rotate(tt.pitch, tt.yaw)

			if !vecNear(camera.Forward(), tt.expected, cameraTolerance) {
				t.Errorf("Expected forward %v, got %v", tt.expected, camera.Forward())
			}
			if !vecNear(camera.RayDirection(2, 2, 4, 4), tt.expected, cameraTolerance) {
				t.Errorf("Expected center ray %v, got %v", tt.expected, camera.RayDirection(2, 2, 4, 4))
			}
		})
	}
}

func TestCamera_ZeroForwardFallsBack(t *testing.T) {
	config := DefaultCameraConfig()
	config.Forward = core.Vec3{}
	camera := NewCamera(config)

	if !vecNear(camera.Forward(), core.NewVec3(0, 0, -1), cameraTolerance) {
		t.Errorf("Expected fallback forward (0,0,-1), got %v", camera.Forward())
	}
}

func TestCamera_ZeroSize(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())
	camera.Resize(0, 0)
	camera.Rotate(0, 0.2)
	camera.Move(1, 0, 0)
	// Nothing to render, but the camera stays usable
	camera.Resize(2, 2)
	if d := camera.RayDirection(1, 1, 2, 2); d.Length() < 0.99 || d.Length() > 1.01 {
		t.Errorf("Expected unit direction after resize, got %v", d)
	}
}
