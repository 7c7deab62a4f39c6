package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// ErrSphereIndex is returned when an edit names a sphere that does not exist
var ErrSphereIndex = errors.New("sphere index out of range")

// Scene is an ordered collection of spheres plus the camera it is meant to
// be viewed from. Order only matters as a tie-break between spheres hit at
// exactly the same distance: the earlier sphere wins.
//
// A Scene must not be edited while a render is in progress.
type Scene struct {
	Spheres      []geometry.Sphere
	CameraConfig renderer.CameraConfig
}

// New creates a scene with the given spheres and the default camera
func New(spheres ...geometry.Sphere) *Scene {
	return &Scene{
		Spheres:      append([]geometry.Sphere(nil), spheres...),
		CameraConfig: renderer.DefaultCameraConfig(),
	}
}

// GetSpheres implements renderer.Scene
func (s *Scene) GetSpheres() []geometry.Sphere {
	return s.Spheres
}

// Len returns the number of spheres
func (s *Scene) Len() int {
	return len(s.Spheres)
}

// Add appends a sphere and returns its index
func (s *Scene) Add(sphere geometry.Sphere) int {
	s.Spheres = append(s.Spheres, sphere)
	return len(s.Spheres) - 1
}

// Remove deletes the sphere at index i, keeping the order of the rest
func (s *Scene) Remove(i int) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.Spheres = append(s.Spheres[:i], s.Spheres[i+1:]...)
	return nil
}

// Edit applies fn to the sphere at index i
func (s *Scene) Edit(i int, fn func(*geometry.Sphere)) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	fn(&s.Spheres[i])
	return nil
}

func (s *Scene) checkIndex(i int) error {
	if i < 0 || i >= len(s.Spheres) {
		return fmt.Errorf("%w: %d (scene has %d spheres)", ErrSphereIndex, i, len(s.Spheres))
	}
	return nil
}
