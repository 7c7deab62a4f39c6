package scene

import (
	"errors"
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// ErrNoSelection is returned by edits when the scene has no spheres
var ErrNoSelection = errors.New("no sphere selected")

// Editor applies interactive edits to one selected sphere of a scene.
// Edits happen between frames, never during a render.
type Editor struct {
	scene    *Scene
	selected int
}

// NewEditor creates an editor with the first sphere selected
func NewEditor(s *Scene) *Editor {
	e := &Editor{scene: s}
	e.clampSelection()
	return e
}

// Selected returns the selected sphere index, or false for an empty scene
func (e *Editor) Selected() (int, bool) {
	e.clampSelection()
	return e.selected, e.selected >= 0
}

// SelectedSphere returns a copy of the selected sphere
func (e *Editor) SelectedSphere() (geometry.Sphere, bool) {
	i, ok := e.Selected()
	if !ok {
		return geometry.Sphere{}, false
	}
	return e.scene.Spheres[i], true
}

// SelectNext moves the selection to the next sphere, wrapping around
func (e *Editor) SelectNext() {
	if e.scene.Len() == 0 {
		e.selected = -1
		return
	}
	e.selected = (e.selected + 1) % e.scene.Len()
}

// Translate moves the selected sphere by delta
func (e *Editor) Translate(delta core.Vec3) error {
	return e.edit(func(s *geometry.Sphere) {
		s.Center = s.Center.Add(delta)
	})
}

// AdjustRadius grows or shrinks the selected sphere. The radius never goes
// below zero; a zero radius sphere stays in the scene but is never hit.
func (e *Editor) AdjustRadius(delta float64) error {
	return e.edit(func(s *geometry.Sphere) {
		s.Radius = max(0, s.Radius+delta)
	})
}

// StepAlbedo adds step to one albedo channel (0=R, 1=G, 2=B), wrapping
// past 1 back to 0
func (e *Editor) StepAlbedo(channel int, step float64) error {
	return e.edit(func(s *geometry.Sphere) {
		switch channel {
		case 0:
			s.Albedo.X = wrapUnit(s.Albedo.X + step)
		case 1:
			s.Albedo.Y = wrapUnit(s.Albedo.Y + step)
		case 2:
			s.Albedo.Z = wrapUnit(s.Albedo.Z + step)
		}
	})
}

// Add appends a sphere and selects it
func (e *Editor) Add(sphere geometry.Sphere) {
	e.selected = e.scene.Add(sphere)
}

// RemoveSelected deletes the selected sphere and selects its successor
func (e *Editor) RemoveSelected() error {
	i, ok := e.Selected()
	if !ok {
		return ErrNoSelection
	}
	if err := e.scene.Remove(i); err != nil {
		return err
	}
	e.clampSelection()
	return nil
}

func (e *Editor) edit(fn func(*geometry.Sphere)) error {
	i, ok := e.Selected()
	if !ok {
		return ErrNoSelection
	}
	return e.scene.Edit(i, fn)
}

func (e *Editor) clampSelection() {
	switch {
	case e.scene.Len() == 0:
		e.selected = -1
	case e.selected < 0:
		e.selected = 0
	case e.selected >= e.scene.Len():
		e.selected = e.scene.Len() - 1
	}
}

func wrapUnit(v float64) float64 {
	if v > 1 || v < 0 {
		v -= math.Floor(v)
	}
	return v
}
