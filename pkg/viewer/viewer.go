// Package viewer hosts the ray tracer in a desktop window. Every frame is
// traced at the window's size, uploaded to a texture and drawn, while the
// keyboard and mouse edit the camera and the scene between frames.
package viewer

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// Config contains window and input settings
type Config struct {
	Title  string
	Width  int // Initial window width
	Height int // Initial window height

	MoveSpeed     float32 // World units per second
	RotationSpeed float32 // Radians per pixel of mouse drag
	EditStep      float64 // Distance or radius change per second while a key is held
	AlbedoStep    float64 // Albedo change per key press
}

// DefaultConfig returns a 1280x720 window with moderate camera speeds
func DefaultConfig() Config {
	return Config{
		Title:         "Sphere Tracer",
		Width:         1280,
		Height:        720,
		MoveSpeed:     5.0,
		RotationSpeed: 0.002,
		EditStep:      1.0,
		AlbedoStep:    0.1,
	}
}

// Viewer is an ebiten.Game that re-renders the scene every frame
type Viewer struct {
	config    Config
	scene     *scene.Scene
	editor    *scene.Editor
	camera    *renderer.Camera
	raytracer *renderer.Raytracer
	buffer    *renderer.ImageBuffer
	surface   *textureSurface
	logger    *slog.Logger

	viewportWidth  int
	viewportHeight int

	dragging     bool
	lastX, lastY int
	lastStats    renderer.RenderStats
	commitErr    error
}

// New creates a viewer for s, rendered with rt
func New(s *scene.Scene, rt *renderer.Raytracer, config Config) *Viewer {
	return &Viewer{
		config:    config,
		scene:     s,
		editor:    scene.NewEditor(s),
		camera:    renderer.NewCamera(s.CameraConfig),
		raytracer: rt,
		buffer:    renderer.NewImageBuffer(0, 0),
		surface:   &textureSurface{},
		logger:    core.Logger(),
	}
}

// Run opens the window and blocks until it is closed or Escape is pressed
func (v *Viewer) Run() error {
	ebiten.SetWindowTitle(v.config.Title)
	ebiten.SetWindowSize(v.config.Width, v.config.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	err := ebiten.RunGame(v)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update implements ebiten.Game. All scene and camera edits happen here,
// never during Draw.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := float32(1.0 / float64(ebiten.TPS()))
	v.updateCamera(dt)
	v.updateScene(float64(dt))
	return nil
}

// Draw implements ebiten.Game
func (v *Viewer) Draw(screen *ebiten.Image) {
	v.renderFrame()

	if img := v.surface.Image(); img != nil {
		screen.DrawImage(img, nil)
	}
	ebitenutil.DebugPrint(screen, v.overlay())
}

// Layout implements ebiten.Game. The render resolution follows the window.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.viewportWidth, v.viewportHeight = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (v *Viewer) renderFrame() {
	if v.viewportWidth <= 0 || v.viewportHeight <= 0 {
		return
	}
	v.buffer.Resize(v.viewportWidth, v.viewportHeight)
	v.camera.Resize(v.viewportWidth, v.viewportHeight)

	v.lastStats = v.raytracer.Render(v.scene, v.camera, v.buffer)

	err := v.buffer.Commit(v.surface)
	if err != nil && v.commitErr == nil {
		v.logger.Error("frame upload failed", "error", err)
	}
	v.commitErr = err
}

func (v *Viewer) updateCamera(dt float32) {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		if v.dragging {
			dx, dy := float32(x-v.lastX), float32(y-v.lastY)
			v.camera.Rotate(dy*v.config.RotationSpeed, dx*v.config.RotationSpeed)
		}
		v.lastX, v.lastY = x, y
		v.dragging = true
	} else {
		v.dragging = false
	}

	step := v.config.MoveSpeed * dt
	var forward, right, up float32
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		forward += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		forward -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		right += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		right -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		up += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		up -= step
	}
	v.camera.Move(forward, right, up)
}

func (v *Viewer) updateScene(dt float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		v.editor.SelectNext()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		v.addSphere()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) {
		v.report("remove sphere", v.editor.RemoveSelected())
	}

	step := v.config.EditStep * dt
	var delta core.Vec3
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		delta.X -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		delta.X += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		delta.Y += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		delta.Y -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyPageUp) {
		delta.Z -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyPageDown) {
		delta.Z += step
	}
	if delta != (core.Vec3{}) {
		v.report("move sphere", v.editor.Translate(delta))
	}

	if ebiten.IsKeyPressed(ebiten.KeyBracketRight) {
		v.report("resize sphere", v.editor.AdjustRadius(step))
	}
	if ebiten.IsKeyPressed(ebiten.KeyBracketLeft) {
		v.report("resize sphere", v.editor.AdjustRadius(-step))
	}

	albedoKeys := []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3}
	for channel, key := range albedoKeys {
		if inpututil.IsKeyJustPressed(key) {
			v.report("recolor sphere", v.editor.StepAlbedo(channel, v.config.AlbedoStep))
		}
	}
}

// addSphere places a new unit sphere three units in front of the camera
func (v *Viewer) addSphere() {
	center := v.camera.Position().Add(v.camera.Forward().Multiply(3))
	v.editor.Add(geometry.NewSphere(center, 0.5, core.NewVec3(1, 1, 1)))
	v.logger.Debug("sphere added", "center", center, "spheres", v.scene.Len())
}

func (v *Viewer) report(action string, err error) {
	if err != nil {
		v.logger.Debug(action, "error", err)
	}
}

func (v *Viewer) overlay() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Last render: %.3fms\n", v.lastStats.Milliseconds())
	fmt.Fprintf(&sb, "%dx%d, %d spheres\n", v.lastStats.Width, v.lastStats.Height, v.scene.Len())

	if i, ok := v.editor.Selected(); ok {
		s := v.scene.Spheres[i]
		fmt.Fprintf(&sb, "Sphere %d: center (%.2f, %.2f, %.2f) radius %.2f albedo (%.2f, %.2f, %.2f)\n",
			i, s.Center.X, s.Center.Y, s.Center.Z, s.Radius, s.Albedo.X, s.Albedo.Y, s.Albedo.Z)
	} else {
		sb.WriteString("No spheres\n")
	}
	sb.WriteString("RMB drag look, WASD/QE move, Tab select, arrows/PgUp/PgDn move sphere\n")
	sb.WriteString("[ ] radius, 1/2/3 albedo, N add, Del remove, Esc quit")
	return sb.String()
}
