package renderer

import (
	"log/slog"
	"math"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// Lighting holds the fixed light and background used for shading
type Lighting struct {
	LightDirection core.Vec3 // Direction the light travels, unit length
	Background     core.Vec3 // RGB for rays that hit nothing; alpha is always 1
}

// DefaultLighting returns a single directional light shining along
// (-1,-1,-1) and an opaque black background
func DefaultLighting() Lighting {
	return Lighting{
		LightDirection: core.NewVec3(-1, -1, -1).Normalize(),
		Background:     core.NewVec3(0, 0, 0),
	}
}

// Config contains rendering configuration
type Config struct {
	Lighting Lighting

	// CullBehindOrigin drops hits with t <= 0. When false every finite near
	// root competes, so a sphere behind the camera can win over one in
	// front of it.
	CullBehindOrigin bool

	// NumWorkers selects the render path: 0 or 1 renders sequentially,
	// greater values split the frame into tiles rendered concurrently and
	// negative values use one worker per CPU.
	NumWorkers int
	TileSize   int // Tile edge in pixels for the concurrent path
}

// DefaultConfig returns the sequential configuration with default lighting
func DefaultConfig() Config {
	return Config{
		Lighting:   DefaultLighting(),
		NumWorkers: 0,
		TileSize:   64,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetSpheres() []geometry.Sphere
}

// Raytracer renders a scene of spheres into an ImageBuffer
type Raytracer struct {
	config Config
	pool   *WorkerPool
	logger *slog.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(config Config) *Raytracer {
	rt := &Raytracer{logger: core.Logger()}
	rt.SetConfig(config)
	return rt
}

// SetConfig replaces the rendering configuration
func (rt *Raytracer) SetConfig(config Config) {
	if config.TileSize <= 0 {
		config.TileSize = DefaultConfig().TileSize
	}
	rt.config = config
	rt.pool = nil
	if config.NumWorkers > 1 || config.NumWorkers < 0 {
		rt.pool = NewWorkerPool(config.NumWorkers)
	}
}

// Config returns the current rendering configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// SetLogger overrides the package logger for this raytracer. Nil restores it.
func (rt *Raytracer) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = core.Logger()
	}
	rt.logger = logger
}

// Render traces one ray per pixel of buffer and overwrites every pixel.
// The buffer must already have the target size. The scene must not change
// until Render returns.
func (rt *Raytracer) Render(scene Scene, camera core.Camera, buffer *ImageBuffer) RenderStats {
	start := time.Now()

	tr := &TileRenderer{
		spheres:  scene.GetSpheres(),
		camera:   camera,
		origin:   camera.Position(),
		buffer:   buffer,
		lighting: rt.config.Lighting,
		tMin:     rt.minHitDistance(),
	}

	stats := RenderStats{
		Width:       buffer.Width(),
		Height:      buffer.Height(),
		TotalPixels: buffer.Width() * buffer.Height(),
		Workers:     1,
	}

	if rt.pool == nil || stats.TotalPixels == 0 {
		stats.HitPixels = tr.RenderTileBounds(buffer.Bounds())
	} else {
		tiles := NewTileGrid(buffer.Width(), buffer.Height(), rt.config.TileSize)
		results, err := rt.pool.Run(tiles, func(tile Tile) TileResult {
			return TileResult{HitPixels: tr.RenderTileBounds(tile.Bounds)}
		})
		if err != nil {
			// Tile renders do not fail; an error here is a programming bug
			rt.logger.Error("tile render failed", "error", err)
		}
		for _, result := range results {
			stats.HitPixels += result.HitPixels
		}
		stats.Workers = rt.pool.GetNumWorkers()
		stats.Tiles = len(tiles)
	}

	stats.Duration = time.Since(start)
	rt.logger.Debug("frame rendered",
		"width", stats.Width,
		"height", stats.Height,
		"spheres", len(tr.spheres),
		"hits", stats.HitPixels,
		"workers", stats.Workers,
		"ms", stats.Milliseconds())
	return stats
}

// TraceRay returns the unclamped color and alpha seen along a single ray
func (rt *Raytracer) TraceRay(spheres []geometry.Sphere, ray core.Ray) (core.Vec3, float64) {
	color, _ := shadeRay(spheres, ray, rt.minHitDistance(), rt.config.Lighting)
	return color, 1.0
}

func (rt *Raytracer) minHitDistance() float64 {
	if rt.config.CullBehindOrigin {
		return 0
	}
	return math.Inf(-1)
}

// ClosestHit returns the index and hit distance of the sphere whose near
// root is smallest among roots greater than tMin. Ties keep the earlier
// sphere.
func ClosestHit(spheres []geometry.Sphere, ray core.Ray, tMin float64) (int, float64, bool) {
	closest := -1
	closestSoFar := math.Inf(1)

	for i, sphere := range spheres {
		t, isHit := sphere.Hit(ray)
		if !isHit || t <= tMin {
			continue
		}
		if t < closestSoFar {
			closestSoFar = t
			closest = i
		}
	}

	if closest < 0 {
		return -1, 0, false
	}
	return closest, closestSoFar, true
}

// Shade returns the Lambertian color of a sphere at a world space hit point
func Shade(sphere geometry.Sphere, point core.Vec3, lighting Lighting) core.Vec3 {
	normal := sphere.Normal(point)
	intensity := max(normal.Dot(lighting.LightDirection.Negate()), 0.0)
	return sphere.Albedo.Multiply(intensity)
}

// shadeRay returns the color seen along ray and whether it hit a sphere
func shadeRay(spheres []geometry.Sphere, ray core.Ray, tMin float64, lighting Lighting) (core.Vec3, bool) {
	i, t, isHit := ClosestHit(spheres, ray, tMin)
	if !isHit {
		return lighting.Background, false
	}
	return Shade(spheres[i], ray.At(t), lighting), true
}
