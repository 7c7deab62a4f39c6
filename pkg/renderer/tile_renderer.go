package renderer

import (
	"image"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// Tile is a rectangular region of the frame rendered as one task
type Tile struct {
	ID     int             // Position in the grid, row major
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of non-overlapping tiles covering a
// width x height image. Edge tiles are clipped to the image.
func NewTileGrid(width, height, tileSize int) []Tile {
	if width <= 0 || height <= 0 || tileSize <= 0 {
		return nil
	}

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize
	tiles := make([]Tile, 0, tilesX*tilesY)

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, Tile{
				ID:     len(tiles),
				Bounds: image.Rect(x0, y0, x1, y1),
			})
		}
	}

	return tiles
}

// TileRenderer traces the pixels of one frame. It is shared read-only by
// all tiles of the frame; each tile writes a disjoint part of the buffer.
type TileRenderer struct {
	spheres  []geometry.Sphere
	camera   core.Camera
	origin   core.Vec3
	buffer   *ImageBuffer
	lighting Lighting
	tMin     float64
}

// RenderTileBounds renders every pixel inside bounds and returns how many
// of them hit a sphere
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle) int {
	hits := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if tr.renderPixel(x, y) {
				hits++
			}
		}
	}
	return hits
}

// renderPixel computes and stores the packed color of one pixel
func (tr *TileRenderer) renderPixel(x, y int) bool {
	width, height := tr.buffer.Width(), tr.buffer.Height()
	ray := core.NewRay(tr.origin, tr.camera.RayDirection(x, y, width, height))

	color, isHit := shadeRay(tr.spheres, ray, tr.tMin, tr.lighting)
	tr.buffer.SetPixel(x, y, PackRGBA(color, 1.0))
	return isHit
}
