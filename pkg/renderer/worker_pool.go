package renderer

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID    int // Tile ID, for deterministic ordering
	HitPixels int
	Error     error
}

// WorkerPool renders tiles in parallel with a bounded number of goroutines
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a pool with the given number of workers.
// Non-positive values use one worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run calls render once per tile and waits for all of them. Results are
// indexed like tiles. The first tile error is returned after every started
// tile has finished.
func (wp *WorkerPool) Run(tiles []Tile, render func(Tile) TileResult) ([]TileResult, error) {
	results := make([]TileResult, len(tiles))

	var g errgroup.Group
	g.SetLimit(wp.numWorkers)
	for i, tile := range tiles {
		i, tile := i, tile
		g.Go(func() error {
			result := render(tile)
			result.TaskID = tile.ID
			results[i] = result
			return result.Error
		})
	}

	err := g.Wait()
	return results, err
}
