package renderer

import "time"

// RenderStats contains statistics about one rendered frame
type RenderStats struct {
	Width       int
	Height      int
	TotalPixels int           // Pixels written
	HitPixels   int           // Pixels whose ray hit a sphere
	Workers     int           // Goroutines used, 1 for the sequential path
	Tiles       int           // Tiles rendered, 0 for the sequential path
	Duration    time.Duration // Wall time of the frame
}

// Milliseconds returns the frame time in fractional milliseconds
func (s RenderStats) Milliseconds() float64 {
	return float64(s.Duration) / float64(time.Millisecond)
}

// Coverage returns the fraction of pixels that hit a sphere
func (s RenderStats) Coverage() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}
