package core

// Camera supplies primary rays for a frame. All rays of a frame share
// Position as their origin.
type Camera interface {
	// Position returns the shared ray origin.
	Position() Vec3
	// RayDirection returns the direction of the primary ray through pixel
	// (x, y) of a width x height image. Row 0 is the top of the image.
	RayDirection(x, y, width, height int) Vec3
}
