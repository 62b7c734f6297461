package sim

import "github.com/jakecoffman/cp"

// WorldBottom is the fixed y every ground segment extends down to.
// World y grows downward.
const WorldBottom = 10000.0

// Segment is one rectangular piece of ground in world space.
type Segment struct {
	X          float64 // Left edge
	Y          float64 // Top edge
	Width      float64
	Height     float64 // Always WorldBottom - Y
	ColorIndex int     // Cosmetic palette index
}

// Right returns the x-coordinate of the right edge.
func (s Segment) Right() float64 {
	return s.X + s.Width
}

// MidY returns the vertical midpoint of the segment.
func (s Segment) MidY() float64 {
	return s.Y + s.Height/2
}

// BB returns the segment's bounding box.
// World y grows downward, so cp's B holds the top edge and T the bottom.
func (s Segment) BB() cp.BB {
	return cp.BB{L: s.X, B: s.Y, R: s.X + s.Width, T: s.Y + s.Height}
}
