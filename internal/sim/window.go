package sim

import "math"

// Window owns the live ground segments.
// Segments are appended by the Generator and evicted once they scroll
// fully behind the visible region.
type Window struct {
	segments []Segment
	gen      *Generator
}

// NewWindow creates an empty window fed by gen.
func NewWindow(gen *Generator) *Window {
	return &Window{
		segments: make([]Segment, 0, 128),
		gen:      gen,
	}
}

// Update extends the frontier to at least cameraX + viewWidth, then evicts
// segments whose right edge is left of cameraX - viewWidth/2. Eviction runs
// last so segments emitted behind the left edge never survive the call.
func (w *Window) Update(cameraX, viewWidth float64) {
	w.gen.Extend(cameraX+viewWidth, w.push)

	left := cameraX - viewWidth/2
	kept := w.segments[:0]
	for _, s := range w.segments {
		if s.Right() >= left {
			kept = append(kept, s)
		}
	}
	w.segments = kept
}

func (w *Window) push(s Segment) {
	w.segments = append(w.segments, s)
}

// Segments returns the live segments in generation order.
// The slice is owned by the window and must not be modified.
func (w *Window) Segments() []Segment {
	return w.segments
}

// Frontier returns the generation cursor.
func (w *Window) Frontier() GenerationState {
	return w.gen.State()
}

// SurfaceAt returns the highest ground top covering world x.
// ok is false over a gap.
func (w *Window) SurfaceAt(x float64) (y float64, ok bool) {
	y = math.Inf(1)
	for _, s := range w.segments {
		if x >= s.X && x < s.Right() && s.Y < y {
			y = s.Y
			ok = true
		}
	}
	return y, ok
}
