package sim

// Renderer receives the world one way; the core never reads it back.
type Renderer interface {
	// SetCamera gives the world-to-view translation for the frame.
	SetCamera(dx, dy float64)
	DrawSegment(s Segment)
	DrawBody(b Body)
}

// Draw pushes the camera, every live segment and the body to r.
func Draw(r Renderer, w *World) {
	dx, dy := w.camera.Offset(w.cfg.ViewWidth, w.cfg.ViewHeight)
	r.SetCamera(dx, dy)
	for _, s := range w.window.Segments() {
		r.DrawSegment(s)
	}
	r.DrawBody(w.body)
}
