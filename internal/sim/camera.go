package sim

// Camera is the world-space point the view is centered on.
// It is derived from the body every frame and has no state of its own.
type Camera struct {
	X, Y float64
}

// Follow places the camera a quarter view ahead of the body.
func Follow(b *Body, viewWidth float64) Camera {
	return Camera{X: b.X + viewWidth/4, Y: 0}
}

// Offset returns the translation from world space to view space.
func (c Camera) Offset(viewWidth, viewHeight float64) (dx, dy float64) {
	return viewWidth/2 - c.X, viewHeight/2 - c.Y
}

// VisibleLeft returns the eviction threshold for this camera.
func (c Camera) VisibleLeft(viewWidth float64) float64 {
	return c.X - viewWidth/2
}

// GenerationBorder returns how far ahead terrain must exist for this camera.
func (c Camera) GenerationBorder(viewWidth float64) float64 {
	return c.X + viewWidth
}
