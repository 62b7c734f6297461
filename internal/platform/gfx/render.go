package gfx

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-jumper/internal/sim"
)

// vectorRenderer draws the world with ebiten's vector package.
type vectorRenderer struct {
	dst     *ebiten.Image
	palette []color.Color
	dx, dy  float64
}

func (r *vectorRenderer) SetCamera(dx, dy float64) {
	r.dx, r.dy = dx, dy
}

// DrawSegment fills the segment down to the bottom of the image.
// Segments reach far below the view, so they are clipped first.
func (r *vectorRenderer) DrawSegment(s sim.Segment) {
	x := s.X + r.dx
	y := s.Y + r.dy
	h := math.Min(s.Height, float64(r.dst.Bounds().Dy())-y)
	if h <= 0 {
		return
	}
	vector.FillRect(r.dst, float32(x), float32(y), float32(s.Width), float32(h), paletteColor(r.palette, s.ColorIndex), false)
}

// DrawBody draws the ball and a spoke showing its rotation.
func (r *vectorRenderer) DrawBody(b sim.Body) {
	cx := float32(b.X + r.dx)
	cy := float32(b.Y + r.dy)
	vector.FillCircle(r.dst, cx, cy, float32(b.Radius), ballColor, true)

	rad := b.Rotation * math.Pi / 180
	ex := cx + float32(math.Cos(rad)*b.Radius)
	ey := cy + float32(math.Sin(rad)*b.Radius)
	vector.StrokeLine(r.dst, cx, cy, ex, ey, 2, spinColor, true)
}
