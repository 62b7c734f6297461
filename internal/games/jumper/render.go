package jumper

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/sim"
)

// Visual characters for rendering
const (
	GroundChar    = '█'
	GroundTopChar = '▄' // Ground whose top sits in the lower half of a cell
	BallChar      = '●'
)

// spinFrames animates the ball from its rotation, one frame per quarter turn.
var spinFrames = []rune{'◐', '◓', '◑', '◒'}

// screenRenderer maps world units onto terminal cells.
type screenRenderer struct {
	dst          *core.Screen
	cellW, cellH float64
	dx, dy       float64
}

func (r *screenRenderer) SetCamera(dx, dy float64) {
	r.dx, r.dy = dx, dy
}

func (r *screenRenderer) col(x float64) int {
	return int(math.Floor((x + r.dx) / r.cellW))
}

func (r *screenRenderer) row(y float64) (int, float64) {
	v := (y + r.dy) / r.cellH
	cell := math.Floor(v)
	return int(cell), v - cell
}

// DrawSegment fills from the segment top to the bottom of the screen.
// Tops in the lower half of a cell get a half block.
func (r *screenRenderer) DrawSegment(s sim.Segment) {
	x0 := r.col(s.X)
	x1 := r.col(s.Right())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	top, frac := r.row(s.Y)
	color := core.PaletteColor(s.ColorIndex)

	if frac >= 0.5 {
		r.dst.DrawRect(core.NewRect(x0, top, x1-x0, 1), GroundTopChar, color)
		top++
	}
	r.dst.DrawRect(core.NewRect(x0, top, x1-x0, r.dst.Height()-top), GroundChar, color)
}

func (r *screenRenderer) DrawBody(b sim.Body) {
	x0 := r.col(b.X - b.Radius)
	x1 := r.col(b.X + b.Radius)
	y0, _ := r.row(b.Y - b.Radius)
	y1, _ := r.row(b.Y + b.Radius)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	r.dst.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), BallChar, core.ColorBrightYellow)

	spin := spinFrames[int(b.Rotation/90)%len(spinFrames)]
	cy, _ := r.row(b.Y)
	r.dst.SetColored(r.col(b.X), cy, spin, core.ColorYellow)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	r := &screenRenderer{dst: dst, cellW: g.cfg.View.CellWidth, cellH: g.cfg.View.CellHeight}
	sim.Draw(r, g.world)

	// Draw HUD
	b := g.world.Body()
	hud := fmt.Sprintf(" Distance: %d  Jumps left: %d ", g.score, max(0, g.cfg.Physics.MaxJumps-b.JumpCount))
	dst.DrawText(2, 0, hud)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Distance: %d  |  Press R to restart", g.score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
