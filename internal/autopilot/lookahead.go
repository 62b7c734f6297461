package autopilot

import "github.com/vovakirdan/tui-jumper/internal/sim"

// DefaultLookaheadFrames is how many frames of travel Lookahead scans ahead.
const DefaultLookaheadFrames = 12

// groundSlack is how far above the surface the ball may bounce and still
// count as standing on it.
const groundSlack = 4.0

// Lookahead jumps before gaps and walls and glides across pits.
type Lookahead struct {
	Frames int
}

// Decide implements Policy.
func (p Lookahead) Decide(w *sim.World) (sim.Input, error) {
	frames := p.Frames
	if frames <= 0 {
		frames = DefaultLookaheadFrames
	}

	b := w.Body()
	v := view{
		body:     b,
		grounded: w.Grounded(),
		maxJumps: w.Config().Physics.MaxJumps,
	}
	v.here, v.hereOK = w.SurfaceAt(b.X)
	v.front, v.frontOK = w.SurfaceAt(b.X + b.Radius + b.VX*float64(frames))
	return v.decide(), nil
}

// view is the slice of world state the lookahead rule reads.
type view struct {
	body     sim.Body
	grounded bool
	maxJumps int

	here, front     float64
	hereOK, frontOK bool
}

func (v view) onGround() bool {
	return v.grounded || (v.hereOK && v.body.Bottom() >= v.here-groundSlack)
}

func (v view) decide() sim.Input {
	var in sim.Input
	b := v.body

	switch {
	case v.onGround() && !v.frontOK:
		// Pit ahead.
		in.Tap = true
	case v.onGround() && v.hereOK && v.front < v.here-b.Radius:
		// Step taller than the ball.
		in.Tap = true
	case !v.onGround() && !v.hereOK && b.VY > 0 && b.JumpCount < v.maxJumps:
		// Falling into a pit with a jump left.
		in.Tap = true
	}

	in.Hold = !v.onGround() && !v.hereOK
	return in
}
