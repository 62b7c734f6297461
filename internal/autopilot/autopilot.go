// Package autopilot drives a jumper run without a human: built-in and
// scripted input policies plus a headless driver loop.
package autopilot

import (
	"context"
	"fmt"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/sim"
)

// Policy decides the input for the next frame from the current world.
type Policy interface {
	Decide(w *sim.World) (sim.Input, error)
}

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(w *sim.World) (sim.Input, error)

// Decide calls f(w).
func (f PolicyFunc) Decide(w *sim.World) (sim.Input, error) {
	return f(w)
}

// Idle never touches the controls.
var Idle = PolicyFunc(func(*sim.World) (sim.Input, error) {
	return sim.Input{}, nil
})

// Frame converts a policy decision into a platform input frame.
func Frame(in sim.Input) core.InputFrame {
	f := core.NewInputFrame()
	if in.Tap {
		f.Set(core.ActionJump)
	}
	f.SetHeld(core.ActionJump, in.Hold || in.Tap)
	return f
}

// Drive steps g under p until the run ends, maxFrames is reached (0 means no
// limit) or ctx is cancelled. g must have been Reset.
func Drive(ctx context.Context, g *jumper.Game, p Policy, maxFrames int) (jumper.RunStats, error) {
	for frame := 0; maxFrames <= 0 || frame < maxFrames; frame++ {
		if frame%256 == 0 {
			if err := ctx.Err(); err != nil {
				return g.Stats(), err
			}
		}

		in, err := p.Decide(g.World())
		if err != nil {
			return g.Stats(), fmt.Errorf("autopilot: frame %d: %w", frame, err)
		}
		if res := g.Step(Frame(in)); res.State.GameOver {
			break
		}
	}
	return g.Stats(), nil
}
