package sim

import (
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// BodyState tells the host whether the run can continue.
type BodyState int

const (
	BodyAlive BodyState = iota
	// BodyFell is entered once the body drops below the visible band.
	BodyFell
)

func (s BodyState) String() string {
	if s == BodyFell {
		return "fell"
	}
	return "alive"
}

// Physics holds the per-frame body constants.
type Physics struct {
	GravityDefault float64 // Added to vy each airborne frame
	GravityHold    float64 // Used instead while the input is held
	JumpVelocity   float64 // vy set by a jump; negative is up
	MaxVelocity    float64 // |vy| limit
	MaxJumps       int     // Jumps allowed between groundings
	RotationStep   float64 // Degrees per frame, cosmetic
}

// DefaultPhysics returns the reference tuning.
func DefaultPhysics() Physics {
	return Physics{
		GravityDefault: 0.7,
		GravityHold:    0.2,
		JumpVelocity:   -7,
		MaxVelocity:    10,
		MaxJumps:       2,
		RotationStep:   30,
	}
}

// Input is the per-frame control snapshot.
type Input struct {
	Tap  bool // Edge: a press began since the previous frame
	Hold bool // Level: the control is currently down
}

// Body is the controlled ball.
type Body struct {
	X, Y      float64 // Center; y grows downward
	VX, VY    float64
	Radius    float64
	JumpCount int
	Rotation  float64 // Degrees, accumulated
	State     BodyState
}

// Bottom returns the y of the body's lowest point.
func (b *Body) Bottom() float64 {
	return b.Y + b.Radius
}

// BB returns the body's axis-aligned bounding box.
func (b *Body) BB() cp.BB {
	return cp.NewBBForCircle(cp.Vector{X: b.X, Y: b.Y}, b.Radius)
}

// Integrate moves the body by its velocity and spins it.
func (b *Body) Integrate(p Physics) {
	b.X += b.VX
	b.Y += b.VY
	b.Rotation += p.RotationStep
	if b.Rotation >= 360 {
		b.Rotation -= 360
	}
}

// Apply runs the velocity rules for one frame, after landing resolution.
// Grounding resets the jump count and suppresses gravity. A tap jumps when
// grounded or while jumps remain, and the jump is applied to y immediately
// so it shows on the frame it was requested. vy is always clamped.
// It reports whether a jump happened.
func (b *Body) Apply(p Physics, grounded bool, in Input) bool {
	if grounded {
		b.JumpCount = 0
	} else if in.Hold {
		b.VY += p.GravityHold
	} else {
		b.VY += p.GravityDefault
	}

	jumped := false
	if in.Tap && (grounded || b.JumpCount < p.MaxJumps) {
		b.VY = p.JumpVelocity
		b.Y += b.VY
		b.JumpCount++
		jumped = true
	}

	b.VY = core.ClampF(b.VY, -p.MaxVelocity, p.MaxVelocity)
	return jumped
}
