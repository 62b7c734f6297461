package sim

// Config is everything a World needs besides its random source.
type Config struct {
	ViewWidth  float64 // Visible region width in world units
	ViewHeight float64 // Visible region height in world units
	Radius     float64 // Body collision half-size
	Speed      float64 // Body horizontal velocity per frame, > 0
	StartDrop  float64 // Gap between the body and y=0 at spawn

	// HardLanding is the sink depth that raises EventHardLanding; 0 disables it.
	HardLanding float64

	Physics Physics
	Terrain TerrainConfig
}

// DefaultConfig returns the reference world for a 640x384 view.
func DefaultConfig() Config {
	return Config{
		ViewWidth:   640,
		ViewHeight:  384,
		Radius:      16,
		Speed:       3,
		StartDrop:   5,
		HardLanding: 24,
		Physics:     DefaultPhysics(),
		Terrain: TerrainConfig{
			Patterns:     AllPatterns,
			Selection:    SelectRandom,
			PairedSlopes: true,
			FlatStart:    true,
			PaletteSize:  2,
		},
	}
}

// EventKind identifies something hosts may want to react to.
type EventKind int

const (
	EventJump EventKind = iota
	EventHardLanding
	EventFell
)

func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventHardLanding:
		return "hard_landing"
	case EventFell:
		return "fell"
	default:
		return "unknown"
	}
}

// Event is emitted by World.Step.
type Event struct {
	Kind  EventKind
	Frame uint64
	X, Y  float64 // Body center when the event happened
	Value float64 // Jump count for EventJump, sink depth for EventHardLanding
}

// StepResult summarizes one frame.
type StepResult struct {
	Frame    uint64
	Grounded bool
	Distance float64
	Events   []Event
}

// World ties the core components together and advances them one frame per Step.
type World struct {
	cfg      Config
	gen      *Generator
	window   *Window
	body     Body
	camera   Camera
	frame    uint64
	grounded bool
}

// NewWorld creates a world with the body just above the origin and terrain
// already generated for the first frame.
func NewWorld(cfg Config, rng RandomSource) *World {
	w := &World{cfg: cfg}
	w.body = Body{
		X:      0,
		Y:      -cfg.Radius - cfg.StartDrop,
		VX:     cfg.Speed,
		Radius: cfg.Radius,
	}
	w.camera = Follow(&w.body, cfg.ViewWidth)
	w.gen = NewGenerator(cfg.Terrain, rng, w.camera.VisibleLeft(cfg.ViewWidth), cfg.ViewHeight)
	w.window = NewWindow(w.gen)
	w.window.Update(w.camera.X, cfg.ViewWidth)
	return w
}

// Step advances the simulation by one frame.
//
// The order is fixed: window update against the current camera, body
// integration, landing resolution, velocity rules, camera follow. Landing
// must precede the velocity rules so a grounded frame resets the jump count
// before gravity is considered.
func (w *World) Step(in Input) StepResult {
	w.window.Update(w.camera.X, w.cfg.ViewWidth)

	w.body.Integrate(w.cfg.Physics)
	landing := Resolve(&w.body, w.window.Segments())
	jumped := w.body.Apply(w.cfg.Physics, landing.Grounded, in)
	w.grounded = landing.Grounded

	w.camera = Follow(&w.body, w.cfg.ViewWidth)

	w.frame++
	res := StepResult{
		Frame:    w.frame,
		Grounded: landing.Grounded,
		Distance: w.body.X,
	}

	if landing.Grounded && w.cfg.HardLanding > 0 && -landing.Correction > w.cfg.HardLanding {
		res.Events = append(res.Events, w.event(EventHardLanding, -landing.Correction))
	}
	if jumped {
		res.Events = append(res.Events, w.event(EventJump, float64(w.body.JumpCount)))
	}
	if w.body.State == BodyAlive && w.body.Y-w.body.Radius > w.cfg.ViewHeight/2 {
		w.body.State = BodyFell
		res.Events = append(res.Events, w.event(EventFell, w.body.Y))
	}
	return res
}

func (w *World) event(kind EventKind, value float64) Event {
	return Event{Kind: kind, Frame: w.frame, X: w.body.X, Y: w.body.Y, Value: value}
}

// Body returns a copy of the body.
func (w *World) Body() Body {
	return w.body
}

// Camera returns the camera computed at the end of the last step.
func (w *World) Camera() Camera {
	return w.camera
}

// Segments returns the live ground. Callers must not modify it.
func (w *World) Segments() []Segment {
	return w.window.Segments()
}

// Frontier returns the generation cursor.
func (w *World) Frontier() GenerationState {
	return w.window.Frontier()
}

// SurfaceAt returns the highest ground top at world x.
func (w *World) SurfaceAt(x float64) (float64, bool) {
	return w.window.SurfaceAt(x)
}

// Distance is the score: how far the body has travelled.
func (w *World) Distance() float64 {
	return w.body.X
}

// Frame returns the number of steps taken.
func (w *World) Frame() uint64 {
	return w.frame
}

// Grounded reports whether the last step resolved a landing.
func (w *World) Grounded() bool {
	return w.grounded
}

// Config returns the world configuration.
func (w *World) Config() Config {
	return w.cfg
}

// SetSpeed changes the body's horizontal velocity. Non-positive values are ignored.
func (w *World) SetSpeed(vx float64) {
	if vx > 0 {
		w.cfg.Speed = vx
		w.body.VX = vx
	}
}

// SetPhysics swaps the body constants between frames.
func (w *World) SetPhysics(p Physics) {
	w.cfg.Physics = p
}
