package sim

// InputAdapter turns begin/end notifications from a pointer or key into
// per-frame Input snapshots.
type InputAdapter struct {
	tapped  bool
	tapping bool
}

// TapBegin records a press.
func (a *InputAdapter) TapBegin() {
	a.tapped = true
	a.tapping = true
}

// TapEnd records a release.
func (a *InputAdapter) TapEnd() {
	a.tapping = false
}

// Snapshot returns the input for the next frame and consumes the tap edge.
func (a *InputAdapter) Snapshot() Input {
	in := Input{Tap: a.tapped, Hold: a.tapping}
	a.tapped = false
	return in
}
