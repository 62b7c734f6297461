package sim

// Landing is the outcome of resolving the body against the ground.
type Landing struct {
	Grounded bool
	// Correction is the smallest target y minus current y over all landings.
	// Negative means the body had sunk into the ground.
	Correction float64
}

// Resolve tests the body's bounding box against every segment.
//
// A segment counts as landed on only when the body's bottom is at or above
// the segment's vertical midpoint. For each landing the body's target y is
// the segment top minus the radius, and vy becomes min(vy, (target-y)/2),
// spreading the correction over the following frames. With several
// candidates the smallest resulting vy wins. y itself is never written, so
// resolving twice in a row gives the same result.
func Resolve(b *Body, segments []Segment) Landing {
	var landing Landing

	bb := b.BB()
	bottom := b.Bottom()
	for _, s := range segments {
		if !bb.Intersects(s.BB()) {
			continue
		}
		if bottom > s.MidY() {
			continue
		}

		correction := s.Y - b.Radius - b.Y
		if vy := correction / 2; vy < b.VY {
			b.VY = vy
		}
		if !landing.Grounded || correction < landing.Correction {
			landing.Correction = correction
		}
		landing.Grounded = true
	}
	return landing
}
