package sim

// minRandom always returns the lower bound, so pattern 0 (Flat) is always picked.
type minRandom struct{}

func (minRandom) Uniform(min, _ float64) float64 { return min }
func (minRandom) UniformInt(min, _ int64) int64  { return min }

// recordingRenderer captures what Draw pushes.
type recordingRenderer struct {
	dx, dy   float64
	segments []Segment
	bodies   []Body
}

func (r *recordingRenderer) SetCamera(dx, dy float64) { r.dx, r.dy = dx, dy }
func (r *recordingRenderer) DrawSegment(s Segment)    { r.segments = append(r.segments, s) }
func (r *recordingRenderer) DrawBody(b Body)          { r.bodies = append(r.bodies, b) }

func testTerrain(patterns ...Pattern) TerrainConfig {
	return TerrainConfig{
		Patterns:     patterns,
		Selection:    SelectRandom,
		PairedSlopes: true,
		PaletteSize:  2,
	}
}
