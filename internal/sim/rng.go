// Package sim is the simulation core of the endless jumper: terrain
// generation, the platform window, body kinematics, landing resolution and
// the camera. It is single-threaded, frame-driven and has no notion of
// rendering beyond the one-way Renderer interface.
//
// Physics constants are tuned per call to World.Step, not per second. Hosts
// are expected to step at a fixed rate (60 fps by default).
package sim

import (
	"math"
	"math/rand"
)

// RandomSource is the only source of randomness used by terrain generation.
type RandomSource interface {
	// Uniform returns a value in [min, max).
	Uniform(min, max float64) float64
	// UniformInt returns floor of a uniform draw in [min, max).
	UniformInt(min, max int64) int64
}

// Random is a seeded RandomSource. It is not safe for concurrent use.
type Random struct {
	r *rand.Rand
}

// NewRandom creates a RandomSource that replays the same sequence for the same seed.
func NewRandom(seed int64) *Random {
	return &Random{r: rand.New(rand.NewSource(seed))}
}

// Uniform returns a value in [min, max).
func (r *Random) Uniform(min, max float64) float64 {
	return min + r.r.Float64()*(max-min)
}

// UniformInt returns an integer in [min, max).
func (r *Random) UniformInt(min, max int64) int64 {
	return int64(math.Floor(r.Uniform(float64(min), float64(max))))
}
