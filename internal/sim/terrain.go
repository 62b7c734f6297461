package sim

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Pattern is one procedural terrain-generation mode.
type Pattern int

const (
	PatternFlat Pattern = iota
	PatternSlopeAscent
	PatternSlopeDescent
	PatternLevelsAscent
	PatternLevelsDescent
	PatternCliff
	PatternPits
	PatternLargePit
)

// AllPatterns lists every pattern in selection order.
var AllPatterns = []Pattern{
	PatternFlat,
	PatternSlopeAscent,
	PatternSlopeDescent,
	PatternLevelsAscent,
	PatternLevelsDescent,
	PatternCliff,
	PatternPits,
	PatternLargePit,
}

var patternNames = map[Pattern]string{
	PatternFlat:          "flat",
	PatternSlopeAscent:   "slope_ascent",
	PatternSlopeDescent:  "slope_descent",
	PatternLevelsAscent:  "levels_ascent",
	PatternLevelsDescent: "levels_descent",
	PatternCliff:         "cliff",
	PatternPits:          "pits",
	PatternLargePit:      "large_pit",
}

func (p Pattern) String() string {
	if name, ok := patternNames[p]; ok {
		return name
	}
	return fmt.Sprintf("pattern(%d)", int(p))
}

// ParsePattern converts a config name such as "slope_ascent" to a Pattern.
func ParsePattern(name string) (Pattern, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range patternNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("sim: unknown terrain pattern %q", name)
}

// Selection decides how the next pattern is picked.
type Selection int

const (
	// SelectRandom draws each pattern uniformly from the enabled set.
	SelectRandom Selection = iota
	// SelectCycle walks the enabled set in order.
	SelectCycle
)

// Per-pattern segment widths in world units.
const (
	flatWidth     = 32.0
	slopeWidth    = 16.0
	levelsWidth   = 96.0
	pitWidth      = 32.0
	pitGap        = 64.0
	largePitBlock = 32.0
)

// TerrainConfig tunes the generator.
type TerrainConfig struct {
	Patterns  []Pattern // Enabled patterns; empty means AllPatterns
	Selection Selection

	// PairedSlopes makes a selected slope also emit the opposite slope,
	// so slopes always come as a valley or a hill.
	PairedSlopes bool

	// FlatStart forces the first pattern to be Flat so the body starts on ground.
	FlatStart bool

	PaletteSize int // Number of ground colors; <= 0 means 2
}

// GenerationState is the frontier cursor. LastDrawnX never decreases.
type GenerationState struct {
	LastDrawnX  float64
	LastDrawnY  float64
	ColorCursor int
}

// Generator emits ground segments ahead of the frontier.
type Generator struct {
	cfg      TerrainConfig
	rng      RandomSource
	state    GenerationState
	bandHalf float64
	iter     int
	last     Pattern
}

// NewGenerator creates a generator whose frontier starts at (startX, 0).
// Vertical placements are clamped to [-viewHeight/4, viewHeight/4].
func NewGenerator(cfg TerrainConfig, rng RandomSource, startX, viewHeight float64) *Generator {
	if len(cfg.Patterns) == 0 {
		cfg.Patterns = AllPatterns
	}
	if cfg.PaletteSize <= 0 {
		cfg.PaletteSize = 2
	}
	return &Generator{
		cfg:      cfg,
		rng:      rng,
		state:    GenerationState{LastDrawnX: startX},
		bandHalf: viewHeight / 4,
	}
}

// State returns the current frontier cursor.
func (g *Generator) State() GenerationState {
	return g.state
}

// LastPattern returns the most recently emitted pattern.
func (g *Generator) LastPattern() Pattern {
	return g.last
}

// Extend emits segments until the frontier reaches border.
// A pattern that fails to advance the frontier is a programming error and panics,
// since the loop would otherwise never terminate.
func (g *Generator) Extend(border float64, emit func(Segment)) {
	for g.state.LastDrawnX < border {
		before := g.state.LastDrawnX
		p := g.nextPattern()
		g.emitPattern(p, emit)
		g.last = p
		if g.state.LastDrawnX <= before {
			panic(fmt.Sprintf("sim: pattern %s did not advance the frontier from %.2f", p, before))
		}
	}
}

func (g *Generator) nextPattern() Pattern {
	defer func() { g.iter++ }()

	if g.iter == 0 && g.cfg.FlatStart {
		return PatternFlat
	}
	n := len(g.cfg.Patterns)
	if g.cfg.Selection == SelectCycle {
		return g.cfg.Patterns[g.iter%n]
	}
	return g.cfg.Patterns[g.rng.UniformInt(0, int64(n))]
}

func (g *Generator) emitPattern(p Pattern, emit func(Segment)) {
	switch p {
	case PatternFlat:
		count := g.rng.Uniform(10, 50)
		for n := 0.0; n < count; n++ {
			g.place(flatWidth, g.rng.Uniform(-1, 1), true, emit)
		}

	case PatternSlopeDescent:
		g.slope(g.rng.Uniform(7, 10), emit)
		if g.cfg.PairedSlopes {
			g.slope(g.rng.Uniform(-10, -7), emit)
		}

	case PatternSlopeAscent:
		g.slope(g.rng.Uniform(-10, -7), emit)
		if g.cfg.PairedSlopes {
			g.slope(g.rng.Uniform(7, 10), emit)
		}

	case PatternLevelsAscent:
		count := g.rng.UniformInt(3, 7)
		ascent := -g.rng.Uniform(32, 48)
		for i := int64(0); i < count; i++ {
			g.place(levelsWidth, ascent+g.rng.Uniform(-1, 1), true, emit)
		}

	case PatternLevelsDescent:
		count := g.rng.UniformInt(1, 2)
		descent := g.rng.Uniform(32, 48)
		for i := int64(0); i < count; i++ {
			g.place(levelsWidth, descent+g.rng.Uniform(-1, 1), true, emit)
		}

	case PatternCliff:
		g.state.LastDrawnX += g.rng.Uniform(150, 200)
		g.state.LastDrawnY = g.clampY(g.state.LastDrawnY + g.rng.Uniform(100, 200))

	case PatternPits:
		count := g.rng.UniformInt(3, 7)
		for i := int64(0); i < count; i++ {
			g.place(pitWidth, g.rng.Uniform(-5, 5), true, emit)
			g.state.LastDrawnX += pitGap
		}

	case PatternLargePit:
		count := g.rng.UniformInt(1, 3)
		for i := int64(0); i < count; i++ {
			width := largePitBlock * float64(g.rng.UniformInt(1, 3))
			g.place(width, float64(g.rng.UniformInt(-5, 5)), true, emit)
			g.state.LastDrawnX += g.rng.Uniform(150, 300)
		}
	}
}

// slope emits a run of segment pairs, each pair moving by step in total.
// Both halves of a pair share one color.
func (g *Generator) slope(step float64, emit func(Segment)) {
	count := g.rng.Uniform(10, 20)
	for n := 0.0; n < count; n++ {
		g.place(slopeWidth, step/2+g.rng.Uniform(-1, 1), false, emit)
		g.place(slopeWidth, step/2+g.rng.Uniform(-1, 1), true, emit)
	}
}

// place emits one segment at the frontier and moves the frontier past it.
func (g *Generator) place(width, dy float64, advanceColor bool, emit func(Segment)) {
	y := g.clampY(g.state.LastDrawnY + dy)
	emit(Segment{
		X:          g.state.LastDrawnX,
		Y:          y,
		Width:      width,
		Height:     WorldBottom - y,
		ColorIndex: g.state.ColorCursor % g.cfg.PaletteSize,
	})
	g.state.LastDrawnX += width
	g.state.LastDrawnY = y
	if advanceColor {
		g.state.ColorCursor++
	}
}

func (g *Generator) clampY(y float64) float64 {
	return core.ClampF(y, -g.bandHalf, g.bandHalf)
}
