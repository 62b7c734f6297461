package sim

import (
	"testing"
)

func collect(g *Generator, border float64) []Segment {
	var segs []Segment
	g.Extend(border, func(s Segment) { segs = append(segs, s) })
	return segs
}

func TestFlatTilesContiguously(t *testing.T) {
	// cameraX = 0, viewWidth = 400: frontier starts at the visible left edge.
	g := NewGenerator(testTerrain(AllPatterns...), minRandom{}, -200, 384)
	w := NewWindow(g)
	w.Update(0, 400)

	segs := w.Segments()
	if len(segs) == 0 {
		t.Fatal("expected segments after one generation pass")
	}
	if g.LastPattern() != PatternFlat {
		t.Errorf("LastPattern() = %s, expected flat", g.LastPattern())
	}
	for i := 0; i+1 < len(segs); i++ {
		if segs[i+1].X != segs[i].X+segs[i].Width {
			t.Fatalf("segment %d at x=%f does not follow segment %d ending at %f",
				i+1, segs[i+1].X, i, segs[i].Right())
		}
		if segs[i].Width != flatWidth {
			t.Errorf("flat segment width = %f, expected %f", segs[i].Width, flatWidth)
		}
	}
	if got := g.State().LastDrawnX; got < 400 {
		t.Errorf("LastDrawnX = %f, expected >= 400", got)
	}
}

func TestEveryPatternAdvancesAndStaysValid(t *testing.T) {
	for _, p := range AllPatterns {
		t.Run(p.String(), func(t *testing.T) {
			g := NewGenerator(testTerrain(p), NewRandom(int64(p)+1), 0, 384)
			segs := collect(g, 20000)

			if g.State().LastDrawnX < 20000 {
				t.Fatalf("frontier stopped at %f", g.State().LastDrawnX)
			}
			for i, s := range segs {
				if s.Width <= 0 || s.Height <= 0 {
					t.Fatalf("segment %d has non-positive size %+v", i, s)
				}
				if s.Y < -96 || s.Y > 96 {
					t.Fatalf("segment %d y=%f outside the vertical band", i, s.Y)
				}
				if i > 0 && s.X < segs[i-1].Right() {
					t.Fatalf("segment %d overlaps its predecessor", i)
				}
			}
			if p == PatternCliff && len(segs) != 0 {
				t.Errorf("cliff should only move the cursor, emitted %d segments", len(segs))
			}
		})
	}
}

func TestBandClampAfterCliffs(t *testing.T) {
	cfg := testTerrain(PatternCliff, PatternFlat)
	cfg.Selection = SelectCycle
	g := NewGenerator(cfg, NewRandom(3), 0, 400)

	for _, s := range collect(g, 10000) {
		if s.Y > 100 || s.Y < -100 {
			t.Fatalf("segment y=%f escaped the [-100, 100] band", s.Y)
		}
	}
	if y := g.State().LastDrawnY; y > 100 {
		t.Errorf("LastDrawnY = %f, expected clamp to 100", y)
	}
}

// Selecting a slope emits the opposite slope too, reproducing the reference
// fallthrough. Turning PairedSlopes off emits the selected slope alone.
func TestSlopeFallthroughPairs(t *testing.T) {
	tests := []struct {
		name      string
		pattern   Pattern
		paired    bool
		wantCount int
		firstDown bool
	}{
		{"descent paired", PatternSlopeDescent, true, 40, true},
		{"descent alone", PatternSlopeDescent, false, 20, true},
		{"ascent paired", PatternSlopeAscent, true, 40, false},
		{"ascent alone", PatternSlopeAscent, false, 20, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testTerrain(tc.pattern)
			cfg.PairedSlopes = tc.paired
			g := NewGenerator(cfg, minRandom{}, 0, 384)

			// Border just past the start: exactly one pattern iteration.
			segs := collect(g, 1)
			if len(segs) != tc.wantCount {
				t.Fatalf("emitted %d segments, expected %d", len(segs), tc.wantCount)
			}

			goesDown := segs[1].Y > segs[0].Y
			if goesDown != tc.firstDown {
				t.Errorf("first run direction down=%v, expected %v", goesDown, tc.firstDown)
			}
			if tc.paired {
				half := tc.wantCount / 2
				secondDown := segs[half+1].Y > segs[half].Y
				if secondDown == goesDown {
					t.Error("paired slope should reverse direction halfway")
				}
			}
			for _, s := range segs {
				if s.Width != slopeWidth {
					t.Fatalf("slope width = %f, expected %f", s.Width, slopeWidth)
				}
			}
		})
	}
}

func TestSlopePairsShareColor(t *testing.T) {
	g := NewGenerator(testTerrain(PatternSlopeDescent), NewRandom(5), 0, 384)
	segs := collect(g, 1)

	for i := 0; i+1 < len(segs); i += 2 {
		if segs[i].ColorIndex != segs[i+1].ColorIndex {
			t.Fatalf("pair %d has colors %d and %d", i/2, segs[i].ColorIndex, segs[i+1].ColorIndex)
		}
		if i+2 < len(segs) && segs[i+2].ColorIndex == segs[i].ColorIndex {
			t.Fatalf("consecutive pairs %d and %d share a color", i/2, i/2+1)
		}
	}
}

func TestFlatAdvancesColorEverySegment(t *testing.T) {
	cfg := testTerrain(PatternFlat)
	cfg.PaletteSize = 3
	g := NewGenerator(cfg, NewRandom(8), 0, 384)

	for i, s := range collect(g, 1) {
		if s.ColorIndex != i%3 {
			t.Fatalf("segment %d color = %d, expected %d", i, s.ColorIndex, i%3)
		}
	}
}

func TestLevelsAndPitsShapes(t *testing.T) {
	t.Run("levels ascent climbs", func(t *testing.T) {
		g := NewGenerator(testTerrain(PatternLevelsAscent), minRandom{}, 0, 10000)
		segs := collect(g, 1)
		if len(segs) != 3 {
			t.Fatalf("emitted %d levels, expected 3", len(segs))
		}
		for i, s := range segs {
			if s.Width != levelsWidth {
				t.Errorf("level width = %f", s.Width)
			}
			// minRandom gives ascent -32 and noise -1 per level
			if want := float64(i+1) * -33; s.Y != want {
				t.Errorf("level %d y = %f, expected %f", i, s.Y, want)
			}
		}
	})

	t.Run("pits leave gaps", func(t *testing.T) {
		g := NewGenerator(testTerrain(PatternPits), minRandom{}, 0, 384)
		segs := collect(g, 1)
		if len(segs) != 3 {
			t.Fatalf("emitted %d pit blocks, expected 3", len(segs))
		}
		for i := 0; i+1 < len(segs); i++ {
			if gap := segs[i+1].X - segs[i].Right(); gap != pitGap {
				t.Errorf("gap %d = %f, expected %f", i, gap, pitGap)
			}
		}
	})

	t.Run("large pit block sizes", func(t *testing.T) {
		g := NewGenerator(testTerrain(PatternLargePit), NewRandom(42), 0, 384)
		for _, s := range collect(g, 50000) {
			if s.Width != 32 && s.Width != 64 {
				t.Fatalf("large pit block width = %f, expected 32 or 64", s.Width)
			}
		}
	})
}

func TestFlatStartAndCycle(t *testing.T) {
	cfg := testTerrain(PatternPits, PatternCliff)
	cfg.Selection = SelectCycle
	cfg.FlatStart = true
	g := NewGenerator(cfg, NewRandom(1), 0, 384)

	var order []Pattern
	for i := 0; i < 5; i++ {
		g.Extend(g.State().LastDrawnX+1, func(Segment) {})
		order = append(order, g.LastPattern())
	}

	want := []Pattern{PatternFlat, PatternCliff, PatternPits, PatternCliff, PatternPits}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("pattern order = %v, expected %v", order, want)
		}
	}
}

func TestStalledPatternPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("a pattern that does not advance the frontier should panic")
		}
	}()
	g := NewGenerator(testTerrain(Pattern(99)), NewRandom(1), 0, 384)
	g.Extend(100, func(Segment) {})
}

func TestParsePattern(t *testing.T) {
	for _, p := range AllPatterns {
		got, err := ParsePattern(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePattern(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParsePattern("volcano"); err == nil {
		t.Error("ParsePattern should reject unknown names")
	}
}
