package autopilot

import (
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/vovakirdan/tui-jumper/internal/sim"
)

// scriptMaxAllocs bounds the objects one decide call may allocate.
const scriptMaxAllocs = 1 << 14

// The user script defines decide(view, state) returning {tap: bool, hold: bool}.
const scriptDispatch = `
__result := decide(__view, __state)
`

// ScriptPolicy runs a tengo script once per frame.
//
// The view map carries x, y, vx, vy, radius, frame, jumps, max_jumps,
// grounded, surface (undefined over a gap) and surface_at(x). state is a
// map kept between frames for the script's own use.
type ScriptPolicy struct {
	compiled *tengo.Compiled
	state    *tengo.Map
}

// LoadScriptPolicy compiles the script at path.
func LoadScriptPolicy(path string) (*ScriptPolicy, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("autopilot: read script %s: %w", path, err)
	}
	p, err := NewScriptPolicy(src)
	if err != nil {
		return nil, fmt.Errorf("autopilot: %s: %w", path, err)
	}
	return p, nil
}

// NewScriptPolicy compiles src.
func NewScriptPolicy(src []byte) (*ScriptPolicy, error) {
	script := tengo.NewScript(append(append([]byte{}, src...), scriptDispatch...))
	_ = script.Add("__view", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap("math", "text"))
	script.SetMaxAllocs(scriptMaxAllocs)

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	return &ScriptPolicy{
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

// Decide implements Policy.
func (p *ScriptPolicy) Decide(w *sim.World) (sim.Input, error) {
	if err := p.compiled.Set("__view", buildView(w)); err != nil {
		return sim.Input{}, err
	}
	if err := p.compiled.Set("__state", p.state); err != nil {
		return sim.Input{}, err
	}
	if err := p.compiled.Run(); err != nil {
		return sim.Input{}, err
	}

	result := p.compiled.Get("__result").Map()
	if result == nil {
		return sim.Input{}, fmt.Errorf("decide must return a map, got %s", p.compiled.Get("__result").ValueType())
	}
	tap, _ := result["tap"].(bool)
	hold, _ := result["hold"].(bool)
	return sim.Input{Tap: tap, Hold: hold}, nil
}

// State returns a copy of the script's persistent state.
func (p *ScriptPolicy) State() map[string]any {
	out := make(map[string]any, len(p.state.Value))
	for k, v := range p.state.Value {
		out[k] = tengo.ToInterface(v)
	}
	return out
}

func buildView(w *sim.World) *tengo.ImmutableMap {
	b := w.Body()
	values := map[string]tengo.Object{
		"x":         &tengo.Float{Value: b.X},
		"y":         &tengo.Float{Value: b.Y},
		"vx":        &tengo.Float{Value: b.VX},
		"vy":        &tengo.Float{Value: b.VY},
		"radius":    &tengo.Float{Value: b.Radius},
		"frame":     &tengo.Int{Value: int64(w.Frame())},
		"jumps":     &tengo.Int{Value: int64(b.JumpCount)},
		"max_jumps": &tengo.Int{Value: int64(w.Config().Physics.MaxJumps)},
		"grounded":  boolObject(w.Grounded()),
		"surface":   surfaceObject(w.SurfaceAt(b.X)),
	}
	values["surface_at"] = &tengo.UserFunction{Name: "surface_at", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		x, ok := tengo.ToFloat64(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "x", Expected: "float", Found: args[0].TypeName()}
		}
		return surfaceObject(w.SurfaceAt(x)), nil
	}}
	return &tengo.ImmutableMap{Value: values}
}

func boolObject(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

func surfaceObject(y float64, ok bool) tengo.Object {
	if !ok {
		return tengo.UndefinedValue
	}
	return &tengo.Float{Value: y}
}
