package gfx

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/sim"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// windowScale enlarges the logical view for the initial window size.
const windowScale = 2

// jumpKeys all feed the tap/hold channel together with the mouse and touch.
var jumpKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}

// Host implements ebiten.Game around a Controller.
type Host struct {
	ctrl       *Controller
	renderer   *vectorRenderer
	background color.Color
	state      core.GameState
	touches    []ebiten.TouchID
}

// NewHost resolves the configured colors and wraps ctrl.
// The controller must be started so the game config is loaded.
func NewHost(ctrl *Controller) (*Host, error) {
	cfg := ctrl.Game().Config()
	palette, err := Palette(cfg.Render.Palette)
	if err != nil {
		return nil, err
	}
	bg, err := Background(cfg.Render.Background)
	if err != nil {
		return nil, err
	}
	return &Host{
		ctrl:       ctrl,
		renderer:   &vectorRenderer{palette: palette},
		background: bg,
	}, nil
}

// Update polls input and advances one frame.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		h.ctrl.Finish()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		h.ctrl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && h.ctrl.Restart() {
		h.state = h.ctrl.Game().State()
		return nil
	}

	h.pollJump()
	h.state = h.ctrl.Tick()
	return nil
}

// pollJump turns press and release edges of any jump control into
// adapter notifications.
func (h *Host) pollJump() {
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	for _, k := range jumpKeys {
		pressed = pressed || inpututil.IsKeyJustPressed(k)
		held = held || ebiten.IsKeyPressed(k)
	}

	h.touches = inpututil.AppendJustPressedTouchIDs(h.touches[:0])
	pressed = pressed || len(h.touches) > 0
	h.touches = ebiten.AppendTouchIDs(h.touches[:0])
	held = held || len(h.touches) > 0

	if pressed {
		h.ctrl.PointerDown()
	}
	if !held {
		h.ctrl.PointerUp()
	}
}

// Draw renders the world and the HUD.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(h.background)

	g := h.ctrl.Game()
	h.renderer.dst = screen
	sim.Draw(h.renderer, g.World())

	left := g.Config().Physics.MaxJumps - g.World().Body().JumpCount
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Distance: %d  Jumps left: %d", h.state.Score, max(left, 0)), 8, 8)

	switch {
	case h.state.GameOver:
		h.banner(screen, fmt.Sprintf("GAME OVER  distance %d  R: restart  Esc: quit", h.state.Score))
	case h.state.Paused:
		h.banner(screen, "PAUSED  P: resume")
	}
}

func (h *Host) banner(screen *ebiten.Image, text string) {
	w := screen.Bounds().Dx()
	y := screen.Bounds().Dy() / 2
	vector.FillRect(screen, 0, float32(y-12), float32(w), 28, textShadow, false)
	// DebugPrint glyphs are 6 pixels wide
	ebitenutil.DebugPrintAt(screen, text, (w-len(text)*6)/2, y-6)
}

// Layout pins the logical screen to the simulation view.
func (h *Host) Layout(_, _ int) (int, int) {
	cfg := h.ctrl.Game().World().Config()
	return int(cfg.ViewWidth), int(cfg.ViewHeight)
}

// Run opens a window and plays game until the player quits.
func Run(game *jumper.Game, store *storage.Store, runtime core.RuntimeConfig, logger *log.Logger) error {
	ctrl := NewController(game, store, runtime)
	ctrl.SetLogger(logger)
	ctrl.Start()
	defer ctrl.Finish()

	host, err := NewHost(ctrl)
	if err != nil {
		return err
	}

	w, h := host.Layout(0, 0)
	ebiten.SetWindowSize(w*windowScale, h*windowScale)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if runtime.TickRate > 0 {
		ebiten.SetTPS(runtime.TickRate)
	}

	return ebiten.RunGame(host)
}
