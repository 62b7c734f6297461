package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// SourcePlay tags runs recorded from the local terminal.
const SourcePlay = "play"

// statsReporter is implemented by games that keep run history.
type statsReporter interface {
	Stats() jumper.RunStats
}

// reloadable is implemented by games that accept config changes mid-run.
type reloadable interface {
	Config() config.JumperConfig
	ApplyConfig(cfg config.JumperConfig) error
}

// configReloadMsg carries a changed config file path from the watcher.
type configReloadMsg struct{ path string }

// configErrMsg carries a watcher failure.
type configErrMsg struct{ err error }

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	hold       *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	watcher    *config.Watcher
	log        *log.Logger
	source     string
	now        func() time.Time
	quitting   bool
	backToMenu bool
	saved      bool // Whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		hold:       NewHoldTracker(holdWindowOf(game)),
		inputFrame: core.NewInputFrame(),
		log:        log.New(io.Discard),
		source:     SourcePlay,
		now:        time.Now,
	}
}

// holdWindowOf reads the hold window from the game's config when it has one.
// The config is loaded on Reset, so this sees the defaults for fresh games.
func holdWindowOf(game registry.Game) time.Duration {
	if r, ok := game.(reloadable); ok {
		if ms := r.Config().Render.HoldWindowMS; ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return DefaultHoldWindow
}

// WithWatcher enables hot reload from the watched config file.
func (m Model) WithWatcher(w *config.Watcher) Model {
	m.watcher = w
	return m
}

// WithLogger routes model logs.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.log = l
	}
	return m
}

// WithSource sets the source tag stored with each run.
func (m Model) WithSource(source string) Model {
	m.source = source
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// The config is known only after Reset
	m.hold.window = holdWindowOf(m.game)

	return tea.Batch(tickCmd(m.config.TickRate), m.nextReload())
}

// waitForReload blocks until the watcher reports a change or an error.
func waitForReload(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return configReloadMsg{path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrMsg{err: err}
		}
	}
}

// nextReload re-arms the watcher, if any.
func (m Model) nextReload() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return waitForReload(m.watcher)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case configReloadMsg:
		m.reload(msg.path)
		return m, m.nextReload()

	case configErrMsg:
		m.log.Warn("config watcher", "err", msg.err)
		return m, m.nextReload()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.recordRun()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionJump:
		if m.hold.Press(m.now()) {
			m.inputFrame.Set(core.ActionJump)
		}
	case core.ActionPause:
		m.inputFrame.Set(core.ActionPause)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.recordRun()
			m.backToMenu = true
			return m, tea.Quit
		}
		m.inputFrame.Set(core.ActionPause)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The view size depends on the terminal, so a live run restarts
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.saved = false
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.saved = false
		m.hold.Release()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.inputFrame.SetHeld(core.ActionJump, m.hold.Held(m.now()))

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.recordRun()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordRun saves the score and run history once per run.
func (m *Model) recordRun() {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	state := m.game.State()
	if state.GameOver && state.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), state.Score); err != nil {
			m.log.Warn("save score", "err", err)
		}
	}

	sr, ok := m.game.(statsReporter)
	if !ok {
		return
	}
	stats := sr.Stats()
	if stats.Frames == 0 {
		return
	}
	if _, err := m.store.SaveRun(stats.Record(m.source)); err != nil {
		m.log.Warn("save run", "err", err)
	}
}

// reload applies a changed config file to a running game.
func (m Model) reload(path string) {
	r, ok := m.game.(reloadable)
	if !ok {
		return
	}
	cfg, err := config.LoadFile(path, r.Config())
	if err != nil {
		m.log.Warn("config reload rejected", "path", path, "err", err)
		return
	}
	if err := r.ApplyConfig(cfg); err != nil {
		m.log.Warn("config reload rejected", "path", path, "err", err)
		return
	}
	m.hold.window = holdWindowOf(m.game)
	m.log.Info("config reloaded", "path", path)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the player quit the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player left the game for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model and reports
// whether the player asked to go back to the menu.
func Run(m Model) (backToMenu bool, err error) {
	p := tea.NewProgram(m, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
