package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra/engine"
	"github.com/vovakirdan/tui-tetra/internal/records"
)

// Game is what the frontend needs from a game.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	Snapshot() engine.Snapshot
}

// Publisher receives every snapshot of a running game, e.g. to stream it
// to spectators.
type Publisher interface {
	Publish(session string, snap engine.Snapshot)
	Remove(session string)
}

// overlayDuration is how long the final numbers stay up before the
// game-over menu appears.
const overlayDuration = 2 * time.Second

type gamePhase int

const (
	phasePlaying gamePhase = iota
	phasePaused
	phaseOverlay
	phaseGameOverMenu
)

// GameDeps are the collaborators of a game screen. Everything but Game is
// optional.
type GameDeps struct {
	Game          Game
	Book          *records.Book
	Logger        *log.Logger
	Publisher     Publisher
	SessionID     string
	ScreenshotDir string
	Styles        Styles
	Keys          *KeyMapper

	// Generation tags this game's ticks.
	Generation int
}

// GameModel runs one game: it feeds terminal input to the game every tick,
// handles pause, and records the result when the game ends.
type GameModel struct {
	deps   GameDeps
	logger *log.Logger
	screen *core.Screen
	config core.RuntimeConfig
	seed   int64

	frame core.InputFrame
	held  *heldKeys
	now   func() time.Time

	phase        gamePhase
	menu         MenuModel
	result       core.GameResult
	overlayTicks int
	round        int

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game screen. A zero cfg.Seed picks a new seed from
// the clock for every game.
func NewGameModel(deps GameDeps, cfg core.RuntimeConfig) GameModel {
	if deps.Keys == nil {
		deps.Keys = NewKeyMapper()
	}
	if deps.Styles.cells == nil {
		deps.Styles = NewStyles(nil)
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := GameModel{
		deps:   deps,
		logger: logger,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		seed:   cfg.Seed,
		frame:  core.NewInputFrame(),
		held:   newHeldKeys(releaseAfter),
		now:    time.Now,
	}
	m.start()
	return m
}

func (m *GameModel) start() {
	cfg := m.config
	if m.seed == 0 {
		cfg.Seed = m.now().UnixNano()
	}
	m.deps.Game.Reset(cfg)
	m.phase = phasePlaying
	m.round = m.deps.Game.State().Round
	m.frame.Clear()
	m.held.reset()
	m.logger.Debug("game started", "session", m.deps.SessionID, "seed", cfg.Seed)
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.deps.Generation)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (GameModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.deps.Game.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		if msg.Gen != m.deps.Generation {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (GameModel, tea.Cmd) {
	if msg.String() == "ctrl+s" && m.deps.ScreenshotDir != "" {
		m.saveScreenshot()
		return m, nil
	}

	switch m.phase {
	case phasePaused, phaseGameOverMenu:
		return m.handleMenuKey(msg)
	case phaseOverlay:
		if _, quit := m.deps.Keys.MapKey(msg); quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	action, quit := m.deps.Keys.MapKey(msg)
	switch {
	case quit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionPause:
		m.phase = phasePaused
		m.menu = NewPauseMenu(m.deps.Keys)
		m.held.reset()
		m.frame.Clear()
	case action == core.ActionBack:
		m.frame.Set(action)
	case action != core.ActionNone:
		if m.held.press(action, m.now()) {
			m.frame.Set(action)
		}
	}
	return m, nil
}

func (m GameModel) handleMenuKey(msg tea.KeyMsg) (GameModel, tea.Cmd) {
	var out MenuOutcome
	m.menu, out = m.menu.Update(msg)

	switch out.Kind {
	case OutcomeQuit:
		m.quitting = true
		return m, tea.Quit
	case OutcomeNavigateBack:
		if m.phase == phasePaused {
			m.phase = phasePlaying
		} else {
			m.leave()
		}
	case OutcomeInvoke:
		switch out.Command {
		case CommandResume:
			m.phase = phasePlaying
		case CommandPlayAgain:
			m.start()
		case CommandMainMenu:
			m.leave()
		}
	}
	return m, nil
}

// leave hands control back to the main menu.
func (m *GameModel) leave() {
	m.backToMenu = true
	if m.deps.Publisher != nil {
		m.deps.Publisher.Remove(m.deps.SessionID)
	}
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(now time.Time) (GameModel, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	switch m.phase {
	case phaseOverlay:
		m.overlayTicks--
		if m.overlayTicks <= 0 {
			m.phase = phaseGameOverMenu
			m.menu = NewGameOverMenu(m.deps.Keys, m.resultLines())
		}
		return m, tickCmd(m.config.TickRate, m.deps.Generation)
	case phasePaused, phaseGameOverMenu:
		return m, tickCmd(m.config.TickRate, m.deps.Generation)
	}

	m.held.apply(&m.frame, now)
	result := m.deps.Game.Step(m.frame)
	m.frame.Clear()

	if m.deps.Publisher != nil {
		m.deps.Publisher.Publish(m.deps.SessionID, m.deps.Game.Snapshot())
	}

	switch {
	case result.ToMenu:
		m.leave()
		return m, nil
	case result.Finished != nil:
		m.finish(*result.Finished)
	case result.State.Round != m.round:
		m.round = result.State.Round
		m.logger.Debug("round advanced", "session", m.deps.SessionID, "round", m.round)
	}

	return m, tickCmd(m.config.TickRate, m.deps.Generation)
}

func (m *GameModel) finish(res core.GameResult) {
	m.result = res
	m.phase = phaseOverlay
	m.held.reset()

	rate := m.config.TickRate
	if rate <= 0 {
		rate = 60
	}
	m.overlayTicks = int(overlayDuration * time.Duration(rate) / time.Second)

	m.logger.Debug("game over", "session", m.deps.SessionID,
		"score", res.Score, "round", res.Round, "lines", res.Lines)

	if m.deps.Book != nil {
		if _, err := m.deps.Book.Add(res.Score, res.Round, res.Lines); err != nil {
			m.logger.Warn("could not save record", "error", err)
		}
	}
}

func (m GameModel) resultLines() []string {
	return []string{
		fmt.Sprintf("Score %d", m.result.Score),
		fmt.Sprintf("Round %d", m.result.Round),
		fmt.Sprintf("Lines %d", m.result.Lines),
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.render()

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.deps.ScreenshotDir, 0o755)

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(m.deps.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.deps.Game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

func (m GameModel) render() {
	m.deps.Game.Render(m.screen)

	switch m.phase {
	case phaseOverlay:
		over := NewMenuModel(m.deps.Keys, "GAME OVER", m.resultLines(), nil)
		over.DrawBox(m.screen)
	case phasePaused, phaseGameOverMenu:
		m.menu.DrawBox(m.screen)
	}
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.render()
	return m.deps.Styles.RenderScreen(m.screen)
}

// Config returns the runtime config, updated by resizes.
func (m GameModel) Config() core.RuntimeConfig {
	return m.config
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
