package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra/engine"
	"github.com/vovakirdan/tui-tetra/internal/records"
)

// Options configure an app session.
type Options struct {
	Rules         engine.Rules
	Book          *records.Book
	Logger        *log.Logger
	Publisher     Publisher
	SessionID     string
	ScreenshotDir string
	Renderer      *lipgloss.Renderer

	// StartInGame skips the main menu on launch.
	StartInGame bool
}

type appScreen int

const (
	screenMenu appScreen = iota
	screenGame
	screenRecords
	screenHelp
)

// AppModel manages the full session flow: main menu, game, records and
// help. It is the top-level model for local terminals and SSH sessions.
type AppModel struct {
	opts   Options
	logger *log.Logger
	styles Styles
	keys   *KeyMapper
	config core.RuntimeConfig

	current appScreen
	games   int
	menu    MenuModel
	screen  *core.Screen
	game    *GameModel
	records RecordsModel
	help    HelpModel

	quitting bool
}

// NewAppModel creates a session. The rules must be valid.
func NewAppModel(opts Options, cfg core.RuntimeConfig) (AppModel, error) {
	if err := opts.Rules.Validate(); err != nil {
		return AppModel{}, fmt.Errorf("tui: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := NewKeyMapper()

	m := AppModel{
		opts:   opts,
		logger: logger,
		styles: NewStyles(opts.Renderer),
		keys:   keys,
		config: cfg,
		menu:   NewMainMenu(keys),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
	}
	if opts.StartInGame {
		m.startGame()
	}
	return m, nil
}

// Init initializes the session.
func (m AppModel) Init() tea.Cmd {
	if m.current == screenGame {
		return m.game.Init()
	}
	return nil
}

// Update handles messages for the session.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		m.screen.Resize(wsm.Width, wsm.Height)
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenRecords:
		return m.updateRecords(msg)
	case screenHelp:
		return m.updateHelp(msg)
	}
	return m.updateMenu(msg)
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	var out MenuOutcome
	m.menu, out = m.menu.Update(keyMsg)
	switch out.Kind {
	case OutcomeQuit, OutcomeNavigateBack:
		return m.quit()
	case OutcomeInvoke:
		switch out.Command {
		case CommandPlay:
			m.startGame()
			return m, m.game.Init()
		case CommandRecords:
			m.records = NewRecordsModel(m.opts.Book, m.styles, m.keys, m.config.ScreenW, m.config.ScreenH)
			m.current = screenRecords
		case CommandHelp:
			m.help = NewHelpModel(m.opts.Rules, m.styles, m.keys, m.config.ScreenW)
			m.current = screenHelp
		case CommandQuit:
			return m.quit()
		}
	}
	return m, nil
}

func (m *AppModel) startGame() {
	// rules were validated by NewAppModel
	game, _ := tetra.New(m.opts.Rules)
	m.games++
	gm := NewGameModel(GameDeps{
		Game:          game,
		Book:          m.opts.Book,
		Logger:        m.logger,
		Publisher:     m.opts.Publisher,
		SessionID:     m.opts.SessionID,
		ScreenshotDir: m.opts.ScreenshotDir,
		Styles:        m.styles,
		Keys:          m.keys,
		Generation:    m.games,
	}, m.config)
	m.game = &gm
	m.current = screenGame
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	gm, cmd := m.game.Update(msg)
	m.game = &gm

	if gm.IsQuitting() {
		return m.quit()
	}
	if gm.BackToMenu() {
		m.config = gm.Config()
		m.game = nil
		m.current = screenMenu
		m.menu = NewMainMenu(m.keys)
		return m, nil
	}
	return m, cmd
}

func (m AppModel) updateRecords(msg tea.Msg) (tea.Model, tea.Cmd) {
	var out MenuOutcome
	var cmd tea.Cmd
	m.records, out, cmd = m.records.Update(msg)
	return m.afterSubscreen(out, cmd)
}

func (m AppModel) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	var out MenuOutcome
	m.help, out = m.help.Update(msg)
	return m.afterSubscreen(out, nil)
}

func (m AppModel) afterSubscreen(out MenuOutcome, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch out.Kind {
	case OutcomeQuit:
		return m.quit()
	case OutcomeNavigateBack:
		m.current = screenMenu
		return m, nil
	}
	return m, cmd
}

func (m AppModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.opts.Publisher != nil {
		m.opts.Publisher.Remove(m.opts.SessionID)
	}
	return m, tea.Quit
}

// View renders the current view.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.game.View()
	case screenRecords:
		return m.records.View()
	case screenHelp:
		return m.help.View()
	}

	m.screen.Clear()
	m.menu.Draw(m.screen)
	return m.styles.RenderScreen(m.screen)
}

// Run starts a local session on the current terminal.
func Run(opts Options, cfg core.RuntimeConfig) error {
	if opts.SessionID == "" {
		opts.SessionID = fmt.Sprintf("local-%d", time.Now().UnixNano())
	}
	model, err := NewAppModel(opts, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
