package tui

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra/engine"
	"github.com/vovakirdan/tui-tetra/internal/spectate"
)

// FrameSource yields spectator frames. Next blocks until one arrives.
type FrameSource interface {
	Next() (spectate.Frame, error)
}

type frameMsg spectate.Frame

type streamErrMsg struct{ err error }

func waitFrame(src FrameSource) tea.Cmd {
	return func() tea.Msg {
		f, err := src.Next()
		if err != nil {
			return streamErrMsg{err}
		}
		return frameMsg(f)
	}
}

type watchKeyMap struct {
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

func defaultWatchKeyMap() watchKeyMap {
	return watchKeyMap{
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next game")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab/←", "previous game")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// WatchModel shows the games streamed by a spectator hub, one at a time.
type WatchModel struct {
	src    FrameSource
	styles Styles
	keys   watchKeyMap
	screen *core.Screen

	games   map[string]engine.Snapshot
	order   []string
	current string

	err      error
	quitting bool
}

// NewWatchModel creates a viewer reading from src.
func NewWatchModel(src FrameSource, styles Styles, width, height int) WatchModel {
	return WatchModel{
		src:    src,
		styles: styles,
		keys:   defaultWatchKeyMap(),
		screen: core.NewScreen(width, height),
		games:  make(map[string]engine.Snapshot),
	}
}

func (m WatchModel) Init() tea.Cmd {
	return waitFrame(m.src)
}

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		m.apply(spectate.Frame(msg))
		return m, waitFrame(m.src)

	case streamErrMsg:
		m.err = msg.err
		return m, nil
	}
	return m, nil
}

func (m *WatchModel) apply(f spectate.Frame) {
	if f.Removed || f.Snapshot == nil {
		delete(m.games, f.Session)
		if i := slices.Index(m.order, f.Session); i >= 0 {
			m.order = slices.Delete(m.order, i, i+1)
		}
		if m.current == f.Session {
			m.current = ""
			if len(m.order) > 0 {
				m.current = m.order[0]
			}
		}
		return
	}

	if _, ok := m.games[f.Session]; !ok {
		m.order = append(m.order, f.Session)
		slices.Sort(m.order)
	}
	m.games[f.Session] = *f.Snapshot
	if m.current == "" {
		m.current = f.Session
	}
}

func (m *WatchModel) cycle(delta int) {
	if len(m.order) == 0 {
		return
	}
	i := slices.Index(m.order, m.current)
	i = (i + delta + len(m.order)) % len(m.order)
	m.current = m.order[i]
}

// Current returns the session on screen, or "" when nothing is streaming.
func (m WatchModel) Current() string {
	return m.current
}

// Sessions lists the known sessions in display order.
func (m WatchModel) Sessions() []string {
	return slices.Clone(m.order)
}

func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	switch {
	case m.err != nil:
		m.screen.DrawTextCentered(m.screen.Height()/2, "Stream ended: "+m.err.Error())
		m.screen.DrawTextCentered(m.screen.Height()/2+1, "Press q to quit")
	case m.current == "":
		m.screen.DrawTextCentered(m.screen.Height()/2, "Waiting for a game to start...")
	default:
		snap := m.games[m.current]
		tetra.RenderSnapshot(m.screen, snap, 0)

		header := fmt.Sprintf("WATCHING %s  (%d/%d)", m.current,
			slices.Index(m.order, m.current)+1, len(m.order))
		if snap.Outcome == engine.OutcomeGameOver {
			header += "  GAME OVER"
		}
		m.screen.DrawTextColored(1, 0, header, core.ColorBrightCyan)
	}
	return m.styles.RenderScreen(m.screen)
}

// Watch connects a terminal viewer to src and blocks until the user quits.
func Watch(src FrameSource, width, height int) error {
	m := NewWatchModel(src, NewStyles(nil), width, height)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
