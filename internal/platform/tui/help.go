package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetra/internal/games/tetra/engine"
)

// HelpModel explains the rules and lists the game keys.
type HelpModel struct {
	rules  engine.Rules
	styles Styles
	keys   *KeyMapper
	help   help.Model
	width  int
}

// NewHelpModel creates the help screen.
func NewHelpModel(rules engine.Rules, styles Styles, keys *KeyMapper, width int) HelpModel {
	h := help.New()
	h.ShowAll = true
	h.Width = width
	return HelpModel{rules: rules, styles: styles, keys: keys, help: h, width: width}
}

func (m HelpModel) text() []string {
	r := m.rules
	return []string{
		fmt.Sprintf("Steer falling pieces onto a %dx%d board.", r.Width, r.Height),
		"A full row disappears and the rows above it drop down.",
		fmt.Sprintf("Clearing 1-4 rows at once scores %d/%d/%d/%d, times the round.",
			r.LinePoints[0], r.LinePoints[1], r.LinePoints[2], r.LinePoints[3]),
		fmt.Sprintf("After more than %d cleared rows the next round starts:", r.RowsPerRound),
		"pieces fall faster and change color.",
		"The game ends when a piece settles in the top row.",
	}
}

// Update handles messages.
func (m HelpModel) Update(msg tea.Msg) (HelpModel, MenuOutcome) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Menu.Quit):
			return m, MenuOutcome{Kind: OutcomeQuit}
		case key.Matches(msg, m.keys.Menu.Back), key.Matches(msg, m.keys.Menu.Select):
			return m, MenuOutcome{Kind: OutcomeNavigateBack}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}
	return m, MenuOutcome{}
}

// View renders the help screen.
func (m HelpModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.styles.Title.Render("HOW TO PLAY"), m.width))
	b.WriteString("\n\n")
	for _, line := range m.text() {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	keys := m.styles.Frame.Render(m.help.View(m.keys.Game))
	for _, line := range strings.Split(keys, "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.styles.Help.Render("esc: back"), m.width))
	return b.String()
}
