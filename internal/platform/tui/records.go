package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetra/internal/records"
)

// RecordsModel shows the last finished games and the best score.
type RecordsModel struct {
	book   *records.Book
	styles Styles
	keys   *KeyMapper
	table  table.Model
	help   help.Model
	rows   int
	width  int
	height int
}

// NewRecordsModel creates the records screen. book may be nil.
func NewRecordsModel(book *records.Book, styles Styles, keys *KeyMapper, width, height int) RecordsModel {
	h := help.New()
	h.ShowAll = false

	m := RecordsModel{
		book:   book,
		styles: styles,
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.Refresh()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *RecordsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Score", Width: 8},
		{Title: "Round", Width: 6},
		{Title: "Lines", Width: 6},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(records.Capacity+1),
	)

	s := table.DefaultStyles()
	s.Header = m.styles.Header
	s.Selected = m.styles.Selected
	t.SetStyles(s)
	return t
}

// Refresh reloads the rows from the record book.
func (m *RecordsModel) Refresh() {
	var list []records.Record
	if m.book != nil {
		list = m.book.List()
	}

	rows := make([]table.Row, len(list))
	for i, r := range list {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Round),
			fmt.Sprintf("%d", r.Lines),
			r.At.Format("Jan 02 15:04"),
		}
	}
	m.rows = len(rows)
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Update handles messages. The outcome reports whether the user left the
// screen.
func (m RecordsModel) Update(msg tea.Msg) (RecordsModel, MenuOutcome, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Menu.Quit):
			return m, MenuOutcome{Kind: OutcomeQuit}, nil
		case key.Matches(msg, m.keys.Menu.Back), key.Matches(msg, m.keys.Menu.Select):
			return m, MenuOutcome{Kind: OutcomeNavigateBack}, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, MenuOutcome{}, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, MenuOutcome{}, cmd
}

// View renders the records screen.
func (m RecordsModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.styles.Title.Render("RECORDS"), m.width))
	b.WriteString("\n\n")

	best := 0
	if m.book != nil {
		best = m.book.Best()
	}
	b.WriteString(centerText(m.styles.Accent.Render(fmt.Sprintf("Best score: %d", best)), m.width))
	b.WriteString("\n\n")

	var content string
	if m.rows == 0 {
		content = m.styles.Empty.Render("No games recorded yet.\nPlay one to set a record!")
	} else {
		content = m.table.View()
	}
	framed := m.styles.Frame.Render(content)
	for _, line := range strings.Split(framed, "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.styles.Help.Render(m.help.View(m.keys.Menu)), m.width))

	return lipgloss.NewStyle().MaxHeight(max(m.height, 1)).Render(b.String())
}
