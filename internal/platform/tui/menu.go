package tui

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

// MenuCommand identifies what a menu item does.
type MenuCommand int

const (
	CommandPlay MenuCommand = iota
	CommandRecords
	CommandHelp
	CommandQuit
	CommandResume
	CommandMainMenu
	CommandPlayAgain
)

// MenuItem is one selectable line of a menu.
type MenuItem struct {
	Label   string
	Command MenuCommand
}

// OutcomeKind tells what a key press did to a menu.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	// OutcomeInvoke: the highlighted item was chosen.
	OutcomeInvoke
	// OutcomeNavigateBack: the user left the menu without choosing.
	OutcomeNavigateBack
	// OutcomeQuit: the user asked to end the session.
	OutcomeQuit
)

// MenuOutcome is the result of feeding a key to a menu.
type MenuOutcome struct {
	Kind    OutcomeKind
	Command MenuCommand
}

// selector keeps a highlight within [0, n). It stops at both ends.
type selector struct {
	cursor int
	n      int
}

func (s *selector) up() {
	if s.cursor > 0 {
		s.cursor--
	}
}

func (s *selector) down() {
	if s.cursor < s.n-1 {
		s.cursor++
	}
}

// MenuModel is a vertical list of items with a title and optional text
// lines above it. It draws itself into a core.Screen so it can be used
// full-screen or as a box over the game.
type MenuModel struct {
	title string
	lines []string
	items []MenuItem
	sel   selector
	keys  *KeyMapper
}

// NewMenuModel creates a menu. The first item is highlighted.
func NewMenuModel(keys *KeyMapper, title string, lines []string, items []MenuItem) MenuModel {
	return MenuModel{
		title: title,
		lines: lines,
		items: items,
		sel:   selector{n: len(items)},
		keys:  keys,
	}
}

// NewMainMenu creates the root menu.
func NewMainMenu(keys *KeyMapper) MenuModel {
	return NewMenuModel(keys, "T E T R A", []string{"falling blocks"}, []MenuItem{
		{"Play", CommandPlay},
		{"Records", CommandRecords},
		{"Help", CommandHelp},
		{"Quit", CommandQuit},
	})
}

// NewPauseMenu creates the menu shown while a game is paused.
func NewPauseMenu(keys *KeyMapper) MenuModel {
	return NewMenuModel(keys, "PAUSED", nil, []MenuItem{
		{"Resume", CommandResume},
		{"Return to menu", CommandMainMenu},
	})
}

// NewGameOverMenu creates the menu shown after a game ended.
func NewGameOverMenu(keys *KeyMapper, lines []string) MenuModel {
	return NewMenuModel(keys, "GAME OVER", lines, []MenuItem{
		{"Play again", CommandPlayAgain},
		{"Main menu", CommandMainMenu},
	})
}

// Update feeds a key press to the menu.
func (m MenuModel) Update(msg tea.KeyMsg) (MenuModel, MenuOutcome) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionUp:
		m.sel.up()
	case MenuActionDown:
		m.sel.down()
	case MenuActionSelect:
		if len(m.items) > 0 {
			return m, MenuOutcome{Kind: OutcomeInvoke, Command: m.items[m.sel.cursor].Command}
		}
	case MenuActionBack:
		return m, MenuOutcome{Kind: OutcomeNavigateBack}
	case MenuActionQuit:
		return m, MenuOutcome{Kind: OutcomeQuit}
	}
	return m, MenuOutcome{}
}

// Cursor returns the highlighted item index.
func (m MenuModel) Cursor() int {
	return m.sel.cursor
}

// Items returns the menu items.
func (m MenuModel) Items() []MenuItem {
	return m.items
}

// size returns the width and height of the menu's content.
func (m MenuModel) size() (w, h int) {
	w = utf8.RuneCountInString(m.title)
	for _, l := range m.lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	for _, it := range m.items {
		w = max(w, utf8.RuneCountInString(it.Label)+4)
	}
	h = 2 + len(m.items)
	if len(m.lines) > 0 {
		h += len(m.lines) + 1
	}
	return w, h
}

// Draw renders the menu centered on the whole screen.
func (m MenuModel) Draw(dst *core.Screen) {
	w, h := m.size()
	m.drawAt(dst, dst.Bounds().Centered(w, h))
}

// DrawBox renders the menu in a framed box over whatever is on dst.
func (m MenuModel) DrawBox(dst *core.Screen) {
	w, h := m.size()
	box := dst.Bounds().Centered(w+6, h+2)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorBrightWhite)
	m.drawAt(dst, box.Inset(1))
}

func (m MenuModel) drawAt(dst *core.Screen, area core.Rect) {
	center := func(y int, text string, c core.Color) {
		x := area.X + (area.W-utf8.RuneCountInString(text))/2
		dst.DrawTextColored(x, y, text, c)
	}

	y := area.Y
	center(y, m.title, core.ColorBrightCyan)
	y += 2
	for _, l := range m.lines {
		center(y, l, core.ColorDefault)
		y++
	}
	if len(m.lines) > 0 {
		y++
	}

	for i, it := range m.items {
		if i == m.sel.cursor {
			center(y+i, "> "+it.Label+" <", core.ColorBrightYellow)
		} else {
			center(y+i, it.Label, core.ColorGray)
		}
	}
}
