package engine

import "strings"

// Command is a set of abstract player commands, one bit each.
type Command uint8

const (
	CmdMoveLeft Command = 1 << iota
	CmdMoveRight
	CmdSoftDrop
	CmdRotate
	CmdReturnToMenu
	CmdQuit

	CmdNone Command = 0
)

var commandNames = []struct {
	cmd  Command
	name string
}{
	{CmdMoveLeft, "MoveLeft"},
	{CmdMoveRight, "MoveRight"},
	{CmdSoftDrop, "SoftDrop"},
	{CmdRotate, "Rotate"},
	{CmdReturnToMenu, "ReturnToMenu"},
	{CmdQuit, "Quit"},
}

// Has reports whether every bit of c2 is set in c.
func (c Command) Has(c2 Command) bool {
	return c2 != CmdNone && c&c2 == c2
}

func (c Command) String() string {
	if c == CmdNone {
		return "None"
	}
	var parts []string
	for _, n := range commandNames {
		if c.Has(n.cmd) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Input is one tick's worth of player intent. Pressed holds the key-down
// edges seen since the previous tick; Held holds the commands whose keys are
// still down. A pressed command counts as held for the tick it arrives in.
type Input struct {
	Pressed Command
	Held    Command
}

// JustPressed reports a key-down edge for c.
func (in Input) JustPressed(c Command) bool {
	return in.Pressed.Has(c)
}

// IsHeld reports whether c is down this tick.
func (in Input) IsHeld(c Command) bool {
	return in.Held.Has(c) || in.Pressed.Has(c)
}
