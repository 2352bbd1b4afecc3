package engine

import "github.com/vovakirdan/tui-tetra/internal/core"

// Outcome tells the caller what happened to the game during a tick.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	// OutcomeGameOver: row 0 was occupied after a lock. The simulation has
	// already been reset; the Final* fields hold the finished game.
	OutcomeGameOver
	// OutcomeMenu: ReturnToMenu discarded the game.
	OutcomeMenu
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeGameOver:
		return "game_over"
	case OutcomeMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes an outcome name.
func (o *Outcome) UnmarshalText(b []byte) error {
	switch string(b) {
	case "game_over":
		*o = OutcomeGameOver
	case "menu":
		*o = OutcomeMenu
	default:
		*o = OutcomePlaying
	}
	return nil
}

// Snapshot is a read-only copy of the simulation after a tick. It shares no
// memory with the simulation.
type Snapshot struct {
	Tick   uint64 `json:"tick"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	Grid [][]bool `json:"grid"`

	Active      []Cell  `json:"active"`
	ActiveShape ShapeID `json:"active_shape"`
	Next        []Cell  `json:"next"`
	NextShape   ShapeID `json:"next_shape"`

	Color   core.Color `json:"color"`
	Round   int        `json:"round"`
	Score   int        `json:"score"`
	Cleared int        `json:"cleared"`
	Lines   int        `json:"lines"`

	Outcome    Outcome `json:"outcome"`
	FinalScore int     `json:"final_score,omitempty"`
	FinalRound int     `json:"final_round,omitempty"`
	FinalLines int     `json:"final_lines,omitempty"`
}

// Occupied reports whether a settled block sits at (col, row).
func (s Snapshot) Occupied(col, row int) bool {
	if row < 0 || row >= len(s.Grid) || col < 0 || col >= len(s.Grid[row]) {
		return false
	}
	return s.Grid[row][col]
}

// IsActive reports whether the falling piece covers (col, row).
func (s Snapshot) IsActive(col, row int) bool {
	for _, c := range s.Active {
		if c.Col == col && c.Row == row {
			return true
		}
	}
	return false
}
