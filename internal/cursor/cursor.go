// Package cursor holds the focus/selection state of the board view and the
// transition function that applies one input command to it.
package cursor

import (
	"shogi-tui/internal/domain"
)

type Command int

const (
	Up Command = iota
	Down
	Left
	Right
	Confirm
	Commit
	Cancel
	Quit
)

func (c Command) String() string {
	switch c {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Confirm:
		return "confirm"
	case Commit:
		return "commit"
	case Cancel:
		return "cancel"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Change tells the renderer which parts of the screen a transition touched.
type Change uint8

const (
	ChangeFocus Change = 1 << iota
	ChangeSelection
	ChangeBoard
	ChangeQuit

	ChangeNone Change = 0
)

func (c Change) Has(x Change) bool { return c&x != 0 }

// State is the cursor over the board. Reachable is derived from Chosen and
// the board at the time of the last selection; it is not kept live.
type State struct {
	Focus     domain.Square
	Chosen    domain.Square
	Reachable []domain.Square
}

// home is used when the board has no Sente king.
var home = domain.Square{File: 4, Rank: domain.Size - 1}

// New places focus and selection on Sente's king.
func New(b *domain.Board) State {
	sq, ok := b.KingSquare(domain.Sente)
	if !ok {
		sq = home
	}
	return State{
		Focus:     sq,
		Chosen:    sq,
		Reachable: domain.ReachableSquares(b, sq),
	}
}

func (s State) IsReachable(sq domain.Square) bool {
	for _, r := range s.Reachable {
		if r == sq {
			return true
		}
	}
	return false
}

// Select chooses sq and recomputes its reachable squares.
func (s State) Select(b *domain.Board, sq domain.Square) State {
	s.Chosen = sq
	s.Reachable = domain.ReachableSquares(b, sq)
	return s
}

// Apply returns the state after cmd. Commit mutates b when the focused square
// is reachable from the chosen piece; every other command leaves b alone.
func Apply(b *domain.Board, s State, cmd Command) (State, Change) {
	switch cmd {
	case Up:
		return s.moveFocus(0, -1)
	case Down:
		return s.moveFocus(0, 1)
	case Left:
		return s.moveFocus(-1, 0)
	case Right:
		return s.moveFocus(1, 0)

	case Confirm:
		return s.Select(b, s.Focus), ChangeSelection

	case Commit:
		if !s.IsReachable(s.Focus) {
			return s, ChangeNone
		}
		if _, err := b.ApplyMove(s.Chosen, s.Focus); err != nil {
			// board changed since the selection was made
			return s.Select(b, s.Chosen), ChangeSelection
		}
		return s.Select(b, s.Focus), ChangeBoard | ChangeSelection

	case Cancel:
		if len(s.Reachable) == 0 {
			return s, ChangeNone
		}
		s.Reachable = nil
		return s, ChangeSelection

	case Quit:
		return s, ChangeQuit
	}
	return s, ChangeNone
}

// moveFocus shifts the focus, clamping at the board edges.
func (s State) moveFocus(df, dr int) (State, Change) {
	next := domain.Square{File: s.Focus.File + df, Rank: s.Focus.Rank + dr}
	if !next.InBounds() {
		return s, ChangeNone
	}
	s.Focus = next
	return s, ChangeFocus
}
