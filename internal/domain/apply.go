package domain

import (
	"fmt"
)

// ApplyMove moves the piece on from to to and returns the captured piece, if
// any. The destination must be one of ReachableSquares(b, from). Captured
// pieces leave the game.
func (b *Board) ApplyMove(from, to Square) (*Piece, error) {
	if !from.InBounds() {
		return nil, fmt.Errorf("from: %w", ErrOutOfBounds)
	}
	if !to.InBounds() {
		return nil, fmt.Errorf("to: %w", ErrOutOfBounds)
	}

	p := b.PieceAt(from)
	if p == nil {
		return nil, fmt.Errorf("no piece at from: %v", from)
	}
	if !CanReach(b, from, to) {
		return nil, fmt.Errorf("%c cannot reach %v from %v", p.Kind, to, from)
	}

	captured := b.PieceAt(to)
	b.cells[from.Rank][from.File] = nil
	b.cells[to.Rank][to.File] = p
	return captured, nil
}
