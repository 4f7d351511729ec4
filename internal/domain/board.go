package domain

import (
	"errors"
	"fmt"
)

const Size = 9

// ErrOutOfBounds is returned when a square lies outside the 9x9 board.
var ErrOutOfBounds = errors.New("square out of bounds")

// Square is a board coordinate. File 0 is the leftmost column of the diagram
// (shogi file 9) and Rank 0 is the top row (shogi rank 1).
type Square struct {
	File int // 0..8
	Rank int // 0..8
}

func (sq Square) InBounds() bool {
	return sq.File >= 0 && sq.File < Size && sq.Rank >= 0 && sq.Rank < Size
}

// Add returns the square offset by d; the result may be off the board.
func (sq Square) Add(d Dir) Square {
	return Square{File: sq.File + d.DF, Rank: sq.Rank + d.DR}
}

// KIF returns the traditional 1..9 file and rank numbers of sq.
func (sq Square) KIF() (file, rank int) {
	return Size - sq.File, sq.Rank + 1
}

// FromKIF converts traditional file/rank numbers (1..9) into a Square.
func FromKIF(file, rank int) (Square, error) {
	sq := Square{File: Size - file, Rank: rank - 1}
	if file < 1 || file > Size || rank < 1 || rank > Size {
		return Square{}, fmt.Errorf("%w: file=%d rank=%d", ErrOutOfBounds, file, rank)
	}
	return sq, nil
}

func (sq Square) String() string {
	f, r := sq.KIF()
	return fmt.Sprintf("%d%d", f, r)
}

// Board is a 9x9 grid indexed [rank][file]. Pieces are copied on the way in
// and out; the board owns every piece it holds.
type Board struct {
	cells [Size][Size]*Piece
}

func NewBoard() *Board {
	return &Board{}
}

// At returns a copy of the piece on sq, or nil when the square is empty.
func (b *Board) At(sq Square) (*Piece, error) {
	if !sq.InBounds() {
		return nil, fmt.Errorf("%w: %+v", ErrOutOfBounds, sq)
	}
	p := b.cells[sq.Rank][sq.File]
	if p == nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// PieceAt is At for squares the caller has already range-checked. An
// out-of-bounds square is a programming error and panics.
func (b *Board) PieceAt(sq Square) *Piece {
	p, err := b.At(sq)
	if err != nil {
		panic(err)
	}
	return p
}

// Set overwrites the cell at sq; nil empties it.
func (b *Board) Set(sq Square, p *Piece) error {
	if !sq.InBounds() {
		return fmt.Errorf("%w: %+v", ErrOutOfBounds, sq)
	}
	if p == nil {
		b.cells[sq.Rank][sq.File] = nil
		return nil
	}
	cp := *p
	b.cells[sq.Rank][sq.File] = &cp
	return nil
}

func (b *Board) Clear() {
	for r := 0; r < Size; r++ {
		for f := 0; f < Size; f++ {
			b.cells[r][f] = nil
		}
	}
}

func (b *Board) Clone() *Board {
	out := NewBoard()
	for r := 0; r < Size; r++ {
		for f := 0; f < Size; f++ {
			if b.cells[r][f] == nil {
				continue
			}
			p := *b.cells[r][f]
			out.cells[r][f] = &p
		}
	}
	return out
}

// Placed is a piece together with the square it stands on.
type Placed struct {
	Square Square
	Piece  Piece
}

// Pieces returns every occupied square in row-major order (rank, then file).
func (b *Board) Pieces() []Placed {
	out := make([]Placed, 0, 40)
	for r := 0; r < Size; r++ {
		for f := 0; f < Size; f++ {
			if p := b.cells[r][f]; p != nil {
				out = append(out, Placed{Square: Square{File: f, Rank: r}, Piece: *p})
			}
		}
	}
	return out
}

// KingSquare finds side's king.
func (b *Board) KingSquare(side Side) (Square, bool) {
	for _, pl := range b.Pieces() {
		if pl.Piece.Kind == King && pl.Piece.Side == side {
			return pl.Square, true
		}
	}
	return Square{}, false
}

// Equal reports whether both boards hold the same pieces on the same squares.
func (b *Board) Equal(o *Board) bool {
	for r := 0; r < Size; r++ {
		for f := 0; f < Size; f++ {
			x, y := b.cells[r][f], o.cells[r][f]
			if (x == nil) != (y == nil) {
				return false
			}
			if x != nil && *x != *y {
				return false
			}
		}
	}
	return true
}
