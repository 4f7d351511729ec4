package domain

// homeRows lists, for each rank counted from a side's own edge, the kinds
// placed from that side's left to its right (0 = empty).
var homeRows = [3][Size]PieceKind{
	{Lance, Knight, Silver, Gold, King, Gold, Silver, Knight, Lance},
	{0, Bishop, 0, 0, 0, 0, 0, Rook, 0},
	{Pawn, Pawn, Pawn, Pawn, Pawn, Pawn, Pawn, Pawn, Pawn},
}

// NewHirate returns the standard starting position (平手).
// Gote's rows fill ranks 0..2 and Sente's rows mirror them on ranks 8..6,
// seen from each player's own seat.
func NewHirate() *Board {
	b := NewBoard()
	for depth, row := range homeRows {
		for i, k := range row {
			if k == 0 {
				continue
			}
			// Gote reads the row from its own left, which is the diagram's right.
			b.cells[depth][Size-1-i] = &Piece{Side: Gote, Kind: k}
			b.cells[Size-1-depth][i] = &Piece{Side: Sente, Kind: k}
		}
	}
	return b
}
