package domain

// ReachableSquares returns the squares the piece on from can move to, ignoring
// check. Squares come in pattern-direction order, nearest first within a
// direction. An empty square yields nil.
func ReachableSquares(b *Board, from Square) []Square {
	p := b.PieceAt(from)
	if p == nil {
		return nil
	}
	pat := MovePattern(p.Kind, p.Side)

	var out []Square
	for _, d := range pat.Dirs {
		to := from.Add(d)
		for to.InBounds() {
			dst := b.PieceAt(to)
			if dst != nil {
				// capture ends the walk; an own piece blocks without being added
				if dst.Side != p.Side {
					out = append(out, to)
				}
				break
			}
			out = append(out, to)
			if !pat.Slide {
				break
			}
			to = to.Add(d)
		}
	}
	return out
}

// CanReach reports whether the piece on from can move to to.
func CanReach(b *Board, from, to Square) bool {
	for _, sq := range ReachableSquares(b, from) {
		if sq == to {
			return true
		}
	}
	return false
}
