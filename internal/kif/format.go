package kif

import (
	"time"

	"shogi-tui/internal/domain"
)

var fwDigits = map[int]string{
	0: "０", 1: "１", 2: "２", 3: "３", 4: "４", 5: "５", 6: "６", 7: "７", 8: "８", 9: "９",
}

var rankKanji = map[int]string{
	1: "一", 2: "二", 3: "三", 4: "四", 5: "五", 6: "六", 7: "七", 8: "八", 9: "九",
}

// NowFunc is swapped out by tests to keep exported headers stable.
var NowFunc = func() string {
	return time.Now().Format("2006/01/02 15:04:05")
}

// SqToKIF formats a square the way KIF move lines do, e.g. "７六".
func SqToKIF(sq domain.Square) string {
	f, r := sq.KIF()
	return fwDigits[f] + rankKanji[r]
}

// PieceText is the square label shown in the log pane, e.g. "▲７七歩".
func PieceText(sq domain.Square, p *domain.Piece) string {
	if p == nil {
		return SqToKIF(sq)
	}
	tri := "▲"
	if p.Side == domain.Gote {
		tri = "△"
	}
	return tri + SqToKIF(sq) + p.Kind.Name()
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	s := lines[0]
	for i := 1; i < len(lines); i++ {
		s += "\n" + lines[i]
	}
	return s
}
