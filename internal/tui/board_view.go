package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shogi-tui/internal/config"
	"shogi-tui/internal/cursor"
	"shogi-tui/internal/domain"
)

var (
	focusStyle     = lipgloss.NewStyle().Reverse(true)
	chosenStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	reachableStyle = lipgloss.NewStyle().Background(lipgloss.Color("22"))
	goteStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))
)

var rankLabel = map[int]string{
	1: "一", 2: "二", 3: "三", 4: "四", 5: "五", 6: "六", 7: "七", 8: "八", 9: "九",
}

// RenderBoard renders b as a 9x9 grid, file 9 on the left and rank 1 on top.
// Every cell is five columns wide: a bracket pair around a three-column glyph.
// Focus is drawn as [..], the chosen square as (..), and reachable squares as
// *..* (or a * glyph when empty).
func RenderBoard(b *domain.Board, st cursor.State, glyphs string) string {
	var sb strings.Builder
	sb.WriteString(" ")
	for f := domain.Size; f >= 1; f-- {
		sb.WriteString(fmt.Sprintf("  %d  ", f))
	}
	sb.WriteString("\n")

	for r := 0; r < domain.Size; r++ {
		sb.WriteString(" ")
		for f := 0; f < domain.Size; f++ {
			sq := domain.Square{File: f, Rank: r}
			sb.WriteString(cell(b.PieceAt(sq), sq, st, glyphs))
		}
		if glyphs == config.GlyphsKanji {
			sb.WriteString(" " + rankLabel[r+1])
		} else {
			sb.WriteString(fmt.Sprintf(" %d", r+1))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func cell(p *domain.Piece, sq domain.Square, st cursor.State, glyphs string) string {
	reachable := st.IsReachable(sq)
	g := glyph(p, reachable, glyphs)
	if p != nil && p.Side == domain.Gote {
		g = goteStyle.Render(g)
	}

	switch {
	case sq == st.Focus:
		return focusStyle.Render("[" + g + "]")
	case sq == st.Chosen && len(st.Reachable) > 0:
		return chosenStyle.Render("(" + g + ")")
	case reachable:
		return reachableStyle.Render("*" + g + "*")
	default:
		return " " + g + " "
	}
}

// glyph returns the three-column body of a cell.
func glyph(p *domain.Piece, reachable bool, glyphs string) string {
	kanji := glyphs == config.GlyphsKanji
	if p == nil {
		switch {
		case reachable && kanji:
			return " ＊"
		case reachable:
			return " * "
		case kanji:
			return " ・"
		default:
			return " . "
		}
	}

	if kanji {
		if p.Side == domain.Gote {
			return "v" + p.Kind.Name()
		}
		return " " + p.Kind.Name()
	}
	if p.Side == domain.Gote {
		return " " + strings.ToLower(p.Kind.Letter()) + " "
	}
	return " " + p.Kind.Letter() + " "
}
