package kif

import (
	"fmt"
	"strings"

	"shogi-tui/internal/domain"
)

const (
	diagramHeader = "  ９ ８ ７ ６ ５ ４ ３ ２ １"
	diagramRule   = "+---------------------------+"
)

var nameToKind = map[string]domain.PieceKind{
	"香": domain.Lance, "桂": domain.Knight, "銀": domain.Silver, "金": domain.Gold,
	"玉": domain.King, "王": domain.King, "飛": domain.Rook, "角": domain.Bishop, "歩": domain.Pawn,
}

var promotedNames = map[string]bool{
	"と": true, "杏": true, "圭": true, "全": true, "馬": true, "竜": true, "龍": true,
}

// BoardToDiagram renders the board as a KIF board diagram. Gote pieces carry
// a "v" prefix.
func BoardToDiagram(b *domain.Board) string {
	lines := make([]string, 0, 12)
	lines = append(lines, diagramHeader)
	lines = append(lines, diagramRule)
	for r := 0; r < domain.Size; r++ {
		var row strings.Builder
		for f := 0; f < domain.Size; f++ {
			p := b.PieceAt(domain.Square{File: f, Rank: r})
			if p == nil {
				row.WriteString(" ・")
				continue
			}
			if p.Side == domain.Gote {
				row.WriteString("v")
			} else {
				row.WriteString(" ")
			}
			row.WriteString(p.Kind.Name())
		}
		lines = append(lines, "|"+row.String()+"|"+rankKanji[r+1])
	}
	lines = append(lines, diagramRule)
	return joinLines(lines)
}

// ParseDiagram reads the nine "|...|" rows of a KIF board diagram. Other
// lines are ignored.
func ParseDiagram(lines []string) (*domain.Board, error) {
	b := domain.NewBoard()
	rank := 0
	for _, line := range lines {
		if !strings.HasPrefix(line, "|") {
			continue
		}
		if rank >= domain.Size {
			return nil, fmt.Errorf("too many board rows")
		}
		if err := parseDiagramRow(b, rank, line); err != nil {
			return nil, fmt.Errorf("rank %d: %w", rank+1, err)
		}
		rank++
	}
	if rank != domain.Size {
		return nil, fmt.Errorf("expected %d board rows, got %d", domain.Size, rank)
	}
	return b, nil
}

func parseDiagramRow(b *domain.Board, rank int, line string) error {
	body := strings.TrimPrefix(line, "|")
	end := strings.Index(body, "|")
	if end < 0 {
		return fmt.Errorf("unterminated row: %q", line)
	}
	runes := []rune(body[:end])
	if len(runes) != 2*domain.Size {
		return fmt.Errorf("expected %d cells, got row %q", domain.Size, line)
	}
	for f := 0; f < domain.Size; f++ {
		mark, name := runes[2*f], string(runes[2*f+1])
		if name == "・" {
			continue
		}
		if promotedNames[name] {
			return fmt.Errorf("promoted piece %q is not supported", name)
		}
		kind, ok := nameToKind[name]
		if !ok {
			return fmt.Errorf("unknown piece %q", name)
		}
		side := domain.Sente
		switch mark {
		case 'v', 'V':
			side = domain.Gote
		case ' ', '　', '^':
		default:
			return fmt.Errorf("unknown side marker %q", mark)
		}
		if err := b.Set(domain.Square{File: f, Rank: rank}, &domain.Piece{Side: side, Kind: kind}); err != nil {
			return err
		}
	}
	return nil
}
