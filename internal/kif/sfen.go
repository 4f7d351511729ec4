package kif

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"shogi-tui/internal/domain"
)

const HirateSFEN = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"

// FormatSFEN writes the board, side to move and (always empty) hands fields.
func FormatSFEN(b *domain.Board, side domain.Side, moveNumber int) string {
	ranks := make([]string, 0, domain.Size)
	for r := 0; r < domain.Size; r++ {
		var sb strings.Builder
		empty := 0
		for f := 0; f < domain.Size; f++ {
			p := b.PieceAt(domain.Square{File: f, Rank: r})
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			c := rune(p.Kind)
			if p.Side == domain.Gote {
				c = unicode.ToLower(c)
			}
			sb.WriteRune(c)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		ranks = append(ranks, sb.String())
	}

	turn := "b"
	if side == domain.Gote {
		turn = "w"
	}
	return fmt.Sprintf("%s %s - %d", strings.Join(ranks, "/"), turn, moveNumber)
}

// ParseSFEN reads an SFEN position, with or without the leading "sfen"
// keyword and trailing move number. Pieces in hand and promoted pieces are
// rejected.
func ParseSFEN(s string) (*domain.Board, domain.Side, error) {
	fields := strings.Fields(s)
	if len(fields) > 0 && fields[0] == "sfen" {
		fields = fields[1:]
	}
	if len(fields) < 2 {
		return nil, 0, fmt.Errorf("sfen needs at least board and turn fields: %q", s)
	}

	b, err := parseBoardSFEN(fields[0])
	if err != nil {
		return nil, 0, err
	}

	var side domain.Side
	switch fields[1] {
	case "b":
		side = domain.Sente
	case "w":
		side = domain.Gote
	default:
		return nil, 0, fmt.Errorf("invalid turn %q", fields[1])
	}

	if len(fields) >= 3 && fields[2] != "-" {
		return nil, 0, fmt.Errorf("pieces in hand are not supported: %q", fields[2])
	}
	if len(fields) >= 4 {
		if _, err := strconv.Atoi(fields[3]); err != nil {
			return nil, 0, fmt.Errorf("invalid move number %q", fields[3])
		}
	}
	return b, side, nil
}

func parseBoardSFEN(board string) (*domain.Board, error) {
	rows := strings.Split(board, "/")
	if len(rows) != domain.Size {
		return nil, fmt.Errorf("expected %d ranks, got %d", domain.Size, len(rows))
	}
	b := domain.NewBoard()
	for r, row := range rows {
		f := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '9':
				f += int(c - '0')
			case c == '+':
				return nil, fmt.Errorf("rank %d: promoted pieces are not supported", r+1)
			default:
				kind := domain.PieceKind(unicode.ToUpper(c))
				if c > unicode.MaxASCII || !kind.Valid() {
					return nil, fmt.Errorf("rank %d: unknown piece %q", r+1, c)
				}
				side := domain.Sente
				if unicode.IsLower(c) {
					side = domain.Gote
				}
				if f >= domain.Size {
					return nil, fmt.Errorf("rank %d: too many files", r+1)
				}
				if err := b.Set(domain.Square{File: f, Rank: r}, &domain.Piece{Side: side, Kind: kind}); err != nil {
					return nil, err
				}
				f++
			}
		}
		if f != domain.Size {
			return nil, fmt.Errorf("rank %d: expected %d files, got %d", r+1, domain.Size, f)
		}
	}
	return b, nil
}
