package kif

import (
	"testing"

	"shogi-tui/internal/domain"
)

func TestFormatSFEN_Hirate(t *testing.T) {
	got := FormatSFEN(domain.NewHirate(), domain.Sente, 1)
	if got != HirateSFEN {
		t.Fatalf("got=%q want=%q", got, HirateSFEN)
	}
}

func TestParseSFEN_Hirate(t *testing.T) {
	b, side, err := ParseSFEN("sfen " + HirateSFEN)
	if err != nil {
		t.Fatal(err)
	}
	if side != domain.Sente || !b.Equal(domain.NewHirate()) {
		t.Fatalf("expected the starting position")
	}
}

func TestParseSFEN_RoundTrip(t *testing.T) {
	in := "4k4/9/4G4/9/2B1r4/9/9/9/4K3L w - 12"
	b, side, err := ParseSFEN(in)
	if err != nil {
		t.Fatal(err)
	}
	if side != domain.Gote {
		t.Fatalf("expected gote to move")
	}
	if p := b.PieceAt(domain.Square{File: 4, Rank: 4}); p == nil || *p != (domain.Piece{Side: domain.Gote, Kind: domain.Rook}) {
		t.Fatalf("unexpected piece on 55: %+v", p)
	}
	if got := FormatSFEN(b, side, 12); got != in {
		t.Fatalf("got=%q want=%q", got, in)
	}
}

func TestParseSFEN_Errors(t *testing.T) {
	cases := []string{
		"",
		"9/9/9/9/9/9/9/9/9",
		"9/9/9/9/9/9/9/9 b -",
		"9/9/9/9/9/9/9/9/9 x -",
		"9/9/9/9/9/9/9/9/9 b P",
		"9/9/9/9/9/9/9/9/9 b - x",
		"8/9/9/9/9/9/9/9/9 b -",
		"9P/9/9/9/9/9/9/9/9 b -",
		"4+P4/9/9/9/9/9/9/9/9 b -",
		"4X4/9/9/9/9/9/9/9/9 b -",
	}
	for _, s := range cases {
		if _, _, err := ParseSFEN(s); err == nil {
			t.Fatalf("%q: expected error, got nil", s)
		}
	}
}
