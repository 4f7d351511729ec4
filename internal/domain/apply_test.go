package domain

import (
	"errors"
	"testing"
)

func TestApplyMove_MovesPiece(t *testing.T) {
	b := NewHirate()
	captured, err := b.ApplyMove(sq(2, 6), sq(2, 5)) // ７六歩
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if captured != nil {
		t.Fatalf("expected no capture, got %+v", captured)
	}
	if b.PieceAt(sq(2, 6)) != nil {
		t.Fatalf("from square should be empty")
	}
	if p := b.PieceAt(sq(2, 5)); p == nil || *p != (Piece{Sente, Pawn}) {
		t.Fatalf("unexpected piece on destination: %+v", p)
	}
}

func TestApplyMove_CaptureReturnsPiece(t *testing.T) {
	b := NewBoard()
	place(t, b, sq(4, 8), Sente, Rook)
	place(t, b, sq(4, 2), Gote, Silver)

	captured, err := b.ApplyMove(sq(4, 8), sq(4, 2))
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if captured == nil || *captured != (Piece{Gote, Silver}) {
		t.Fatalf("unexpected capture: %+v", captured)
	}
	if n := len(b.Pieces()); n != 1 {
		t.Fatalf("expected one piece left, got %d", n)
	}
}

func TestApplyMove_EmptyFromIsError(t *testing.T) {
	b := NewHirate()
	if _, err := b.ApplyMove(sq(4, 4), sq(4, 3)); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestApplyMove_UnreachableIsError(t *testing.T) {
	b := NewHirate()
	if _, err := b.ApplyMove(sq(4, 6), sq(4, 4)); err == nil {
		t.Fatalf("expected error, got nil")
	}
	// own piece
	if _, err := b.ApplyMove(sq(4, 8), sq(3, 8)); err == nil {
		t.Fatalf("expected error, got nil")
	}
	if p := b.PieceAt(sq(4, 6)); p == nil {
		t.Fatalf("failed move must leave the board untouched")
	}
}

func TestApplyMove_OutOfBounds(t *testing.T) {
	b := NewHirate()
	if _, err := b.ApplyMove(sq(4, 6), sq(4, 9)); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if _, err := b.ApplyMove(sq(-1, 6), sq(4, 5)); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}
