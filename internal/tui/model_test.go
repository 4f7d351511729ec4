package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"shogi-tui/internal/config"
	"shogi-tui/internal/domain"
)

func sq(f, r int) domain.Square { return domain.Square{File: f, Rank: r} }

func newTestModel() Model {
	return NewModel(Options{Config: config.Default(), SessionID: "test"})
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestModel_StartsOnSenteKing(t *testing.T) {
	m := newTestModel()
	if m.cur.Focus != sq(4, 8) || m.cur.Chosen != sq(4, 8) {
		t.Fatalf("unexpected start: %+v", m.cur)
	}
}

func TestModel_NavigateAndSelect(t *testing.T) {
	m := newTestModel()
	m, _ = press(t, m, keyUp, runes("k"), keyLeft, runes("h"), keyEnter) // ７七歩

	if m.cur.Chosen != sq(2, 6) {
		t.Fatalf("chosen=%v", m.cur.Chosen)
	}
	if len(m.cur.Reachable) != 1 || m.cur.Reachable[0] != sq(2, 5) {
		t.Fatalf("reachable=%v", m.cur.Reachable)
	}
	last := m.logLines[len(m.logLines)-1]
	if !strings.Contains(last, "▲７七歩") {
		t.Fatalf("unexpected log line %q", last)
	}
}

func TestModel_CommitMovesPiece(t *testing.T) {
	m := newTestModel()
	m, _ = press(t, m, keyUp, keyUp, keyLeft, keyLeft, keyEnter, keyUp, runes("m"))

	if m.board.PieceAt(sq(2, 5)) == nil || m.board.PieceAt(sq(2, 6)) != nil {
		t.Fatalf("pawn did not move")
	}
}

func TestModel_CommitDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.CommitMoves = false
	m := NewModel(Options{Config: cfg})
	m, _ = press(t, m, keyUp, keyUp, keyLeft, keyLeft, keyEnter, keyUp, runes("m"))

	if m.board.PieceAt(sq(2, 6)) == nil {
		t.Fatalf("pawn moved with commit disabled")
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel()
	_, cmd := press(t, m, runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestModel_InputModeRoundTrip(t *testing.T) {
	m := newTestModel()
	m, _ = press(t, m, runes("i"))
	if m.m != modeInput {
		t.Fatalf("expected INPUT mode")
	}
	// navigation keys go to the text field while typing
	m, _ = press(t, m, runes("c"), runes("l"), runes("e"), runes("a"), runes("r"), keyEnter)
	if m.m != modeNormal {
		t.Fatalf("expected NORMAL mode after enter")
	}
	if n := len(m.board.Pieces()); n != 0 {
		t.Fatalf("expected cleared board, got %d pieces", n)
	}

	m, _ = press(t, m, runes("i"), keyEsc)
	if m.m != modeNormal {
		t.Fatalf("expected NORMAL mode after esc")
	}
}

func TestModel_NumericFocusAndMove(t *testing.T) {
	m := newTestModel()

	m.execCommand("77")
	if m.cur.Focus != sq(2, 6) || m.cur.Chosen != sq(2, 6) || len(m.cur.Reachable) != 1 {
		t.Fatalf("unexpected state: %+v", m.cur)
	}

	m.execCommand("2726")
	if m.board.PieceAt(sq(7, 5)) == nil {
		t.Fatalf("pawn did not move to 26")
	}

	m.execCommand("5957")
	if m.board.PieceAt(sq(4, 8)) == nil {
		t.Fatalf("king should not jump onto its own pawn")
	}
	if last := m.logLines[len(m.logLines)-1]; !strings.HasPrefix(last, "move failed") {
		t.Fatalf("unexpected log line %q", last)
	}
}

func TestModel_SFENCommands(t *testing.T) {
	m := newTestModel()
	m.execCommand("sfen 4k4/9/9/9/9/9/9/9/4K4 w -")
	if n := len(m.board.Pieces()); n != 2 || m.side != domain.Gote {
		t.Fatalf("unexpected position: %d pieces side=%v", n, m.side)
	}

	m.execCommand("sfen")
	if last := m.logLines[len(m.logLines)-1]; last != "4k4/9/9/9/9/9/9/9/4K4 w - 1" {
		t.Fatalf("unexpected sfen %q", last)
	}

	m.execCommand("sfen nonsense")
	if last := m.logLines[len(m.logLines)-1]; !strings.HasPrefix(last, "sfen failed") {
		t.Fatalf("unexpected log line %q", last)
	}
}

func TestModel_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos.kif")

	m := newTestModel()
	m.execCommand("2726")
	m.execCommand("save " + path)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("save did not write the file: %v", err)
	}
	saved := m.board.Clone()

	m.execCommand("setup")
	m.execCommand("load " + path)
	if !m.board.Equal(saved) {
		t.Fatalf("loaded position differs from the saved one")
	}
}

func TestModel_UnknownCommand(t *testing.T) {
	m := newTestModel()
	m.execCommand("frobnicate")
	if last := m.logLines[len(m.logLines)-1]; last != "unknown command: frobnicate" {
		t.Fatalf("unexpected log line %q", last)
	}
}

func TestModel_LogIsBounded(t *testing.T) {
	m := newTestModel()
	for i := 0; i < maxLogLines+50; i++ {
		m.appendLog("x")
	}
	if len(m.logLines) != maxLogLines {
		t.Fatalf("got %d log lines", len(m.logLines))
	}
}

func TestModel_ViewRenders(t *testing.T) {
	m := newTestModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	out := next.(Model).View()
	for _, want := range []string{"shogi-tui", "先手手番", "玉", "press i to enter command"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}
