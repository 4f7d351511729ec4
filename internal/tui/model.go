package tui

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shogi-tui/internal/config"
	"shogi-tui/internal/cursor"
	"shogi-tui/internal/domain"
	"shogi-tui/internal/kif"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
)

const maxLogLines = 200

// Options seed a Model. A nil Board starts from the standard position.
type Options struct {
	Config    config.Config
	Board     *domain.Board
	Side      domain.Side
	SessionID string
}

type Model struct {
	board *domain.Board
	side  domain.Side // side to move of the loaded position; informational only
	cur   cursor.State

	cfg       config.Config
	sessionID string

	m        mode
	keys     keyMap
	help     help.Model
	input    textinput.Model
	logLines []string

	width  int
	height int
}

var reNumericInput = regexp.MustCompile(`^\d+$`)

func NewModel(opt Options) Model {
	ti := textinput.New()
	ti.Placeholder = "command..."
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Width = 60

	b := opt.Board
	side := opt.Side
	if b == nil {
		b = domain.NewHirate()
		side = domain.Sente
	}
	if side == 0 {
		side = domain.Sente
	}

	m := Model{
		board:     b,
		side:      side,
		cur:       cursor.New(b),
		cfg:       opt.Config,
		sessionID: opt.SessionID,
		m:         modeNormal,
		keys:      defaultKeyMap(opt.Config.CommitMoves),
		help:      help.New(),
		input:     ti,
	}
	m.appendLog("ready (enter to select, i for commands, ? for help)")
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.input.Width = min(80, max(30, m.width-4))
		return m, nil

	case tea.KeyMsg:
		switch m.m {
		case modeNormal:
			return m.updateNormal(msg)

		case modeInput:
			switch msg.String() {
			case "esc":
				m.m = modeNormal
				m.input.Blur()
				m.appendLog("NORMAL mode")
				return m, nil
			case "enter":
				cmdline := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				m.m = modeNormal
				m.input.Blur()

				if cmdline != "" {
					m.execCommand(cmdline)
				} else {
					m.appendLog("NORMAL mode")
				}
				return m, nil
			}

			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.apply(cursor.Quit)
	case key.Matches(msg, m.keys.Up):
		return m.apply(cursor.Up)
	case key.Matches(msg, m.keys.Down):
		return m.apply(cursor.Down)
	case key.Matches(msg, m.keys.Left):
		return m.apply(cursor.Left)
	case key.Matches(msg, m.keys.Right):
		return m.apply(cursor.Right)
	case key.Matches(msg, m.keys.Confirm):
		return m.apply(cursor.Confirm)
	case key.Matches(msg, m.keys.Commit):
		return m.apply(cursor.Commit)
	case key.Matches(msg, m.keys.Cancel):
		return m.apply(cursor.Cancel)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Input):
		m.m = modeInput
		m.input.SetValue("")
		m.input.Focus()
		m.appendLog("INPUT mode")
		return m, nil
	}
	return m, nil
}

// apply runs one controller command and reports what it changed.
func (m Model) apply(cmd cursor.Command) (tea.Model, tea.Cmd) {
	from := m.cur.Chosen
	moving := m.board.PieceAt(from)

	next, ch := cursor.Apply(m.board, m.cur, cmd)
	m.cur = next

	if ch != cursor.ChangeNone {
		log.Printf("session=%s cmd=%v focus=%v chosen=%v reachable=%d change=%b",
			m.sessionID, cmd, m.cur.Focus, m.cur.Chosen, len(m.cur.Reachable), ch)
	}

	switch {
	case ch.Has(cursor.ChangeQuit):
		return m, tea.Quit
	case ch.Has(cursor.ChangeBoard):
		m.appendLog(fmt.Sprintf("move %s -> %s", kif.PieceText(from, moving), kif.SqToKIF(m.cur.Chosen)))
	case ch.Has(cursor.ChangeSelection) && cmd != cursor.Cancel:
		m.appendLog(m.selectionText())
	}
	return m, nil
}

func (m Model) selectionText() string {
	p := m.board.PieceAt(m.cur.Chosen)
	label := kif.PieceText(m.cur.Chosen, p)
	if p == nil {
		return fmt.Sprintf("select %s: empty", label)
	}
	sqs := make([]string, 0, len(m.cur.Reachable))
	for _, sq := range m.cur.Reachable {
		sqs = append(sqs, sq.String())
	}
	return fmt.Sprintf("select %s: %d squares %v", label, len(sqs), sqs)
}

func (m *Model) execCommand(line string) {
	m.appendLog("> " + line)

	// 数字入力（55 / 7776）はコマンドより先に処理
	if reNumericInput.MatchString(line) {
		m.execNumeric(line)
		return
	}

	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}

	switch parts[0] {
	case "setup":
		m.resetBoard(domain.NewHirate(), domain.Sente)
		m.appendLog("setup hirate")

	case "clear", "new", "reset":
		m.resetBoard(domain.NewBoard(), domain.Sente)
		m.appendLog("cleared")

	case "sfen":
		if len(parts) == 1 {
			m.appendLog(kif.FormatSFEN(m.board, m.side, 1))
			return
		}
		b, side, err := kif.ParseSFEN(strings.Join(parts[1:], " "))
		if err != nil {
			m.appendLog(fmt.Sprintf("sfen failed: %v", err))
			return
		}
		m.resetBoard(b, side)
		m.appendLog("position set from sfen")

	case "load":
		if len(parts) != 2 {
			m.appendLog("usage: load <path>")
			return
		}
		b, side, err := kif.ReadPositionFile(parts[1])
		if err != nil {
			m.appendLog(fmt.Sprintf("load failed: %v", err))
			return
		}
		m.resetBoard(b, side)
		m.appendLog("loaded " + parts[1])

	case "save":
		if len(parts) != 2 {
			m.appendLog("usage: save <path>")
			return
		}
		if err := kif.WritePosition(parts[1], m.board, m.side, m.kifOptions()); err != nil {
			m.appendLog(fmt.Sprintf("save failed: %v", err))
			return
		}
		m.appendLog("saved " + parts[1])

	case "kif":
		out := kif.ExportPosition(m.board, m.side, m.kifOptions())
		m.appendLog("KIF preview:")
		for _, ln := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
			m.appendLog("  " + ln)
		}

	default:
		m.appendLog(fmt.Sprintf("unknown command: %s", parts[0]))
	}
}

func (m *Model) execNumeric(s string) {
	tag, from, to, err := domain.ParseNumeric(s)
	if err != nil {
		m.appendLog(fmt.Sprintf("invalid numeric: %v", err))
		return
	}

	switch tag {
	case "focus":
		m.cur.Focus = to
		m.cur = m.cur.Select(m.board, to)
		m.appendLog(m.selectionText())

	case "move":
		if !m.cfg.CommitMoves {
			m.appendLog("moves are disabled (commit_moves=false)")
			return
		}
		m.cur = m.cur.Select(m.board, *from)
		m.cur.Focus = to
		next, ch := cursor.Apply(m.board, m.cur, cursor.Commit)
		if !ch.Has(cursor.ChangeBoard) {
			m.cur = next
			m.appendLog(fmt.Sprintf("move failed: %s cannot reach %s", from, to))
			return
		}
		m.cur = next
		m.appendLog(fmt.Sprintf("move %s -> %s", from, to))

	default:
		m.appendLog(fmt.Sprintf("unknown numeric tag: %s", tag))
	}
}

func (m *Model) resetBoard(b *domain.Board, side domain.Side) {
	m.board = b
	m.side = side
	m.cur = cursor.New(b)
}

func (m Model) kifOptions() kif.KIFOptions {
	opt := kif.DefaultKIFOptions()
	opt.SessionID = m.sessionID
	return opt
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > maxLogLines {
		m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
	}
}

func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	modeStr := "NORMAL"
	if m.m == modeInput {
		modeStr = "INPUT"
	}

	header := titleStyle.Render(fmt.Sprintf("shogi-tui  [%s手番]  mode:%s  focus:%s",
		m.side, modeStr, kif.SqToKIF(m.cur.Focus)))

	boardBox := boxStyle.Render(RenderBoard(m.board, m.cur, m.cfg.Glyphs))

	// ログ領域
	logHeight := max(5, lipgloss.Height(boardBox)-2)
	logStart := max(0, len(m.logLines)-logHeight)
	logBody := strings.Join(m.logLines[logStart:], "\n")
	logWidth := max(20, m.width-lipgloss.Width(boardBox)-2)
	logBox := boxStyle.Width(logWidth).Height(logHeight).Render(logBody)

	// 入力領域
	var inputLine string
	if m.m == modeInput {
		inputLine = m.input.View()
	} else {
		inputLine = "press i to enter command"
	}
	inputBox := boxStyle.Width(max(20, m.width-2)).Render(inputLine)

	body := lipgloss.JoinHorizontal(lipgloss.Top, boardBox, logBox)
	return header + "\n" + body + "\n" + inputBox + "\n" + m.help.View(m.keys) + "\n"
}
