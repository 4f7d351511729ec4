package main

import (
	"flag"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"shogi-tui/internal/config"
	"shogi-tui/internal/domain"
	"shogi-tui/internal/kif"
	"shogi-tui/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to config.json (default: search upward from the working directory)")
	glyphs := flag.String("glyphs", "", "piece glyphs: kanji or ascii")
	logFile := flag.String("log", "", "write debug log to this file")
	position := flag.String("position", "", "KIF board file (UTF-8 or Shift-JIS) to start from")
	sfen := flag.String("sfen", "", "SFEN position to start from")
	noCommit := flag.Bool("no-move", false, "highlight only; do not allow moving pieces")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *glyphs != "" {
		cfg.Glyphs = *glyphs
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if *position != "" {
		cfg.Position, cfg.SFEN = *position, ""
	}
	if *sfen != "" {
		cfg.SFEN, cfg.Position = *sfen, ""
	}
	if *noCommit {
		cfg.CommitMoves = false
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	sessionID := uuid.NewString()
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "shogi-tui")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("session=%s start glyphs=%s commit=%v", sessionID, cfg.Glyphs, cfg.CommitMoves)

	b, side, err := startPosition(cfg)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	err = tui.Run(tui.Options{Config: cfg, Board: b, Side: side, SessionID: sessionID})
	log.Printf("session=%s end err=%v", sessionID, err)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

// loadConfig uses path when given, otherwise the nearest config.json, and
// falls back to defaults when none exists.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	found, err := config.FindConfigPath()
	if err != nil {
		return config.Default(), nil
	}
	return config.Load(found)
}

func startPosition(cfg config.Config) (*domain.Board, domain.Side, error) {
	switch {
	case cfg.Position != "":
		return kif.ReadPositionFile(cfg.Position)
	case cfg.SFEN != "":
		return kif.ParseSFEN(cfg.SFEN)
	default:
		return domain.NewHirate(), domain.Sente, nil
	}
}
