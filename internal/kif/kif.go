package kif

import (
	"os"

	"shogi-tui/internal/domain"
)

type KIFOptions struct {
	HeaderComment string // 互換ヘッダ先頭行
	SessionID     string
	Sente         string
	Gote          string
}

func DefaultKIFOptions() KIFOptions {
	return KIFOptions{
		HeaderComment: "# ----  shogi-tui 局面出力  ----",
		Sente:         "先手",
		Gote:          "後手",
	}
}

// ExportPosition writes b as a KIF file with no moves: header, empty hands
// and the board diagram. Gote to move adds the "後手番" line.
func ExportPosition(b *domain.Board, side domain.Side, opt KIFOptions) string {
	out := make([]string, 0, 24)

	out = append(out, opt.HeaderComment)
	if opt.SessionID != "" {
		out = append(out, "# session: "+opt.SessionID)
	}
	out = append(out, "開始日時："+NowFunc())
	if b.Equal(domain.NewHirate()) && side == domain.Sente {
		out = append(out, "手合割：平手")
	} else {
		out = append(out, "手合割：その他")
	}
	out = append(out, "先手："+opt.Sente)
	out = append(out, "後手："+opt.Gote)

	out = append(out, "後手の持駒：なし")
	out = append(out, BoardToDiagram(b))
	out = append(out, "先手の持駒：なし")
	if side == domain.Gote {
		out = append(out, "後手番")
	}
	out = append(out, "手数----指手---------消費時間--")

	return joinLines(out) + "\n"
}

// WritePosition saves ExportPosition output to path as UTF-8.
func WritePosition(path string, b *domain.Board, side domain.Side, opt KIFOptions) error {
	return os.WriteFile(path, []byte(ExportPosition(b, side, opt)), 0o644)
}
