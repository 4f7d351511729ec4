package kif

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"shogi-tui/internal/domain"
)

// ReadPositionFile loads a starting position from a KIF file holding a board
// diagram, or from a file whose first line is an SFEN string. KIF files may
// be UTF-8 or Shift-JIS.
func ReadPositionFile(path string) (*domain.Board, domain.Side, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	text, err := decode(data)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	b, side, err := ParsePosition(text)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	return b, side, nil
}

// ParsePosition is ReadPositionFile for already decoded text.
func ParsePosition(text string) (*domain.Board, domain.Side, error) {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}

	for _, ln := range lines {
		ln = strings.TrimSpace(ln)
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		if strings.HasPrefix(ln, "sfen ") || strings.Count(ln, "/") == domain.Size-1 {
			return ParseSFEN(ln)
		}
		break
	}

	b, err := ParseDiagram(lines)
	if err != nil {
		return nil, 0, err
	}
	side := domain.Sente
	for _, ln := range lines {
		if strings.HasPrefix(strings.TrimSpace(ln), "後手番") {
			side = domain.Gote
		}
	}
	return b, side, nil
}

func decode(data []byte) (string, error) {
	if bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		data = data[3:]
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	reader := transform.NewReader(bytes.NewReader(data), japanese.ShiftJIS.NewDecoder())
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(decoded) {
		return "", errors.New("failed to decode Shift-JIS KIF")
	}
	return string(decoded), nil
}
