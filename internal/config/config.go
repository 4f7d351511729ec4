package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const FileName = "config.json"

const (
	GlyphsKanji = "kanji"
	GlyphsASCII = "ascii"
)

type Config struct {
	Glyphs      string `json:"glyphs"`
	LogFile     string `json:"log_file"`
	Position    string `json:"position"`
	SFEN        string `json:"sfen"`
	CommitMoves bool   `json:"commit_moves"`
}

func Default() Config {
	return Config{
		Glyphs:      GlyphsKanji,
		CommitMoves: true,
	}
}

// FindConfigPath walks up from the working directory looking for config.json.
func FindConfigPath() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findFrom(cwd)
}

func findFrom(start string) (string, error) {
	dir := start
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("%s not found from %s", FileName, start)
}

// Load reads path over the defaults. Fields missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Glyphs {
	case GlyphsKanji, GlyphsASCII:
	default:
		return fmt.Errorf("glyphs must be %q or %q, got %q", GlyphsKanji, GlyphsASCII, c.Glyphs)
	}
	if c.Position != "" && c.SFEN != "" {
		return fmt.Errorf("position and sfen are mutually exclusive")
	}
	return nil
}
