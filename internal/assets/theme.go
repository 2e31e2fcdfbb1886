package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

//go:embed theme.yml
var defaultTheme []byte

var ErrBadColor = errors.New("color must be #rrggbb")

// Theme holds hex colors as written in theme.yml.
type Theme struct {
	Background string         `yaml:"background"`
	Board      string         `yaml:"board"`
	Empty      string         `yaml:"empty"`
	TextDark   string         `yaml:"text-dark"`
	TextLight  string         `yaml:"text-light"`
	Accent     string         `yaml:"accent"`
	Default    string         `yaml:"default"`
	Tiles      map[int]string `yaml:"tiles"`
}

// Palette is a Theme with every color parsed.
type Palette struct {
	Background color.RGBA
	Board      color.RGBA
	Empty      color.RGBA
	TextDark   color.RGBA
	TextLight  color.RGBA
	Accent     color.RGBA
	Default    color.RGBA
	Tiles      map[int]color.RGBA
}

// LoadTheme returns the embedded palette, or the one in the YAML file at path when path is set.
func LoadTheme(path string) (*Palette, error) {
	theme := &Theme{}

	if path == "" {
		if err := yaml.Unmarshal(defaultTheme, theme); err != nil {
			return nil, fmt.Errorf("failed to decode embedded theme: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, theme); err != nil {
		return nil, fmt.Errorf("failed to read theme '%s': %w", path, err)
	}

	return theme.Palette()
}

func (t *Theme) Palette() (*Palette, error) {
	p := &Palette{Tiles: make(map[int]color.RGBA, len(t.Tiles))}

	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"background", t.Background, &p.Background},
		{"board", t.Board, &p.Board},
		{"empty", t.Empty, &p.Empty},
		{"text-dark", t.TextDark, &p.TextDark},
		{"text-light", t.TextLight, &p.TextLight},
		{"accent", t.Accent, &p.Accent},
		{"default", t.Default, &p.Default},
	}
	for _, f := range fields {
		c, err := ParseHex(f.hex)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = c
	}

	for value, hex := range t.Tiles {
		c, err := ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("tile %d: %w", value, err)
		}
		p.Tiles[value] = c
	}

	return p, nil
}

// TileColor returns the background for a tile value; 0 is the empty cell.
func (p *Palette) TileColor(value int) color.RGBA {
	if value == 0 {
		return p.Empty
	}
	if c, ok := p.Tiles[value]; ok {
		return c
	}
	return p.Default
}

// TextColor keeps small values readable on their light backgrounds.
func (p *Palette) TextColor(value int) color.RGBA {
	if value <= 4 {
		return p.TextDark
	}
	return p.TextLight
}

// ParseHex converts "#rrggbb" into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}

	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
