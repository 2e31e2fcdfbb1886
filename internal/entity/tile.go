package entity

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tiles2048/internal/assets"
)

// Tile is one cell of the grid on screen.
type Tile struct {
	X, Y, Size float64

	value int
	label *Label
}

func NewTile(x, y, size float64) *Tile {
	return &Tile{
		X:     x,
		Y:     y,
		Size:  size,
		label: NewLabel("", 1, nil),
	}
}

// SetValue updates the number shown; 0 shows an empty cell.
func (t *Tile) SetValue(value int) {
	t.value = value
	if value == 0 {
		t.label.SetText("")
		return
	}

	text := strconv.Itoa(value)
	t.label.SetText(text)
	// Fit the number into 80% of the cell, never larger than 4x.
	t.label.Scale = min(4, 0.8*t.Size/float64(len(text)*glyphWidth))
}

func (t *Tile) Value() int { return t.value }

func (t *Tile) Draw(screen *ebiten.Image, palette *assets.Palette) {
	x, y, s := float32(t.X), float32(t.Y), float32(t.Size)
	vector.DrawFilledRect(screen, x, y, s, s, palette.TileColor(t.value), false)

	if t.value == 0 {
		return
	}
	t.label.Color = palette.TextColor(t.value)
	t.label.DrawCentered(screen, t.X+t.Size/2, t.Y+t.Size/2)
}
