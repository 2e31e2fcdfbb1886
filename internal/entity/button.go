package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Button struct {
	X, Y, W, H float64
	Fill       color.Color

	label *Label
}

func NewButton(text string, x, y, w, h float64, fill, textColor color.Color) *Button {
	return &Button{
		X: x, Y: y, W: w, H: h,
		Fill:  fill,
		label: NewLabel(text, 2, textColor),
	}
}

// Contains reports whether the point, in layout coordinates, is inside the button.
func (b *Button) Contains(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fx >= b.X && fx < b.X+b.W && fy >= b.Y && fy < b.Y+b.H
}

// Clicked is true on the tick the left mouse button goes down over the button.
func (b *Button) Clicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return b.Contains(ebiten.CursorPosition())
}

func (b *Button) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), b.Fill, false)
	b.label.DrawCentered(screen, b.X+b.W/2, b.Y+b.H/2)
}
