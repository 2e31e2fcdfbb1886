package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Debug font glyph size in pixels.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// Label is one line of debug-font text, rendered once into its own
// image and scaled up at draw time to keep the pixel look.
type Label struct {
	Scale float64
	Color color.Color

	text string
	img  *ebiten.Image
}

func NewLabel(text string, scale float64, clr color.Color) *Label {
	l := &Label{Scale: scale, Color: clr}
	l.SetText(text)
	return l
}

// SetText re-renders only when the text changed.
func (l *Label) SetText(text string) {
	if l.img != nil && text == l.text {
		return
	}
	if l.img != nil {
		l.img.Deallocate()
	}

	l.text = text
	l.img = ebiten.NewImage(max(1, len(text)*glyphWidth), glyphHeight)
	ebitenutil.DebugPrint(l.img, text)
}

func (l *Label) Text() string { return l.text }

// Width is the on-screen width after scaling.
func (l *Label) Width() float64 {
	return float64(len(l.text)*glyphWidth) * l.Scale
}

// DrawCentered draws the label with its center at cx, cy.
func (l *Label) DrawCentered(screen *ebiten.Image, cx, cy float64) {
	if l.text == "" {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(l.Scale, l.Scale)
	op.GeoM.Translate(cx-l.Width()/2, cy-glyphHeight*l.Scale/2)
	op.ColorScale.ScaleWithColor(l.Color)

	screen.DrawImage(l.img, op)
}
