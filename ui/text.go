package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var hudFace = text.NewGoXFace(bitmapfont.Face)

// drawTextAt draws text with its baseline starting at (x, y), the way a
// raster position places bitmap characters
func drawTextAt(screen *ebiten.Image, str string, x, y float32, size float64, clr color.Color) {
	scale := size / 16.0
	ascent := hudFace.Metrics().HAscent * scale

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y)-ascent)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, hudFace, op)
}
