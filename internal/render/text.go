package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DrawText draws a multi-line text block onto dst with its top-left corner
// at (x, y). Lines advance by the face's line height.
func DrawText(dst draw.Image, face font.Face, text string, x, y int, col color.Color) {
	m := face.Metrics()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
	}

	baseline := y + m.Ascent.Ceil()
	for _, line := range strings.Split(text, "\n") {
		d.Dot = fixed.P(x, baseline)
		d.DrawString(line)
		baseline += m.Height.Ceil()
	}
}
