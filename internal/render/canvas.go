// Package render owns the contact sheet's raster work: canvas creation,
// header text, the logo overlay, and the frame grid itself.
package render

import (
	"image"
	"image/color"
	"image/draw"
)

// NewCanvas returns a w×h canvas filled with the background color.
func NewCanvas(w, h int, bg color.Color) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return canvas
}
