package render

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// DrawLogo composites the logo image onto the canvas's top-right corner,
// scaled to width pixels (aspect preserved) with its alpha channel
// multiplied by transparency (0 = fully transparent, 1 = unchanged).
func DrawLogo(canvas *image.RGBA, path string, width int, transparency float64) error {
	logo, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("open logo: %w", err)
	}

	scaled := imaging.Resize(logo, width, 0, imaging.Linear)
	fadeAlpha(scaled, transparency)

	bounds := scaled.Bounds()
	x := canvas.Bounds().Dx() - bounds.Dx()
	rect := image.Rect(x, 0, x+bounds.Dx(), bounds.Dy())
	draw.Draw(canvas, rect, scaled, image.Point{}, draw.Over)
	return nil
}

// fadeAlpha scales every pixel's alpha channel in place.
func fadeAlpha(img *image.NRGBA, factor float64) {
	if factor < 0 {
		factor = 0
	} else if factor > 1 {
		factor = 1
	}
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(float64(img.Pix[i]) * factor)
	}
}
