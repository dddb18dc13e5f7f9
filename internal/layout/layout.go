// Package layout computes the contact sheet's pixel geometry: the measured
// header text boxes, the overall canvas size, and the per-cell frame
// origins. The grid starts immediately below the header, left-aligned with
// the canvas.
package layout

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/backmassage/capsheet/internal/config"
)

// Fixed margins applied to measured text boxes and the header text origin.
const (
	TextOriginX = 10 // Left edge of the label column.
	TextOriginY = 10 // Top edge of both text columns.

	boxMarginW = 15 // Added to a measured text width.
	boxMarginH = 30 // Added to a measured text height.
)

// LoadFont reads a TrueType/OpenType font file and returns a face at the
// given point size.
func LoadFont(path string, size int) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %q: %w", path, err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build font face: %w", err)
	}
	return face, nil
}

// TextBox measures a multi-line text block with face and returns its padded
// box: widest line extent plus 15px, line-stacked height plus 30px. These
// margins separate the two header columns and the header from the grid.
func TextBox(face font.Face, text string) (width, height int) {
	lines := strings.Split(text, "\n")

	w := 0
	for _, line := range lines {
		if adv := font.MeasureString(face, line).Ceil(); adv > w {
			w = adv
		}
	}

	m := face.Metrics()
	h := m.Ascent.Ceil() + m.Descent.Ceil()
	if n := len(lines); n > 1 {
		h += (n - 1) * m.Height.Ceil()
	}

	return w + boxMarginW, h + boxMarginH
}

// Plan is the computed sheet geometry. All values are pixels.
type Plan struct {
	Rows    int
	Cols    int
	Padding int

	BlockWidth  int
	BlockHeight int // Derived from BlockWidth and the video's aspect ratio.

	LabelColWidth int // Padded label column width; x origin of the value column.
	HeaderHeight  int // Padded label column height; y origin of the grid.

	Width  int // Total canvas width.
	Height int // Total canvas height.
}

// NewPlan derives the full sheet geometry from the configured matrix, the
// video's dimensions, and the measured label-column box.
func NewPlan(sheet *config.SheetConfig, videoW, videoH, labelColW, headerH int) (Plan, error) {
	if videoW <= 0 || videoH <= 0 {
		return Plan{}, fmt.Errorf("invalid video dimensions %dx%d", videoW, videoH)
	}

	blockHeight := sheet.BlockWidth * videoH / videoW
	p := Plan{
		Rows:          sheet.Rows,
		Cols:          sheet.Cols,
		Padding:       sheet.Padding,
		BlockWidth:    sheet.BlockWidth,
		BlockHeight:   blockHeight,
		LabelColWidth: labelColW,
		HeaderHeight:  headerH,
	}
	p.Width = (p.BlockWidth+p.Padding)*p.Cols + p.Padding
	p.Height = p.HeaderHeight + (p.BlockHeight+p.Padding)*p.Rows
	return p, nil
}

// CellOrigin returns the canvas position of the idx-th grid cell, row-major
// left-to-right, top-to-bottom below the header.
func (p *Plan) CellOrigin(idx int) (x, y int) {
	x = p.Padding + (p.Padding+p.BlockWidth)*(idx%p.Cols)
	y = p.HeaderHeight + (p.Padding+p.BlockHeight)*(idx/p.Cols)
	return x, y
}

// CellCount returns the number of grid cells.
func (p *Plan) CellCount() int {
	return p.Rows * p.Cols
}
