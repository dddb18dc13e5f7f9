package render

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"io"

	"github.com/disintegration/imaging"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/backmassage/capsheet/internal/layout"
)

// ProgressFunc receives the completion fraction after each rendered frame.
// Fractions are strictly increasing and end at exactly 1.0.
type ProgressFunc func(fraction float64)

// ExtractFunc decodes the first video frame at or after the given timestamp.
// It exists as a seam so tests can render without an ffmpeg binary.
type ExtractFunc func(videoPath string, seconds int64) (image.Image, error)

// ExtractFrame pulls a single frame out of the video with ffmpeg, encoded
// as PNG through a pipe. ffmpeg seeks to the nearest keyframe and decodes
// forward, so the returned frame is the first one at or after the timestamp.
func ExtractFrame(videoPath string, seconds int64) (image.Image, error) {
	buf := &bytes.Buffer{}
	err := ffmpeg.Input(videoPath, ffmpeg.KwArgs{"ss": seconds}).
		Output("pipe:", ffmpeg.KwArgs{"vframes": 1, "format": "image2", "vcodec": "png"}).
		WithOutput(buf, io.Discard).
		Silent(true).
		Run()
	if err != nil {
		return nil, fmt.Errorf("extract frame at %ds: %w", seconds, err)
	}

	img, err := imaging.Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("decode frame at %ds: %w", seconds, err)
	}
	return img, nil
}

// Renderer pastes sampled frames into the canvas grid. The canvas must
// already carry the header text and logo; cells are filled row-major,
// left-to-right, top-to-bottom.
type Renderer struct {
	VideoPath string
	FrameRate float64 // Average video frame rate, for index→timestamp conversion.
	Plan      layout.Plan
	Canvas    *image.RGBA

	Extract    ExtractFunc  // nil means ExtractFrame.
	OnProgress ProgressFunc // nil means no progress reporting.
}

// Render decodes every sampled frame index in order, resizes it to the cell
// size with bilinear interpolation, pastes it at its grid position, and
// reports progress after each cell.
func (r *Renderer) Render(indices []int64) error {
	if r.FrameRate <= 0 {
		return fmt.Errorf("invalid frame rate %g", r.FrameRate)
	}
	extract := r.Extract
	if extract == nil {
		extract = ExtractFrame
	}

	total := len(indices)
	for idx, frame := range indices {
		// Truncated to whole seconds, matching the container's coarse
		// seek granularity.
		seconds := int64(float64(frame) / r.FrameRate)

		img, err := extract(r.VideoPath, seconds)
		if err != nil {
			return err
		}

		cell := imaging.Resize(img, r.Plan.BlockWidth, r.Plan.BlockHeight, imaging.Linear)
		x, y := r.Plan.CellOrigin(idx)
		rect := image.Rect(x, y, x+r.Plan.BlockWidth, y+r.Plan.BlockHeight)
		draw.Draw(r.Canvas, rect, cell, image.Point{}, draw.Src)

		if r.OnProgress != nil {
			r.OnProgress(float64(idx+1) / float64(total))
		}
	}
	return nil
}
