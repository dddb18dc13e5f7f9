// Package pipeline orchestrates one contact-sheet run: probe, header
// metadata, layout, frame sampling, rendering, and the final PNG write.
package pipeline

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/capsheet/internal/config"
	"github.com/backmassage/capsheet/internal/layout"
	"github.com/backmassage/capsheet/internal/logging"
	"github.com/backmassage/capsheet/internal/metadata"
	"github.com/backmassage/capsheet/internal/probe"
	"github.com/backmassage/capsheet/internal/render"
	"github.com/backmassage/capsheet/internal/sampler"
)

// Files smaller than this are rejected before probing; they cannot hold a
// decodable video stream.
const minFileSize = 1000

// Run produces the contact sheet for cfg.VideoPath and returns the written
// PNG's path. onProgress receives the per-frame completion fraction. Any
// error aborts the run; no partial PNG is left behind.
func Run(ctx context.Context, cfg *config.Config, sheet *config.SheetConfig, log *logging.Logger, onProgress render.ProgressFunc) (string, error) {
	fi, err := os.Stat(cfg.VideoPath)
	if err != nil {
		return "", fmt.Errorf("video file: %w", err)
	}
	if fi.Size() < minFileSize {
		return "", fmt.Errorf("video file too small (possibly corrupt): %s", cfg.VideoPath)
	}

	// Parse colors up front so a config typo fails before any decoding.
	bgColor, err := render.ParseColor(sheet.BackgroundColor)
	if err != nil {
		return "", fmt.Errorf("background_color: %w", err)
	}
	textColor, err := render.ParseColor(sheet.TextColor)
	if err != nil {
		return "", fmt.Errorf("text_color: %w", err)
	}

	pr, err := probe.Probe(ctx, cfg.VideoPath)
	if err != nil {
		return "", err
	}

	rec, err := metadata.Build(pr, cfg.VideoPath, sheet.Comment)
	if err != nil {
		return "", err
	}
	log.Debug("Probed %s: %dx%d, %d frames", filepath.Base(cfg.VideoPath), pr.Video.Width, pr.Video.Height, pr.FrameCount())

	face, err := layout.LoadFont(sheet.FontPath, sheet.FontSize)
	if err != nil {
		return "", err
	}
	defer face.Close()

	labelColW, headerH := layout.TextBox(face, rec.Labels())
	plan, err := layout.NewPlan(sheet, pr.Video.Width, pr.Video.Height, labelColW, headerH)
	if err != nil {
		return "", err
	}
	log.Debug("Canvas %dx%d, cells %dx%d", plan.Width, plan.Height, plan.BlockWidth, plan.BlockHeight)

	// Sampling happens before the canvas exists: a too-short video must
	// fail without allocating or writing anything.
	indices, err := sampler.Sample(sampler.New(sheet.Shuffle), pr.FrameCount(), plan.CellCount())
	if err != nil {
		return "", err
	}

	canvas := render.NewCanvas(plan.Width, plan.Height, bgColor)
	render.DrawText(canvas, face, rec.Labels(), layout.TextOriginX, layout.TextOriginY, textColor)
	render.DrawText(canvas, face, rec.Values(), plan.LabelColWidth, layout.TextOriginY, textColor)
	if err := render.DrawLogo(canvas, sheet.LogoPath, plan.BlockWidth/4, sheet.LogoTransparency); err != nil {
		return "", err
	}

	log.Render("Capturing %d frames from %s", len(indices), filepath.Base(cfg.VideoPath))
	renderer := &render.Renderer{
		VideoPath:  cfg.VideoPath,
		FrameRate:  pr.Video.FrameRate(),
		Plan:       plan,
		Canvas:     canvas,
		OnProgress: onProgress,
	}
	if err := renderer.Render(indices); err != nil {
		return "", err
	}

	outPath := OutputPath(cfg.OutputFolder, cfg.VideoPath)
	if err := writePNG(canvas, outPath); err != nil {
		return "", err
	}
	return outPath, nil
}

// OutputPath returns <folder>/<video stem>.png.
func OutputPath(folder, videoPath string) string {
	base := filepath.Base(videoPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(folder, stem+".png")
}

// writePNG encodes the canvas into a temp file next to the target and
// renames it into place, so a failed run never leaves a partial PNG.
func writePNG(img image.Image, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".capsheet-*.png")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	tmpName := tmp.Name()

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("encode PNG: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
