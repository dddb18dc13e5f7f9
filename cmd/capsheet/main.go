// Command capsheet renders a contact-sheet thumbnail for a video file:
// a metadata header, an optional logo, and a grid of sampled frames,
// written as a single PNG.
//
// It parses flags, loads the YAML sheet configuration, and either runs
// system diagnostics (--check) or the render pipeline with a progress bar.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/backmassage/capsheet/internal/check"
	"github.com/backmassage/capsheet/internal/config"
	"github.com/backmassage/capsheet/internal/display"
	"github.com/backmassage/capsheet/internal/logging"
	"github.com/backmassage/capsheet/internal/pipeline"
)

// version is injected at build time via -ldflags.
var version = "1.0.0-dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "capsheet: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "capsheet: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "capsheet: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(log) {
			return 1
		}
		return 0
	}

	sheet, err := config.Load(cfg.ConfigPath)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	if err := os.MkdirAll(cfg.OutputFolder, 0o755); err != nil {
		log.Error("Cannot create output folder: %s", cfg.OutputFolder)
		return 1
	}

	// Fail fast if ffmpeg/ffprobe or the configured assets are unavailable.
	if err := check.CheckDeps(&sheet); err != nil {
		log.Error("%v", err)
		return 1
	}

	log.Info("=== capsheet v%s ===", version)
	log.Info("In:  %s", cfg.VideoPath)
	log.Info("Out: %s", pipeline.OutputPath(cfg.OutputFolder, cfg.VideoPath))

	// Phase 3: Render, driving the per-frame fractions into a progress bar.
	bar := progressbar.NewOptions(100,
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)
	onProgress := func(fraction float64) {
		_ = bar.Set(int(fraction * 100))
	}

	outPath, err := pipeline.Run(context.Background(), &cfg, &sheet, log, onProgress)
	_ = bar.Finish()
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	log.Success("Wrote %s", outPath)
	return 0
}
