package pipeline

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/capsheet/internal/render"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		folder string
		video  string
		want   string
	}{
		{"simple", "out", "/media/movie.mkv", filepath.Join("out", "movie.png")},
		{"current dir", ".", "clip.mp4", "clip.png"},
		{"dotted stem", "out", "Show.S01E01.mkv", filepath.Join("out", "Show.S01E01.png")},
		{"no extension", "out", "rawvideo", filepath.Join("out", "rawvideo.png")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OutputPath(tt.folder, tt.video)
			if got != tt.want {
				t.Errorf("OutputPath(%q, %q) = %q, want %q", tt.folder, tt.video, got, tt.want)
			}
		})
	}
}

func TestWritePNG_Atomic(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "sheet.png")
	canvas := render.NewCanvas(8, 8, color.NRGBA{0x20, 0x40, 0x60, 0xff})

	if err := writePNG(canvas, target); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(target)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 8, 8) {
		t.Errorf("bounds = %v, want 8x8", img.Bounds())
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("%d entries in output dir, want only the PNG", len(entries))
	}
}

func TestWritePNG_BadTarget(t *testing.T) {
	canvas := render.NewCanvas(4, 4, color.NRGBA{A: 0xff})
	err := writePNG(canvas, filepath.Join(t.TempDir(), "missing", "sheet.png"))
	if err == nil {
		t.Fatal("expected error for nonexistent target directory")
	}
}
