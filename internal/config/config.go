// Package config holds runtime configuration: CLI flag parsing for the
// driver and YAML loading/validation for the contact-sheet settings.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds the driver-level settings populated by [DefaultConfig] and
// [ParseFlags]. The contact-sheet settings live in [SheetConfig], loaded
// separately from the YAML file named by ConfigPath.
type Config struct {
	// Paths (set from CLI flags).
	VideoPath    string // --video (required).
	ConfigPath   string // --config. Default: "config.yml".
	OutputFolder string // --output_folder. Default: ".".

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults applied. Used as the base
// before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		ConfigPath:   "config.yml",
		OutputFolder: ".",
		ColorMode:    ColorAuto,
	}
}

// Validate checks that the flag set forms a runnable invocation. --check
// needs no video; everything else requires --video.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}
	if c.CheckOnly {
		return nil
	}
	if c.VideoPath == "" {
		return fmt.Errorf("--video is required")
	}
	return nil
}

// SheetConfig is the fully validated contact-sheet configuration. All fields
// are plain values; required-key detection happens on the YAML wire struct
// inside [Load].
type SheetConfig struct {
	Comment  string
	FontPath string
	FontSize int

	// Frame matrix geometry.
	Rows       int
	Cols       int
	Padding    int
	BlockWidth int

	BackgroundColor string
	TextColor       string

	// Shuffle selects a fresh random frame set per run; when false the
	// sampler is seeded with a fixed constant and repeat runs pick the
	// identical frames.
	Shuffle bool

	LogoPath         string
	LogoTransparency float64
}

// --- YAML wire types ---
//
// Every required key is a pointer so that "absent" and "zero value" are
// distinguishable; Load reports all missing keys at once.

type sheetFile struct {
	Comment         *string     `yaml:"comment"`
	Font            *string     `yaml:"font"`
	FontSize        *int        `yaml:"font_size"`
	Matrix          *matrixFile `yaml:"matrix"`
	BackgroundColor *string     `yaml:"background_color"`
	TextColor       *string     `yaml:"text_color"`
	Shuffle         *bool       `yaml:"shuffle"`
	Logo            *logoFile   `yaml:"logo"`
}

type matrixFile struct {
	Row        *int `yaml:"row"`
	Col        *int `yaml:"col"`
	Padding    *int `yaml:"padding"`
	BlockWidth *int `yaml:"block_width"`
}

type logoFile struct {
	Path         *string  `yaml:"path"`
	Transparency *float64 `yaml:"transparency"`
}

// Load reads and validates the YAML contact-sheet configuration at path.
// Missing required keys fail fast, all reported in one error.
func Load(path string) (SheetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SheetConfig{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse converts raw YAML into a validated SheetConfig. Exported for testing
// without touching the filesystem.
func Parse(data []byte) (SheetConfig, error) {
	var raw sheetFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return SheetConfig{}, fmt.Errorf("parse config YAML: %w", err)
	}

	missing := collectMissing(&raw)
	if len(missing) > 0 {
		sort.Strings(missing)
		return SheetConfig{}, fmt.Errorf("config: missing required key(s): %s", strings.Join(missing, ", "))
	}

	sc := SheetConfig{
		Comment:          *raw.Comment,
		FontPath:         *raw.Font,
		FontSize:         *raw.FontSize,
		Rows:             *raw.Matrix.Row,
		Cols:             *raw.Matrix.Col,
		Padding:          *raw.Matrix.Padding,
		BlockWidth:       *raw.Matrix.BlockWidth,
		BackgroundColor:  *raw.BackgroundColor,
		TextColor:        *raw.TextColor,
		Shuffle:          *raw.Shuffle,
		LogoPath:         *raw.Logo.Path,
		LogoTransparency: *raw.Logo.Transparency,
	}
	if err := sc.validate(); err != nil {
		return SheetConfig{}, err
	}
	return sc, nil
}

// collectMissing returns the dotted names of all absent required keys.
func collectMissing(raw *sheetFile) []string {
	var missing []string
	need := func(ok bool, name string) {
		if !ok {
			missing = append(missing, name)
		}
	}

	need(raw.Comment != nil, "comment")
	need(raw.Font != nil, "font")
	need(raw.FontSize != nil, "font_size")
	need(raw.BackgroundColor != nil, "background_color")
	need(raw.TextColor != nil, "text_color")
	need(raw.Shuffle != nil, "shuffle")

	if raw.Matrix == nil {
		missing = append(missing, "matrix")
	} else {
		need(raw.Matrix.Row != nil, "matrix.row")
		need(raw.Matrix.Col != nil, "matrix.col")
		need(raw.Matrix.Padding != nil, "matrix.padding")
		need(raw.Matrix.BlockWidth != nil, "matrix.block_width")
	}

	if raw.Logo == nil {
		missing = append(missing, "logo")
	} else {
		need(raw.Logo.Path != nil, "logo.path")
		need(raw.Logo.Transparency != nil, "logo.transparency")
	}
	return missing
}

// validate range-checks the present values.
func (s *SheetConfig) validate() error {
	if s.FontSize <= 0 {
		return fmt.Errorf("config: font_size must be positive, got %d", s.FontSize)
	}
	if s.Rows < 1 || s.Cols < 1 {
		return fmt.Errorf("config: matrix.row and matrix.col must be >= 1, got %dx%d", s.Rows, s.Cols)
	}
	if s.Padding < 0 {
		return fmt.Errorf("config: matrix.padding must not be negative, got %d", s.Padding)
	}
	if s.BlockWidth <= 0 {
		return fmt.Errorf("config: matrix.block_width must be positive, got %d", s.BlockWidth)
	}
	if s.LogoTransparency < 0 || s.LogoTransparency > 1 {
		return fmt.Errorf("config: logo.transparency must be in [0,1], got %g", s.LogoTransparency)
	}
	return nil
}

// CellCount returns the number of grid cells (row*col).
func (s *SheetConfig) CellCount() int {
	return s.Rows * s.Cols
}
