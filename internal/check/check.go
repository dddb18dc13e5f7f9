// Package check provides system diagnostics (--check mode) and pre-run
// dependency validation for ffmpeg, ffprobe, and the configured assets.
package check

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/backmassage/capsheet/internal/config"
)

// Sentinel errors returned by CheckDeps when a required tool or asset is missing.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive --check flow: prints availability of ffmpeg
// and ffprobe and runs a minimal decode test. Informational only; returns
// false when something failed.
func RunCheck(log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkTool(log, "ffmpeg")
	ok = checkTool(log, "ffprobe") && ok
	ok = checkDecode(log) && ok
	return ok
}

// checkTool verifies a binary is on PATH and logs its version string.
func checkTool(log Logger, name string) bool {
	if _, err := exec.LookPath(name); err != nil {
		log.Error("%s not found", name)
		return false
	}
	cmd := exec.Command(name, "-version")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("%s found but -version failed: %v", name, err)
		return true
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("%s: %s", name, firstLine)
	return true
}

// checkDecode runs a minimal lavfi decode to verify ffmpeg can produce
// raster frames.
func checkDecode(log Logger) bool {
	log.Info("Testing frame decode...")
	if runSilent("ffmpeg",
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=64x64:d=0.1",
		"-frames:v", "1",
		"-f", "null", "-",
	) {
		log.Success("Frame decode works")
		return true
	}
	log.Error("Frame decode test failed")
	return false
}

// CheckDeps is the pre-run validation: ffmpeg and ffprobe must be on PATH,
// and the configured font and logo files must exist. Returns a sentinel or
// wrapped error on the first failure.
func CheckDeps(sheet *config.SheetConfig) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	if _, err := os.Stat(sheet.FontPath); err != nil {
		return fmt.Errorf("font file not found: %s", sheet.FontPath)
	}
	if _, err := os.Stat(sheet.LogoPath); err != nil {
		return fmt.Errorf("logo file not found: %s", sheet.LogoPath)
	}
	return nil
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
