package config

// This file implements CLI flag parsing and help text.
// Color overrides (--color/--no-color) are captured separately and applied
// after Parse so the Config default holds unless the user passes the flag.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("capsheet", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	var forceColor, noColor, showVersion, showHelp bool

	fs.StringVar(&cfg.VideoPath, "video", "", "Video file to thumbnail (required)")
	fs.StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "Contact-sheet config YAML file")
	fs.StringVar(&cfg.OutputFolder, "output_folder", cfg.OutputFolder, "Folder for the output PNG")

	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.BoolVar(&forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")

	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&showHelp, "h", false, "Same as --help")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if noColor {
		cfg.ColorMode = ColorNever
	} else if forceColor {
		cfg.ColorMode = ColorAlways
	}

	if showHelp {
		printUsage(fs)
		os.Exit(0)
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, "capsheet v"+version)
		os.Exit(0)
	}

	if len(fs.Args()) != 0 {
		return fmt.Errorf("unexpected argument: %s", fs.Args()[0])
	}
	return nil
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprint(os.Stderr, `capsheet - contact-sheet thumbnail generator for video files

Usage:
  capsheet --video <file> [--config config.yml] [--output_folder .]

The output is a single PNG named after the video file stem, containing a
metadata header, an optional logo, and a grid of sampled frames.

Options:
`)
	fs.PrintDefaults()
}
