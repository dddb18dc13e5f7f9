// Package metadata builds the ordered header record of the contact sheet:
// seven label/value rows describing the file, its container, and its primary
// video and audio streams.
package metadata

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/backmassage/capsheet/internal/display"
	"github.com/backmassage/capsheet/internal/probe"
)

// Sentinel errors for containers missing a required stream. Both are fatal;
// a sheet without stream metadata is never produced.
var (
	ErrNoVideoStream = errors.New("container has no video stream")
	ErrNoAudioStream = errors.New("container has no audio stream")
)

// Entry is one header row. Values carry a leading ": " so the two text
// columns align the way the sheet draws them.
type Entry struct {
	Label string
	Value string
}

// Record is the ordered header block. Always exactly seven entries:
// File Name, File Size, Resolution, Duration, Video, Audio, Comment.
type Record []Entry

// Build derives the header record from a probe result. videoPath supplies
// the displayed file name; comment is the free-text annotation from the
// config.
func Build(r *probe.Result, videoPath, comment string) (Record, error) {
	if r.Video == nil {
		return nil, ErrNoVideoStream
	}
	if r.Audio == nil {
		return nil, ErrNoAudioStream
	}

	v, a := r.Video, r.Audio
	fps := v.FrameRate()

	lang := a.Language
	if lang == "" {
		lang = "und"
	}

	return Record{
		{"File Name", ": " + filepath.Base(videoPath)},
		{"File Size", ": " + display.FormatMegabytes(r.Format.Size)},
		{"Resolution", fmt.Sprintf(": %dx%d / %s fps", v.Width, v.Height, display.FormatFrameRate(fps))},
		{"Duration", ": " + display.FormatDuration(int64(r.Format.Duration))},
		{"Video", fmt.Sprintf(": %s (%s) :: %d kb/s, %s fps",
			strings.ToUpper(v.Codec), v.Profile, v.BitRate/1000, display.FormatFrameRate(fps))},
		{"Audio", fmt.Sprintf(": %s (%s) :: %d kbps, %d Hz, %d channels :: %s",
			strings.ToUpper(a.Codec), a.Profile, a.BitRate/1000, a.SampleRate, a.Channels, titleCase(lang))},
		{"Comment", ": " + comment},
	}, nil
}

// Labels returns the label column as one newline-joined text block.
func (rec Record) Labels() string {
	lines := make([]string, len(rec))
	for i, e := range rec {
		lines[i] = e.Label
	}
	return strings.Join(lines, "\n")
}

// Values returns the value column as one newline-joined text block.
func (rec Record) Values() string {
	lines := make([]string, len(rec))
	for i, e := range rec {
		lines[i] = e.Value
	}
	return strings.Join(lines, "\n")
}

// titleCase upper-cases the first letter of each space-separated word and
// lower-cases the rest ("und" -> "Und").
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
