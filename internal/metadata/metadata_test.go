package metadata

import (
	"errors"
	"strings"
	"testing"

	"github.com/backmassage/capsheet/internal/probe"
)

func sampleResult() *probe.Result {
	return &probe.Result{
		Format: probe.FormatInfo{
			Filename: "/media/test/movie.mkv",
			Duration: 597.25,
			Size:     734003200,
		},
		Video: &probe.VideoStream{
			Codec:        "h264",
			Profile:      "High",
			Width:        1920,
			Height:       1080,
			BitRate:      5000000,
			AvgFrameRate: "25/1",
		},
		Audio: &probe.AudioStream{
			Codec:      "aac",
			Profile:    "LC",
			Channels:   2,
			SampleRate: 48000,
			BitRate:    192000,
			Language:   "jpn",
		},
	}
}

func TestBuild_OrderAndCount(t *testing.T) {
	rec, err := Build(sampleResult(), "/media/test/movie.mkv", "hello")
	if err != nil {
		t.Fatal(err)
	}
	wantLabels := []string{"File Name", "File Size", "Resolution", "Duration", "Video", "Audio", "Comment"}
	if len(rec) != len(wantLabels) {
		t.Fatalf("len(rec) = %d, want %d", len(rec), len(wantLabels))
	}
	for i, want := range wantLabels {
		if rec[i].Label != want {
			t.Errorf("rec[%d].Label = %q, want %q", i, rec[i].Label, want)
		}
	}
}

func TestBuild_Values(t *testing.T) {
	rec, err := Build(sampleResult(), "/media/test/movie.mkv", "released by capsheet")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		label string
		want  string
	}{
		{"File Name", ": movie.mkv"},
		{"File Size", ": 700.00 MB"},
		{"Resolution", ": 1920x1080 / 25.00 fps"},
		{"Duration", ": 00:09:57"},
		{"Video", ": H264 (High) :: 5000 kb/s, 25.00 fps"},
		{"Audio", ": AAC (LC) :: 192 kbps, 48000 Hz, 2 channels :: Jpn"},
		{"Comment", ": released by capsheet"},
	}
	for i, tt := range tests {
		if rec[i].Value != tt.want {
			t.Errorf("%s = %q, want %q", tt.label, rec[i].Value, tt.want)
		}
	}
}

func TestBuild_LanguageDefaultsToUnd(t *testing.T) {
	r := sampleResult()
	r.Audio.Language = ""
	rec, err := Build(r, "movie.mkv", "")
	if err != nil {
		t.Fatal(err)
	}
	audio := rec[5].Value
	if !strings.HasSuffix(audio, ":: Und") {
		t.Errorf("Audio value = %q, want trailing ':: Und'", audio)
	}
}

func TestBuild_MissingStreams(t *testing.T) {
	r := sampleResult()
	r.Video = nil
	if _, err := Build(r, "movie.mkv", ""); !errors.Is(err, ErrNoVideoStream) {
		t.Errorf("err = %v, want ErrNoVideoStream", err)
	}

	r = sampleResult()
	r.Audio = nil
	if _, err := Build(r, "movie.mkv", ""); !errors.Is(err, ErrNoAudioStream) {
		t.Errorf("err = %v, want ErrNoAudioStream", err)
	}
}

func TestColumns(t *testing.T) {
	rec, err := Build(sampleResult(), "movie.mkv", "c")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(rec.Labels(), "\n"); got != 6 {
		t.Errorf("Labels() has %d newlines, want 6", got)
	}
	if got := strings.Count(rec.Values(), "\n"); got != 6 {
		t.Errorf("Values() has %d newlines, want 6", got)
	}
	if !strings.HasPrefix(rec.Labels(), "File Name\n") {
		t.Errorf("Labels() = %q", rec.Labels())
	}
}
