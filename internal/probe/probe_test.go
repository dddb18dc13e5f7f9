package probe

import (
	"testing"
)

// Realistic ffprobe JSON for a Matroska file with:
//   - 1 attached pic (cover art, must be skipped as primary video)
//   - 1 H.264 video stream (1920x1080, 23.976 fps, nb_frames present)
//   - 2 AAC audio streams (the first one is the subject)
const sampleFull = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "mjpeg",
      "codec_type": "video",
      "width": 600,
      "height": 900,
      "disposition": { "default": 0, "attached_pic": 1 },
      "tags": { "comment": "Cover (front)" }
    },
    {
      "index": 1,
      "codec_name": "h264",
      "codec_type": "video",
      "profile": "High",
      "width": 1920,
      "height": 1080,
      "bit_rate": "5000000",
      "avg_frame_rate": "24000/1001",
      "nb_frames": "14315",
      "disposition": { "default": 1, "attached_pic": 0 },
      "tags": {}
    },
    {
      "index": 2,
      "codec_name": "aac",
      "codec_type": "audio",
      "profile": "LC",
      "channels": 2,
      "sample_rate": "48000",
      "bit_rate": "192000",
      "disposition": { "default": 1 },
      "tags": { "language": "jpn" }
    },
    {
      "index": 3,
      "codec_name": "ac3",
      "codec_type": "audio",
      "channels": 6,
      "sample_rate": "48000",
      "disposition": { "default": 0 },
      "tags": { "language": "eng" }
    }
  ],
  "format": {
    "filename": "/media/test/movie.mkv",
    "format_name": "matroska,webm",
    "duration": "597.250000",
    "size": "734003200",
    "bit_rate": "9830400"
  }
}`

func TestParseJSON_Full(t *testing.T) {
	r, err := ParseJSON([]byte(sampleFull))
	if err != nil {
		t.Fatal(err)
	}

	if r.Format.Size != 734003200 {
		t.Errorf("Format.Size = %d, want 734003200", r.Format.Size)
	}
	if r.Format.Duration != 597.25 {
		t.Errorf("Format.Duration = %g, want 597.25", r.Format.Duration)
	}

	if r.Video == nil {
		t.Fatal("Video = nil, want the h264 stream")
	}
	if r.Video.Index != 1 || r.Video.Codec != "h264" || r.Video.Profile != "High" {
		t.Errorf("Video = %+v, want index 1 h264 High", r.Video)
	}
	if r.Video.Width != 1920 || r.Video.Height != 1080 {
		t.Errorf("Video size = %dx%d, want 1920x1080", r.Video.Width, r.Video.Height)
	}
	if r.Video.NbFrames != 14315 {
		t.Errorf("Video.NbFrames = %d, want 14315", r.Video.NbFrames)
	}
	if got := r.Video.FrameRate(); got < 23.97 || got > 23.98 {
		t.Errorf("Video.FrameRate() = %g, want ~23.976", got)
	}

	if r.Audio == nil {
		t.Fatal("Audio = nil, want the first aac stream")
	}
	if r.Audio.Index != 2 || r.Audio.Codec != "aac" || r.Audio.Profile != "LC" {
		t.Errorf("Audio = %+v, want index 2 aac LC", r.Audio)
	}
	if r.Audio.SampleRate != 48000 || r.Audio.Channels != 2 || r.Audio.BitRate != 192000 {
		t.Errorf("Audio format = %d Hz %d ch %d b/s", r.Audio.SampleRate, r.Audio.Channels, r.Audio.BitRate)
	}
	if r.Audio.Language != "jpn" {
		t.Errorf("Audio.Language = %q, want jpn", r.Audio.Language)
	}
}

func TestParseJSON_NoStreams(t *testing.T) {
	r, err := ParseJSON([]byte(`{"streams": [], "format": {"duration": "1.0"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if r.Video != nil || r.Audio != nil {
		t.Errorf("Video = %v, Audio = %v, want both nil", r.Video, r.Audio)
	}
	if r.FrameCount() != 0 {
		t.Errorf("FrameCount() = %d, want 0 without a video stream", r.FrameCount())
	}
}

func TestParseJSON_Malformed(t *testing.T) {
	if _, err := ParseJSON([]byte(`{"streams": [`)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestFrameCount(t *testing.T) {
	tests := []struct {
		name     string
		nbFrames int64
		rate     string
		duration float64
		want     int64
	}{
		{"container reports nb_frames", 14315, "24000/1001", 597.25, 14315},
		{"estimated from duration", 0, "25/1", 600, 15000},
		{"plain rate", 0, "30", 10, 300},
		{"no rate no nb_frames", 0, "0/0", 600, 0},
		{"no duration", 0, "25/1", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Result{
				Format: FormatInfo{Duration: tt.duration},
				Video:  &VideoStream{NbFrames: tt.nbFrames, AvgFrameRate: tt.rate},
			}
			if got := r.FrameCount(); got != tt.want {
				t.Errorf("FrameCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"25/1", 25},
		{"30", 30},
		{"", 0},
		{"0/0", 0},
		{"bogus", 0},
	}
	for _, tt := range tests {
		if got := ParseRate(tt.in); got != tt.want {
			t.Errorf("ParseRate(%q) = %g, want %g", tt.in, got, tt.want)
		}
	}
}
