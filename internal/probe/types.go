package probe

// FormatInfo holds container-level metadata from ffprobe's format section.
type FormatInfo struct {
	Filename   string
	FormatName string
	Duration   float64 // Seconds.
	Size       int64   // Bytes.
	BitRate    int64
}

// VideoStream holds the parsed properties of a single video stream.
type VideoStream struct {
	Index         int
	Codec         string
	Profile       string
	Width         int
	Height        int
	BitRate       int64
	AvgFrameRate  string // Rational as reported, e.g. "24000/1001".
	NbFrames      int64  // 0 when the container does not report it.
	IsAttachedPic bool
}

// FrameRate returns the average frame rate in frames per second, or 0 when
// the stream does not report one.
func (v *VideoStream) FrameRate() float64 {
	return ParseRate(v.AvgFrameRate)
}

// AudioStream holds the parsed properties of a single audio stream.
type AudioStream struct {
	Index      int
	Codec      string
	Profile    string
	Channels   int
	SampleRate int
	BitRate    int64
	Language   string // Empty when the stream carries no language tag.
}

// Result is the fully parsed output of a single ffprobe JSON call.
// Video is the first non-attached-pic video stream and Audio the first
// audio stream; either is nil when the container has none.
type Result struct {
	Format FormatInfo
	Video  *VideoStream
	Audio  *AudioStream
}

// FrameCount returns the total number of video frames: nb_frames when the
// container reports it, otherwise estimated from duration and average frame
// rate. Returns 0 when neither is available.
func (r *Result) FrameCount() int64 {
	if r.Video == nil {
		return 0
	}
	if r.Video.NbFrames > 0 {
		return r.Video.NbFrames
	}
	rate := r.Video.FrameRate()
	if rate <= 0 || r.Format.Duration <= 0 {
		return 0
	}
	return int64(r.Format.Duration * rate)
}
