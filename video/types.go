package video

// UnknownCodec is the sentinel used when ffprobe reports no codec name or
// pixel format for a stream. Downstream comparisons never see an empty
// string for a stream that exists.
const UnknownCodec = "unknown"

// MediaRecord holds the probed metadata for a single file. It is produced
// fresh by Probe on every call and never persisted.
type MediaRecord struct {
	Path            string
	ContainerFormat string  // comma-joined format aliases, e.g. "mov,mp4,m4a,3gp,3g2,mj2"
	DurationSeconds float64 // 0 when the container reports no usable duration
	VideoCodec      string
	PixelFormat     string
	AudioCodec      string // empty when the file has no audio stream
}

// HasAudio reports whether the probe found an audio stream.
func (r MediaRecord) HasAudio() bool { return r.AudioCodec != "" }

// ConversionPlan fixes every encoder decision for one file before ffmpeg
// runs. It is computed once and then only read.
type ConversionPlan struct {
	InputPath   string
	TempPath    string // dot-prefixed sibling in the same directory
	VideoCodec  string // encoder name, e.g. "libx264"
	PixelFormat string
	ExtraLoops  int // -stream_loop value; 0 means no looping
	HasAudio    bool
}
