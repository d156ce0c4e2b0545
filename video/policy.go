package video

import (
	"fmt"
	"strings"
)

// DefaultMinDuration is the minimum playable length for clips that loop on
// the page. Shorter clips get loop-extended to at least this.
const DefaultMinDuration = 3.0

// Policy is the web-playback compliance policy. MinDuration of 0 disables
// the duration check; the loop-extension workflow sets it, the plain
// normalization workflow does not.
type Policy struct {
	Containers  []string // substring matches against the container's format aliases
	VideoCodec  string
	PixelFormat string
	AudioCodecs []string // allowed codecs when an audio stream exists
	MinDuration float64  // seconds; 0 disables the check
}

// DefaultPolicy returns the web-safe baseline: mp4 or mov container, h264
// video in yuv420p, aac (or no) audio. Duration enforcement is off.
func DefaultPolicy() Policy {
	return Policy{
		Containers:  []string{"mp4", "mov"},
		VideoCodec:  "h264",
		PixelFormat: "yuv420p",
		AudioCodecs: []string{"aac"},
	}
}

// ComplianceVerdict is the outcome of checking one MediaRecord against a
// Policy. Derived purely from the record, no hidden state.
type ComplianceVerdict struct {
	Compliant       bool
	NeedsLoopExtend bool
	NeedsTranscode  bool
	Reasons         []string
}

// Reason joins the individual failure reasons for display.
func (v ComplianceVerdict) Reason() string { return strings.Join(v.Reasons, "; ") }

// Check classifies a probed file against the policy. Pure function, no I/O.
func (p Policy) Check(rec MediaRecord) ComplianceVerdict {
	var v ComplianceVerdict

	if !p.containerAllowed(rec.ContainerFormat) {
		v.NeedsTranscode = true
		v.Reasons = append(v.Reasons, fmt.Sprintf("container %q is not %s", rec.ContainerFormat, strings.Join(p.Containers, "/")))
	}
	if !strings.EqualFold(rec.VideoCodec, p.VideoCodec) {
		v.NeedsTranscode = true
		v.Reasons = append(v.Reasons, fmt.Sprintf("video codec %q is not %s", rec.VideoCodec, p.VideoCodec))
	}
	if !strings.EqualFold(rec.PixelFormat, p.PixelFormat) {
		v.NeedsTranscode = true
		v.Reasons = append(v.Reasons, fmt.Sprintf("pixel format %q is not %s", rec.PixelFormat, p.PixelFormat))
	}
	if rec.HasAudio() && !p.audioAllowed(rec.AudioCodec) {
		v.NeedsTranscode = true
		v.Reasons = append(v.Reasons, fmt.Sprintf("audio codec %q is not %s", rec.AudioCodec, strings.Join(p.AudioCodecs, "/")))
	}
	if p.MinDuration > 0 && rec.DurationSeconds < p.MinDuration {
		// Independent of the transcode checks: a short clip with a
		// perfectly compliant codec still needs the loop pass.
		v.NeedsLoopExtend = true
		if rec.DurationSeconds <= 0 {
			v.Reasons = append(v.Reasons, "duration unknown")
		} else {
			v.Reasons = append(v.Reasons, fmt.Sprintf("duration %.1fs is under %.1fs", rec.DurationSeconds, p.MinDuration))
		}
	}

	v.Compliant = len(v.Reasons) == 0
	return v
}

// containerAllowed matches case-insensitively and by substring: one file
// reports multiple comma-joined format aliases ("mov,mp4,m4a,3gp,3g2,mj2").
func (p Policy) containerAllowed(format string) bool {
	lower := strings.ToLower(format)
	for _, c := range p.Containers {
		if strings.Contains(lower, strings.ToLower(c)) {
			return true
		}
	}
	return false
}

func (p Policy) audioAllowed(codec string) bool {
	for _, c := range p.AudioCodecs {
		if strings.EqualFold(codec, c) {
			return true
		}
	}
	return false
}
