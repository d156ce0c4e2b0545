package video

import (
	"strings"
	"testing"
)

func compliantRecord() MediaRecord {
	return MediaRecord{
		Path:            "/videos/clip.mp4",
		ContainerFormat: "mov,mp4,m4a,3gp,3g2,mj2",
		DurationSeconds: 8.0,
		VideoCodec:      "h264",
		PixelFormat:     "yuv420p",
		AudioCodec:      "aac",
	}
}

func TestCheckCompliantRecord(t *testing.T) {
	verdict := DefaultPolicy().Check(compliantRecord())

	if !verdict.Compliant {
		t.Errorf("Expected compliant verdict, got reasons: %v", verdict.Reasons)
	}
	if verdict.NeedsTranscode {
		t.Error("Expected NeedsTranscode to be false for compliant record")
	}
	if verdict.NeedsLoopExtend {
		t.Error("Expected NeedsLoopExtend to be false when duration check is off")
	}
}

func TestCheckNoAudioIsCompliant(t *testing.T) {
	rec := compliantRecord()
	rec.AudioCodec = ""

	verdict := DefaultPolicy().Check(rec)
	if !verdict.Compliant {
		t.Errorf("Expected silent clip to be compliant, got reasons: %v", verdict.Reasons)
	}
}

func TestCheckNonCompliantRecords(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MediaRecord)
		reason string
	}{
		{
			name:   "wrong video codec",
			mutate: func(r *MediaRecord) { r.VideoCodec = "vp9" },
			reason: "video codec",
		},
		{
			name:   "unknown video codec",
			mutate: func(r *MediaRecord) { r.VideoCodec = UnknownCodec },
			reason: "video codec",
		},
		{
			name:   "wrong pixel format",
			mutate: func(r *MediaRecord) { r.PixelFormat = "yuv444p" },
			reason: "pixel format",
		},
		{
			name:   "wrong container",
			mutate: func(r *MediaRecord) { r.ContainerFormat = "matroska,webm" },
			reason: "container",
		},
		{
			name:   "wrong audio codec",
			mutate: func(r *MediaRecord) { r.AudioCodec = "mp3" },
			reason: "audio codec",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := compliantRecord()
			tt.mutate(&rec)

			verdict := DefaultPolicy().Check(rec)
			if verdict.Compliant {
				t.Fatal("Expected non-compliant verdict")
			}
			if !verdict.NeedsTranscode {
				t.Error("Expected NeedsTranscode to be true")
			}
			if !strings.Contains(verdict.Reason(), tt.reason) {
				t.Errorf("Expected reason to mention %q, got %q", tt.reason, verdict.Reason())
			}
		})
	}
}

func TestCheckContainerSubstringMatch(t *testing.T) {
	// One file reports several comma-joined aliases; any allowed name
	// appearing anywhere in the list counts.
	tests := []struct {
		format  string
		allowed bool
	}{
		{"mov,mp4,m4a,3gp,3g2,mj2", true},
		{"MP4", true},
		{"QuickTime / MOV", true},
		{"matroska,webm", false},
		{"avi", false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			rec := compliantRecord()
			rec.ContainerFormat = tt.format

			verdict := DefaultPolicy().Check(rec)
			if verdict.Compliant != tt.allowed {
				t.Errorf("Container %q: expected compliant=%v, got %v (reasons: %v)",
					tt.format, tt.allowed, verdict.Compliant, verdict.Reasons)
			}
		})
	}
}

func TestCheckShortCompliantClipStillNeedsLoop(t *testing.T) {
	// A short clip with a perfectly compliant codec profile must still be
	// re-encoded by the loop workflow.
	rec := compliantRecord()
	rec.DurationSeconds = 1.5

	policy := DefaultPolicy()
	policy.MinDuration = DefaultMinDuration

	verdict := policy.Check(rec)
	if verdict.Compliant {
		t.Fatal("Expected short clip to be non-compliant under duration policy")
	}
	if !verdict.NeedsLoopExtend {
		t.Error("Expected NeedsLoopExtend to be true")
	}
	if verdict.NeedsTranscode {
		t.Error("Expected NeedsTranscode to be false for compliant codec profile")
	}
}

func TestCheckDurationIgnoredWhenDisabled(t *testing.T) {
	rec := compliantRecord()
	rec.DurationSeconds = 0.5

	verdict := DefaultPolicy().Check(rec)
	if !verdict.Compliant {
		t.Errorf("Expected duration to be ignored with MinDuration=0, got reasons: %v", verdict.Reasons)
	}
}

func TestCheckUnknownDuration(t *testing.T) {
	rec := compliantRecord()
	rec.DurationSeconds = 0

	policy := DefaultPolicy()
	policy.MinDuration = DefaultMinDuration

	verdict := policy.Check(rec)
	if !verdict.NeedsLoopExtend {
		t.Error("Expected unknown duration to trigger loop-extension")
	}
	if !strings.Contains(verdict.Reason(), "duration unknown") {
		t.Errorf("Expected reason to mention unknown duration, got %q", verdict.Reason())
	}
}

func TestCheckLongEnoughClipUntouched(t *testing.T) {
	rec := compliantRecord()
	rec.DurationSeconds = 8.0

	policy := DefaultPolicy()
	policy.MinDuration = DefaultMinDuration

	verdict := policy.Check(rec)
	if !verdict.Compliant {
		t.Errorf("Expected 8s compliant clip to pass, got reasons: %v", verdict.Reasons)
	}
}
