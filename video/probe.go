package video

import (
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"strconv"
	"strings"
)

// probeOutput mirrors the subset of ffprobe's JSON output we consume.
type probeOutput struct {
	Format struct {
		FormatName string `json:"format_name"`
		Duration   string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecType string `json:"codec_type"`
		CodecName string `json:"codec_name"`
		PixFmt    string `json:"pix_fmt"`
	} `json:"streams"`
}

// Probe asks ffprobe for a file's container format, duration and per-stream
// codecs in one call. A file ffprobe cannot read yields a *ProbeError.
func Probe(ctx context.Context, path string) (MediaRecord, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		"--", path)
	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return MediaRecord{}, &TimeoutError{Path: path, Stage: "probe"}
		}
		return MediaRecord{}, &ProbeError{Path: path, Output: stderrLine(err), Err: err}
	}
	return parseProbeOutput(path, output)
}

// parseProbeOutput turns ffprobe JSON into a MediaRecord. Parsing happens
// once at this boundary; missing fields get their documented defaults so
// downstream comparisons stay well-defined.
func parseProbeOutput(path string, output []byte) (MediaRecord, error) {
	var parsed probeOutput
	if err := json.Unmarshal(output, &parsed); err != nil {
		return MediaRecord{}, &ProbeError{Path: path, Err: err}
	}

	if parsed.Format.FormatName == "" {
		return MediaRecord{}, &ProbeError{Path: path, Err: errors.New("no container format in probe output")}
	}

	rec := MediaRecord{
		Path:            path,
		ContainerFormat: parsed.Format.FormatName,
		VideoCodec:      UnknownCodec,
		PixelFormat:     UnknownCodec,
	}

	// An unreadable duration stays 0 so the duration policy can apply its
	// unknown-duration fallback instead of failing the file.
	if d, err := strconv.ParseFloat(strings.TrimSpace(parsed.Format.Duration), 64); err == nil {
		rec.DurationSeconds = d
	}

	seenVideo := false
	for _, s := range parsed.Streams {
		switch s.CodecType {
		case "video":
			// First video stream wins; attached cover art and the like
			// come later in the stream list.
			if seenVideo {
				continue
			}
			seenVideo = true
			if s.CodecName != "" {
				rec.VideoCodec = s.CodecName
			}
			if s.PixFmt != "" {
				rec.PixelFormat = s.PixFmt
			}
		case "audio":
			if rec.AudioCodec != "" {
				continue
			}
			if s.CodecName != "" {
				rec.AudioCodec = s.CodecName
			} else {
				rec.AudioCodec = UnknownCodec
			}
		}
	}

	return rec, nil
}

// stderrLine pulls the first stderr line out of a failed exec call.
func stderrLine(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
		line, _, _ := strings.Cut(strings.TrimSpace(string(exitErr.Stderr)), "\n")
		return strings.TrimSpace(line)
	}
	return ""
}
