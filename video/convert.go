package video

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/corona10/goimagehash"
)

// Options holds the fixed encoding parameters for a run. Values come from
// flags and environment once at startup, never from the input file.
type Options struct {
	Backend      Backend
	CRF          int           // software backend quality target
	Preset       string        // x264 preset
	VideoBitrate string        // hardware backend target, e.g. "5M"
	AudioBitrate string        // e.g. "128k"
	Timeout      time.Duration // per-file ffmpeg limit; 0 disables
	VisualCheck  bool          // compare first-frame hashes before and after
}

// DefaultOptions mirrors the encode settings the web pipeline has always
// used: veryfast x264 at CRF 18, stereo AAC.
func DefaultOptions() Options {
	return Options{
		CRF:          18,
		Preset:       "veryfast",
		VideoBitrate: "5M",
		AudioBitrate: "128k",
		Timeout:      10 * time.Minute,
	}
}

// fallbackExtraLoops is used when a clip needs loop-extension but its
// duration is unreadable: repeat the content twice more and let the
// post-check catch anything still too short.
const fallbackExtraLoops = 2

// BuildPlan fixes every conversion decision for one file. minDuration is
// the loop-extension target; 0 means the workflow never loops.
func BuildPlan(rec MediaRecord, verdict ComplianceVerdict, backend Backend, minDuration float64) ConversionPlan {
	plan := ConversionPlan{
		InputPath:   rec.Path,
		TempPath:    TempSibling(rec.Path),
		VideoCodec:  backend.Codec,
		PixelFormat: "yuv420p",
		HasAudio:    rec.HasAudio(),
	}
	if verdict.NeedsLoopExtend && minDuration > 0 {
		plan.ExtraLoops = extraLoops(rec.DurationSeconds, minDuration)
	}
	return plan
}

// TempSibling returns the dot-prefixed temporary output path next to the
// original, so the final rename never crosses a filesystem boundary.
func TempSibling(path string) string {
	dir, name := filepath.Split(path)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	return filepath.Join(dir, "."+stem+".tmp"+ext)
}

// extraLoops computes the -stream_loop value needed to reach minDuration.
func extraLoops(duration, minDuration float64) int {
	if duration <= 0 {
		return fallbackExtraLoops
	}
	if duration >= minDuration {
		return 0
	}
	return int(math.Ceil(minDuration/duration)) - 1
}

// Args builds the ffmpeg argument list for a plan. The scale filter rounds
// both dimensions down to even values, which yuv420p subsampling requires;
// it is applied unconditionally so already-even files pass through
// unchanged. The output container is forced to mp4 regardless of the temp
// path's extension, and faststart relocates the index for progressive
// playback.
func (o Options) Args(plan ConversionPlan) []string {
	args := []string{"-y", "-hide_banner", "-loglevel", "error"}
	if plan.ExtraLoops > 0 {
		args = append(args, "-stream_loop", strconv.Itoa(plan.ExtraLoops))
	}
	args = append(args,
		"-i", plan.InputPath,
		"-vf", "scale=trunc(iw/2)*2:trunc(ih/2)*2",
		"-c:v", plan.VideoCodec,
	)
	if o.Backend.Hardware {
		args = append(args, "-b:v", o.VideoBitrate)
	} else {
		args = append(args, "-preset", o.Preset, "-crf", strconv.Itoa(o.CRF))
	}
	args = append(args, "-pix_fmt", plan.PixelFormat, "-movflags", "+faststart")
	if plan.HasAudio {
		args = append(args, "-c:a", "aac", "-b:a", o.AudioBitrate, "-ac", "2", "-ar", "44100")
	} else {
		args = append(args, "-an")
	}
	args = append(args, "-f", "mp4", plan.TempPath)
	return args
}

// Convert runs ffmpeg once for the plan, writing to the temporary sibling
// and renaming it over the original only after a clean exit. On any failure
// the temporary file is removed and the original stays byte-identical.
func Convert(ctx context.Context, plan ConversionPlan, opts Options) error {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "ffmpeg", opts.Args(plan)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		_ = os.Remove(plan.TempPath)
		if ctx.Err() == context.DeadlineExceeded {
			return &TimeoutError{Path: plan.InputPath, Stage: "convert"}
		}
		line, _, _ := strings.Cut(strings.TrimSpace(stderr.String()), "\n")
		return &ConversionError{Path: plan.InputPath, Output: strings.TrimSpace(line), Err: err}
	}

	if err := os.Rename(plan.TempPath, plan.InputPath); err != nil {
		_ = os.Remove(plan.TempPath)
		return &ConversionError{Path: plan.InputPath, Err: fmt.Errorf("failed to replace original: %w", err)}
	}
	return nil
}

// ConvertAndVerify converts per plan, then re-probes the result against the
// policy. A conversion that exits cleanly but still fails compliance is a
// distinct *PostCheckError, never a silent success. With VisualCheck on,
// the first frame's perception hash is also compared before and after.
func ConvertAndVerify(ctx context.Context, plan ConversionPlan, opts Options, policy Policy) error {
	// Grab the reference frame while the original is still intact. Failure
	// to read it just disables the visual check for this file.
	var preHash *goimagehash.ImageHash
	if opts.VisualCheck {
		preHash, _ = FrameHash(ctx, plan.InputPath)
	}

	if err := Convert(ctx, plan, opts); err != nil {
		return err
	}

	rec, err := Probe(ctx, plan.InputPath)
	if err != nil {
		return &PostCheckError{Path: plan.InputPath, Reasons: []string{fmt.Sprintf("converted file is unreadable: %v", err)}}
	}
	if verdict := policy.Check(rec); !verdict.Compliant {
		return &PostCheckError{Path: plan.InputPath, Reasons: verdict.Reasons}
	}

	if preHash != nil {
		postHash, err := FrameHash(ctx, plan.InputPath)
		if err != nil {
			return &PostCheckError{Path: plan.InputPath, Reasons: []string{fmt.Sprintf("frame extraction failed on converted file: %v", err)}}
		}
		distance, err := preHash.Distance(postHash)
		if err == nil && distance > VisualDistanceThreshold {
			return &PostCheckError{Path: plan.InputPath, Reasons: []string{fmt.Sprintf("first frame drifted visually (hash distance %d, limit %d)", distance, VisualDistanceThreshold)}}
		}
	}
	return nil
}
