package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/lepinkainen/webvid/ui"
	"github.com/lepinkainen/webvid/utils"
	"github.com/lepinkainen/webvid/video"
)

// EncodeFlags are the conversion knobs shared by the loop and normalize
// workflows. Each has an environment binding so batch jobs can tune them
// without editing the invocation.
type EncodeFlags struct {
	CRF          int           `help:"x264 quality target, lower is better (software backend only)" default:"18" env:"WEBVID_CRF"`
	Preset       string        `help:"x264 encoding preset" default:"veryfast" env:"WEBVID_PRESET"`
	VideoBitrate string        `help:"Bitrate target for hardware encoders" default:"5M" env:"WEBVID_VIDEO_BITRATE"`
	AudioBitrate string        `help:"AAC audio bitrate" default:"128k" env:"WEBVID_AUDIO_BITRATE"`
	Timeout      time.Duration `help:"Per-file ffmpeg time limit, 0 disables" default:"10m" env:"WEBVID_TIMEOUT"`
	VisualCheck  bool          `help:"Compare first-frame perception hashes before and after conversion"`
	KnownPrefix  string        `help:"Top-level directory name used to repair paths missing their leading separator" default:"mnt"`
	Strict       bool          `help:"Exit non-zero when any file fails"`
}

// options resolves the flags into encoder options for the selected backend.
func (f EncodeFlags) options(backend video.Backend) video.Options {
	opts := video.DefaultOptions()
	opts.Backend = backend
	opts.CRF = f.CRF
	opts.Preset = f.Preset
	opts.VideoBitrate = f.VideoBitrate
	opts.AudioBitrate = f.AudioBitrate
	opts.Timeout = f.Timeout
	opts.VisualCheck = f.VisualCheck
	return opts
}

// collectCandidates returns the raw candidate paths: either the contents of
// an upstream list file, or a deterministic walk of root.
func collectCandidates(root, list string, match video.Matcher, followSymlinks bool) ([]string, error) {
	if list != "" {
		return video.ReadList(list)
	}
	return video.Discover(root, match, followSymlinks)
}

// runBatch drives resolve → probe → classify → convert for every raw path,
// printing a tagged line per file and the summary at the end. Per-file
// failures never abort the batch.
func runBatch(ctx context.Context, rawPaths []string, policy video.Policy, opts video.Options, knownPrefix string) video.Tally {
	base, _ := os.Getwd()

	bar := progressbar.NewOptions(len(rawPaths),
		progressbar.OptionSetDescription("processing"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	var tally video.Tally
	for _, raw := range rawPaths {
		result := processFile(ctx, raw, policy, opts, knownPrefix, base)
		printResult(result)
		tally.Add(result)
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	fmt.Println(ui.InfoStyle.Render(tally.Summary()))
	return tally
}

// processFile handles one file end to end and returns its result. The
// LOOP/NORM announcement prints before the conversion starts, so long
// encodes are visible as they happen.
func processFile(ctx context.Context, raw string, policy video.Policy, opts video.Options, knownPrefix, base string) video.FileResult {
	path, ok := video.Resolve(raw, knownPrefix, base)
	if !ok {
		if path == "" {
			path = strings.TrimSpace(raw)
		}
		return video.FileResult{Path: path, Outcome: video.OutcomeMissing, Detail: "file not found"}
	}

	rec, err := video.Probe(ctx, path)
	if err != nil {
		return video.FileResult{Path: path, Outcome: video.OutcomeSkipped, Detail: "unreadable by ffprobe", Err: err}
	}

	verdict := policy.Check(rec)
	if verdict.Compliant {
		return video.FileResult{Path: path, Outcome: video.OutcomeOK}
	}

	plan := video.BuildPlan(rec, verdict, opts.Backend, policy.MinDuration)
	action := "NORM"
	if plan.ExtraLoops > 0 {
		action = "LOOP"
	}
	fmt.Printf("%s %s (%s)\n", ui.Tag(action), path, verdict.Reason())

	if err := video.ConvertAndVerify(ctx, plan, opts, policy); err != nil {
		return video.FileResult{Path: path, Outcome: video.OutcomeFailed, Action: action, Detail: verdict.Reason(), Err: err}
	}
	return video.FileResult{Path: path, Outcome: video.OutcomeFixed, Action: action, Detail: verdict.Reason()}
}

// printResult emits the final tagged line for one file.
func printResult(r video.FileResult) {
	switch r.Outcome {
	case video.OutcomeOK:
		fmt.Printf("%s %s\n", ui.Tag("OK"), r.Path)
	case video.OutcomeFixed:
		fmt.Printf("%s %s\n", ui.Tag("FIX"), r.Path)
	case video.OutcomeSkipped:
		fmt.Printf("%s %s: %v\n", ui.Tag("SKIP"), r.Path, r.Err)
	case video.OutcomeMissing:
		fmt.Printf("%s %s\n", ui.Tag("MISS"), r.Path)
	case video.OutcomeFailed:
		fmt.Printf("%s %s: %v\n", ui.Tag("FAIL"), r.Path, r.Err)
	}
}

// warnIfNetworkRoot prints a one-line heads-up when the scan root sits on a
// network mount.
func warnIfNetworkRoot(root string) {
	if utils.IsNetworkDrive(root) {
		fmt.Println(ui.WarnStyle.Render("⚠️  Network drive detected, conversions may be slow"))
	}
}

// strictErr turns failed files into a non-zero exit when --strict is set.
// Without it the exit status only reflects whether the run completed.
func strictErr(strict bool, tally video.Tally) error {
	if strict && tally.Failed > 0 {
		return fmt.Errorf("%d file(s) failed", tally.Failed)
	}
	return nil
}
