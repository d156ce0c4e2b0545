package cmd

import (
	"context"
	"fmt"

	"github.com/lepinkainen/webvid/types"
	"github.com/lepinkainen/webvid/ui"
	"github.com/lepinkainen/webvid/video"
)

// LoopCmd is the loop-extension workflow: it looks for the pipeline's
// well-known clip filenames and guarantees each one is web-safe AND at
// least MinDuration long. Short clips are loop-extended and transcoded in
// a single ffmpeg pass.
type LoopCmd struct {
	Root           string   `arg:"" optional:"" default:"videos" help:"Root directory to scan" type:"path"`
	Names          []string `help:"Exact filenames to process" default:"cropped_video.mp4,inpainted_video.mp4"`
	MinDuration    float64  `help:"Minimum playable duration in seconds" default:"3.0" env:"WEBVID_MIN_DURATION"`
	List           string   `help:"Read candidate paths from a file instead of walking root" type:"existingfile"`
	FollowSymlinks bool     `help:"Descend into symlinked directories"`
	EncodeFlags
}

func (cmd *LoopCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}
	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("webvid loop %s", version)))

	backend, err := video.SelectBackend()
	if err != nil {
		return err
	}

	candidates, err := collectCandidates(cmd.Root, cmd.List, video.MatchNames(cmd.Names), cmd.FollowSymlinks)
	if err != nil {
		return fmt.Errorf("failed to collect candidates: %w", err)
	}
	if len(candidates) == 0 {
		fmt.Println("🎯 No target files found.")
		return nil
	}

	warnIfNetworkRoot(cmd.Root)

	policy := video.DefaultPolicy()
	policy.MinDuration = cmd.MinDuration

	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("🎬 Checking %d clips (min duration %.1fs, encoder %s):",
		len(candidates), cmd.MinDuration, backend.Codec)))

	tally := runBatch(context.Background(), candidates, policy, cmd.options(backend), cmd.KnownPrefix)
	return strictErr(cmd.Strict, tally)
}
