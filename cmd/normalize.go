package cmd

import (
	"context"
	"fmt"

	"github.com/lepinkainen/webvid/types"
	"github.com/lepinkainen/webvid/ui"
	"github.com/lepinkainen/webvid/video"
)

// NormalizeCmd is the codec-normalization workflow: any file with a
// video-like extension under root gets transcoded to h264/yuv420p in an
// mp4 container if it is not already. Duration is deliberately not
// checked here; only the loop workflow enforces it.
type NormalizeCmd struct {
	Root           string `arg:"" optional:"" default:"videos" help:"Root directory to scan" type:"path"`
	List           string `help:"Read candidate paths from a file instead of walking root" type:"existingfile"`
	FollowSymlinks bool   `help:"Descend into symlinked directories"`
	EncodeFlags
}

func (cmd *NormalizeCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}
	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("webvid normalize %s", version)))

	backend, err := video.SelectBackend()
	if err != nil {
		return err
	}

	candidates, err := collectCandidates(cmd.Root, cmd.List, video.MatchExtensions, cmd.FollowSymlinks)
	if err != nil {
		return fmt.Errorf("failed to collect candidates: %w", err)
	}
	if len(candidates) == 0 {
		fmt.Println("🎯 No video files found.")
		return nil
	}

	warnIfNetworkRoot(cmd.Root)

	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("🎬 Normalizing %d files (encoder %s):",
		len(candidates), backend.Codec)))

	tally := runBatch(context.Background(), candidates, video.DefaultPolicy(), cmd.options(backend), cmd.KnownPrefix)
	return strictErr(cmd.Strict, tally)
}
