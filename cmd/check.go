package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/schollz/progressbar/v3"

	"github.com/lepinkainen/webvid/types"
	"github.com/lepinkainen/webvid/ui"
	"github.com/lepinkainen/webvid/video"
)

// CheckCmd is the read-only compliance report: probe every video file under
// root, classify it, and either list the results or open an interactive
// review screen where non-compliant files can be re-encoded on demand.
type CheckCmd struct {
	Root           string  `arg:"" optional:"" default:"videos" help:"Root directory to scan" type:"path"`
	NoTUI          bool    `name:"no-tui" help:"Disable the interactive review screen and just list results"`
	FollowSymlinks bool    `help:"Descend into symlinked directories"`
	MinDuration    float64 `help:"Also flag clips shorter than this many seconds (0 disables)" default:"0" env:"WEBVID_MIN_DURATION"`
	EncodeFlags
}

func (cmd *CheckCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}
	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("webvid check %s", version)))

	files, err := video.Discover(cmd.Root, video.MatchExtensions, cmd.FollowSymlinks)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", cmd.Root, err)
	}
	if len(files) == 0 {
		fmt.Println("🎯 No video files found.")
		return nil
	}

	policy := video.DefaultPolicy()
	policy.MinDuration = cmd.MinDuration

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription("probing"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	ctx := context.Background()
	var items []ui.ReviewItem
	var tally video.Tally

	for _, path := range files {
		rec, err := video.Probe(ctx, path)
		_ = bar.Add(1)
		if err != nil {
			tally.Add(video.FileResult{Path: path, Outcome: video.OutcomeSkipped})
			if cmd.NoTUI {
				fmt.Printf("%s %s: %v\n", ui.Tag("SKIP"), path, err)
			}
			continue
		}

		verdict := policy.Check(rec)
		if verdict.Compliant {
			tally.Add(video.FileResult{Path: path, Outcome: video.OutcomeOK})
			if cmd.NoTUI {
				fmt.Printf("%s %s\n", ui.Tag("OK"), path)
			}
			continue
		}

		tally.Add(video.FileResult{Path: path, Outcome: video.OutcomeFailed})
		if cmd.NoTUI {
			tag := "NORM"
			if verdict.NeedsLoopExtend {
				tag = "LOOP"
			}
			fmt.Printf("%s %s (%s)\n", ui.Tag(tag), path, verdict.Reason())
			continue
		}
		items = append(items, ui.ReviewItem{Path: path, Reasons: verdict.Reasons})
	}
	_ = bar.Finish()

	if cmd.NoTUI {
		fmt.Println(ui.InfoStyle.Render(tally.Summary()))
		return strictErr(cmd.Strict, tally)
	}

	// Interactive review: selected files are re-encoded with the same
	// pipeline the loop/normalize workflows use.
	fixer := func(path string) error {
		backend, err := video.SelectBackend()
		if err != nil {
			return err
		}
		rec, err := video.Probe(context.Background(), path)
		if err != nil {
			return err
		}
		verdict := policy.Check(rec)
		if verdict.Compliant {
			return nil
		}
		plan := video.BuildPlan(rec, verdict, backend, policy.MinDuration)
		return video.ConvertAndVerify(context.Background(), plan, cmd.options(backend), policy)
	}

	model := ui.NewReviewModel(items, fixer)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
