package main

import (
	"github.com/alecthomas/kong"

	"github.com/lepinkainen/webvid/cmd"
	"github.com/lepinkainen/webvid/types"
	"github.com/lepinkainen/webvid/utils"
)

var Version = "dev"

type CLI struct {
	Loop      cmd.LoopCmd      `cmd:"" help:"Loop-extend and normalize the pipeline's clip files for web playback"`
	Normalize cmd.NormalizeCmd `cmd:"" help:"Transcode non-web-safe videos under a directory to h264/yuv420p mp4"`
	Check     cmd.CheckCmd     `cmd:"" help:"Report compliance without changing anything (interactive fix optional)"`

	Version kong.VersionFlag `help:"Print version and exit"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("webvid"),
		kong.Description("Validate and normalize video files for progressive-download web playback"),
		kong.Vars{"version": Version},
	)

	// Every workflow shells out to ffmpeg/ffprobe; fail fast when missing.
	ctx.FatalIfErrorf(utils.ValidateFFmpegDependencies())

	err := ctx.Run(&types.AppContext{Version: Version})
	ctx.FatalIfErrorf(err)
}
