package main

import (
	"testing"

	"github.com/alecthomas/kong"
)

func TestCLIStructure(t *testing.T) {
	// Compile-time check that all expected commands exist
	var cli CLI
	_ = cli.Loop
	_ = cli.Normalize
	_ = cli.Check
}

func newTestParser(t *testing.T, cli *CLI) *kong.Kong {
	t.Helper()
	parser, err := kong.New(cli,
		kong.Name("webvid"),
		kong.Vars{"version": "test"},
	)
	if err != nil {
		t.Fatalf("Failed to build parser: %v", err)
	}
	return parser
}

func TestParseLoopDefaults(t *testing.T) {
	var cli CLI
	parser := newTestParser(t, &cli)

	ctx, err := parser.Parse([]string{"loop"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if ctx.Command() != "loop" {
		t.Errorf("Expected loop command, got %q", ctx.Command())
	}

	if cli.Loop.MinDuration != 3.0 {
		t.Errorf("Expected default min duration 3.0, got %v", cli.Loop.MinDuration)
	}
	expected := []string{"cropped_video.mp4", "inpainted_video.mp4"}
	if len(cli.Loop.Names) != len(expected) {
		t.Fatalf("Expected default names %v, got %v", expected, cli.Loop.Names)
	}
	for i, name := range expected {
		if cli.Loop.Names[i] != name {
			t.Errorf("Expected name %q at %d, got %q", name, i, cli.Loop.Names[i])
		}
	}
	if cli.Loop.CRF != 18 {
		t.Errorf("Expected default CRF 18, got %d", cli.Loop.CRF)
	}
	if cli.Loop.KnownPrefix != "mnt" {
		t.Errorf("Expected default known prefix mnt, got %q", cli.Loop.KnownPrefix)
	}
}

func TestParseLoopFlags(t *testing.T) {
	var cli CLI
	parser := newTestParser(t, &cli)

	_, err := parser.Parse([]string{
		"loop", "/data/videos",
		"--min-duration", "5",
		"--names", "final_video.mp4",
		"--crf", "23",
		"--strict",
	})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cli.Loop.Root != "/data/videos" {
		t.Errorf("Expected root /data/videos, got %q", cli.Loop.Root)
	}
	if cli.Loop.MinDuration != 5.0 {
		t.Errorf("Expected min duration 5.0, got %v", cli.Loop.MinDuration)
	}
	if len(cli.Loop.Names) != 1 || cli.Loop.Names[0] != "final_video.mp4" {
		t.Errorf("Expected single custom name, got %v", cli.Loop.Names)
	}
	if cli.Loop.CRF != 23 {
		t.Errorf("Expected CRF 23, got %d", cli.Loop.CRF)
	}
	if !cli.Loop.Strict {
		t.Error("Expected strict mode enabled")
	}
}

func TestParseNormalize(t *testing.T) {
	var cli CLI
	parser := newTestParser(t, &cli)

	ctx, err := parser.Parse([]string{"normalize", "/data/videos", "--visual-check"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if ctx.Command() != "normalize <root>" {
		t.Errorf("Unexpected command %q", ctx.Command())
	}

	if cli.Normalize.Root != "/data/videos" {
		t.Errorf("Expected root /data/videos, got %q", cli.Normalize.Root)
	}
	if !cli.Normalize.VisualCheck {
		t.Error("Expected visual check enabled")
	}
}

func TestParseCheck(t *testing.T) {
	var cli CLI
	parser := newTestParser(t, &cli)

	_, err := parser.Parse([]string{"check", "--no-tui", "--min-duration", "3"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if !cli.Check.NoTUI {
		t.Error("Expected TUI disabled")
	}
	if cli.Check.MinDuration != 3.0 {
		t.Errorf("Expected min duration 3.0, got %v", cli.Check.MinDuration)
	}
}

func TestParseUnknownCommand(t *testing.T) {
	var cli CLI
	parser := newTestParser(t, &cli)

	if _, err := parser.Parse([]string{"bogus"}); err == nil {
		t.Error("Expected error for unknown command")
	}
}
