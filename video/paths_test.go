package video

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCleanPath(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "clean absolute path",
			raw:      "/data/videos/clip.mp4",
			expected: "/data/videos/clip.mp4",
		},
		{
			name:     "trailing newline",
			raw:      "/data/videos/clip.mp4\n",
			expected: "/data/videos/clip.mp4",
		},
		{
			name:     "trailing CRLF",
			raw:      "/data/videos/clip.mp4\r\n",
			expected: "/data/videos/clip.mp4",
		},
		{
			name:     "trailing whitespace",
			raw:      "/data/videos/clip.mp4   \t",
			expected: "/data/videos/clip.mp4",
		},
		{
			name:     "missing leading separator with known prefix",
			raw:      "mnt/data/videos/clip.mp4",
			expected: "/mnt/data/videos/clip.mp4",
		},
		{
			name:     "missing separator and trailing CRLF",
			raw:      "mnt/data/videos/clip.mp4\r\n",
			expected: "/mnt/data/videos/clip.mp4",
		},
		{
			name:     "relative path resolves against base",
			raw:      "clips/clip.mp4",
			expected: "/work/clips/clip.mp4",
		},
		{
			name:     "empty after trim",
			raw:      "\r\n",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanPath(tt.raw, DefaultKnownPrefix, "/work")
			if got != tt.expected {
				t.Errorf("CleanPath(%q) = %q, expected %q", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestCleanPathDirtyEqualsClean(t *testing.T) {
	// The malformed variants of one path must land on the same canonical
	// result as the clean spelling.
	clean := CleanPath("/mnt/data/videos/clip.mp4", DefaultKnownPrefix, "/work")
	dirty := CleanPath("mnt/data/videos/clip.mp4\r\n", DefaultKnownPrefix, "/work")

	if clean != dirty {
		t.Errorf("Expected dirty path to resolve to %q, got %q", clean, dirty)
	}
}

func TestCleanPathWithoutKnownPrefix(t *testing.T) {
	// With no prefix configured the repair is off and the path resolves
	// relative to base.
	got := CleanPath("mnt/data/clip.mp4", "", "/work")
	expected := "/work/mnt/data/clip.mp4"
	if got != expected {
		t.Errorf("CleanPath() = %q, expected %q", got, expected)
	}
}

func TestResolveExistingFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "clip.mp4")
	if err := os.WriteFile(file, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	path, ok := Resolve(file+"\r\n", DefaultKnownPrefix, dir)
	if !ok {
		t.Fatalf("Expected %q to resolve, got miss", file)
	}
	if path != file {
		t.Errorf("Resolve() = %q, expected %q", path, file)
	}
}

func TestResolveMissingFile(t *testing.T) {
	path, ok := Resolve("/nonexistent/clip.mp4", DefaultKnownPrefix, "/work")
	if ok {
		t.Error("Expected miss for nonexistent file")
	}
	if path != "/nonexistent/clip.mp4" {
		t.Errorf("Expected cleaned path to be reported for the miss, got %q", path)
	}
}

func TestResolveEmptyInput(t *testing.T) {
	if _, ok := Resolve("  \r\n", DefaultKnownPrefix, "/work"); ok {
		t.Error("Expected miss for empty input")
	}
}
