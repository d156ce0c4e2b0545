package video

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// videoExtensions are the extensions the normalization workflow accepts as
// candidates (lowercase, leading dot).
var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".m4v":  true,
	".webm": true,
	".mkv":  true,
	".avi":  true,
	".wmv":  true,
	".mpg":  true,
	".mpeg": true,
}

// DefaultLoopTargets are the well-known pipeline output filenames the
// loop-extension workflow looks for.
var DefaultLoopTargets = []string{"cropped_video.mp4", "inpainted_video.mp4"}

// Matcher decides whether a discovered file is a candidate.
type Matcher func(path string) bool

// MatchExtensions matches any file with a video-like extension, regardless
// of case.
func MatchExtensions(path string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}

// MatchNames builds a matcher for exact base names, case-insensitive.
func MatchNames(names []string) Matcher {
	return func(path string) bool {
		base := filepath.Base(path)
		for _, n := range names {
			if strings.EqualFold(base, n) {
				return true
			}
		}
		return false
	}
}

// Discover walks root and returns candidate files sorted lexicographically
// for deterministic processing order. Symlinks are skipped unless
// followSymlinks is set, in which case symlinked directories are walked
// too.
func Discover(root string, match Matcher, followSymlinks bool) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type()&fs.ModeSymlink != 0 {
			if !followSymlinks {
				return nil
			}
			info, statErr := os.Stat(path)
			if statErr != nil {
				return nil // dangling link
			}
			if info.IsDir() {
				sub, subErr := Discover(path, match, followSymlinks)
				if subErr != nil {
					return subErr
				}
				files = append(files, sub...)
				return nil
			}
		}
		if d.IsDir() {
			return nil
		}
		if match(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ReadList reads candidate paths from a list file, one per line. Lines keep
// whatever CR/LF and whitespace artifacts the list generator left behind;
// CleanPath deals with those later. Blank lines and #-comments are dropped.
func ReadList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}
