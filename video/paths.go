package video

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultKnownPrefix is the top-level directory name whose leading
// separator gets re-inserted when an upstream path list dropped it.
const DefaultKnownPrefix = "mnt"

// CleanPath canonicalizes a raw path string from an upstream file list.
// Trailing CR/LF/whitespace is stripped; a path that lost its leading
// separator but starts with knownPrefix gets it back; any other relative
// path is resolved against base.
func CleanPath(raw, knownPrefix, base string) string {
	s := strings.TrimRight(raw, " \t\r\n")
	if s == "" {
		return ""
	}
	if filepath.IsAbs(s) {
		return filepath.Clean(s)
	}
	if knownPrefix != "" {
		first, _, _ := strings.Cut(filepath.ToSlash(s), "/")
		if first == knownPrefix {
			return filepath.Clean(string(filepath.Separator) + s)
		}
	}
	return filepath.Clean(filepath.Join(base, s))
}

// Resolve cleans raw and verifies the result exists. The bool reports
// existence; a miss is reported by the caller and the batch continues.
func Resolve(raw, knownPrefix, base string) (string, bool) {
	p := CleanPath(raw, knownPrefix, base)
	if p == "" {
		return "", false
	}
	if _, err := os.Stat(p); err != nil {
		return p, false
	}
	return p, true
}
