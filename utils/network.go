package utils

import (
	"path/filepath"
	"strings"
)

// IsNetworkDrive detects if a path is on a network-mounted drive. Batch
// conversion over a network mount is slow enough to warn about.
func IsNetworkDrive(path string) bool {
	// Windows UNC paths, before any absolute-path conversion
	if strings.HasPrefix(path, "//") || strings.HasPrefix(path, "\\\\") {
		return true
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	// Common network mount prefixes per platform
	networkPrefixes := []string{
		"/mnt/",     // Linux NFS/SMB mounts
		"/media/",   // Linux removable/network media
		"/Volumes/", // macOS network volumes
	}

	for _, prefix := range networkPrefixes {
		if strings.HasPrefix(absPath, prefix) {
			return true
		}
	}

	return false
}
