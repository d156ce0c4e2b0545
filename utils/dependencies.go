package utils

import (
	"fmt"
	"os/exec"
	"runtime"
)

// requiredBinaries are the external tools every workflow shells out to.
var requiredBinaries = []string{"ffprobe", "ffmpeg"}

// ValidateFFmpegDependencies checks that ffmpeg and ffprobe are available
// in PATH. A missing binary is a fatal startup condition, not a per-file
// error.
func ValidateFFmpegDependencies() error {
	for _, bin := range requiredBinaries {
		if _, err := exec.LookPath(bin); err != nil {
			return fmt.Errorf("%s not found in PATH. %s", bin, getInstallationInstructions())
		}
	}
	return nil
}

// getInstallationInstructions returns platform-specific installation instructions
func getInstallationInstructions() string {
	switch runtime.GOOS {
	case "darwin":
		return "Install with: brew install ffmpeg"
	case "linux":
		return "Install with: apt-get install ffmpeg (Ubuntu/Debian) or yum install ffmpeg (CentOS/RHEL)"
	case "windows":
		return "Download from https://ffmpeg.org/download.html and add to PATH"
	default:
		return "Download from https://ffmpeg.org/download.html"
	}
}
