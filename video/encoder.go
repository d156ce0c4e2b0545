package video

import (
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// H.264 encoder backends in preference order. Software first: CRF output is
// predictable across machines, hardware encoders are the fallback when
// ffmpeg ships without libx264.
const (
	EncoderX264         = "libx264"
	EncoderVideoToolbox = "h264_videotoolbox"
	EncoderNVENC        = "h264_nvenc"
	EncoderVAAPI        = "h264_vaapi"
)

// Backend describes the H.264 encoder selected for this process.
type Backend struct {
	Codec    string
	Hardware bool // hardware encoders take a bitrate target instead of CRF
}

var (
	backendOnce sync.Once
	backend     Backend
	backendErr  error
)

// SelectBackend picks the process-wide H.264 encoder by querying ffmpeg's
// compiled-in encoder list. The choice is made once per process, not per
// file.
func SelectBackend() (Backend, error) {
	backendOnce.Do(func() {
		out, err := exec.Command("ffmpeg", "-hide_banner", "-encoders").Output()
		if err != nil {
			backendErr = fmt.Errorf("failed to list ffmpeg encoders: %w", err)
			return
		}
		backend, backendErr = chooseBackend(string(out))
	})
	return backend, backendErr
}

// chooseBackend scans `ffmpeg -encoders` output for a usable H.264 encoder.
// Each listing line looks like " V....D libx264  libx264 H.264 ...", with
// the encoder name in the second field.
func chooseBackend(encoderList string) (Backend, error) {
	available := make(map[string]bool)
	for _, line := range strings.Split(encoderList, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 {
			available[fields[1]] = true
		}
	}

	if available[EncoderX264] {
		return Backend{Codec: EncoderX264}, nil
	}
	for _, name := range []string{EncoderVideoToolbox, EncoderNVENC, EncoderVAAPI} {
		if available[name] {
			return Backend{Codec: name, Hardware: true}, nil
		}
	}
	return Backend{}, fmt.Errorf("no H.264 encoder available in this ffmpeg build (need %s or a hardware encoder)", EncoderX264)
}
