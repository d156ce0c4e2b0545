package video

import (
	"context"
	"fmt"
	"hash/crc32"
	"image"
	_ "image/jpeg"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/corona10/goimagehash"
)

// VisualDistanceThreshold is the maximum perception-hash hamming distance
// tolerated between the first frame before and after conversion.
const VisualDistanceThreshold = 10

// Checksum calculates the CRC32 checksum of a file's content.
func Checksum(path string) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	h := crc32.NewIEEE()
	if _, err := io.Copy(h, f); err != nil {
		return 0, err
	}
	return h.Sum32(), nil
}

// FrameHash extracts the first frame of a video and returns its perception
// hash. The first frame is the only one guaranteed to survive both
// loop-extension and transcoding unchanged, so it anchors the visual
// spot-check.
func FrameHash(ctx context.Context, videoFile string) (*goimagehash.ImageHash, error) {
	tempFrame := filepath.Join(os.TempDir(), fmt.Sprintf("webvid_frame_%d.jpg", os.Getpid()))
	defer func() { _ = os.Remove(tempFrame) }()

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-v", "error",
		"-i", videoFile,
		"-vframes", "1",
		"-f", "image2",
		"-y", tempFrame)
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to extract frame: %w", err)
	}

	f, err := os.Open(tempFrame)
	if err != nil {
		return nil, fmt.Errorf("failed to open extracted frame: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode frame: %w", err)
	}

	hash, err := goimagehash.PerceptionHash(img)
	if err != nil {
		return nil, fmt.Errorf("failed to hash frame: %w", err)
	}
	return hash, nil
}
