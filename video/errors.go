package video

import (
	"fmt"
	"strings"
)

// ProbeError reports that ffprobe could not read a file's metadata.
// It is never fatal to a batch run.
type ProbeError struct {
	Path   string
	Output string // first line of ffprobe stderr, if any
	Err    error
}

func (e *ProbeError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("probe failed for %s: %v (%s)", e.Path, e.Err, e.Output)
	}
	return fmt.Sprintf("probe failed for %s: %v", e.Path, e.Err)
}

func (e *ProbeError) Unwrap() error { return e.Err }

// ConversionError reports a failed ffmpeg invocation. By the time the
// caller sees it the temporary output has been removed and the original
// file is untouched.
type ConversionError struct {
	Path   string
	Output string // first line of ffmpeg stderr, if any
	Err    error
}

func (e *ConversionError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("conversion failed for %s: %v (%s)", e.Path, e.Err, e.Output)
	}
	return fmt.Sprintf("conversion failed for %s: %v", e.Path, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// TimeoutError reports an external engine invocation that exceeded the
// per-file time limit. The temporary output has been removed.
type TimeoutError struct {
	Path  string
	Stage string // "probe" or "convert"
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out for %s", e.Stage, e.Path)
}

// PostCheckError reports a conversion that exited cleanly but produced a
// file that still fails the compliance policy. Reported distinctly and
// never retried.
type PostCheckError struct {
	Path    string
	Reasons []string
}

func (e *PostCheckError) Error() string {
	return fmt.Sprintf("converted file %s still non-compliant: %s", e.Path, strings.Join(e.Reasons, "; "))
}
