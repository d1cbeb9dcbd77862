package ffmpeg

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
)

// DurationParser extracts the source duration from ffmpeg stderr output.
//
// `ffmpeg -i input` always prints a header block to stderr containing
// `Duration: HH:MM:SS.xx`; the invocation itself exits non-zero because
// no output file is given, which is expected and ignored.
type DurationParser struct {
	durationRegex *regexp.Regexp
}

// NewDurationParser creates a parser for the ffmpeg header block.
func NewDurationParser() *DurationParser {
	return &DurationParser{
		durationRegex: regexp.MustCompile(`Duration:\s*(\d+):(\d+):(\d+(?:\.\d+)?)`),
	}
}

// ParseDuration scans stderr text for the Duration line and returns the
// total duration in seconds.
func (p *DurationParser) ParseDuration(stderr string) (float64, error) {
	m := p.durationRegex.FindStringSubmatch(stderr)
	if m == nil {
		return 0, fmt.Errorf("no Duration line in ffmpeg output")
	}

	hours, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse hours %q: %w", m[1], err)
	}
	minutes, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse minutes %q: %w", m[2], err)
	}
	seconds, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse seconds %q: %w", m[3], err)
	}

	return hours*3600 + minutes*60 + seconds, nil
}

// ProbeDuration runs `ffmpeg -hide_banner -i path` and parses the duration
// out of the header it prints to stderr.
func ProbeDuration(ffmpegPath, path string) (float64, error) {
	cmd := exec.Command(ffmpegPath, "-hide_banner", "-i", path)
	// Exit status is non-zero by design: there is no output file.
	out, _ := cmd.CombinedOutput()

	duration, err := NewDurationParser().ParseDuration(string(out))
	if err != nil {
		return 0, fmt.Errorf("cannot detect duration for %s: %w", path, err)
	}
	return duration, nil
}
