// Package ffmpeg locates the FFmpeg binary and extracts source metadata
// from its stderr output.
package ffmpeg

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EnvOverride names the environment variable that pins the ffmpeg binary.
const EnvOverride = "DUKATOOLS_FFMPEG"

// ErrNotFound is returned when no usable ffmpeg binary can be resolved.
// Nothing can be trimmed without one, so callers treat this as fatal.
var ErrNotFound = errors.New("ffmpeg not found")

// Resolve returns the path of the ffmpeg binary to invoke.
//
// Resolution order:
//  1. explicit path or name, when given
//  2. the DUKATOOLS_FFMPEG environment variable
//  3. "ffmpeg" on PATH
func Resolve(explicit string) (string, error) {
	if explicit != "" {
		if p, err := exec.LookPath(explicit); err == nil {
			return p, nil
		}
		if _, err := os.Stat(explicit); err == nil {
			return explicit, nil
		}
		return "", fmt.Errorf("%w: %q is not an executable or existing file", ErrNotFound, explicit)
	}

	if env := os.Getenv(EnvOverride); env != "" {
		if _, err := os.Stat(env); err == nil {
			return env, nil
		}
	}

	if p, err := exec.LookPath("ffmpeg"); err == nil {
		return p, nil
	}

	return "", fmt.Errorf("%w: install it system-wide or set %s", ErrNotFound, EnvOverride)
}

// Version runs `ffmpeg -version` and returns the first line of its output.
func Version(ffmpegPath string) (string, error) {
	out, err := exec.Command(ffmpegPath, "-version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("cannot run ffmpeg: %w", err)
	}
	line, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(line), nil
}
