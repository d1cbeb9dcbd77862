// Package command provides the core Command interface and subprocess support
// for building and executing FFmpeg trim commands.
//
// The strategy builders (streamcopy.Builder, reencode.Builder) implement the
// Command interface, allowing the batch runner to attempt and retry strategies
// agnostically.
package command

import (
	"path/filepath"
	"strings"

	"dukatools/models"
)

// Command represents an FFmpeg invocation that can be built, executed, or previewed.
type Command interface {
	// BuildArgs constructs the full argument list, excluding the binary itself.
	// Pure string construction, no side effects.
	BuildArgs() []string

	// Run executes the command, blocking until the subprocess exits.
	// Failures are reported as *ProcessError carrying the captured stderr.
	Run() error

	// DryRun returns the command line without executing it.
	DryRun() (string, error)

	// Strategy reports which cut strategy the command implements.
	Strategy() models.CutStrategy

	// GetInputPath returns the input file path.
	GetInputPath() string

	// GetOutputPath returns the output file path.
	GetOutputPath() string
}

// mp4Extensions are the MP4-family container suffixes that benefit from
// relocating the moov atom to the front of the file.
var mp4Extensions = map[string]bool{
	".mp4": true,
	".m4v": true,
	".mov": true,
}

// IsMP4Family reports whether path has an MP4-family container extension.
func IsMP4Family(path string) bool {
	return mp4Extensions[strings.ToLower(filepath.Ext(path))]
}
