// Package streamcopy builds FFmpeg commands that trim by copying compressed
// streams without re-encoding. Fast, but only accurate to the nearest keyframe.
package streamcopy

import (
	"fmt"
	"strings"

	"dukatools/command"
	"dukatools/internal/timeutil"
	"dukatools/models"
)

// Builder implements command.Command for stream-copy trims.
type Builder struct {
	job        *models.CutJob
	ffmpegPath string
}

// NewBuilder creates a Builder for the given job and resolved ffmpeg binary.
func NewBuilder(job *models.CutJob, ffmpegPath string) *Builder {
	return &Builder{
		job:        job,
		ffmpegPath: ffmpegPath,
	}
}

// BuildArgs constructs the FFmpeg command arguments.
//
// The seek is placed before -i so FFmpeg jumps by keyframe index instead of
// decoding its way to the start. The window is always expressed as -t
// (duration) rather than -to, so rounding from chained time conversions
// cannot compound.
func (b *Builder) BuildArgs() []string {
	// Guard against nil job
	if b.job == nil {
		return []string{}
	}

	args := []string{"-hide_banner"}
	if b.job.Overwrite {
		args = append(args, "-y")
	} else {
		// -n makes ffmpeg fail instead of silently clobbering the output.
		args = append(args, "-n")
	}

	if b.job.Window.Start > 0 {
		args = append(args, "-ss", timeutil.FormatSeconds(b.job.Window.Start))
	}
	args = append(args, "-i", b.job.InputPath)
	if b.job.Window.HasEnd {
		args = append(args, "-t", timeutil.FormatSeconds(b.job.Window.Duration()))
	}

	args = append(args,
		"-map", "0", // Keep all streams
		"-c", "copy",
		"-avoid_negative_ts", "make_zero",
	)

	if command.IsMP4Family(b.job.OutputPath) {
		args = append(args, "-movflags", "+faststart")
	}

	args = append(args, b.job.OutputPath)
	return args
}

// Run executes the FFmpeg command, capturing stderr for diagnostics.
func (b *Builder) Run() error {
	if b.job == nil {
		return fmt.Errorf("cannot run command: job is nil")
	}
	return command.Execute(b.ffmpegPath, b.BuildArgs(), models.StrategyStreamCopy)
}

// DryRun returns the FFmpeg command line without executing it.
func (b *Builder) DryRun() (string, error) {
	if b.job == nil {
		return "", fmt.Errorf("cannot build command: job is nil")
	}
	return fmt.Sprintf("%s %s", b.ffmpegPath, strings.Join(b.BuildArgs(), " ")), nil
}

// Strategy returns the cut strategy (stream copy).
func (b *Builder) Strategy() models.CutStrategy {
	return models.StrategyStreamCopy
}

// GetInputPath returns the input file path.
// Returns empty string if job is nil.
func (b *Builder) GetInputPath() string {
	if b.job == nil {
		return ""
	}
	return b.job.InputPath
}

// GetOutputPath returns the output file path.
func (b *Builder) GetOutputPath() string {
	if b.job == nil {
		return ""
	}
	return b.job.OutputPath
}
