// Package reencode builds FFmpeg commands that trim by re-encoding video,
// landing the cut exactly on the requested time at higher CPU cost.
// Audio streams are copied unchanged.
package reencode

import (
	"fmt"
	"strconv"
	"strings"

	"dukatools/command"
	"dukatools/internal/timeutil"
	"dukatools/models"
)

// ReencodeCommand extends the base Command interface with encoder settings.
type ReencodeCommand interface {
	command.Command
	SetCodec(codec string) ReencodeCommand
	SetPreset(preset string) ReencodeCommand
	SetCRF(crf int) ReencodeCommand
}

// Builder implements ReencodeCommand for frame-accurate trims.
type Builder struct {
	job        *models.CutJob
	ffmpegPath string
	codec      string
	preset     string
	crf        int
}

// NewBuilder creates a Builder for the given job and resolved ffmpeg binary.
func NewBuilder(job *models.CutJob, ffmpegPath string) *Builder {
	return &Builder{
		job:        job,
		ffmpegPath: ffmpegPath,
		codec:      "libx264",  // Default codec
		preset:     "veryfast", // Default preset
		crf:        18,         // Visually lossless for most sources
	}
}

// SetCodec sets the video codec (e.g., "libx264", "libx265").
func (b *Builder) SetCodec(codec string) ReencodeCommand {
	if codec != "" {
		b.codec = codec
	}
	return b
}

// SetPreset sets the encoder speed preset (e.g., "veryfast", "medium").
func (b *Builder) SetPreset(preset string) ReencodeCommand {
	if preset != "" {
		b.preset = preset
	}
	return b
}

// SetCRF sets the constant rate factor (lower = better quality).
func (b *Builder) SetCRF(crf int) ReencodeCommand {
	if crf >= 0 {
		b.crf = crf
	}
	return b
}

// BuildArgs constructs the FFmpeg command arguments.
//
// Seek placement and duration expression match the stream-copy builder:
// pre-input -ss, window as -t. There is no copy directive for video, so
// the configured codec decides the encode; audio streams are copied.
func (b *Builder) BuildArgs() []string {
	// Guard against nil job
	if b.job == nil {
		return []string{}
	}

	args := []string{"-hide_banner"}
	if b.job.Overwrite {
		args = append(args, "-y")
	} else {
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
		"-c:v", b.codec,
		"-preset", b.preset,
		"-crf", strconv.Itoa(b.crf),
		"-c:a", "copy",
	)

	if command.IsMP4Family(b.job.OutputPath) {
		// Move the moov atom to the front so the result is streaming-friendly.
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
	return command.Execute(b.ffmpegPath, b.BuildArgs(), models.StrategyReencode)
}

// DryRun returns the FFmpeg command line without executing it.
func (b *Builder) DryRun() (string, error) {
	if b.job == nil {
		return "", fmt.Errorf("cannot build command: job is nil")
	}
	return fmt.Sprintf("%s %s", b.ffmpegPath, strings.Join(b.BuildArgs(), " ")), nil
}

// Strategy returns the cut strategy (re-encode).
func (b *Builder) Strategy() models.CutStrategy {
	return models.StrategyReencode
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
