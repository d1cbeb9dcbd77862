package models

import (
	"fmt"
	"strings"
)

// ForceMode controls which cut strategies a job may use.
type ForceMode int

const (
	// ModeAuto tries a stream copy first and falls back to a re-encode.
	ModeAuto ForceMode = iota
	// ModeFast only attempts a stream copy; failure is terminal.
	ModeFast
	// ModeAccurate goes straight to the frame-accurate re-encode.
	ModeAccurate
)

// String returns the flag-facing name of the mode.
func (m ForceMode) String() string {
	switch m {
	case ModeFast:
		return "fast"
	case ModeAccurate:
		return "accurate"
	default:
		return "auto"
	}
}

// CutStrategy identifies how a trim is executed.
//
// Strategies are computed per job and re-evaluated on fallback; they are
// never stored beyond the job's result.
type CutStrategy int

const (
	// StrategyStreamCopy copies compressed streams without re-encoding.
	// Fast, but only accurate to the nearest keyframe.
	StrategyStreamCopy CutStrategy = iota
	// StrategyReencode decodes and re-encodes video for frame accuracy.
	StrategyReencode
)

// String returns a human-readable strategy name.
func (s CutStrategy) String() string {
	if s == StrategyReencode {
		return "reencode"
	}
	return "stream-copy"
}

// CutJob describes one trim operation: a single input, a single output,
// and the resolved window.
//
// Jobs are created by the batch planner, one per matched input path, and
// are immutable once built. Use NewCutJob to create a validated instance.
type CutJob struct {
	InputPath  string
	OutputPath string
	Window     TrimWindow
	Overwrite  bool
	ForceMode  ForceMode
}

// NewCutJob creates a new CutJob with validation.
//
// Returns an error if either path is empty or the paths are identical
// (FFmpeg cannot edit in place).
func NewCutJob(inputPath, outputPath string, window TrimWindow, overwrite bool, mode ForceMode) (*CutJob, error) {
	j := &CutJob{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Window:     window,
		Overwrite:  overwrite,
		ForceMode:  mode,
	}
	if err := j.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cut job: %w", err)
	}
	return j, nil
}

// Validate checks if the CutJob has valid data.
func (j *CutJob) Validate() error {
	if strings.TrimSpace(j.InputPath) == "" {
		return fmt.Errorf("input path cannot be empty")
	}
	if strings.TrimSpace(j.OutputPath) == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	if j.InputPath == j.OutputPath {
		return fmt.Errorf("output path must differ from input path")
	}
	return nil
}
