package runner

import (
	"fmt"
	"os"
	"strings"

	"dukatools/command"
	"dukatools/command/reencode"
	"dukatools/command/streamcopy"
	"dukatools/models"
)

// Runner executes cut jobs one after another.
//
// Per job it walks a two-state machine: Attempting(streamCopy) →
// Attempting(reencode) → Done. The start state comes from the job's force
// mode, and the only transition is the single copy-to-reencode fallback.
// Jobs never share state, so there is no concurrency and no locking.
type Runner struct {
	ffmpegPath string
	dryRun     bool

	// Encoder settings for the re-encode strategy.
	codec  string
	preset string
	crf    int

	// onAttempt, when set, observes every strategy attempt. Used by the
	// CLI for progress output and by tests.
	onAttempt func(job *models.CutJob, strategy models.CutStrategy)
}

// NewRunner creates a Runner that invokes the given ffmpeg binary.
func NewRunner(ffmpegPath string) *Runner {
	return &Runner{
		ffmpegPath: ffmpegPath,
		crf:        -1, // builder default applies
	}
}

// SetDryRun makes Run synthesize commands without invoking ffmpeg.
func (r *Runner) SetDryRun(dryRun bool) *Runner {
	r.dryRun = dryRun
	return r
}

// SetEncoder overrides the re-encode codec settings.
func (r *Runner) SetEncoder(codec, preset string, crf int) *Runner {
	r.codec = codec
	r.preset = preset
	r.crf = crf
	return r
}

// SetAttemptCallback sets an observer invoked before each strategy attempt.
func (r *Runner) SetAttemptCallback(callback func(job *models.CutJob, strategy models.CutStrategy)) *Runner {
	r.onAttempt = callback
	return r
}

// Run executes all jobs sequentially and returns one result per job.
//
// A job failure never stops the batch; every job gets its turn and its
// own result.
func (r *Runner) Run(jobs []*models.CutJob) []*models.JobResult {
	results := make([]*models.JobResult, 0, len(jobs))
	for _, job := range jobs {
		results = append(results, r.runJob(job))
	}
	return results
}

// runJob drives the strategy state machine for a single job.
func (r *Runner) runJob(job *models.CutJob) *models.JobResult {
	strategy := models.StrategyStreamCopy
	if job.ForceMode == models.ModeAccurate {
		strategy = models.StrategyReencode
	}

	for {
		cmd := r.buildCommand(job, strategy)

		if r.onAttempt != nil {
			r.onAttempt(job, strategy)
		}

		if r.dryRun {
			line, err := cmd.DryRun()
			if err != nil {
				return mustFailure(job, strategy, err)
			}
			return mustSuccess(job, strategy, line)
		}

		runErr := cmd.Run()
		if runErr == nil {
			runErr = verifyOutput(job.OutputPath)
		}
		if runErr == nil {
			return mustSuccess(job, strategy, "")
		}

		// Any stream-copy failure grounds the fallback: FFmpeg's own
		// refusal is the keyframe-alignment signal, no probing needed.
		if strategy == models.StrategyStreamCopy && job.ForceMode == models.ModeAuto {
			strategy = models.StrategyReencode
			continue
		}

		return mustFailure(job, strategy, runErr)
	}
}

// buildCommand synthesizes the command for the given strategy.
func (r *Runner) buildCommand(job *models.CutJob, strategy models.CutStrategy) command.Command {
	if strategy == models.StrategyReencode {
		builder := reencode.NewBuilder(job, r.ffmpegPath)
		builder.SetCodec(r.codec).SetPreset(r.preset).SetCRF(r.crf)
		return builder
	}
	return streamcopy.NewBuilder(job, r.ffmpegPath)
}

// verifyOutput checks that the output file exists with non-zero size.
// FFmpeg can exit 0 and still leave an empty container behind.
func verifyOutput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("output was not created: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("output %s is empty", path)
	}
	return nil
}

// mustSuccess wraps the validating constructor; its invariants hold by
// construction here.
func mustSuccess(job *models.CutJob, strategy models.CutStrategy, detail string) *models.JobResult {
	result, err := models.NewJobResultSuccess(job, strategy, detail)
	if err != nil {
		return &models.JobResult{Job: job, Strategy: strategy, Success: false, Err: err}
	}
	return result
}

func mustFailure(job *models.CutJob, strategy models.CutStrategy, jobErr error) *models.JobResult {
	result, err := models.NewJobResultFailure(job, strategy, jobErr)
	if err != nil {
		return &models.JobResult{Job: job, Strategy: strategy, Success: false, Err: err}
	}
	return result
}

// Summarize reduces a result set to the overall batch outcome.
//
// Returns nil when every job succeeded; otherwise an error listing every
// failed job with its reason.
func Summarize(results []*models.JobResult) error {
	var failures []string
	for _, result := range results {
		if !result.Success {
			failures = append(failures, fmt.Sprintf("%s: %v", result.Job.InputPath, result.Err))
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d job(s) failed:\n  - %s",
		len(failures), len(results), strings.Join(failures, "\n  - "))
}
