// Package runner expands trim requests into per-file jobs and executes them
// sequentially with stream-copy-then-reencode fallback.
package runner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dukatools/models"
)

// DefaultSuffix is appended to the input stem when no explicit output is given.
const DefaultSuffix = "_cut"

// ErrFileNotFound is returned for a literal input path that does not exist.
// It fails the affected job only, never the whole batch.
var ErrFileNotFound = errors.New("input file not found")

// ErrOutputExists is returned when the destination exists and overwriting
// was not permitted.
var ErrOutputExists = errors.New("output file already exists")

// ErrNoInputs is returned when no pattern resolved to any input path.
var ErrNoInputs = errors.New("no input files matched")

// DurationProber reports the duration of a media file in seconds.
// The planner calls it lazily, only for jobs whose window needs it.
type DurationProber func(path string) (float64, error)

// Options carries the trim request shared by every job in a batch.
type Options struct {
	Window    models.WindowOptions
	Output    string // explicit output path, only legal with exactly one input
	Suffix    string // appended to the stem for derived outputs
	Overwrite bool
	ForceMode models.ForceMode
}

// Planner expands input patterns into a list of immutable cut jobs.
//
// Inputs that cannot become runnable jobs (missing file, clobbered output,
// unresolvable window) are reported as pre-failed results instead of
// aborting the batch.
type Planner struct {
	patterns []string
	opts     Options
	prober   DurationProber
}

// NewPlanner creates a Planner for the given patterns and shared options.
func NewPlanner(patterns []string, opts Options) *Planner {
	if opts.Suffix == "" {
		opts.Suffix = DefaultSuffix
	}
	return &Planner{
		patterns: patterns,
		opts:     opts,
	}
}

// SetProber sets the source-duration prober.
//
// Without one, end clamping is skipped and trim-end requests fail per job.
func (p *Planner) SetProber(prober DurationProber) *Planner {
	p.prober = prober
	return p
}

// ExpandInputs resolves patterns to paths.
//
// A pattern containing glob metacharacters is expanded against the
// filesystem; anything else is taken as a literal path whether or not it
// exists. Duplicates are dropped preserving first-seen order.
func ExpandInputs(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		if strings.ContainsAny(pattern, "*?[") {
			matches, err := filepath.Glob(pattern)
			if err != nil {
				return nil, fmt.Errorf("bad glob pattern %q: %w", pattern, err)
			}
			paths = append(paths, matches...)
		} else {
			paths = append(paths, pattern)
		}
	}

	seen := make(map[string]bool, len(paths))
	unique := paths[:0]
	for _, path := range paths {
		if !seen[path] {
			seen[path] = true
			unique = append(unique, path)
		}
	}
	return unique, nil
}

// Plan expands the patterns and builds one job per resolved input.
//
// Returns the runnable jobs, pre-failed results for inputs that could not
// become jobs, and a batch-level error for requests that are wrong as a
// whole (nothing matched, or --out with several inputs).
func (p *Planner) Plan() ([]*models.CutJob, []*models.JobResult, error) {
	inputs, err := ExpandInputs(p.patterns)
	if err != nil {
		return nil, nil, err
	}
	if len(inputs) == 0 {
		return nil, nil, ErrNoInputs
	}
	if p.opts.Output != "" && len(inputs) != 1 {
		return nil, nil, fmt.Errorf("explicit output is only allowed with a single input, got %d", len(inputs))
	}

	var jobs []*models.CutJob
	var failed []*models.JobResult

	for _, input := range inputs {
		job, err := p.planOne(input)
		if err != nil {
			result, rerr := models.NewJobResultFailure(job, models.StrategyStreamCopy, err)
			if rerr != nil {
				return nil, nil, rerr
			}
			failed = append(failed, result)
			continue
		}
		jobs = append(jobs, job)
	}

	return jobs, failed, nil
}

// planOne builds the job for a single input path. On failure the returned
// job still carries the paths so the result can name them.
func (p *Planner) planOne(input string) (*models.CutJob, error) {
	output := p.opts.Output
	if output == "" {
		output = DeriveOutput(input, p.opts.Suffix)
	}

	job := &models.CutJob{
		InputPath:  input,
		OutputPath: output,
		Overwrite:  p.opts.Overwrite,
		ForceMode:  p.opts.ForceMode,
	}

	if _, err := os.Stat(input); err != nil {
		return job, fmt.Errorf("%w: %s", ErrFileNotFound, input)
	}

	if !p.opts.Overwrite {
		if _, err := os.Stat(output); err == nil {
			return job, fmt.Errorf("%w: %s (use --overwrite)", ErrOutputExists, output)
		}
	}

	sourceDuration, durationKnown := p.probeIfNeeded(input)
	window, err := models.ResolveWindow(p.opts.Window, sourceDuration, durationKnown)
	if err != nil {
		return job, err
	}
	job.Window = window

	if err := job.Validate(); err != nil {
		return job, err
	}
	return job, nil
}

// probeIfNeeded fetches the source duration only when the window actually
// depends on it: an absolute end (for clamping) or a trim-end request.
func (p *Planner) probeIfNeeded(input string) (float64, bool) {
	if p.prober == nil {
		return 0, false
	}
	if !p.opts.Window.HasEnd && !p.opts.Window.HasTrimEnd {
		return 0, false
	}
	duration, err := p.prober(input)
	if err != nil {
		return 0, false
	}
	return duration, true
}

// DeriveOutput appends suffix to the stem of input, preserving the extension.
func DeriveOutput(input, suffix string) string {
	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(input, ext)
	return stem + suffix + ext
}
