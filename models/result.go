package models

import (
	"fmt"
)

// JobResult represents the outcome of one cut job.
//
// It enforces logical consistency: successful results carry no error and
// failed results must carry one. Detail holds auxiliary diagnostic text,
// such as the synthesized command line in dry-run mode.
//
// Use NewJobResultSuccess or NewJobResultFailure to create validated instances.
type JobResult struct {
	Job      *CutJob
	Strategy CutStrategy
	Success  bool
	Err      error
	Detail   string
}

// NewJobResultSuccess creates a successful JobResult with validation.
func NewJobResultSuccess(job *CutJob, strategy CutStrategy, detail string) (*JobResult, error) {
	r := &JobResult{
		Job:      job,
		Strategy: strategy,
		Success:  true,
		Detail:   detail,
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job result: %w", err)
	}
	return r, nil
}

// NewJobResultFailure creates a failed JobResult.
//
// The error parameter must not be nil.
func NewJobResultFailure(job *CutJob, strategy CutStrategy, jobErr error) (*JobResult, error) {
	if jobErr == nil {
		return nil, fmt.Errorf("invalid job result: error cannot be nil for failed result")
	}
	// Success=false with a non-nil error always satisfies Validate.
	return &JobResult{
		Job:      job,
		Strategy: strategy,
		Success:  false,
		Err:      jobErr,
	}, nil
}

// Validate checks if the JobResult has consistent state.
//
// Returns an error if:
//   - Job is nil
//   - Success is true but Err is not nil
//   - Success is false but Err is nil
func (r *JobResult) Validate() error {
	if r.Job == nil {
		return fmt.Errorf("result must reference its job")
	}
	if r.Success && r.Err != nil {
		return fmt.Errorf("inconsistent state: Success is true but Err is not nil")
	}
	if !r.Success && r.Err == nil {
		return fmt.Errorf("failed result must have an error")
	}
	return nil
}
