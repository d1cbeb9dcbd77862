package command

import (
	"bytes"
	"fmt"
	"os/exec"

	"dukatools/models"
)

// ProcessError reports a failed external invocation together with the
// captured stderr text and the strategy that was in use.
type ProcessError struct {
	Strategy models.CutStrategy
	Stderr   string
	Err      error
}

// Error renders the failure with a trailing excerpt of the tool's stderr,
// which is where FFmpeg explains itself.
func (e *ProcessError) Error() string {
	detail := lastStderrLine(e.Stderr)
	if detail == "" {
		return fmt.Sprintf("%s failed: %v", e.Strategy, e.Err)
	}
	return fmt.Sprintf("%s failed: %v: %s", e.Strategy, e.Err, detail)
}

// Unwrap exposes the underlying exec error for errors.Is/As.
func (e *ProcessError) Unwrap() error {
	return e.Err
}

// lastStderrLine returns the last non-empty stderr line.
func lastStderrLine(stderr string) string {
	lines := bytes.Split(bytes.TrimSpace([]byte(stderr)), []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		if line := bytes.TrimSpace(lines[i]); len(line) > 0 {
			return string(line)
		}
	}
	return ""
}

// Execute runs bin with args, blocking until the subprocess exits.
//
// Standard error is captured for diagnostics; standard output is ignored
// (FFmpeg writes everything of interest to stderr). On a non-zero exit the
// returned error is a *ProcessError.
func Execute(bin string, args []string, strategy models.CutStrategy) error {
	cmd := exec.Command(bin, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return &ProcessError{
			Strategy: strategy,
			Stderr:   stderr.String(),
			Err:      err,
		}
	}
	return nil
}
