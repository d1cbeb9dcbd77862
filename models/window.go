// Package models provides core data structures for the dukatools trimming pipeline.
package models

import (
	"errors"
	"fmt"
	"math"
)

// windowEpsilon is the tolerance used when checking that an explicit end time
// and an explicit duration describe the same window.
const windowEpsilon = 0.001

// ErrAmbiguousWindow is returned when the requested trim options contradict
// each other (end vs duration mismatch, or shorthand mixed with explicit bounds).
var ErrAmbiguousWindow = errors.New("ambiguous trim window")

// ErrInvalidWindow is returned when the resolved window has no positive span.
var ErrInvalidWindow = errors.New("invalid trim window")

// TrimWindow is the absolute cut range for a single job, in seconds.
//
// A window may be open-ended: when neither an end time nor a duration was
// requested, HasEnd is false and the cut runs from Start to the end of the
// source. Windows are immutable once resolved.
type TrimWindow struct {
	Start  float64
	End    float64
	HasEnd bool
}

// Duration returns the window span in seconds, or 0 for open-ended windows.
func (w TrimWindow) Duration() float64 {
	if !w.HasEnd {
		return 0
	}
	return w.End - w.Start
}

// WindowOptions carries the raw (already time-parsed) trim request.
//
// Each Has* flag records whether the corresponding value was supplied at all;
// a supplied zero is meaningful and distinct from absent.
type WindowOptions struct {
	Start        float64
	HasStart     bool
	End          float64
	HasEnd       bool
	Duration     float64
	HasDuration  bool
	TrimStart    float64
	HasTrimStart bool
	TrimEnd      float64
	HasTrimEnd   bool
}

// ResolveWindow computes the absolute trim window from the request.
//
// trim-start/trim-end are shorthand for "keep everything after N seconds" /
// "keep everything except the last N seconds" and cannot be combined with
// explicit start/end/duration. An explicit end beyond a known source duration
// is clamped rather than rejected; downstream tools tolerate minor overshoot.
//
// sourceDuration is consulted only when needed (end clamping, trim-end);
// durationKnown reports whether it is available.
func ResolveWindow(opts WindowOptions, sourceDuration float64, durationKnown bool) (TrimWindow, error) {
	shorthand := opts.HasTrimStart || opts.HasTrimEnd
	explicit := opts.HasStart || opts.HasEnd || opts.HasDuration

	if shorthand && explicit {
		return TrimWindow{}, fmt.Errorf("%w: trim-start/trim-end cannot be combined with from/to/duration", ErrAmbiguousWindow)
	}

	if shorthand {
		return resolveShorthand(opts, sourceDuration, durationKnown)
	}

	start := 0.0
	if opts.HasStart {
		start = opts.Start
	}

	end := opts.End
	hasEnd := opts.HasEnd

	if opts.HasEnd && durationKnown && end > sourceDuration {
		end = sourceDuration
	}

	if opts.HasEnd && opts.HasDuration {
		if math.Abs((opts.End-start)-opts.Duration) > windowEpsilon {
			return TrimWindow{}, fmt.Errorf("%w: to=%v and duration=%v disagree for start=%v",
				ErrAmbiguousWindow, opts.End, opts.Duration, start)
		}
	} else if opts.HasDuration {
		end = start + opts.Duration
		hasEnd = true
	}

	window := TrimWindow{Start: start, End: end, HasEnd: hasEnd}
	if hasEnd && window.Duration() <= 0 {
		return TrimWindow{}, fmt.Errorf("%w: start=%v end=%v has no positive span", ErrInvalidWindow, start, end)
	}
	return window, nil
}

// resolveShorthand handles the trim-start / trim-end forms.
func resolveShorthand(opts WindowOptions, sourceDuration float64, durationKnown bool) (TrimWindow, error) {
	start := 0.0
	if opts.HasTrimStart {
		start = opts.TrimStart
	}

	if !opts.HasTrimEnd {
		// Keep everything after the trimmed head.
		return TrimWindow{Start: start}, nil
	}

	if !durationKnown {
		return TrimWindow{}, fmt.Errorf("%w: trim-end requires a detectable source duration", ErrInvalidWindow)
	}

	end := sourceDuration - opts.TrimEnd
	window := TrimWindow{Start: start, End: end, HasEnd: true}
	if window.Duration() <= 0 {
		return TrimWindow{}, fmt.Errorf("%w: trimming %vs from the end of a %.3fs source leaves nothing",
			ErrInvalidWindow, opts.TrimEnd, sourceDuration)
	}
	return window, nil
}
