package models

import (
	"errors"
	"math"
	"testing"
)

func TestResolveWindow_StartAndDuration(t *testing.T) {
	opts := WindowOptions{Start: 5, HasStart: true, Duration: 12, HasDuration: true}

	window, err := ResolveWindow(opts, 0, false)
	if err != nil {
		t.Fatalf("ResolveWindow returned error: %v", err)
	}
	if window.Start != 5 {
		t.Errorf("Start = %v; want 5", window.Start)
	}
	if !window.HasEnd || window.End != 17 {
		t.Errorf("End = %v (HasEnd=%v); want 17", window.End, window.HasEnd)
	}
	if window.Duration() != 12 {
		t.Errorf("Duration() = %v; want 12", window.Duration())
	}
}

func TestResolveWindow_EndAndDurationAgree(t *testing.T) {
	opts := WindowOptions{
		Start: 5, HasStart: true,
		End: 17, HasEnd: true,
		Duration: 12, HasDuration: true,
	}

	window, err := ResolveWindow(opts, 0, false)
	if err != nil {
		t.Fatalf("ResolveWindow returned error: %v", err)
	}
	if window.End != 17 {
		t.Errorf("End = %v; want 17", window.End)
	}
}

func TestResolveWindow_EndAndDurationConflict(t *testing.T) {
	opts := WindowOptions{
		Start: 5, HasStart: true,
		End: 20, HasEnd: true,
		Duration: 12, HasDuration: true,
	}

	_, err := ResolveWindow(opts, 0, false)
	if !errors.Is(err, ErrAmbiguousWindow) {
		t.Fatalf("error = %v; want ErrAmbiguousWindow", err)
	}
}

func TestResolveWindow_EndDurationWithinEpsilon(t *testing.T) {
	opts := WindowOptions{
		Start: 0, HasStart: true,
		End: 12.0005, HasEnd: true,
		Duration: 12, HasDuration: true,
	}

	if _, err := ResolveWindow(opts, 0, false); err != nil {
		t.Fatalf("sub-millisecond disagreement should be tolerated, got %v", err)
	}
}

func TestResolveWindow_NonPositiveSpan(t *testing.T) {
	tests := []struct {
		name string
		opts WindowOptions
	}{
		{"End before start", WindowOptions{Start: 10, HasStart: true, End: 5, HasEnd: true}},
		{"Zero duration", WindowOptions{Start: 10, HasStart: true, Duration: 0, HasDuration: true}},
		{"End equals start", WindowOptions{Start: 5, HasStart: true, End: 5, HasEnd: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveWindow(tt.opts, 0, false)
			if !errors.Is(err, ErrInvalidWindow) {
				t.Errorf("error = %v; want ErrInvalidWindow", err)
			}
		})
	}
}

func TestResolveWindow_ShorthandMixedWithExplicit(t *testing.T) {
	tests := []struct {
		name string
		opts WindowOptions
	}{
		{"TrimStart with from", WindowOptions{TrimStart: 4, HasTrimStart: true, Start: 5, HasStart: true}},
		{"TrimEnd with duration", WindowOptions{TrimEnd: 3, HasTrimEnd: true, Duration: 10, HasDuration: true}},
		{"TrimStart with to", WindowOptions{TrimStart: 4, HasTrimStart: true, End: 20, HasEnd: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveWindow(tt.opts, 0, false)
			if !errors.Is(err, ErrAmbiguousWindow) {
				t.Errorf("error = %v; want ErrAmbiguousWindow", err)
			}
		})
	}
}

func TestResolveWindow_TrimStart(t *testing.T) {
	opts := WindowOptions{TrimStart: 4, HasTrimStart: true}

	window, err := ResolveWindow(opts, 0, false)
	if err != nil {
		t.Fatalf("ResolveWindow returned error: %v", err)
	}
	if window.Start != 4 {
		t.Errorf("Start = %v; want 4", window.Start)
	}
	if window.HasEnd {
		t.Errorf("trim-start alone should leave the window open-ended")
	}
}

func TestResolveWindow_TrimEnd(t *testing.T) {
	opts := WindowOptions{TrimEnd: 3, HasTrimEnd: true}

	window, err := ResolveWindow(opts, 30.5, true)
	if err != nil {
		t.Fatalf("ResolveWindow returned error: %v", err)
	}
	if window.Start != 0 {
		t.Errorf("Start = %v; want 0", window.Start)
	}
	if !window.HasEnd || math.Abs(window.End-27.5) > 1e-9 {
		t.Errorf("End = %v; want 27.5", window.End)
	}
}

func TestResolveWindow_TrimEndNeedsDuration(t *testing.T) {
	opts := WindowOptions{TrimEnd: 3, HasTrimEnd: true}

	_, err := ResolveWindow(opts, 0, false)
	if !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("error = %v; want ErrInvalidWindow when duration unknown", err)
	}
}

func TestResolveWindow_TrimEndLeavesNothing(t *testing.T) {
	opts := WindowOptions{TrimStart: 10, HasTrimStart: true, TrimEnd: 25, HasTrimEnd: true}

	_, err := ResolveWindow(opts, 30, true)
	if !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("error = %v; want ErrInvalidWindow", err)
	}
}

func TestResolveWindow_ClampsEndToSourceDuration(t *testing.T) {
	opts := WindowOptions{Start: 5, HasStart: true, End: 100, HasEnd: true}

	window, err := ResolveWindow(opts, 30.5, true)
	if err != nil {
		t.Fatalf("ResolveWindow returned error: %v", err)
	}
	if window.End != 30.5 {
		t.Errorf("End = %v; want clamp to 30.5", window.End)
	}
}

func TestResolveWindow_NoBoundsIsOpenEnded(t *testing.T) {
	window, err := ResolveWindow(WindowOptions{Start: 2, HasStart: true}, 0, false)
	if err != nil {
		t.Fatalf("ResolveWindow returned error: %v", err)
	}
	if window.HasEnd {
		t.Errorf("window with only a start should be open-ended")
	}
	if window.Duration() != 0 {
		t.Errorf("open-ended Duration() = %v; want 0", window.Duration())
	}
}
