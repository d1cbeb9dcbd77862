package ffmpeg

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		stderr   string
		expected float64
	}{
		{
			"Typical header",
			"Input #0, mov,mp4,m4a,3gp,3g2,mj2, from 'test.mp4':\n  Duration: 00:00:30.53, start: 0.000000, bitrate: 400 kb/s\n",
			30.53,
		},
		{
			"Hours and minutes",
			"  Duration: 01:02:03.50, start: 0.000000\n",
			3723.5,
		},
		{
			"No fractional part",
			"Duration: 00:01:30, start: 0.0",
			90,
		},
		{
			"Duration not on first line",
			"Input #0, matroska,webm, from 'a.mkv':\n  Metadata:\n    encoder: libebml\n  Duration: 00:10:00.00, bitrate: 1000 kb/s",
			600,
		},
	}

	parser := NewDurationParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parser.ParseDuration(tt.stderr)
			if err != nil {
				t.Fatalf("ParseDuration returned error: %v", err)
			}
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("ParseDuration = %v; want %v", result, tt.expected)
			}
		})
	}
}

func TestParseDuration_NoMatch(t *testing.T) {
	parser := NewDurationParser()

	for _, stderr := range []string{"", "no duration here", "Duration: N/A, bitrate: N/A"} {
		if _, err := parser.ParseDuration(stderr); err == nil {
			t.Errorf("ParseDuration(%q) succeeded; want error", stderr)
		}
	}
}

func TestResolve_ExplicitMissing(t *testing.T) {
	_, err := Resolve("/nonexistent/ffmpeg-binary")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Resolve error = %v; want ErrNotFound", err)
	}
}

func TestResolve_ExplicitFile(t *testing.T) {
	tmpDir := t.TempDir()
	fake := filepath.Join(tmpDir, "ffmpeg-static")
	if err := os.WriteFile(fake, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("failed to write fake binary: %v", err)
	}

	path, err := Resolve(fake)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if path != fake {
		t.Errorf("Resolve = %q; want %q", path, fake)
	}
}

func TestResolve_EnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	fake := filepath.Join(tmpDir, "ffmpeg-env")
	if err := os.WriteFile(fake, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("failed to write fake binary: %v", err)
	}
	t.Setenv(EnvOverride, fake)

	path, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if path != fake {
		t.Errorf("Resolve = %q; want env override %q", path, fake)
	}
}

func TestResolve_EnvOverrideMissingFallsThrough(t *testing.T) {
	t.Setenv(EnvOverride, "/nonexistent/ffmpeg-env")

	path, err := Resolve("")
	if err != nil {
		// No system ffmpeg either; that is a legitimate outcome.
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("Resolve error = %v; want ErrNotFound", err)
		}
		return
	}
	if strings.Contains(path, "nonexistent") {
		t.Errorf("Resolve = %q; broken env override must not be returned", path)
	}
}
