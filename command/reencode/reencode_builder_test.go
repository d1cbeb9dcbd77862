package reencode

import (
	"strings"
	"testing"

	"dukatools/models"
)

func testJob(t *testing.T, output string) *models.CutJob {
	t.Helper()
	window := models.TrimWindow{Start: 60, End: 65, HasEnd: true}
	job, err := models.NewCutJob("/input/test.mp4", output, window, true, models.ModeAccurate)
	if err != nil {
		t.Fatalf("failed to build test job: %v", err)
	}
	return job
}

func TestNewBuilder_Defaults(t *testing.T) {
	builder := NewBuilder(testJob(t, "/output/test.mp4"), "ffmpeg")

	if builder.codec != "libx264" {
		t.Errorf("Expected default codec 'libx264', got '%s'", builder.codec)
	}
	if builder.preset != "veryfast" {
		t.Errorf("Expected default preset 'veryfast', got '%s'", builder.preset)
	}
	if builder.crf != 18 {
		t.Errorf("Expected default CRF 18, got %d", builder.crf)
	}
	if builder.Strategy() != models.StrategyReencode {
		t.Errorf("Expected reencode strategy, got %v", builder.Strategy())
	}
}

func TestReencodeBuilder_BuildArgs(t *testing.T) {
	builder := NewBuilder(testJob(t, "/output/test.mp4"), "ffmpeg")

	args := builder.BuildArgs()
	argsStr := strings.Join(args, " ")

	// Same seek placement as the copy path: -ss before -i
	ssIdx := strings.Index(argsStr, "-ss ")
	inIdx := strings.Index(argsStr, "-i ")
	if ssIdx == -1 || inIdx == -1 || ssIdx > inIdx {
		t.Errorf("Expected -ss before -i, got: %s", argsStr)
	}

	if !strings.Contains(argsStr, "-t 00:00:05.000") {
		t.Errorf("Expected -t 00:00:05.000, got: %s", argsStr)
	}

	// No copy directive for video; encoder settings instead
	if strings.Contains(argsStr, "-c copy") {
		t.Errorf("Re-encode must not copy all streams, got: %s", argsStr)
	}
	if !strings.Contains(argsStr, "-c:v libx264") {
		t.Errorf("Expected -c:v libx264, got: %s", argsStr)
	}
	if !strings.Contains(argsStr, "-preset veryfast") {
		t.Errorf("Expected -preset veryfast, got: %s", argsStr)
	}
	if !strings.Contains(argsStr, "-crf 18") {
		t.Errorf("Expected -crf 18, got: %s", argsStr)
	}

	// Audio is copied unchanged
	if !strings.Contains(argsStr, "-c:a copy") {
		t.Errorf("Expected -c:a copy, got: %s", argsStr)
	}

	// MP4 output gets the metadata-relocation flag
	if !strings.Contains(argsStr, "-movflags +faststart") {
		t.Errorf("Expected -movflags +faststart for mp4 output, got: %s", argsStr)
	}
}

func TestReencodeBuilder_NonMP4SkipsFaststart(t *testing.T) {
	builder := NewBuilder(testJob(t, "/output/test.mkv"), "ffmpeg")

	argsStr := strings.Join(builder.BuildArgs(), " ")
	if strings.Contains(argsStr, "-movflags") {
		t.Errorf("mkv output should not get -movflags, got: %s", argsStr)
	}
}

func TestReencodeBuilder_Setters(t *testing.T) {
	builder := NewBuilder(testJob(t, "/output/test.mp4"), "ffmpeg")
	builder.SetCodec("libx265").
		SetPreset("medium").
		SetCRF(23)

	argsStr := strings.Join(builder.BuildArgs(), " ")
	if !strings.Contains(argsStr, "-c:v libx265") {
		t.Errorf("Expected -c:v libx265, got: %s", argsStr)
	}
	if !strings.Contains(argsStr, "-preset medium") {
		t.Errorf("Expected -preset medium, got: %s", argsStr)
	}
	if !strings.Contains(argsStr, "-crf 23") {
		t.Errorf("Expected -crf 23, got: %s", argsStr)
	}
}

func TestReencodeBuilder_SettersIgnoreEmpty(t *testing.T) {
	builder := NewBuilder(testJob(t, "/output/test.mp4"), "ffmpeg")
	builder.SetCodec("").SetPreset("").SetCRF(-1)

	if builder.codec != "libx264" || builder.preset != "veryfast" || builder.crf != 18 {
		t.Errorf("Empty setter values should keep defaults, got codec=%s preset=%s crf=%d",
			builder.codec, builder.preset, builder.crf)
	}
}

func TestReencodeBuilder_NilJob(t *testing.T) {
	builder := NewBuilder(nil, "ffmpeg")

	if args := builder.BuildArgs(); len(args) != 0 {
		t.Errorf("BuildArgs with nil job = %v; want empty", args)
	}
	if err := builder.Run(); err == nil {
		t.Error("Run with nil job should fail")
	}
	if _, err := builder.DryRun(); err == nil {
		t.Error("DryRun with nil job should fail")
	}
}
