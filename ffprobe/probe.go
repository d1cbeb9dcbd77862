// Package ffprobe extracts media metadata with the ffprobe command-line tool.
//
// ffprobe is the preferred duration source for trimming; when it is not on
// PATH the caller falls back to parsing ffmpeg's own stderr header.
package ffprobe

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
)

// Stream represents a media stream (audio, video, subtitle, etc.)
type Stream struct {
	Index         int    `json:"index"`
	CodecName     string `json:"codec_name"`
	CodecType     string `json:"codec_type"`
	CodecLongName string `json:"codec_long_name"`
	Width         int    `json:"width,omitempty"`
	Height        int    `json:"height,omitempty"`
	SampleRate    string `json:"sample_rate,omitempty"`
	Channels      int    `json:"channels,omitempty"`
	Duration      string `json:"duration,omitempty"`
}

// Format represents the container format information.
type Format struct {
	Filename       string `json:"filename"`
	FormatName     string `json:"format_name"`
	FormatLongName string `json:"format_long_name"`
	Duration       string `json:"duration"`
	Size           string `json:"size"`
	BitRate        string `json:"bit_rate"`
}

// ProbeResult holds the metadata extracted from a media file.
type ProbeResult struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// GetDuration returns the duration of the media file in seconds.
//
// Returns an error if the duration cannot be parsed.
func (pr *ProbeResult) GetDuration() (float64, error) {
	if pr.Format.Duration == "" {
		return 0, fmt.Errorf("duration not available in format metadata")
	}

	duration, err := strconv.ParseFloat(pr.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration '%s': %w", pr.Format.Duration, err)
	}

	return duration, nil
}

// GetVideoStreams returns all video streams from the media file.
func (pr *ProbeResult) GetVideoStreams() []Stream {
	var videoStreams []Stream
	for _, stream := range pr.Streams {
		if stream.CodecType == "video" {
			videoStreams = append(videoStreams, stream)
		}
	}
	return videoStreams
}

// GetAudioStreams returns all audio streams from the media file.
func (pr *ProbeResult) GetAudioStreams() []Stream {
	var audioStreams []Stream
	for _, stream := range pr.Streams {
		if stream.CodecType == "audio" {
			audioStreams = append(audioStreams, stream)
		}
	}
	return audioStreams
}

// Available reports whether ffprobe can be found on PATH.
func Available() bool {
	_, err := exec.LookPath("ffprobe")
	return err == nil
}

// Probe analyzes a media file and extracts its metadata using ffprobe.
//
// The function executes ffprobe with JSON output format and parses the
// result to extract duration, streams, and format information.
//
// Example:
//
//	result, err := ffprobe.Probe("/path/to/video.mp4")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	duration, _ := result.GetDuration()
func Probe(sourcePath string) (*ProbeResult, error) {
	if sourcePath == "" {
		return nil, fmt.Errorf("source path cannot be empty")
	}

	// -v quiet: suppress verbose output
	// -print_format json: output in JSON format
	// -show_streams: include stream information
	// -show_format: include format information
	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		"-show_format",
		sourcePath,
	}

	cmd := exec.Command("ffprobe", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w (output: %s)", err, string(output))
	}

	var result ProbeResult
	if err := json.Unmarshal(output, &result); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe JSON output: %w", err)
	}

	return &result, nil
}
