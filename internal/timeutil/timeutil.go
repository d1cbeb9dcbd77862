// Package timeutil parses human time expressions and formats seconds for
// FFmpeg command arguments.
package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat is returned when a time expression cannot be parsed.
// Parse failures are never coerced to zero.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// Parse converts a human time expression into non-negative fractional seconds.
//
// Accepted forms, tried in order:
//   - plain number: "90", "45.5"
//   - suffixed number: "250ms", "90s", "2m", "1.5h"
//   - clock form: "HH:MM:SS[.fff]" or "MM:SS[.fff]"
//
// Whitespace is trimmed and suffixes are case-insensitive. Empty input,
// unknown forms, and negative values fail with ErrInvalidTimeFormat.
//
// Example:
//
//	timeutil.Parse("00:01:02.5") // 62.5
//	timeutil.Parse("2m")         // 120
func Parse(text string) (float64, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidTimeFormat)
	}

	if strings.Contains(s, ":") {
		return parseClock(s)
	}

	scale := 1.0
	switch {
	case strings.HasSuffix(s, "ms"):
		scale = 1.0 / 1000.0
		s = strings.TrimSuffix(s, "ms")
	case strings.HasSuffix(s, "s"):
		s = strings.TrimSuffix(s, "s")
	case strings.HasSuffix(s, "m"):
		scale = 60.0
		s = strings.TrimSuffix(s, "m")
	case strings.HasSuffix(s, "h"):
		scale = 3600.0
		s = strings.TrimSuffix(s, "h")
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: negative value %q", ErrInvalidTimeFormat, text)
	}

	return value * scale, nil
}

// parseClock handles "HH:MM:SS[.fff]" and "MM:SS[.fff]".
func parseClock(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	// Pad to hours:minutes:seconds.
	for len(parts) < 3 {
		parts = append([]string{"0"}, parts...)
	}

	total := 0.0
	for i, part := range parts {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil || value < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		switch i {
		case 0:
			total += value * 3600
		case 1:
			total += value * 60
		case 2:
			total += value
		}
	}

	return total, nil
}

// FormatSeconds converts seconds to HH:MM:SS.mmm format for FFmpeg.
//
// This format is used for FFmpeg time parameters like -ss (seek start)
// and -t (duration). Millisecond precision keeps chained conversions
// within the 1ms tolerance the window resolver uses.
//
// Example:
//
//	FormatSeconds(0)     // "00:00:00.000"
//	FormatSeconds(90)    // "00:01:30.000"
//	FormatSeconds(62.5)  // "00:01:02.500"
func FormatSeconds(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := seconds - float64(hours*3600) - float64(minutes*60)
	return fmt.Sprintf("%02d:%02d:%06.3f", hours, minutes, secs)
}
