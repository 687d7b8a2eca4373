package util

import "fmt"

// FormatSeconds renders a position in seconds the way ffmpeg expects it
// on the command line (-ss / -t): plain seconds with millisecond precision.
func FormatSeconds(seconds float64) string {
	return fmt.Sprintf("%.3f", seconds)
}

// FormatClock renders a position in seconds as HH:MM:SS.mmm for log output.
// Negative positions keep their sign in front of the whole clock string.
func FormatClock(seconds float64) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	hours := int(seconds / 3600)
	minutes := int((seconds - float64(hours*3600)) / 60)
	secs := seconds - float64(hours*3600) - float64(minutes*60)
	return fmt.Sprintf("%s%02d:%02d:%06.3f", sign, hours, minutes, secs)
}

// MillisToSeconds converts a millisecond event timestamp to seconds.
func MillisToSeconds(ms int64) float64 {
	return float64(ms) / 1000
}
