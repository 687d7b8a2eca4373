package pipeline

import (
	"context"

	"github.com/jvens/matchclipper/internal/ffmpeg"
)

// Extractor is the slice of the ffmpeg executor the pipeline needs. Tests
// substitute a fake so no real processes run.
type Extractor interface {
	ExtractClip(ctx context.Context, input string, opts ffmpeg.ClipOptions) error
	ProbeVideo(ctx context.Context, filePath string) (*ffmpeg.VideoInfo, error)
}

// Range is an inclusive match-number interval.
type Range struct {
	Lo float64
	Hi float64
}

// Options configures one extraction run.
type Options struct {
	MatchesPath string
	VideoPath   string
	OutDir      string

	// Range is nil when every match should be processed.
	Range *Range

	// Offset aligns the video file's start with the event wall clock.
	Offset      float64
	StartKey    string
	EndKey      string
	StartAdjust float64
	EndAdjust   float64

	// DryRun logs the plan without invoking ffmpeg.
	DryRun bool
}

// Stats summarizes a run. Skipped counts matches dropped by alignment
// (missing events, bad duration); Failed counts ffmpeg failures.
type Stats struct {
	Total     int
	Extracted int
	Skipped   int
	Failed    int
}
