package clips

import (
	"errors"
	"fmt"

	"github.com/jvens/matchclipper/internal/matches"
)

// Per-match alignment failures. Both mean "skip this match", never "abort
// the run".
var (
	ErrMissingEvent        = errors.New("missing event key")
	ErrNonPositiveDuration = errors.New("non-positive clip duration")
)

// Aligner converts a match record's wall-clock event timestamps into video
// positions. It assumes the recording ran continuously at real-time speed, so
// a single linear mapping holds: video = (wallclock − reference) + offset.
// Recording pauses or clock drift are not modeled; the pipeline flags clips
// that fall outside the probed video duration rather than guessing.
type Aligner struct {
	Reference   float64 // start-event time of the earliest match, seconds
	Offset      float64 // global wall-clock-to-video correction, seconds
	StartKey    string  // event key marking clip start
	EndKey      string  // event key marking clip end
	StartAdjust float64 // extra seconds applied to the start position
	EndAdjust   float64 // extra seconds applied to the end position
}

// Align computes the video start and duration for one match. Errors wrap
// ErrMissingEvent or ErrNonPositiveDuration and identify the match by name.
func (a *Aligner) Align(rec *matches.Record) (Clip, error) {
	name := rec.DisplayName()

	startMs, ok := rec.Event(a.StartKey)
	if !ok {
		return Clip{}, fmt.Errorf("match %s: %w: %q", name, ErrMissingEvent, a.StartKey)
	}
	endMs, ok := rec.Event(a.EndKey)
	if !ok {
		return Clip{}, fmt.Errorf("match %s: %w: %q", name, ErrMissingEvent, a.EndKey)
	}

	startEvent := float64(startMs) / 1000
	endEvent := float64(endMs) / 1000

	videoStart := (startEvent - a.Reference) + a.Offset + a.StartAdjust
	videoEnd := (endEvent - a.Reference) + a.Offset + a.EndAdjust

	duration := videoEnd - videoStart
	if duration <= 0 {
		return Clip{}, fmt.Errorf("match %s: %w (start %.3f, end %.3f)",
			name, ErrNonPositiveDuration, videoStart, videoEnd)
	}

	return Clip{
		Name:     name,
		Start:    videoStart,
		Duration: duration,
	}, nil
}
