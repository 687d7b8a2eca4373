package ffmpeg

import (
	"context"
	"fmt"

	"github.com/jvens/matchclipper/pkg/util"
)

// ClipOptions defines clip extraction parameters. Positions are seconds on
// the video timeline.
type ClipOptions struct {
	Start    float64
	Duration float64
	Output   string
}

// ExtractClip cuts a segment from a video using stream copy, so no
// re-encoding happens and cuts land on the nearest keyframe.
func (e *Executor) ExtractClip(ctx context.Context, input string, opts ClipOptions) error {
	if opts.Duration <= 0 {
		return fmt.Errorf("invalid clip duration: %s", util.FormatSeconds(opts.Duration))
	}

	e.logger.Info().
		Str("input", input).
		Str("output", opts.Output).
		Str("start", util.FormatClock(opts.Start)).
		Str("duration", util.FormatClock(opts.Duration)).
		Msg("extracting clip")

	runOpts := RunOptions{
		Args: ClipArgs(input, opts),
		LogHandler: func(line string) {
			e.logger.Debug().Str("ffmpeg", line).Msg("clip extraction")
		},
	}

	if err := e.Run(ctx, runOpts); err != nil {
		return err
	}

	e.logger.Info().Str("output", opts.Output).Msg("clip extraction complete")
	return nil
}

// ClipArgs builds the ffmpeg argument list for a stream-copy extraction.
// Argument order matters to ffmpeg: -ss/-t after -i select an output range.
func ClipArgs(input string, opts ClipOptions) []string {
	return []string{
		"-i", input,
		"-ss", util.FormatSeconds(opts.Start),
		"-t", util.FormatSeconds(opts.Duration),
		"-c", "copy",
		opts.Output,
	}
}
