// Package pipeline runs the extraction end to end: load the match export,
// filter and anchor it, align each match to the video timeline, and cut one
// clip per match. Strictly sequential; one clip finishes before the next
// starts, and a single clip failure never aborts the batch.
package pipeline

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/jvens/matchclipper/internal/clips"
	"github.com/jvens/matchclipper/internal/config"
	"github.com/jvens/matchclipper/internal/ffmpeg"
	"github.com/jvens/matchclipper/internal/matches"
	"github.com/jvens/matchclipper/internal/naming"
	"github.com/jvens/matchclipper/pkg/util"
)

// Run executes the full pipeline. A non-nil error is fatal input (missing
// or malformed export, no reference event); per-match problems and ffmpeg
// failures are logged, counted, and do not produce an error.
func Run(ctx context.Context, logger zerolog.Logger, cfg *config.Config, ex Extractor, opts Options) (Stats, error) {
	log := logger.With().Str("component", "pipeline").Logger()
	var stats Stats

	records, err := matches.Load(opts.MatchesPath)
	if err != nil {
		return stats, err
	}

	if opts.Range != nil {
		records = matches.FilterRange(records, opts.Range.Lo, opts.Range.Hi)
	}
	if len(records) == 0 {
		log.Warn().Msg("No matches found for the specified range")
		return stats, nil
	}
	stats.Total = len(records)

	ref, err := matches.ReferenceTime(records, opts.StartKey)
	if err != nil {
		return stats, err
	}
	log.Info().
		Str("event", opts.StartKey).
		Str("time", util.FormatClock(ref)).
		Msg("reference event time")

	if err := util.EnsureDir(opts.OutDir); err != nil {
		return stats, err
	}

	// Probe is advisory: it lets us flag clips that run past the end of the
	// recording, which usually means the offset is wrong or the recording
	// paused. Extraction proceeds either way.
	var videoLen float64
	if info, err := ex.ProbeVideo(ctx, opts.VideoPath); err != nil {
		log.Warn().Err(err).Msg("could not probe video; skipping length checks")
	} else {
		videoLen = info.Duration.Seconds()
	}

	aligner := &clips.Aligner{
		Reference:   ref,
		Offset:      opts.Offset,
		StartKey:    opts.StartKey,
		EndKey:      opts.EndKey,
		StartAdjust: opts.StartAdjust,
		EndAdjust:   opts.EndAdjust,
	}

	matches.SortByNumber(records)
	for i := range records {
		rec := &records[i]

		clip, err := aligner.Align(rec)
		if err != nil {
			stats.Skipped++
			log.Warn().Err(err).Str("match", rec.DisplayName()).Msg("skipping match")
			continue
		}
		clip.Output = naming.OutputPath(opts.OutDir, cfg.Output.FilePrefix, clip.Name, cfg.Output.Container)

		log.Info().
			Str("match", clip.Name).
			Str("video_start", util.FormatClock(clip.Start)).
			Str("duration", util.FormatClock(clip.Duration)).
			Str("output", clip.Output).
			Msg("processing match")

		if videoLen > 0 && clip.End() > videoLen {
			log.Warn().
				Str("match", clip.Name).
				Str("clip_end", util.FormatClock(clip.End())).
				Str("video_length", util.FormatClock(videoLen)).
				Msg("clip extends past end of recording; check --offset, the recording may have paused or drifted")
		}

		if opts.DryRun {
			stats.Extracted++
			continue
		}

		err = ex.ExtractClip(ctx, opts.VideoPath, ffmpeg.ClipOptions{
			Start:    clip.Start,
			Duration: clip.Duration,
			Output:   clip.Output,
		})
		if err != nil {
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}
			stats.Failed++
			evt := log.Error().Str("match", clip.Name).Str("output", clip.Output)
			var toolErr *ffmpeg.ToolError
			if errors.As(err, &toolErr) {
				evt = evt.Int("exit_code", toolErr.ExitCode).Str("stderr", toolErr.Output)
			} else {
				evt = evt.Err(err)
			}
			evt.Msg("clip extraction failed")
			continue
		}
		stats.Extracted++
	}

	log.Info().
		Int("total", stats.Total).
		Int("extracted", stats.Extracted).
		Int("skipped", stats.Skipped).
		Int("failed", stats.Failed).
		Msg("run complete")

	return stats, nil
}
