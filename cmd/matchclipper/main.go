// Command matchclipper splits one long event recording into per-match clips,
// using the millisecond timestamps from a match-logging export to find each
// clip on the video timeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jvens/matchclipper/internal/config"
	"github.com/jvens/matchclipper/internal/ffmpeg"
	"github.com/jvens/matchclipper/internal/logging"
	"github.com/jvens/matchclipper/internal/pipeline"
	"github.com/jvens/matchclipper/pkg/util"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

var (
	cfgFile string
	verbose bool

	jsonPath    string
	videoPath   string
	outDir      string
	matchRange  []float64
	offset      float64
	startKey    string
	endKey      string
	startOffset float64
	endOffset   float64
	dryRun      bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "matchclipper",
	Short: "matchclipper - cut per-match clips from a long event recording",
	Long: "Splits a large video file into match clips based on an export from the " +
		"event logging system. Wall-clock event timestamps are aligned to the video " +
		"timeline with --offset; each clip is stream-copied with ffmpeg.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(verbose)

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		cmd.SetContext(config.WithConfig(cmd.Context(), cfg))
		return nil
	},
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := config.FromContext(cmd.Context())

	var rng *pipeline.Range
	switch len(matchRange) {
	case 0:
	case 2:
		rng = &pipeline.Range{Lo: matchRange[0], Hi: matchRange[1]}
	default:
		return fmt.Errorf("--range wants exactly two values, e.g. --range 3,7")
	}

	if !util.FileExists(jsonPath) {
		return fmt.Errorf("JSON file %s not found", jsonPath)
	}
	if !util.FileExists(videoPath) {
		return fmt.Errorf("video file %s not found", videoPath)
	}

	ex, err := ffmpeg.New(log.Logger, &cfg.FFmpeg)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		MatchesPath: jsonPath,
		VideoPath:   videoPath,
		OutDir:      outDir,
		Range:       rng,
		Offset:      offset,
		StartKey:    startKey,
		EndKey:      endKey,
		StartAdjust: startOffset,
		EndAdjust:   endOffset,
		DryRun:      dryRun,
	}

	_, err = pipeline.Run(cmd.Context(), log.Logger, cfg, ex, opts)
	return err
}

var probeCmd = &cobra.Command{
	Use:   "probe [video file]",
	Short: "Show container, codec and duration info for a video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())

		ex, err := ffmpeg.New(log.Logger, &cfg.FFmpeg)
		if err != nil {
			return err
		}

		info, err := ex.ProbeVideo(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		log.Info().
			Str("file", info.FilePath).
			Str("format", info.Format).
			Str("duration", util.FormatClock(info.Duration.Seconds())).
			Int("width", info.Width).
			Int("height", info.Height).
			Float64("fps", info.FPS).
			Str("video_codec", info.VideoCodec).
			Bool("has_audio", info.HasAudio).
			Str("audio_codec", info.AudioCodec).
			Msg("video info")

		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("matchclipper %s (%s)\n", version, commit)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./matchclipper.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.Flags().StringVar(&jsonPath, "json", "", "path to the JSON file containing matches")
	rootCmd.Flags().StringVar(&videoPath, "video", "", "path to the video file")
	rootCmd.Flags().StringVar(&outDir, "out", "", "output directory for the generated clips (created if missing)")
	rootCmd.Flags().Float64SliceVar(&matchRange, "range", nil, "inclusive range of match numbers to process, e.g. 3,7")
	rootCmd.Flags().Float64Var(&offset, "offset", 0, "seconds to align the video file with the event wall clock")
	rootCmd.Flags().StringVar(&startKey, "start", "", "event key marking the clip start (e.g. MATCH_START, SHOW_PREVIEW)")
	rootCmd.Flags().StringVar(&endKey, "end", "", "event key marking the clip end (e.g. MATCH_POST)")
	rootCmd.Flags().Float64Var(&startOffset, "startOffset", 0, "seconds to adjust the start event (can be negative)")
	rootCmd.Flags().Float64Var(&endOffset, "endOffset", 0, "seconds to adjust the end event (can be negative)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "log the extraction plan without running ffmpeg")

	for _, flag := range []string{"json", "video", "out", "offset", "start", "end"} {
		cobra.CheckErr(rootCmd.MarkFlagRequired(flag))
	}

	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(versionCmd)
}
