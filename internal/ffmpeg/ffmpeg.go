// Package ffmpeg shells out to ffmpeg/ffprobe. Each invocation blocks until
// the child process exits; stderr is captured so failures carry the tool's
// own diagnostics.
package ffmpeg

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jvens/matchclipper/internal/config"
)

// stderrTailLines bounds how much ffmpeg stderr is kept for error reports.
const stderrTailLines = 40

// Executor handles all ffmpeg operations
type Executor struct {
	logger      zerolog.Logger
	ffmpegPath  string
	ffprobePath string
	hideBanner  bool
}

// New creates a new ffmpeg executor, resolving both binaries up front so a
// missing install fails before any work is planned.
func New(logger zerolog.Logger, cfg *config.FFmpegConfig) (*Executor, error) {
	ffmpegPath, err := exec.LookPath(cfg.BinaryPath)
	if err != nil {
		return nil, fmt.Errorf("ffmpeg not found (%s): %w", cfg.BinaryPath, err)
	}

	ffprobePath, err := exec.LookPath(cfg.ProbePath)
	if err != nil {
		return nil, fmt.Errorf("ffprobe not found (%s): %w", cfg.ProbePath, err)
	}

	return &Executor{
		logger:      logger.With().Str("component", "ffmpeg").Logger(),
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
		hideBanner:  cfg.HideBanner,
	}, nil
}

// ToolError reports a non-zero ffmpeg exit along with the tail of its
// stderr output.
type ToolError struct {
	ExitCode int
	Output   string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("ffmpeg exited with code %d", e.ExitCode)
}

// RunOptions configures one ffmpeg invocation
type RunOptions struct {
	Args       []string
	LogHandler func(line string)
}

// Run executes ffmpeg with the given arguments and waits for it to exit.
// On non-zero exit the returned error is a *ToolError carrying captured
// stderr. Context cancellation kills the child process.
func (e *Executor) Run(ctx context.Context, opts RunOptions) error {
	if len(opts.Args) == 0 {
		return fmt.Errorf("no arguments provided")
	}

	// -y: overwrite existing output without prompting.
	baseArgs := []string{"-y"}
	if e.hideBanner {
		baseArgs = append(baseArgs, "-hide_banner")
	}
	args := append(baseArgs, opts.Args...)

	e.logger.Debug().
		Str("cmd", e.ffmpegPath).
		Strs("args", args).
		Msg("executing ffmpeg")

	cmd := exec.CommandContext(ctx, e.ffmpegPath, args...)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	// Drain stderr before Wait; ffmpeg writes everything of interest there.
	tail := make([]string, 0, stderrTailLines)
	scanner := bufio.NewScanner(stderr)
	for scanner.Scan() {
		line := scanner.Text()
		if len(tail) == stderrTailLines {
			copy(tail, tail[1:])
			tail = tail[:stderrTailLines-1]
		}
		tail = append(tail, line)
		if opts.LogHandler != nil {
			opts.LogHandler(line)
		}
	}

	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		return &ToolError{ExitCode: code, Output: strings.Join(tail, "\n")}
	}

	return nil
}
