package ffmpeg

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvens/matchclipper/internal/config"
)

// skipIfNoFFmpeg skips the test if ffmpeg is not available
func skipIfNoFFmpeg(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not found in PATH")
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		t.Skip("ffprobe not found in PATH")
	}
}

// fakeTool writes an executable shell script into dir and returns its path.
func fakeTool(t *testing.T, dir, name, script string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))
	return path
}

func fakeExecutor(t *testing.T, ffmpegScript string) *Executor {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.FFmpegConfig{
		BinaryPath: fakeTool(t, dir, "ffmpeg", ffmpegScript),
		ProbePath:  fakeTool(t, dir, "ffprobe", "exit 0"),
	}

	e, err := New(zerolog.Nop(), cfg)
	require.NoError(t, err)
	return e
}

func TestExecutorCreation(t *testing.T) {
	skipIfNoFFmpeg(t)

	e, err := New(zerolog.Nop(), &config.FFmpegConfig{BinaryPath: "ffmpeg", ProbePath: "ffprobe"})
	require.NoError(t, err)
	assert.NotEmpty(t, e.ffmpegPath)
	assert.NotEmpty(t, e.ffprobePath)
}

func TestExecutorCreationMissingBinary(t *testing.T) {
	_, err := New(zerolog.Nop(), &config.FFmpegConfig{
		BinaryPath: "definitely-not-ffmpeg-binary",
		ProbePath:  "ffprobe",
	})
	assert.Error(t, err)
}

func TestRunSuccess(t *testing.T) {
	e := fakeExecutor(t, "exit 0")

	err := e.Run(context.Background(), RunOptions{Args: []string{"-i", "in.mkv", "out.mkv"}})
	assert.NoError(t, err)
}

func TestRunFailureCapturesStderr(t *testing.T) {
	e := fakeExecutor(t, `echo "in.mkv: No such file or directory" >&2; exit 1`)

	var logged []string
	err := e.Run(context.Background(), RunOptions{
		Args:       []string{"-i", "in.mkv", "out.mkv"},
		LogHandler: func(line string) { logged = append(logged, line) },
	})

	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, 1, toolErr.ExitCode)
	assert.Contains(t, toolErr.Output, "No such file or directory")
	assert.Len(t, logged, 1)
}

func TestRunNoArgs(t *testing.T) {
	e := fakeExecutor(t, "exit 0")
	assert.Error(t, e.Run(context.Background(), RunOptions{}))
}

func TestRunCancelled(t *testing.T) {
	e := fakeExecutor(t, "sleep 10")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := e.Run(ctx, RunOptions{Args: []string{"-i", "in.mkv", "out.mkv"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractClipRejectsNonPositiveDuration(t *testing.T) {
	e := fakeExecutor(t, "exit 0")

	err := e.ExtractClip(context.Background(), "in.mkv", ClipOptions{
		Start:    10,
		Duration: 0,
		Output:   "out.mkv",
	})
	assert.Error(t, err)
}

func TestClipArgs(t *testing.T) {
	args := ClipArgs("recording.mkv", ClipOptions{
		Start:    115,
		Duration: 147.5,
		Output:   "out/full-match-Match_4.mkv",
	})

	assert.Equal(t, []string{
		"-i", "recording.mkv",
		"-ss", "115.000",
		"-t", "147.500",
		"-c", "copy",
		"out/full-match-Match_4.mkv",
	}, args)
}

func TestParseFrameRate(t *testing.T) {
	assert.Equal(t, 30.0, parseFrameRate("30/1"))
	assert.Equal(t, 29.97, parseFrameRate("2997/100"))
	assert.Equal(t, 0.0, parseFrameRate("garbage"))
	assert.Equal(t, 0.0, parseFrameRate("1/0"))
}
