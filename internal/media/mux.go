package media

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"vibe-commentator-bot/internal/errs"
	"vibe-commentator-bot/internal/notes"
	"vibe-commentator-bot/internal/tempfile"
)

// Muxer attaches a generated audio track to the source video, re-encoding
// with a fixed h264/aac codec pair. When the audio runs longer than the
// video it is trimmed to the video length.
type Muxer struct {
	Prober Prober
	run    func(ctx context.Context, name string, args ...string) error
}

func NewMuxer() *Muxer {
	return &Muxer{Prober: FFProbe{}, run: runCommand}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w (%s)", name, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// Mux writes a new mp4 combining videoPath's frames with audioPath's sound
// and returns its path plus any notes. The output file is removed on failure.
func (m *Muxer) Mux(ctx context.Context, videoPath, audioPath string) (string, []string, error) {
	videoDuration, err := m.Prober.Duration(ctx, videoPath)
	if err != nil {
		return "", nil, muxFailure(err)
	}
	audioDuration, err := m.Prober.Duration(ctx, audioPath)
	if err != nil {
		return "", nil, muxFailure(err)
	}

	fps, err := m.Prober.FrameRate(ctx, videoPath)
	if err != nil || fps <= 0 {
		fps = 30
	}

	trimmed := audioDuration > videoDuration
	outputPath := tempfile.New("commentated", ".mp4")

	args := muxArgs(videoPath, audioPath, outputPath, videoDuration, fps, trimmed)
	if err := m.run(ctx, "ffmpeg", args...); err != nil {
		os.Remove(outputPath)
		return "", nil, muxFailure(err)
	}

	var muxNotes []string
	if trimmed {
		muxNotes = append(muxNotes, notes.AudioTrimmed)
	}
	return outputPath, muxNotes, nil
}

func muxArgs(videoPath, audioPath, outputPath string, videoDuration, fps float64, trimmed bool) []string {
	args := []string{
		"-y",
		"-i", videoPath,
		"-i", audioPath,
		"-map", "0:v:0",
		"-map", "1:a:0",
		"-c:v", "libx264",
		"-c:a", "aac",
		"-r", fmt.Sprintf("%g", fps),
	}
	if trimmed {
		args = append(args, "-t", fmt.Sprintf("%f", videoDuration))
	}
	return append(args, outputPath)
}

func muxFailure(err error) error {
	return errs.Muxing(err,
		"mux_failure",
		"Could not mux audio and video.",
		"Ensure ffmpeg is installed and retry.")
}
