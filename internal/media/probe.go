package media

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Prober reads playback metadata from a media file on disk.
type Prober interface {
	Duration(ctx context.Context, path string) (float64, error)
	FrameRate(ctx context.Context, path string) (float64, error)
}

// FFProbe shells out to ffprobe for metadata.
type FFProbe struct{}

func (FFProbe) Duration(ctx context.Context, path string) (float64, error) {
	out, err := runProbe(ctx,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, err
	}
	duration, err := strconv.ParseFloat(out, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable duration %q: %w", out, err)
	}
	return duration, nil
}

func (FFProbe) FrameRate(ctx context.Context, path string) (float64, error) {
	out, err := runProbe(ctx,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=r_frame_rate",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, err
	}
	return parseFrameRate(out)
}

func runProbe(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "ffprobe", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ffprobe: %w (%s)", err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

// parseFrameRate handles ffprobe's rational notation, e.g. "30000/1001".
func parseFrameRate(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if num, den, ok := strings.Cut(raw, "/"); ok {
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, fmt.Errorf("unparseable frame rate %q: %w", raw, err)
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil || d == 0 {
			return 0, fmt.Errorf("unparseable frame rate %q", raw)
		}
		return n / d, nil
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable frame rate %q: %w", raw, err)
	}
	return rate, nil
}
