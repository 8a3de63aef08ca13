package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"vibe-commentator-bot/internal/errs"
)

var allowedExtensions = map[string]struct{}{
	".mp4":  {},
	".mov":  {},
	".webm": {},
}

// Validator runs the upload checks in a fixed order: extension, size,
// decodability, zero duration, max duration. The first failure wins and the
// extension/size checks never touch the file.
type Validator struct {
	MaxBytes   int64
	MaxSeconds float64
	Prober     Prober
}

func NewValidator(maxMB int, maxSeconds int) *Validator {
	return &Validator{
		MaxBytes:   int64(maxMB) * 1024 * 1024,
		MaxSeconds: float64(maxSeconds),
		Prober:     FFProbe{},
	}
}

// Validate returns the decoded duration in seconds of the clip at path.
func (v *Validator) Validate(ctx context.Context, filename string, byteLen int64, path string) (float64, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		label := ext
		if label == "" {
			label = "unknown"
		}
		return 0, errs.Validation(
			"invalid_format",
			fmt.Sprintf("Unsupported video format: %s", label),
			"Use mp4, mov, or webm clips.")
	}

	if byteLen > v.MaxBytes {
		return 0, errs.Validation(
			"file_too_large",
			fmt.Sprintf("File exceeds %dMB limit.", v.MaxBytes/(1024*1024)),
			fmt.Sprintf("Upload a smaller clip (<=%dMB).", v.MaxBytes/(1024*1024)))
	}

	duration, err := v.Prober.Duration(ctx, path)
	if err != nil {
		return 0, errs.ValidationWrap(err,
			"invalid_video",
			"Unable to read video duration.",
			"Ensure the file is a playable mp4/mov/webm clip.")
	}

	if duration <= 0 {
		return 0, errs.Validation(
			"zero_duration",
			"Video appears empty.",
			"Provide a clip with visible frames.")
	}

	if duration > v.MaxSeconds {
		return 0, errs.Validation(
			"video_too_long",
			fmt.Sprintf("Clip is longer than %.0f seconds.", v.MaxSeconds),
			fmt.Sprintf("Trim the clip to 10-%.0f seconds before uploading.", v.MaxSeconds))
	}

	return duration, nil
}
