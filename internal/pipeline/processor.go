// Package pipeline sequences the commentary stages: validate the upload,
// build the prompt, generate text, synthesize speech, mux audio into the
// clip, and aggregate status notes.
package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"vibe-commentator-bot/internal/commentary"
	"vibe-commentator-bot/internal/errs"
	"vibe-commentator-bot/internal/notes"
	"vibe-commentator-bot/internal/tempfile"
)

// Request carries one upload through the pipeline. It is transient: nothing
// is persisted beyond the run's temp files.
type Request struct {
	VideoBytes  []byte
	Filename    string
	Vibe        string
	TeamA       string
	TeamB       string
	KeyMoments  string
	Language    string
	TTSProvider string
}

// Validator checks an uploaded clip and reports its duration.
type Validator interface {
	Validate(ctx context.Context, filename string, byteLen int64, path string) (float64, error)
}

// TextGenerator produces commentary text plus degradation notes.
type TextGenerator interface {
	Generate(ctx context.Context, pc commentary.PromptContext) (string, []string, error)
}

// SpeechSynthesizer renders commentary audio plus degradation notes.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, requestedProvider, language, vibeHint string) (string, []string, error)
}

// Muxer combines the source video with the generated audio.
type Muxer interface {
	Mux(ctx context.Context, videoPath, audioPath string) (string, []string, error)
}

type Processor struct {
	validator   Validator
	generator   TextGenerator
	synthesizer SpeechSynthesizer
	muxer       Muxer
	defaultLang string
}

func NewProcessor(validator Validator, generator TextGenerator, synthesizer SpeechSynthesizer, muxer Muxer, defaultLang string) *Processor {
	return &Processor{
		validator:   validator,
		generator:   generator,
		synthesizer: synthesizer,
		muxer:       muxer,
		defaultLang: defaultLang,
	}
}

// Generate runs one request start to finish. On failure the transient input
// copy and any orphaned audio file are removed before the typed error
// propagates; on success the caller owns the Result's files.
func (p *Processor) Generate(ctx context.Context, req Request) (*Result, error) {
	ext := filepath.Ext(req.Filename)
	if ext == "" {
		ext = ".mp4"
	}
	inputPath := tempfile.New("upload", ext)
	if err := os.WriteFile(inputPath, req.VideoBytes, 0o644); err != nil {
		return nil, wrapUnknown(err)
	}
	defer os.Remove(inputPath)

	duration, err := p.validator.Validate(ctx, req.Filename, int64(len(req.VideoBytes)), inputPath)
	if err != nil {
		return nil, wrapUnknown(err)
	}

	promptCtx := commentary.BuildPrompt(req.Vibe, req.TeamA, req.TeamB, req.KeyMoments, req.Language, p.defaultLang)

	commentaryText, llmNotes, err := p.generator.Generate(ctx, promptCtx)
	if err != nil {
		return nil, wrapUnknown(err)
	}
	if commentaryText == "" {
		return nil, errs.Pipeline(nil,
			"llm_empty",
			"LLM produced no commentary.",
			"Retry with more context.")
	}

	audioPath, ttsNotes, err := p.synthesizer.Synthesize(ctx, commentaryText, req.TTSProvider, promptCtx.Language, promptCtx.VibeKey)
	if err != nil {
		return nil, wrapUnknown(err)
	}

	videoPath, muxNotes, err := p.muxer.Mux(ctx, inputPath, audioPath)
	if err != nil {
		os.Remove(audioPath)
		return nil, wrapUnknown(err)
	}

	statusNotes := notes.Dedupe(append(append(llmNotes, ttsNotes...), muxNotes...))

	return &Result{
		CommentaryText:  commentaryText,
		AudioPath:       audioPath,
		VideoPath:       videoPath,
		DurationSeconds: duration,
		StatusNotes:     statusNotes,
	}, nil
}

// wrapUnknown leaves typed errors alone and converts anything else into the
// generic pipeline failure, so callers only ever see the four kinds.
func wrapUnknown(err error) error {
	if _, ok := errs.AsError(err); ok {
		return err
	}
	return errs.Pipeline(err,
		"pipeline_failure",
		"Unexpected pipeline failure.",
		"Please retry; if the issue persists, contact support.")
}
