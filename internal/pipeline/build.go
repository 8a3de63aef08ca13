package pipeline

import (
	"context"
	"fmt"
	"log"

	"vibe-commentator-bot/internal/commentary"
	"vibe-commentator-bot/internal/config"
	"vibe-commentator-bot/internal/media"
	"vibe-commentator-bot/internal/tts"
)

// NewDefaultProcessor wires the production components from config. A
// missing Gemini key is not an error; the templated generator takes over.
func NewDefaultProcessor(ctx context.Context, cfg *config.Config) (*Processor, error) {
	var textClient commentary.TextClient
	if cfg.GeminiAPIKey != "" {
		client, err := commentary.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("could not initialize Gemini client: %w", err)
		}
		textClient = client
	} else {
		log.Println("No Gemini API key configured, commentary will use the templated generator")
	}

	remote, remoteReady := tts.NewRemoteProvider(cfg.VoiceAPITokens, cfg.VoiceAPIURL, cfg.VoiceModelID)
	synthesizer := tts.NewService(
		remote,
		remoteReady,
		tts.NewGTTSProvider(),
		tts.NewLocalProvider(),
		cfg.DefaultTTSProvider,
		cfg.AllowMockFallback,
	)

	generator := commentary.NewGenerator(textClient, cfg.AllowMockFallback)
	validator := media.NewValidator(cfg.MaxVideoMB, cfg.MaxVideoSeconds)
	muxer := media.NewMuxer()

	return NewProcessor(validator, generator, synthesizer, muxer, cfg.DefaultLang), nil
}
