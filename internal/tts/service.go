package tts

import (
	"context"
	"log"
	"strings"

	"vibe-commentator-bot/internal/errs"
	"vibe-commentator-bot/internal/notes"
)

// Service runs the provider chain for one synthesis request. The chain is
// cost-ordered degradation: prefer what the caller asked for, fall toward
// always-available engines, and never hard-fail while the placeholder
// fallback is permitted.
type Service struct {
	remote          Provider
	remoteReady     bool
	gtts            Provider
	local           Provider
	defaultProvider string
	allowMock       bool
}

// NewService wires the three concrete providers. remoteReady reports
// whether the remote provider has both a credential and a model configured;
// when false a request for it silently starts from the default provider.
func NewService(remote Provider, remoteReady bool, gtts, local Provider, defaultProvider string, allowMock bool) *Service {
	if defaultProvider == "" {
		defaultProvider = ProviderGTTS
	}
	return &Service{
		remote:          remote,
		remoteReady:     remoteReady,
		gtts:            gtts,
		local:           local,
		defaultProvider: strings.ToLower(defaultProvider),
		allowMock:       allowMock,
	}
}

// chain builds the ordered, deduplicated provider list for a request.
func (s *Service) chain(requested string) []Provider {
	requested = strings.ToLower(strings.TrimSpace(requested))
	if requested == "" {
		requested = s.defaultProvider
	}

	var providers []Provider
	add := func(p Provider) {
		for _, existing := range providers {
			if existing.Name() == p.Name() {
				return
			}
		}
		providers = append(providers, p)
	}

	switch requested {
	case ProviderRemote:
		if s.remoteReady {
			add(s.remote)
		}
		add(s.gtts)
		add(s.local)
	case ProviderGTTS:
		add(s.gtts)
		add(s.local)
	case ProviderLocal:
		add(s.local)
		add(s.gtts)
	default:
		add(s.gtts)
		add(s.local)
	}
	return providers
}

// Synthesize tries each provider in chain order. A non-final failure
// records a fallback note and moves on; when every provider fails the
// placeholder clip is rendered (or a typed error raised when that fallback
// is disabled).
func (s *Service) Synthesize(ctx context.Context, text, requestedProvider, language, vibeHint string) (string, []string, error) {
	req := Request{
		Text:     text,
		Language: bareLanguage(language),
		VibeKey:  strings.ToLower(strings.TrimSpace(vibeHint)),
	}

	providers := s.chain(requestedProvider)
	var synthNotes []string
	var lastErr error

	for i, provider := range providers {
		audioPath, err := provider.Synthesize(ctx, req)
		if err == nil {
			return audioPath, synthNotes, nil
		}
		lastErr = err
		log.Printf("TTS provider %s failed: %v", provider.Name(), err)
		if i != len(providers)-1 {
			synthNotes = append(synthNotes, notes.FallbackVoice)
		}
	}

	if !s.allowMock {
		return "", nil, errs.ExternalWrap(lastErr,
			"tts_failure",
			"TTS generation failed.",
			"Try switching voice provider.")
	}

	synthNotes = append(synthNotes, notes.PlaceholderAudio)
	audioPath, err := writePlaceholderWAV()
	if err != nil {
		return "", nil, errs.ExternalWrap(err,
			"tts_failure",
			"TTS generation failed.",
			"Try switching voice provider.")
	}
	return audioPath, synthNotes, nil
}

// bareLanguage strips any region subtag: "es-MX" becomes "es".
func bareLanguage(language string) string {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		return "en"
	}
	code, _, _ := strings.Cut(language, "-")
	return code
}
