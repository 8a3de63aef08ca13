// Package tts converts commentary text into an audio file through an
// ordered chain of fallback providers, with a silent placeholder clip as
// the guaranteed last resort.
package tts

import "context"

// Provider names accepted in requests.
const (
	ProviderRemote = "remote"
	ProviderGTTS   = "gtts"
	ProviderLocal  = "local"
)

// Request carries one synthesis job. Language is a bare code ("es", not
// "es-MX"); VibeKey is a normalized vibe used as a voice hint.
type Request struct {
	Text     string
	Language string
	VibeKey  string
}

// Provider is a single speech backend. Synthesize writes an audio file and
// returns its path; the caller owns the file.
type Provider interface {
	Name() string
	Synthesize(ctx context.Context, req Request) (string, error)
}
