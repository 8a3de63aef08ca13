package tts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"vibe-commentator-bot/internal/tempfile"
)

// gttsMaxChunk is the longest text the speech endpoint accepts per request,
// in runes. Longer commentary is split and the MP3 segments concatenated.
const gttsMaxChunk = 100

// tldByVibe selects the regional accent endpoint for the default speech
// service. Language overrides the vibe: Spanish always gets the Mexican
// endpoint and Korean the Korean one.
var tldByVibe = map[string]string{
	"hype":           "com",
	"calm analysis":  "com",
	"british pundit": "co.uk",
	"latin radio":    "com.mx",
}

// GTTSProvider renders speech through the Google Translate TTS endpoint.
// It needs no credential, which makes it the default fallback target.
type GTTSProvider struct {
	httpClient *http.Client
	endpoint   func(tld string) string
}

func NewGTTSProvider() *GTTSProvider {
	return &GTTSProvider{
		httpClient: &http.Client{Timeout: time.Minute},
		endpoint: func(tld string) string {
			return fmt.Sprintf("https://translate.google.%s/translate_tts", tld)
		},
	}
}

func (p *GTTSProvider) Name() string { return ProviderGTTS }

func (p *GTTSProvider) Synthesize(ctx context.Context, req Request) (string, error) {
	chunks := splitChunks(req.Text, gttsMaxChunk)
	if len(chunks) == 0 {
		return "", fmt.Errorf("gtts given empty text")
	}

	tld := resolveTLD(req.VibeKey, req.Language)
	var audioBytes []byte
	for _, chunk := range chunks {
		segment, err := p.fetchChunk(ctx, tld, req.Language, chunk)
		if err != nil {
			return "", err
		}
		audioBytes = append(audioBytes, segment...)
	}

	audioPath := tempfile.New("gtts", ".mp3")
	if err := os.WriteFile(audioPath, audioBytes, 0o644); err != nil {
		return "", err
	}
	return audioPath, nil
}

func (p *GTTSProvider) fetchChunk(ctx context.Context, tld, language, chunk string) ([]byte, error) {
	endpoint := fmt.Sprintf(
		"%s?ie=UTF-8&client=tw-ob&tl=%s&q=%s",
		p.endpoint(tld),
		url.QueryEscape(language),
		url.QueryEscape(chunk),
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64)")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gtts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gtts returned non-200 status: %s", resp.Status)
	}

	segment, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gtts response body: %w", err)
	}
	if len(segment) == 0 {
		return nil, fmt.Errorf("gtts returned empty audio")
	}
	return segment, nil
}

// splitChunks breaks text into pieces of at most maxRunes runes, cutting on
// whitespace where possible. A single word longer than the limit is split
// mid-word rather than dropped.
func splitChunks(text string, maxRunes int) []string {
	var chunks []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, string(current))
			current = nil
		}
	}

	for _, word := range strings.Fields(text) {
		runes := []rune(word)
		if len(runes) > maxRunes {
			flush()
			for len(runes) > maxRunes {
				chunks = append(chunks, string(runes[:maxRunes]))
				runes = runes[maxRunes:]
			}
			current = append(current, runes...)
			continue
		}
		if len(current) > 0 && len(current)+1+len(runes) > maxRunes {
			flush()
		}
		if len(current) > 0 {
			current = append(current, ' ')
		}
		current = append(current, runes...)
	}
	flush()
	return chunks
}

func resolveTLD(vibeKey, language string) string {
	if strings.HasPrefix(language, "es") {
		return "com.mx"
	}
	if strings.HasPrefix(language, "ko") {
		return "co.kr"
	}
	if tld, ok := tldByVibe[vibeKey]; ok {
		return tld
	}
	return "com"
}
