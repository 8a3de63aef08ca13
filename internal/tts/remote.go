package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"vibe-commentator-bot/internal/apikeys"
	"vibe-commentator-bot/internal/errs"
	"vibe-commentator-bot/internal/tempfile"
)

// audioFetchTimeout bounds the download of a returned audio URL.
const audioFetchTimeout = 20 * time.Second

// RemoteProvider calls a hosted voice-synthesis model over HTTP. The model
// may answer with raw audio, a URL, a list of URLs, or an object holding
// either; extraction tries those shapes in order.
type RemoteProvider struct {
	keys        *apikeys.KeyManager
	endpoint    string
	modelID     string
	httpClient  *http.Client
	fetchClient *http.Client
}

// NewRemoteProvider returns the provider and whether it is actually usable.
// Without both a credential and a model id it is skipped from chains
// entirely rather than attempted.
func NewRemoteProvider(tokens []string, endpoint, modelID string) (*RemoteProvider, bool) {
	keys, err := apikeys.NewManager(tokens)
	if err != nil {
		keys = nil
	}
	provider := &RemoteProvider{
		keys:        keys,
		endpoint:    endpoint,
		modelID:     modelID,
		httpClient:  &http.Client{Timeout: 2 * time.Minute},
		fetchClient: &http.Client{Timeout: audioFetchTimeout},
	}
	return provider, provider.configured()
}

func (p *RemoteProvider) Name() string { return ProviderRemote }

func (p *RemoteProvider) configured() bool {
	return p.keys != nil && p.modelID != ""
}

func (p *RemoteProvider) Synthesize(ctx context.Context, req Request) (string, error) {
	if !p.configured() {
		return "", errs.External(
			"replicate_tts_unconfigured",
			"Remote voice service unavailable (missing token or model).",
			"Provide VOICE_API_TOKENS and VOICE_TTS_MODEL.")
	}

	payload := map[string]string{
		"model":    p.modelID,
		"text":     req.Text,
		"voice":    req.VibeKey,
		"language": req.Language,
	}
	jsonPayload, _ := json.Marshal(payload)

	var body []byte
	var contentType string
	attempts := p.keys.Count()
	for i := 0; i < attempts; i++ {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewBuffer(jsonPayload))
		if err != nil {
			return "", err
		}
		httpReq.Header.Set("Authorization", "Token "+p.keys.CurrentKey())
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := p.httpClient.Do(httpReq)
		if err != nil {
			return "", fmt.Errorf("remote voice request failed: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusUnauthorized {
			resp.Body.Close()
			p.keys.Rotate()
			continue
		}

		if resp.StatusCode != http.StatusOK {
			detail, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return "", fmt.Errorf("remote voice returned non-200 status: %s - %s", resp.Status, string(detail))
		}

		body, err = io.ReadAll(resp.Body)
		contentType = resp.Header.Get("Content-Type")
		resp.Body.Close()
		if err != nil {
			return "", fmt.Errorf("failed to read voice response body: %w", err)
		}
		break
	}
	if body == nil {
		return "", fmt.Errorf("all voice API keys failed or were exhausted")
	}

	audioBytes, err := p.extractAudio(ctx, body, contentType)
	if err != nil {
		return "", err
	}

	audioPath := tempfile.New("remotevoice", ".mp3")
	if err := os.WriteFile(audioPath, audioBytes, 0o644); err != nil {
		return "", err
	}
	return audioPath, nil
}

// extractAudio resolves the model output to audio bytes, trying: a list of
// URLs, a single URL string, an object with an "audio" or "url" field, and
// finally the raw body itself.
func (p *RemoteProvider) extractAudio(ctx context.Context, body []byte, contentType string) ([]byte, error) {
	if strings.HasPrefix(contentType, "audio/") && len(body) > 0 {
		return body, nil
	}

	var candidates []string
	var decoded any
	if err := json.Unmarshal(body, &decoded); err == nil {
		switch value := decoded.(type) {
		case []any:
			for _, item := range value {
				if s, ok := item.(string); ok {
					candidates = append(candidates, s)
				}
			}
		case string:
			candidates = append(candidates, value)
		case map[string]any:
			if s, ok := value["audio"].(string); ok {
				candidates = append(candidates, s)
			} else if s, ok := value["url"].(string); ok {
				candidates = append(candidates, s)
			}
		}
	} else if len(body) > 0 {
		// Not JSON and not declared audio; treat as raw bytes.
		return body, nil
	}

	for _, candidate := range candidates {
		if !strings.HasPrefix(candidate, "http") {
			continue
		}
		audioBytes, err := p.fetchAudio(ctx, candidate)
		if err != nil {
			return nil, err
		}
		return audioBytes, nil
	}

	return nil, errs.External(
		"replicate_tts_empty",
		"Remote voice service did not return audio bytes.",
		"Try again or switch to the default voice.")
}

func (p *RemoteProvider) fetchAudio(ctx context.Context, audioURL string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, audioURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.fetchClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("audio fetch failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("audio fetch returned non-200 status: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
