package tts

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"vibe-commentator-bot/internal/errs"
	"vibe-commentator-bot/internal/tempfile"
)

// LocalVoice describes one installed engine voice.
type LocalVoice struct {
	ID        string
	Name      string
	Languages []string
}

// LocalProvider drives the espeak engine installed on the host. It needs no
// network, which makes it the terminal real provider in most chains.
type LocalProvider struct {
	lookPath func(file string) (string, error)
	run      func(ctx context.Context, name string, args ...string) ([]byte, error)
}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{
		lookPath: exec.LookPath,
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			cmd := exec.CommandContext(ctx, name, args...)
			var stdout, stderr bytes.Buffer
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr
			if err := cmd.Run(); err != nil {
				return nil, fmt.Errorf("%s: %w (%s)", name, err, strings.TrimSpace(stderr.String()))
			}
			return stdout.Bytes(), nil
		},
	}
}

func (p *LocalProvider) Name() string { return ProviderLocal }

func (p *LocalProvider) Synthesize(ctx context.Context, req Request) (string, error) {
	if _, err := p.lookPath("espeak"); err != nil {
		return "", errs.ExternalWrap(err,
			"local_tts_unavailable",
			"Local TTS engine is not installed.",
			"Install espeak and retry.")
	}

	voice := ""
	if listing, err := p.run(ctx, "espeak", "--voices"); err == nil {
		voices := parseVoices(string(listing))
		voice = selectVoice(voices, voiceTokens(req.Language, req.VibeKey))
	}

	audioPath := tempfile.New("localvoice", ".wav")
	args := []string{"-w", audioPath, "-s", strconv.Itoa(speakingRate(req.VibeKey))}
	if voice != "" {
		args = append(args, "-v", voice)
	}
	args = append(args, req.Text)

	if _, err := p.run(ctx, "espeak", args...); err != nil {
		return "", fmt.Errorf("local synthesis failed: %w", err)
	}
	return audioPath, nil
}

// parseVoices reads `espeak --voices` output. Each data line carries
// priority, language tag, age/gender, voice name and file identifier, with
// optional extra language tags trailing.
func parseVoices(listing string) []LocalVoice {
	var voices []LocalVoice
	for i, line := range strings.Split(listing, "\n") {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}
		voice := LocalVoice{
			ID:        fields[4],
			Name:      fields[3],
			Languages: append([]string{fields[1]}, fields[5:]...),
		}
		voices = append(voices, voice)
	}
	return voices
}

// voiceTokens derives the match tokens for the language/vibe pair.
func voiceTokens(language, vibeKey string) []string {
	switch {
	case strings.HasPrefix(language, "es") || vibeKey == "latin radio":
		return []string{"es"}
	case strings.HasPrefix(language, "ko"):
		return []string{"ko"}
	case vibeKey == "british pundit":
		return []string{"en-gb", "english"}
	default:
		return []string{"en"}
	}
}

// selectVoice returns the first voice whose id, name and language tags
// together contain every token, case-insensitively. No match means no
// explicit voice selection.
func selectVoice(voices []LocalVoice, tokens []string) string {
	for _, voice := range voices {
		sample := strings.ToLower(voice.ID + " " + voice.Name + " " + strings.Join(voice.Languages, " "))
		matched := true
		for _, token := range tokens {
			if !strings.Contains(sample, strings.ToLower(token)) {
				matched = false
				break
			}
		}
		if matched {
			return voice.ID
		}
	}
	return ""
}

// speakingRate maps vibes to words-per-minute.
func speakingRate(vibeKey string) int {
	switch vibeKey {
	case "latin radio":
		return 210
	case "hype":
		return 195
	case "british pundit":
		return 175
	case "calm analysis":
		return 165
	default:
		return 185
	}
}
