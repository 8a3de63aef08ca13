package commentary

import (
	"fmt"
	"strings"
)

const (
	DefaultVibe     = "hype"
	DefaultLanguage = "en"
)

// vibeDirectives maps each known vibe to the tonal instruction woven into
// the prompt. Unknown vibes silently normalize to DefaultVibe.
var vibeDirectives = map[string]string{
	"hype":           "Maximum adrenaline, breathless goal call, celebrate the moment like a cup final.",
	"calm analysis":  "Measured insight with rising excitement, weaving tactics into the play-by-play.",
	"british pundit": "Classic Premier League drama, vivid metaphors, clipped delivery with punchy exclamations.",
	"latin radio":    "Rapid-fire castellano, rolling r's, elongated goal shouts, crowd-swept emotion.",
}

const systemInstruction = "SYSTEM: You are a live football commentator delivering a broadcast call. Paint the picture with elite-match jargon\n" +
	"(edge of the box, whipped cross, top bins, box-to-box, counter-press), weave in crowd reaction, and keep it family-friendly.\n" +
	"Use two or three punchy sentences that mix short bursts with longer build-ups, include at least two exclamation points, and\n" +
	"make the decisive moment feel seismic. Do not mention 'video' or 'silence'."

// PromptContext is the immutable output of BuildPrompt. Team names are
// carried as structured fields so downstream consumers never re-parse the
// rendered prompt text.
type PromptContext struct {
	Prompt   string
	Language string
	VibeKey  string
	TeamA    string
	TeamB    string
}

// Vibes lists the known vibe keys in a stable order.
func Vibes() []string {
	return []string{"hype", "calm analysis", "british pundit", "latin radio"}
}

// NormalizeVibe trims and lower-cases the vibe, defaulting to DefaultVibe
// when the result is not a known key.
func NormalizeVibe(vibe string) string {
	key := strings.ToLower(strings.TrimSpace(vibe))
	if _, ok := vibeDirectives[key]; !ok {
		return DefaultVibe
	}
	return key
}

// NormalizeLanguage trims and lower-cases the code, falling back to
// defaultLang (or DefaultLanguage) when blank.
func NormalizeLanguage(language, defaultLang string) string {
	if defaultLang == "" {
		defaultLang = DefaultLanguage
	}
	code := strings.ToLower(strings.TrimSpace(language))
	if code == "" {
		return strings.ToLower(strings.TrimSpace(defaultLang))
	}
	return code
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

// BuildPrompt renders the deterministic commentary prompt. It is a pure
// function of its inputs: no randomness, no external calls.
func BuildPrompt(vibe, teamA, teamB, keyMoments, language, defaultLang string) PromptContext {
	vibeKey := NormalizeVibe(vibe)
	languageCode := NormalizeLanguage(language, defaultLang)
	nameA := orDefault(teamA, "Team A")
	nameB := orDefault(teamB, "Team B")
	moments := orDefault(keyMoments, "None")

	prompt := fmt.Sprintf(
		"%s\n\nVIBE: %s\n\nCONTEXT:\nTeams: %s vs %s.\nKey moments: %s.\nLanguage: %s.\n\nNow generate the commentary.",
		systemInstruction,
		vibeDirectives[vibeKey],
		nameA,
		nameB,
		moments,
		languageCode,
	)

	return PromptContext{
		Prompt:   prompt,
		Language: languageCode,
		VibeKey:  vibeKey,
		TeamA:    nameA,
		TeamB:    nameB,
	}
}
