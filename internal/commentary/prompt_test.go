package commentary_test

import (
	"strings"
	"testing"

	"vibe-commentator-bot/internal/commentary"
)

func TestBuildPromptIsDeterministic(t *testing.T) {
	first := commentary.BuildPrompt("hype", "Red FC", "Blue FC", "late winner", "en", "en")
	second := commentary.BuildPrompt("hype", "Red FC", "Blue FC", "late winner", "en", "en")

	if first != second {
		t.Fatalf("same inputs produced different contexts:\n%v\n%v", first, second)
	}
}

func TestBuildPromptInterpolatesContext(t *testing.T) {
	pc := commentary.BuildPrompt("british pundit", "Red FC", "Blue FC", "header off the bar", "EN", "en")

	if !strings.Contains(pc.Prompt, "Teams: Red FC vs Blue FC.") {
		t.Errorf("prompt missing team line: %q", pc.Prompt)
	}
	if !strings.Contains(pc.Prompt, "Key moments: header off the bar.") {
		t.Errorf("prompt missing key-moments line: %q", pc.Prompt)
	}
	if !strings.Contains(pc.Prompt, "Language: en.") {
		t.Errorf("prompt missing language tag: %q", pc.Prompt)
	}
	if !strings.Contains(pc.Prompt, "Premier League") {
		t.Errorf("prompt missing vibe directive: %q", pc.Prompt)
	}
	if pc.TeamA != "Red FC" || pc.TeamB != "Blue FC" {
		t.Errorf("unexpected structured teams: %q vs %q", pc.TeamA, pc.TeamB)
	}
}

func TestBuildPromptDefaults(t *testing.T) {
	pc := commentary.BuildPrompt("", "", "  ", "", "", "en")

	if pc.VibeKey != "hype" {
		t.Errorf("expected default vibe hype, got %q", pc.VibeKey)
	}
	if pc.Language != "en" {
		t.Errorf("expected default language en, got %q", pc.Language)
	}
	if pc.TeamA != "Team A" || pc.TeamB != "Team B" {
		t.Errorf("expected placeholder teams, got %q vs %q", pc.TeamA, pc.TeamB)
	}
	if !strings.Contains(pc.Prompt, "Key moments: None.") {
		t.Errorf("expected None key moments, got %q", pc.Prompt)
	}
}

func TestNormalizeVibe(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"hype", "hype"},
		{"  HYPE  ", "hype"},
		{"Latin Radio", "latin radio"},
		{"screaming goat", "hype"},
		{"", "hype"},
	}
	for _, tc := range cases {
		if got := commentary.NormalizeVibe(tc.in); got != tc.want {
			t.Errorf("NormalizeVibe(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeLanguage(t *testing.T) {
	if got := commentary.NormalizeLanguage(" ES ", "en"); got != "es" {
		t.Errorf("expected es, got %q", got)
	}
	if got := commentary.NormalizeLanguage("", "ko"); got != "ko" {
		t.Errorf("expected fallback ko, got %q", got)
	}
	if got := commentary.NormalizeLanguage("", ""); got != "en" {
		t.Errorf("expected built-in default en, got %q", got)
	}
}
