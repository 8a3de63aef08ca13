package tts

import (
	"reflect"
	"testing"
)

const voicesListing = `Pty Language Age/Gender VoiceName          File          Other Languages
 5  af             M  afrikaans            other/af
 5  en-gb          M  english              en            (en 2)
 5  en-us          M  english-us           en-us         (en 3)
 5  es             M  spanish              europe/es
 5  es-la          M  spanish-latin-am     es-la         (es-mx 6)
 5  ko             M  korean               other/ko
`

func TestParseVoices(t *testing.T) {
	voices := parseVoices(voicesListing)
	if len(voices) != 6 {
		t.Fatalf("expected 6 voices, got %d", len(voices))
	}

	first := voices[0]
	if first.ID != "other/af" || first.Name != "afrikaans" {
		t.Errorf("unexpected first voice: %+v", first)
	}
	if !reflect.DeepEqual(voices[1].Languages, []string{"en-gb", "(en", "2)"}) {
		t.Errorf("unexpected languages for english voice: %v", voices[1].Languages)
	}
}

func TestVoiceTokens(t *testing.T) {
	cases := []struct {
		language string
		vibe     string
		want     []string
	}{
		{"es", "hype", []string{"es"}},
		{"en", "latin radio", []string{"es"}},
		{"ko", "hype", []string{"ko"}},
		{"en", "british pundit", []string{"en-gb", "english"}},
		{"en", "hype", []string{"en"}},
		{"fr", "calm analysis", []string{"en"}},
	}
	for _, tc := range cases {
		got := voiceTokens(tc.language, tc.vibe)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("voiceTokens(%q, %q) = %v, want %v", tc.language, tc.vibe, got, tc.want)
		}
	}
}

func TestSelectVoice(t *testing.T) {
	voices := parseVoices(voicesListing)

	if got := selectVoice(voices, []string{"es"}); got != "europe/es" {
		t.Errorf("expected europe/es, got %q", got)
	}
	if got := selectVoice(voices, []string{"en-gb", "english"}); got != "en" {
		t.Errorf("expected en, got %q", got)
	}
	if got := selectVoice(voices, []string{"ko"}); got != "other/ko" {
		t.Errorf("expected other/ko, got %q", got)
	}
	if got := selectVoice(voices, []string{"zz"}); got != "" {
		t.Errorf("expected no match, got %q", got)
	}
}

func TestSpeakingRate(t *testing.T) {
	cases := map[string]int{
		"latin radio":    210,
		"hype":           195,
		"british pundit": 175,
		"calm analysis":  165,
		"anything else":  185,
	}
	for vibe, want := range cases {
		if got := speakingRate(vibe); got != want {
			t.Errorf("speakingRate(%q) = %d, want %d", vibe, got, want)
		}
	}
}
