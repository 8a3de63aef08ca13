package commentary_test

import (
	"strings"
	"testing"

	"vibe-commentator-bot/internal/commentary"
)

func TestMockCommentaryEnglish(t *testing.T) {
	text := commentary.MockCommentary("Red FC", "Blue FC", "en")
	if text == "" {
		t.Fatal("expected non-empty commentary")
	}
	if !strings.Contains(text, "Red FC") && !strings.Contains(text, "Blue FC") {
		t.Errorf("commentary should mention a team: %q", text)
	}
	if !strings.Contains(text, "!!!") {
		t.Errorf("commentary should carry a finisher: %q", text)
	}
}

func TestMockCommentarySpanish(t *testing.T) {
	text := commentary.MockCommentary("Rojo FC", "Azul FC", "es")
	if !strings.Contains(text, "Rojo FC") {
		t.Errorf("spanish commentary should lead with team A: %q", text)
	}
	if !strings.Contains(text, "GOOOOOOL") {
		t.Errorf("expected spanish goal call, got %q", text)
	}
}

func TestMockCommentaryKorean(t *testing.T) {
	text := commentary.MockCommentary("서울 FC", "부산 FC", "ko")
	if !strings.Contains(text, "서울 FC") {
		t.Errorf("korean commentary should lead with team A: %q", text)
	}
}

func TestMockCommentaryRegionalVariant(t *testing.T) {
	text := commentary.MockCommentary("Rojo FC", "Azul FC", "es-mx")
	if !strings.Contains(text, "GOOOOOOL") {
		t.Errorf("es-mx should use the spanish bank, got %q", text)
	}
}
