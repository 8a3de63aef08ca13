package commentary_test

import (
	"context"
	"errors"
	"testing"

	"vibe-commentator-bot/internal/commentary"
	"vibe-commentator-bot/internal/errs"
	"vibe-commentator-bot/internal/notes"
)

type fakeTextClient struct {
	responses []string
	errs      []error
	calls     int
}

func (f *fakeTextClient) Generate(ctx context.Context, prompt string) (string, error) {
	i := f.calls
	f.calls++
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	var text string
	if i < len(f.responses) {
		text = f.responses[i]
	}
	return text, err
}

func promptContext() commentary.PromptContext {
	return commentary.BuildPrompt("hype", "Red FC", "Blue FC", "", "en", "en")
}

func TestGenerateWithoutClientUsesMock(t *testing.T) {
	gen := commentary.NewGenerator(nil, true)

	text, generationNotes, err := gen.Generate(context.Background(), promptContext())
	if err != nil {
		t.Fatalf("mock path should never fail: %v", err)
	}
	if text == "" {
		t.Fatal("expected commentary text")
	}
	if len(generationNotes) != 1 || generationNotes[0] != notes.MockCommentary {
		t.Fatalf("expected single mock note, got %v", generationNotes)
	}
}

func TestGenerateReturnsRemoteText(t *testing.T) {
	client := &fakeTextClient{responses: []string{`  "What a goal!"  `}}
	gen := commentary.NewGenerator(client, true)

	text, generationNotes, err := gen.Generate(context.Background(), promptContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "What a goal!" {
		t.Errorf("expected trimmed text, got %q", text)
	}
	if len(generationNotes) != 0 {
		t.Errorf("expected no notes on a clean call, got %v", generationNotes)
	}
}

func TestGenerateFallsBackOnFailure(t *testing.T) {
	client := &fakeTextClient{errs: []error{errors.New("boom"), errors.New("boom")}}
	gen := commentary.NewGenerator(client, true)

	text, generationNotes, err := gen.Generate(context.Background(), promptContext())
	if err != nil {
		t.Fatalf("fallback should swallow the failure: %v", err)
	}
	if text == "" {
		t.Fatal("expected mock commentary")
	}
	if len(generationNotes) != 1 || generationNotes[0] != notes.MockCommentary {
		t.Fatalf("expected mock note, got %v", generationNotes)
	}
	if client.calls != 2 {
		t.Errorf("expected 2 attempts, got %d", client.calls)
	}
}

func TestGenerateFailureWithoutFallback(t *testing.T) {
	client := &fakeTextClient{errs: []error{errors.New("boom"), errors.New("boom")}}
	gen := commentary.NewGenerator(client, false)

	_, _, err := gen.Generate(context.Background(), promptContext())
	if err == nil {
		t.Fatal("expected error when fallback disabled")
	}
	if errs.CodeOf(err) != "llm_failure" {
		t.Errorf("expected llm_failure code, got %q", errs.CodeOf(err))
	}
	if errs.KindOf(err) != errs.KindExternal {
		t.Errorf("expected external kind, got %q", errs.KindOf(err))
	}
}

func TestGenerateEmptyResponseWithoutFallback(t *testing.T) {
	client := &fakeTextClient{responses: []string{"   "}}
	gen := commentary.NewGenerator(client, false)

	_, _, err := gen.Generate(context.Background(), promptContext())
	if errs.CodeOf(err) != "llm_empty" {
		t.Fatalf("expected llm_empty, got %v", err)
	}
}

func TestGenerateEmptyResponseWithFallback(t *testing.T) {
	client := &fakeTextClient{responses: []string{""}}
	gen := commentary.NewGenerator(client, true)

	text, generationNotes, err := gen.Generate(context.Background(), promptContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text == "" {
		t.Fatal("expected mock commentary")
	}
	if len(generationNotes) != 1 || generationNotes[0] != notes.MockCommentary {
		t.Fatalf("expected mock note, got %v", generationNotes)
	}
}
