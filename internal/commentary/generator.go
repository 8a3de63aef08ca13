package commentary

import (
	"context"
	"log"
	"strings"
	"time"

	"vibe-commentator-bot/internal/errs"
	"vibe-commentator-bot/internal/notes"
	"vibe-commentator-bot/internal/retry"
)

const (
	retryAttempts = 2
	retryBase     = 1 * time.Second
	retryMax      = 3 * time.Second
)

// TextClient is the remote text-generation capability. Nil means the
// integration is unavailable and the templated generator takes over.
type TextClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Generator produces commentary text, degrading to the templated mock when
// the remote model is missing or fails and fallback is permitted.
type Generator struct {
	client    TextClient
	allowMock bool
}

func NewGenerator(client TextClient, allowMock bool) *Generator {
	return &Generator{client: client, allowMock: allowMock}
}

// Generate returns commentary text plus any degradation notes. The mock
// path never fails; the remote path retries once with backoff before
// falling back or surfacing a typed error.
func (g *Generator) Generate(ctx context.Context, pc PromptContext) (string, []string, error) {
	if g.client == nil {
		return g.mock(pc), []string{notes.MockCommentary}, nil
	}

	var text string
	err := retry.Do(ctx, retryAttempts, retryBase, retryMax, func() error {
		generated, callErr := g.client.Generate(ctx, pc.Prompt)
		if callErr != nil {
			return callErr
		}
		text = strings.TrimSpace(strings.Trim(strings.TrimSpace(generated), `"`))
		return nil
	})
	if err != nil {
		if g.allowMock {
			log.Printf("Commentary model failed, using templated fallback: %v", err)
			return g.mock(pc), []string{notes.MockCommentary}, nil
		}
		return "", nil, errs.ExternalWrap(err,
			"llm_failure",
			"LLM request failed.",
			"Please retry shortly.")
	}

	if text == "" {
		if g.allowMock {
			return g.mock(pc), []string{notes.MockCommentary}, nil
		}
		return "", nil, errs.External(
			"llm_empty",
			"LLM returned empty response.",
			"Try again in a few seconds.")
	}

	return text, nil, nil
}

func (g *Generator) mock(pc PromptContext) string {
	return MockCommentary(pc.TeamA, pc.TeamB, pc.Language)
}
