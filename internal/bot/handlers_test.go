package bot

import (
	"net/http"
	"sync"
	"testing"

	"vibe-commentator-bot/internal/models"
	"vibe-commentator-bot/internal/pipeline"
	"vibe-commentator-bot/internal/state"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestCommitRunOutcomeSerializesWithHandlers(t *testing.T) {
	b := &Bot{sessions: state.NewManager()}
	chatID := int64(42)

	var wg sync.WaitGroup
	wg.Add(2)

	// Handler goroutines mutate the session under the chat lock.
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			mu := b.chatLock(chatID)
			mu.Lock()
			b.sessions.Session(chatID).State = models.StateGenerating
			mu.Unlock()
		}
	}()

	// The generation goroutine commits its outcome concurrently.
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			b.commitRunOutcome(chatID, nil)
		}
	}()

	wg.Wait()

	result := &pipeline.Result{CommentaryText: "full time"}
	b.commitRunOutcome(chatID, result)

	mu := b.chatLock(chatID)
	mu.Lock()
	defer mu.Unlock()
	live := b.sessions.Session(chatID)
	if live.State != models.StateWaitingForVideo {
		t.Errorf("expected waiting state after commit, got %q", live.State)
	}
	if live.LastResult != result {
		t.Error("expected the committed result on the live session")
	}
}

func TestCommitRunOutcomeWithoutResultKeepsLastResult(t *testing.T) {
	b := &Bot{sessions: state.NewManager()}
	chatID := int64(7)

	held := &pipeline.Result{CommentaryText: "first half"}
	b.commitRunOutcome(chatID, held)
	b.commitRunOutcome(chatID, nil)

	if got := b.sessions.Session(chatID).LastResult; got != held {
		t.Error("a failed run must not clear the previously delivered result")
	}
}

func TestCallbackWithoutMessageIsIgnored(t *testing.T) {
	b := &Bot{
		api:      &tgbotapi.BotAPI{Client: http.DefaultClient},
		sessions: state.NewManager(),
	}

	// Must not panic and must not touch any session.
	b.handleCallbackQuery(&tgbotapi.CallbackQuery{ID: "stale", Data: "vibe_hype"})

	if got := b.sessions.Session(0).State; got != models.StateIdle {
		t.Errorf("stale callback must not advance any session, got %q", got)
	}
}
