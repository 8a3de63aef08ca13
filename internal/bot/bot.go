package bot

import (
	"io"
	"log"
	"net/http"
	"sync"

	"vibe-commentator-bot/internal/config"
	"vibe-commentator-bot/internal/pipeline"
	"vibe-commentator-bot/internal/state"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

type Bot struct {
	api       *tgbotapi.BotAPI
	cfg       *config.Config
	localizer *i18n.Localizer
	sessions  *state.Manager
	processor *pipeline.Processor
	chatLocks sync.Map
}

func New(cfg *config.Config, localizer *i18n.Localizer, sessions *state.Manager, processor *pipeline.Processor) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, err
	}

	api.Debug = false
	log.Printf("Authorized on account %s", api.Self.UserName)

	bot := &Bot{
		api:       api,
		cfg:       cfg,
		localizer: localizer,
		sessions:  sessions,
		processor: processor,
	}

	if err := bot.setCommands(); err != nil {
		log.Printf("Warning: Failed to set bot commands: %v", err)
	}

	return bot, nil
}

func (b *Bot) setCommands() error {
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Start or restart the bot"},
		{Command: "cancel", Description: "Abandon the current clip"},
		{Command: "help", Description: "Show the help message"},
	}
	cmdConfig := tgbotapi.NewSetMyCommands(commands...)
	_, err := b.api.Request(cmdConfig)
	return err
}

func (b *Bot) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		go func(upd tgbotapi.Update) {
			var chatID int64

			switch {
			case upd.CallbackQuery != nil:
				if upd.CallbackQuery.Message == nil {
					// Stale callback from a deleted or expired message.
					b.handleCallbackQuery(upd.CallbackQuery)
					return
				}
				chatID = upd.CallbackQuery.Message.Chat.ID
			case upd.Message != nil:
				chatID = upd.Message.Chat.ID
			default:
				return
			}

			chatMutex := b.chatLock(chatID)
			chatMutex.Lock()
			defer chatMutex.Unlock()

			if upd.CallbackQuery != nil {
				b.handleCallbackQuery(upd.CallbackQuery)
				return
			}

			if upd.Message.IsCommand() {
				b.handleCommand(upd.Message)
				return
			}
			b.handleMessage(upd.Message)
		}(update)
	}
}

// chatLock returns the mutex serializing all session access for a chat. The
// generation goroutine takes it too, so no session field is ever touched
// without it.
func (b *Bot) chatLock(chatID int64) *sync.Mutex {
	mu, _ := b.chatLocks.LoadOrStore(chatID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (b *Bot) getFileBytes(fileID string) ([]byte, error) {
	fileURL, err := b.api.GetFileDirectURL(fileID)
	if err != nil {
		return nil, err
	}

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}

func (b *Bot) localize(messageID string) string {
	text, err := b.localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return text
}

func (b *Bot) localizeWith(messageID string, data map[string]string) string {
	text, err := b.localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID, TemplateData: data})
	if err != nil {
		return messageID
	}
	return text
}

func (b *Bot) sendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send message to chat %d: %v", chatID, err)
	}
}
