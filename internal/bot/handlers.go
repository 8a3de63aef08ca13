package bot

import (
	"context"
	"fmt"
	"log"
	"strings"

	"vibe-commentator-bot/internal/commentary"
	"vibe-commentator-bot/internal/errs"
	"vibe-commentator-bot/internal/models"
	"vibe-commentator-bot/internal/pipeline"
	"vibe-commentator-bot/internal/tts"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var languageChoices = []string{"en", "es", "ko"}

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.handleStartCommand(message.Chat.ID)
	case "help":
		b.sendText(message.Chat.ID, b.localize("help_message"))
	case "cancel":
		b.handleCancelCommand(message.Chat.ID)
	case "skip":
		b.handleSkipCommand(message)
	default:
		log.Printf("Received an unknown command: %s", message.Command())
	}
}

func (b *Bot) handleStartCommand(chatID int64) {
	b.sessions.Reset(chatID)
	session := b.sessions.Session(chatID)
	session.State = models.StateWaitingForVideo

	b.sendText(chatID, b.localize("start_message"))
}

func (b *Bot) handleCancelCommand(chatID int64) {
	session := b.sessions.Session(chatID)
	if session.State == models.StateIdle && session.LastResult == nil {
		b.sendText(chatID, b.localize("nothing_to_cancel"))
		return
	}
	b.sessions.Reset(chatID)
	b.sendText(chatID, b.localize("cancel_message"))
}

func (b *Bot) handleSkipCommand(message *tgbotapi.Message) {
	session := b.sessions.Session(message.Chat.ID)
	switch session.State {
	case models.StateWaitingForTeams:
		session.TeamA, session.TeamB = "", ""
		b.promptForKeyMoments(message.Chat.ID)
	case models.StateWaitingForKeyMoments:
		session.KeyMoments = ""
		b.promptForLanguage(message.Chat.ID)
	default:
		b.sendText(message.Chat.ID, b.localize("help_message"))
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	session := b.sessions.Session(message.Chat.ID)

	switch session.State {
	case models.StateWaitingForTeams:
		b.handleTeamsInput(message, session)
	case models.StateWaitingForKeyMoments:
		b.handleKeyMomentsInput(message, session)
	default:
		if message.Video != nil || message.Document != nil {
			b.handleVideoUpload(message, session)
			return
		}
		b.sendText(message.Chat.ID, b.localize("upload_video_prompt"))
	}
}

func (b *Bot) handleVideoUpload(message *tgbotapi.Message, session *models.Session) {
	chatID := message.Chat.ID

	var fileID, fileName string
	switch {
	case message.Video != nil:
		fileID = message.Video.FileID
		fileName = message.Video.FileName
	case message.Document != nil:
		fileID = message.Document.FileID
		fileName = message.Document.FileName
	}
	if fileID == "" {
		b.sendText(chatID, b.localize("please_upload_video"))
		return
	}
	if fileName == "" {
		fileName = "clip.mp4"
	}

	// A fresh upload supersedes any held result.
	if session.LastResult != nil {
		session.LastResult.Release()
		session.LastResult = nil
	}

	session.VideoFileID = fileID
	session.VideoFileName = fileName
	session.State = models.StateWaitingForVibe

	msg := tgbotapi.NewMessage(chatID, b.localize("choose_vibe"))
	msg.ReplyMarkup = b.vibeKeyboard()
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send vibe keyboard to chat %d: %v", chatID, err)
	}
}

func (b *Bot) handleCallbackQuery(callback *tgbotapi.CallbackQuery) {
	ack := tgbotapi.NewCallback(callback.ID, "")
	if _, err := b.api.Request(ack); err != nil {
		log.Printf("Failed to acknowledge callback query: %v", err)
	}

	// Message is nil when the originating message was deleted or aged out.
	if callback.Message == nil {
		return
	}

	chatID := callback.Message.Chat.ID
	session := b.sessions.Session(chatID)

	switch {
	case strings.HasPrefix(callback.Data, "vibe_"):
		if session.State != models.StateWaitingForVibe {
			return
		}
		session.Vibe = strings.TrimPrefix(callback.Data, "vibe_")
		session.State = models.StateWaitingForTeams
		b.sendText(chatID, b.localize("teams_prompt"))
	case strings.HasPrefix(callback.Data, "lang_"):
		if session.State != models.StateWaitingForLanguage {
			return
		}
		session.Language = strings.TrimPrefix(callback.Data, "lang_")
		session.State = models.StateWaitingForProvider
		msg := tgbotapi.NewMessage(chatID, b.localize("choose_provider"))
		msg.ReplyMarkup = b.providerKeyboard()
		if _, err := b.api.Send(msg); err != nil {
			log.Printf("Failed to send provider keyboard to chat %d: %v", chatID, err)
		}
	case strings.HasPrefix(callback.Data, "provider_"):
		if session.State != models.StateWaitingForProvider {
			return
		}
		session.TTSProvider = strings.TrimPrefix(callback.Data, "provider_")
		session.State = models.StateGenerating
		b.sendText(chatID, b.localize("generating_message"))
		go b.runGeneration(chatID, *session)
	default:
		log.Printf("Received unknown callback data: %s", callback.Data)
	}
}

func (b *Bot) handleTeamsInput(message *tgbotapi.Message, session *models.Session) {
	teamA, teamB, ok := strings.Cut(message.Text, " vs ")
	if !ok {
		teamA = message.Text
	}
	session.TeamA = strings.TrimSpace(teamA)
	session.TeamB = strings.TrimSpace(teamB)
	b.promptForKeyMoments(message.Chat.ID)
}

func (b *Bot) handleKeyMomentsInput(message *tgbotapi.Message, session *models.Session) {
	session.KeyMoments = strings.TrimSpace(message.Text)
	b.promptForLanguage(message.Chat.ID)
}

func (b *Bot) promptForKeyMoments(chatID int64) {
	session := b.sessions.Session(chatID)
	session.State = models.StateWaitingForKeyMoments
	b.sendText(chatID, b.localize("key_moments_prompt"))
}

func (b *Bot) promptForLanguage(chatID int64) {
	session := b.sessions.Session(chatID)
	session.State = models.StateWaitingForLanguage

	msg := tgbotapi.NewMessage(chatID, b.localize("choose_language"))
	msg.ReplyMarkup = b.languageKeyboard()
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send language keyboard to chat %d: %v", chatID, err)
	}
}

func (b *Bot) runGeneration(chatID int64, session models.Session) {
	videoBytes, err := b.getFileBytes(session.VideoFileID)
	if err != nil {
		log.Printf("Error downloading video for chat %d: %v", chatID, err)
		b.sendPipelineError(chatID, errs.Pipeline(err,
			"pipeline_failure",
			"Could not download the uploaded clip.",
			"Please send the clip again."))
		b.commitRunOutcome(chatID, nil)
		return
	}

	result, err := b.processor.Generate(context.Background(), pipeline.Request{
		VideoBytes:  videoBytes,
		Filename:    session.VideoFileName,
		Vibe:        session.Vibe,
		TeamA:       session.TeamA,
		TeamB:       session.TeamB,
		KeyMoments:  session.KeyMoments,
		Language:    session.Language,
		TTSProvider: session.TTSProvider,
	})
	if err != nil {
		log.Printf("Pipeline failed for chat %d: %v", chatID, err)
		b.sendPipelineError(chatID, err)
		b.commitRunOutcome(chatID, nil)
		return
	}

	b.sendResult(chatID, result)
	b.commitRunOutcome(chatID, result)
}

// commitRunOutcome records the generation outcome on the live session. It
// runs on the generation goroutine, so it must take the same chat lock the
// update handlers hold before touching any session field.
func (b *Bot) commitRunOutcome(chatID int64, result *pipeline.Result) {
	mu := b.chatLock(chatID)
	mu.Lock()
	defer mu.Unlock()

	live := b.sessions.Session(chatID)
	if result != nil {
		live.LastResult = result
	}
	live.State = models.StateWaitingForVideo
}

func (b *Bot) sendResult(chatID int64, result *pipeline.Result) {
	video := tgbotapi.NewVideo(chatID, tgbotapi.FilePath(result.VideoPath))
	video.Caption = fmt.Sprintf("%s\n\n%s", b.localize("result_caption"), result.CommentaryText)
	if _, err := b.api.Send(video); err != nil {
		log.Printf("Failed to send result video to chat %d: %v", chatID, err)
	}

	audio := tgbotapi.NewAudio(chatID, tgbotapi.FilePath(result.AudioPath))
	audio.Caption = b.localize("audio_caption")
	if _, err := b.api.Send(audio); err != nil {
		log.Printf("Failed to send result audio to chat %d: %v", chatID, err)
	}

	if len(result.StatusNotes) > 0 {
		lines := []string{b.localize("notes_header")}
		for _, note := range result.StatusNotes {
			lines = append(lines, "- "+b.localize("note_"+note))
		}
		b.sendText(chatID, strings.Join(lines, "\n"))
	}
}

func (b *Bot) sendPipelineError(chatID int64, err error) {
	appErr, ok := errs.AsError(err)
	if !ok {
		appErr = errs.Pipeline(err,
			"pipeline_failure",
			"Unexpected pipeline failure.",
			"Please retry; if the issue persists, contact support.")
	}

	text := b.localizeWith("error_"+string(appErr.Kind), map[string]string{
		"Message": appErr.Message,
		"Hint":    appErr.Hint,
	})
	b.sendText(chatID, text)
}

func (b *Bot) vibeKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, vibe := range commentary.Vibes() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(b.localize("vibe_"+vibe), "vibe_"+vibe),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (b *Bot) languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton
	for _, code := range languageChoices {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(strings.ToUpper(code), "lang_"+code))
	}
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(row...))
}

func (b *Bot) providerKeyboard() tgbotapi.InlineKeyboardMarkup {
	providers := []string{tts.ProviderGTTS, tts.ProviderLocal, tts.ProviderRemote}
	var row []tgbotapi.InlineKeyboardButton
	for _, provider := range providers {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(b.localize("provider_"+provider), "provider_"+provider))
	}
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(row...))
}
