package main

import (
	"context"
	"log"

	"vibe-commentator-bot/internal/bot"
	"vibe-commentator-bot/internal/config"
	"vibe-commentator-bot/internal/i18n"
	"vibe-commentator-bot/internal/pipeline"
	"vibe-commentator-bot/internal/state"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	if cfg.TelegramBotToken == "" {
		log.Fatal("FATAL: TELEGRAM_BOT_TOKEN is not set.")
	}

	localizer := i18n.NewLocalizer(cfg.DefaultLang)
	sessions := state.NewManager()

	processor, err := pipeline.NewDefaultProcessor(ctx, cfg)
	if err != nil {
		log.Fatalf("FATAL: Could not initialize pipeline: %v", err)
	}

	commentatorBot, err := bot.New(cfg, localizer, sessions, processor)
	if err != nil {
		log.Fatalf("FATAL: Could not initialize bot: %v", err)
	}

	log.Println("Bot initialized successfully. Starting to listen for updates...")

	commentatorBot.Start()
}
