package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramBotToken   string
	GeminiAPIKey       string
	GeminiModel        string
	VoiceAPITokens     []string
	VoiceAPIURL        string
	VoiceModelID       string
	DefaultLang        string
	DefaultTTSProvider string
	MaxVideoMB         int
	MaxVideoSeconds    int
	AllowMockFallback  bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		TelegramBotToken:   getEnv("TELEGRAM_BOT_TOKEN", ""),
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		VoiceAPITokens:     splitList(getEnv("VOICE_API_TOKENS", "")),
		VoiceAPIURL:        getEnv("VOICE_API_URL", "https://api.replicate.com/v1/run"),
		VoiceModelID:       getEnv("VOICE_TTS_MODEL", ""),
		DefaultLang:        getEnv("DEFAULT_LANG", "en"),
		DefaultTTSProvider: getEnv("DEFAULT_TTS_PROVIDER", "gtts"),
		MaxVideoMB:         getEnvInt("MAX_VIDEO_MB", 60),
		MaxVideoSeconds:    getEnvInt("MAX_VIDEO_SECONDS", 30),
		AllowMockFallback:  getEnvBool("ALLOW_MOCK_FALLBACK", true),
	}
}

func getEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: %s is not a valid integer (%q), using %d", key, raw, fallback)
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("Warning: %s is not a valid boolean (%q), using %v", key, raw, fallback)
		return fallback
	}
	return value
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
