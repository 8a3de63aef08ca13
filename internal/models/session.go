package models

import "vibe-commentator-bot/internal/pipeline"

type SessionState string

const (
	StateIdle                 SessionState = "idle"
	StateWaitingForVideo      SessionState = "waiting_for_video"
	StateWaitingForVibe       SessionState = "waiting_for_vibe"
	StateWaitingForTeams      SessionState = "waiting_for_teams"
	StateWaitingForKeyMoments SessionState = "waiting_for_key_moments"
	StateWaitingForLanguage   SessionState = "waiting_for_language"
	StateWaitingForProvider   SessionState = "waiting_for_provider"
	StateGenerating           SessionState = "generating"
)

// Session accumulates one chat's inputs as the bot walks the user through
// the flow, plus the last produced result so it can be released before a
// new generation starts.
type Session struct {
	State         SessionState
	VideoFileID   string
	VideoFileName string
	Vibe          string
	TeamA         string
	TeamB         string
	KeyMoments    string
	Language      string
	TTSProvider   string
	LastResult    *pipeline.Result
}

// NewDefaultSession creates an idle session.
func NewDefaultSession() *Session {
	return &Session{State: StateIdle}
}
