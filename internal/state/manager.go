package state

import (
	"sync"

	"vibe-commentator-bot/internal/models"
)

// Manager keeps per-chat sessions in memory. Results hold temp-file paths
// that must die with the process, so nothing here is persisted.
type Manager struct {
	sessions map[int64]*models.Session
	mu       sync.Mutex
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[int64]*models.Session),
	}
}

// Session returns the chat's session, creating an idle one on first use.
func (m *Manager) Session(chatID int64) *models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[chatID]
	if !ok {
		session = models.NewDefaultSession()
		m.sessions[chatID] = session
	}
	return session
}

// Reset releases the session's held result and returns the chat to idle,
// keeping only inputs already consumed by a delivered result.
func (m *Manager) Reset(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[chatID]
	if !ok {
		return
	}
	if session.LastResult != nil {
		session.LastResult.Release()
	}
	m.sessions[chatID] = models.NewDefaultSession()
}
