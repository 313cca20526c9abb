package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session ties an opaque bearer token to a user for the lifetime of the
// process. Sessions are intentionally not persisted: a restart logs everyone
// out, which is fine for this app.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Demo      bool      `json:"demo"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]Session

	// Pending OAuth state tokens, issued at /auth/login and consumed once
	// at the callback.
	states map[string]time.Time
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]Session),
		states:   make(map[string]time.Time),
	}
}

func (m *SessionManager) Create(userID, email string, demo bool) Session {
	s := Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		Email:     email,
		Demo:      demo,
		CreatedAt: time.Now(),
	}
	m.mu.Lock()
	m.sessions[s.Token] = s
	m.mu.Unlock()
	return s
}

func (m *SessionManager) Lookup(token string) (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[token]
	return s, ok
}

func (m *SessionManager) Revoke(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// NewState issues a one-time state token for the OAuth redirect.
func (m *SessionManager) NewState() string {
	state := uuid.NewString()
	m.mu.Lock()
	m.states[state] = time.Now()
	m.mu.Unlock()
	return state
}

// ConsumeState validates and burns a state token. Tokens older than ten
// minutes are treated as invalid.
func (m *SessionManager) ConsumeState(state string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	issued, ok := m.states[state]
	if !ok {
		return false
	}
	delete(m.states, state)
	return time.Since(issued) < 10*time.Minute
}
