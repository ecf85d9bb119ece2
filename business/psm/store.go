package psm

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// SessionStore owns the live sessions of the process.
type SessionStore struct {
	mu       sync.RWMutex
	cfg      Config
	sessions map[string]*Session
}

func NewSessionStore(cfg Config) *SessionStore {
	return &SessionStore{
		cfg:      cfg.withDefaults(),
		sessions: make(map[string]*Session),
	}
}

func (st *SessionStore) Open(ctx context.Context) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	sess := NewSession(uuid.NewString(), st.cfg)

	st.mu.Lock()
	st.sessions[sess.ID()] = sess
	st.mu.Unlock()

	OpenSessions.Inc()
	return sess, nil
}

func (st *SessionStore) Get(id string) (*Session, error) {
	st.mu.RLock()
	sess, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Close removes the session and tears it down.
func (st *SessionStore) Close(id string) error {
	st.mu.Lock()
	sess, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	sess.Close()
	OpenSessions.Dec()
	return nil
}

func (st *SessionStore) CloseAll() {
	st.mu.Lock()
	sessions := st.sessions
	st.sessions = make(map[string]*Session)
	st.mu.Unlock()

	for _, sess := range sessions {
		sess.Close()
		OpenSessions.Dec()
	}
}

func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
