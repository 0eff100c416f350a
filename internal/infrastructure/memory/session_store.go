package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/auth"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
)

var _ auth.SessionStore = (*SessionStore)(nil)

type sessionEntry struct {
	session   entity.Session
	expiresAt time.Time
}

// SessionStore sesiones en memoria con reloj inyectable para simular la expiración.
type SessionStore struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]sessionEntry
}

// NewSessionStore crea el store. now nil => time.Now.
func NewSessionStore(now func() time.Time) *SessionStore {
	if now == nil {
		now = time.Now
	}
	return &SessionStore{now: now, entries: map[string]sessionEntry{}}
}

func (s *SessionStore) Save(_ context.Context, token string, session entity.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = sessionEntry{session: session, expiresAt: s.now().Add(ttl)}
	return nil
}

// Get trata una entrada vencida como inexistente y la purga.
func (s *SessionStore) Get(_ context.Context, token string) (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[token]
	if !ok {
		return nil, nil
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, token)
		return nil, nil
	}
	sess := e.session
	return &sess, nil
}

func (s *SessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}

// Len número de sesiones guardadas (incluye vencidas no purgadas).
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
