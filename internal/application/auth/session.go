package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
)

// Mensajes visibles de la capa de sesión.
const (
	MsgNotAuthenticated = "Não autenticado"
	MsgInvalidSession   = "Sessão inválida ou expirada"
	MsgAccessDenied     = "Acesso negado"
)

// tokenBytes entropía del token de sesión (256 bits).
const tokenBytes = 32

// SessionStore puerto del almacén de sesiones con expiración.
// Get devuelve (nil, nil) si el token no existe o expiró.
type SessionStore interface {
	Save(ctx context.Context, token string, session entity.Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (*entity.Session, error)
	Delete(ctx context.Context, token string) error
}

// SessionManager crea, resuelve y destruye sesiones opacas.
// La expiración es fija: resolver una sesión no extiende su TTL.
type SessionManager struct {
	store SessionStore
	ttl   time.Duration
}

// NewSessionManager construye el manager con el TTL de sesión.
func NewSessionManager(store SessionStore, ttl time.Duration) *SessionManager {
	return &SessionManager{store: store, ttl: ttl}
}

// TTL tiempo de vida de las sesiones (Max-Age de la cookie).
func (m *SessionManager) TTL() time.Duration { return m.ttl }

// Create genera un token aleatorio y guarda la sesión asociada.
func (m *SessionManager) Create(ctx context.Context, userID int64, username, role string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	session := entity.Session{UserID: userID, Username: username, Role: role}
	if err := m.store.Save(ctx, token, session, m.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve devuelve la sesión del token. Token vacío o desconocido => Unauthenticated.
func (m *SessionManager) Resolve(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, domain.Unauthenticated(MsgNotAuthenticated)
	}
	session, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.Unauthenticated(MsgInvalidSession)
	}
	return session, nil
}

// Destroy borra la sesión. Idempotente; token vacío no hace nada.
func (m *SessionManager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, token)
}

// Authorize compara el rol de la sesión con el esperado (igualdad exacta, sin jerarquía).
func Authorize(session *entity.Session, role string) error {
	if session == nil {
		return domain.Unauthenticated(MsgNotAuthenticated)
	}
	if session.Role != role {
		return domain.Forbidden(MsgAccessDenied)
	}
	return nil
}

func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generar token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
