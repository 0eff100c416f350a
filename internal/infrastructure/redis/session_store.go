package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/auth"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
)

var _ auth.SessionStore = (*SessionStore)(nil)

const sessionKeyPrefix = "session:"

// SessionStore guarda sesiones como JSON bajo "session:<token>" con TTL.
// La expiración la aplica Redis: clave ausente == sesión expirada.
type SessionStore struct {
	c *Client
}

// NewSessionStore construye el almacén de sesiones.
func NewSessionStore(c *Client) *SessionStore {
	return &SessionStore{c: c}
}

func sessionKey(token string) string { return sessionKeyPrefix + token }

// Save escribe la sesión con el TTL indicado. Sobrescribe si el token ya existía.
func (s *SessionStore) Save(ctx context.Context, token string, session entity.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}
	if err := s.c.rdb.Set(ctx, sessionKey(token), payload, ttl).Err(); err != nil {
		return unavailable("guardar sesión", err)
	}
	return nil
}

// Get devuelve la sesión o (nil, nil) si no existe. No renueva el TTL.
func (s *SessionStore) Get(ctx context.Context, token string) (*entity.Session, error) {
	raw, err := s.c.rdb.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, unavailable("leer sesión", err)
	}
	var session entity.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		// Payload corrupto: se trata como sesión inexistente.
		return nil, nil
	}
	return &session, nil
}

// Delete borra la sesión. Borrar un token inexistente no es error.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.c.rdb.Del(ctx, sessionKey(token)).Err(); err != nil {
		return unavailable("borrar sesión", err)
	}
	return nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrUnavailable, err)
}
