package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash hash bcrypt válido de una contraseña que nadie conoce.
// Se compara contra él cuando el usuario no existe para que el tiempo de respuesta sea el mismo.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z8pCqcSM6QsVkOqkmC1nHF2m"

// Bcrypt hashea y verifica contraseñas con bcrypt.
type Bcrypt struct {
	cost int
}

// New crea el hasher. cost <= 0 usa bcrypt.DefaultCost.
func New(cost int) *Bcrypt {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash devuelve el hash bcrypt de password.
func (b *Bcrypt) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hashed), nil
}

// Verify compara password con hash. Hash vacío o malformado => false, nunca error.
func (b *Bcrypt) Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// VerifyDummy consume el mismo tiempo que Verify sin usuario real.
func (b *Bcrypt) VerifyDummy(password string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
}
