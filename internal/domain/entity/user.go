package entity

import "time"

// Roles conocidos. La comparación de roles es exacta: admin no satisface "user".
const (
	RoleAdmin    = "admin"
	RoleUser     = "user"
	RoleCustomer = "cliente"
)

// User representa una identidad que puede iniciar sesión.
// Los administradores son usuarios con Role = RoleAdmin.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt, nunca la contraseña en claro
	Role         string
	CreatedAt    time.Time
}
