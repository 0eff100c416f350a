package dto

import "time"

// RegisterRequest entrada de POST /register. Role vacío => "user".
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// RegisterResponse salida de POST /register.
type RegisterResponse struct {
	Msg      string `json:"msg"`
	Username string `json:"username"`
}

// LoginRequest entrada de POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CustomerLoginRequest entrada de POST /clientes/login.
type CustomerLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// SessionResponse datos de la sesión actual.
type SessionResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ProfileResponse salida de GET /profile.
type ProfileResponse struct {
	User SessionResponse `json:"user"`
}

// CreateAdminRequest entrada de POST /admins.
type CreateAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminResponse salida de un administrador (sin hash).
type AdminResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"criado_em"`
}
