package auth

import (
	"context"
	"errors"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/dto"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/repository"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/pkg/textnorm"
)

const (
	MinUsernameLen = 3
	MinPasswordLen = 6
	// bcrypt ignora todo lo que pasa de 72 bytes; se rechaza antes de hashear.
	maxPasswordBytes = 72

	MsgInvalidCredentials = "Credenciais inválidas"
	MsgUserExists         = "Usuário já existe"
)

// PasswordHasher puerto para hashear y verificar contraseñas.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
	// VerifyDummy gasta el mismo tiempo que Verify cuando no hay usuario.
	VerifyDummy(password string)
}

// AuthUseCase casos de uso de autenticación: registro, login y logout.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	customerRepo repository.CustomerRepository
	hasher       PasswordHasher
	sessions     *SessionManager
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	customerRepo repository.CustomerRepository,
	hasher PasswordHasher,
	sessions *SessionManager,
) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, customerRepo: customerRepo, hasher: hasher, sessions: sessions}
}

// ValidateCredentials normaliza username y valida longitudes mínimas.
func ValidateCredentials(username, password string) (string, error) {
	username = textnorm.Name(username)
	if textnorm.Len(username) < MinUsernameLen {
		return "", domain.Validation("username deve ter pelo menos 3 caracteres")
	}
	if err := ValidatePassword(password); err != nil {
		return "", err
	}
	return username, nil
}

// ValidatePassword longitud mínima en caracteres y máxima en bytes (límite de bcrypt).
func ValidatePassword(password string) error {
	if textnorm.Len(password) < MinPasswordLen {
		return domain.Validation("senha deve ter pelo menos 6 caracteres")
	}
	if len(password) > maxPasswordBytes {
		return domain.Validation("senha muito longa")
	}
	return nil
}

// Register crea un usuario con el hash de la contraseña.
// El sondeo previo solo mejora el mensaje; la constraint UNIQUE decide en carrera.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	username, err := ValidateCredentials(in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if role != entity.RoleUser {
		// admins solo se crean desde /admins
		return nil, domain.Validation("role inválido")
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Conflict(MsgUserExists)
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{Username: username, PasswordHash: hash, Role: role}
	if _, err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.Conflict(MsgUserExists)
		}
		return nil, err
	}
	return &dto.RegisterResponse{Msg: "usuário criado", Username: username}, nil
}

// Login verifica credenciales y abre una sesión. Usuario inexistente y contraseña errónea
// devuelven el mismo error y consumen el mismo tiempo de bcrypt.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (string, *entity.Session, error) {
	username := textnorm.Name(in.Username)
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		uc.hasher.VerifyDummy(in.Password)
		return "", nil, domain.Unauthenticated(MsgInvalidCredentials)
	}
	if !uc.hasher.Verify(in.Password, user.PasswordHash) {
		return "", nil, domain.Unauthenticated(MsgInvalidCredentials)
	}

	token, err := uc.sessions.Create(ctx, user.ID, user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, &entity.Session{UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// CustomerLogin login del portal de clientes (email + senha). La sesión lleva rol "cliente".
// Clientes dados de alta sin contraseña no pueden iniciar sesión.
func (uc *AuthUseCase) CustomerLogin(ctx context.Context, in dto.CustomerLoginRequest) (string, *entity.Session, error) {
	customer, err := uc.customerRepo.GetByEmail(ctx, textnorm.Email(in.Email))
	if err != nil {
		return "", nil, err
	}
	if customer == nil || customer.PasswordHash == "" {
		uc.hasher.VerifyDummy(in.Password)
		return "", nil, domain.Unauthenticated(MsgInvalidCredentials)
	}
	if !uc.hasher.Verify(in.Password, customer.PasswordHash) {
		return "", nil, domain.Unauthenticated(MsgInvalidCredentials)
	}

	token, err := uc.sessions.Create(ctx, customer.ID, customer.Email, entity.RoleCustomer)
	if err != nil {
		return "", nil, err
	}
	return token, &entity.Session{UserID: customer.ID, Username: customer.Email, Role: entity.RoleCustomer}, nil
}

// Logout destruye la sesión. Token vacío o ya borrado no es error.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	return uc.sessions.Destroy(ctx, token)
}
