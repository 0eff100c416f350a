package usecase

import (
	"context"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/auth"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/dto"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/repository"
)

const (
	MsgAdminNotFound = "Admin não encontrado"
	MsgAdminSelf     = "Não é possível remover o próprio usuário"
)

// AdminUseCase gestión de administradores (usuarios con rol admin).
type AdminUseCase struct {
	tx     repository.TxRunner
	repos  repository.Repositories
	hasher auth.PasswordHasher
}

func NewAdminUseCase(tx repository.TxRunner, repos repository.Repositories, hasher auth.PasswordHasher) *AdminUseCase {
	return &AdminUseCase{tx: tx, repos: repos, hasher: hasher}
}

// Create crea un usuario con rol admin. Mismas reglas de credenciales que el registro.
func (uc *AdminUseCase) Create(ctx context.Context, in dto.CreateAdminRequest) (*dto.AdminResponse, error) {
	username, err := auth.ValidateCredentials(in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{Username: username, PasswordHash: hash, Role: entity.RoleAdmin}

	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		user.ID, err = repos.Users.Create(ctx, user)
		return err
	})
	if err != nil {
		return nil, mapWriteErr(err, auth.MsgUserExists, MsgAdminNotFound)
	}
	resp := toAdminResponse(user)
	return &resp, nil
}

// List lista los administradores por id.
func (uc *AdminUseCase) List(ctx context.Context) ([]dto.AdminResponse, error) {
	list, err := uc.repos.Users.ListByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdminResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toAdminResponse(u))
	}
	return out, nil
}

// Delete borra un administrador. Usuarios de otro rol cuentan como inexistentes;
// un admin no puede borrarse a sí mismo.
func (uc *AdminUseCase) Delete(ctx context.Context, id, actorID int64) error {
	if id == actorID {
		return domain.Conflict(MsgAdminSelf)
	}
	return uc.tx.Run(ctx, func(repos repository.Repositories) error {
		user, err := repos.Users.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil || user.Role != entity.RoleAdmin {
			return domain.NotFound(MsgAdminNotFound)
		}
		_, err = repos.Users.Delete(ctx, id)
		return err
	})
}

func toAdminResponse(u *entity.User) dto.AdminResponse {
	return dto.AdminResponse{ID: u.ID, Username: u.Username, Role: u.Role, CreatedAt: u.CreatedAt}
}
