package usecase

import (
	"context"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/dto"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/repository"
)

// ManagerUseCase casos de uso de gerentes.
type ManagerUseCase struct {
	tx    repository.TxRunner
	repos repository.Repositories
}

func NewManagerUseCase(tx repository.TxRunner, repos repository.Repositories) *ManagerUseCase {
	return &ManagerUseCase{tx: tx, repos: repos}
}

func (uc *ManagerUseCase) Create(ctx context.Context, in dto.CreateManagerRequest) (*dto.IDResponse, error) {
	name, err := requiredText("nome", in.Name)
	if err != nil {
		return nil, err
	}
	email, err := validEmail(in.Email)
	if err != nil {
		return nil, err
	}

	var id int64
	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		id, err = repos.Managers.Create(ctx, &entity.Manager{Name: name, Email: email})
		return err
	})
	if err != nil {
		return nil, mapWriteErr(err, MsgEmailTaken, MsgManagerNotFound)
	}
	return &dto.IDResponse{ID: id}, nil
}

func (uc *ManagerUseCase) GetByID(ctx context.Context, id int64) (*dto.ManagerResponse, error) {
	m, err := uc.repos.Managers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.NotFound(MsgManagerNotFound)
	}
	resp := toManagerResponse(m)
	return &resp, nil
}

func (uc *ManagerUseCase) List(ctx context.Context) ([]dto.ManagerResponse, error) {
	list, err := uc.repos.Managers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ManagerResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toManagerResponse(m))
	}
	return out, nil
}

func (uc *ManagerUseCase) Update(ctx context.Context, id int64, in dto.UpdateManagerRequest) (*dto.ManagerResponse, error) {
	var patch entity.ManagerPatch
	if in.Name != nil {
		name, err := requiredText("nome", *in.Name)
		if err != nil {
			return nil, err
		}
		patch.Name = &name
	}
	if in.Email != nil {
		email, err := validEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		patch.Email = &email
	}

	var updated *entity.Manager
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		var err error
		updated, err = repos.Managers.Update(ctx, id, patch)
		if err != nil {
			return err
		}
		if updated == nil {
			return domain.NotFound(MsgManagerNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, mapWriteErr(err, MsgEmailTaken, MsgManagerNotFound)
	}
	resp := toManagerResponse(updated)
	return &resp, nil
}

// Delete borra el gerente; sus vendedores quedan sin gerente.
func (uc *ManagerUseCase) Delete(ctx context.Context, id int64) error {
	return uc.tx.Run(ctx, func(repos repository.Repositories) error {
		deleted, err := repos.Managers.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.NotFound(MsgManagerNotFound)
		}
		return nil
	})
}

func toManagerResponse(m *entity.Manager) dto.ManagerResponse {
	return dto.ManagerResponse{ID: m.ID, Name: m.Name, Email: m.Email}
}
