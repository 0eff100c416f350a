package usecase

import (
	"context"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/dto"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/repository"
)

const (
	MsgCategoryNotFound = "Categoria não encontrada"
	MsgCategoryExists   = "Categoria já existe"
	MsgCategoryInUse    = "Categoria possui produtos"
)

// CategoryUseCase casos de uso de categorías.
type CategoryUseCase struct {
	tx    repository.TxRunner
	repos repository.Repositories
}

// NewCategoryUseCase construye el caso de uso. repos se usa para lecturas fuera de transacción.
func NewCategoryUseCase(tx repository.TxRunner, repos repository.Repositories) *CategoryUseCase {
	return &CategoryUseCase{tx: tx, repos: repos}
}

// Create crea una categoría. Nombre repetido => Conflict.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.IDResponse, error) {
	name, err := requiredText("nome", in.Name)
	if err != nil {
		return nil, err
	}
	var id int64
	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		id, err = repos.Categories.Create(ctx, name)
		return err
	})
	if err != nil {
		return nil, mapWriteErr(err, MsgCategoryExists, MsgCategoryNotFound)
	}
	return &dto.IDResponse{ID: id}, nil
}

// List lista las categorías ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repos.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Delete borra una categoría sin productos. Con productos => Conflict (RESTRICT).
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		n, err := repos.Products.CountByCategory(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.Conflict(MsgCategoryInUse)
		}
		deleted, err := repos.Categories.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.NotFound(MsgCategoryNotFound)
		}
		return nil
	})
	return mapWriteErr(err, MsgCategoryInUse, MsgCategoryNotFound)
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, Name: c.Name}
}
