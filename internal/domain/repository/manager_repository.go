package repository

import (
	"context"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
)

// ManagerRepository define el puerto de persistencia para Manager.
type ManagerRepository interface {
	Create(ctx context.Context, manager *entity.Manager) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Manager, error)
	List(ctx context.Context) ([]*entity.Manager, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, id int64, patch entity.ManagerPatch) (*entity.Manager, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
