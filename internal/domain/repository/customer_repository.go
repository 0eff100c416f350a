package repository

import (
	"context"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, id int64, patch entity.CustomerPatch) (*entity.Customer, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
