package repository

import (
	"context"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
//
// GetByID y Update devuelven (nil, nil) cuando el id no existe; Delete devuelve false.
// Las violaciones de unicidad se devuelven como domain.ErrConflict.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, id int64, patch entity.ProductPatch) (*entity.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
	CountByCategory(ctx context.Context, categoryID int64) (int, error)
}
