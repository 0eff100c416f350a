package repository

import (
	"context"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
)

// VendorRepository define el puerto de persistencia para Vendor.
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Vendor, error)
	List(ctx context.Context) ([]*entity.Vendor, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, id int64, patch entity.VendorPatch) (*entity.Vendor, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
