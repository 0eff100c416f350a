package usecase

import (
	"context"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/dto"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/repository"
)

const MsgManagerNotFound = "Gerente não encontrado"

// VendorUseCase casos de uso de vendedores.
type VendorUseCase struct {
	tx    repository.TxRunner
	repos repository.Repositories
}

func NewVendorUseCase(tx repository.TxRunner, repos repository.Repositories) *VendorUseCase {
	return &VendorUseCase{tx: tx, repos: repos}
}

func (uc *VendorUseCase) Create(ctx context.Context, in dto.CreateVendorRequest) (*dto.IDResponse, error) {
	name, err := requiredText("nome", in.Name)
	if err != nil {
		return nil, err
	}
	email, err := validEmail(in.Email)
	if err != nil {
		return nil, err
	}
	vendor := &entity.Vendor{Name: name, Email: email, ManagerID: in.ManagerID}

	var id int64
	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		if err := ensureManager(ctx, repos, vendor.ManagerID); err != nil {
			return err
		}
		id, err = repos.Vendors.Create(ctx, vendor)
		return err
	})
	if err != nil {
		return nil, mapWriteErr(err, MsgEmailTaken, MsgManagerNotFound)
	}
	return &dto.IDResponse{ID: id}, nil
}

func (uc *VendorUseCase) GetByID(ctx context.Context, id int64) (*dto.VendorResponse, error) {
	v, err := uc.repos.Vendors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.NotFound(MsgVendorNotFound)
	}
	resp := toVendorResponse(v)
	return &resp, nil
}

func (uc *VendorUseCase) List(ctx context.Context) ([]dto.VendorResponse, error) {
	list, err := uc.repos.Vendors.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendorResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toVendorResponse(v))
	}
	return out, nil
}

func (uc *VendorUseCase) Update(ctx context.Context, id int64, in dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	patch := entity.VendorPatch{ManagerID: in.ManagerID}
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

	var updated *entity.Vendor
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		if err := ensureManager(ctx, repos, patch.ManagerID); err != nil {
			return err
		}
		var err error
		updated, err = repos.Vendors.Update(ctx, id, patch)
		if err != nil {
			return err
		}
		if updated == nil {
			return domain.NotFound(MsgVendorNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, mapWriteErr(err, MsgEmailTaken, MsgManagerNotFound)
	}
	resp := toVendorResponse(updated)
	return &resp, nil
}

// Delete borra el vendedor; sus clientes quedan sin vendedor.
func (uc *VendorUseCase) Delete(ctx context.Context, id int64) error {
	return uc.tx.Run(ctx, func(repos repository.Repositories) error {
		deleted, err := repos.Vendors.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.NotFound(MsgVendorNotFound)
		}
		return nil
	})
}

func ensureManager(ctx context.Context, repos repository.Repositories, managerID *int64) error {
	if managerID == nil {
		return nil
	}
	ok, err := repos.Managers.ExistsByID(ctx, *managerID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound(MsgManagerNotFound)
	}
	return nil
}

func toVendorResponse(v *entity.Vendor) dto.VendorResponse {
	return dto.VendorResponse{ID: v.ID, Name: v.Name, Email: v.Email, ManagerID: v.ManagerID}
}
