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
	MsgCustomerNotFound = "Cliente não encontrado"
	MsgVendorNotFound   = "Vendedor não encontrado"
	MsgEmailTaken       = "Email já cadastrado"
)

// CustomerUseCase casos de uso de clientes.
type CustomerUseCase struct {
	tx     repository.TxRunner
	repos  repository.Repositories
	hasher auth.PasswordHasher
}

func NewCustomerUseCase(tx repository.TxRunner, repos repository.Repositories, hasher auth.PasswordHasher) *CustomerUseCase {
	return &CustomerUseCase{tx: tx, repos: repos, hasher: hasher}
}

// Create da de alta un cliente. Con senha el cliente queda habilitado para /clientes/login.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.IDResponse, error) {
	name, err := requiredText("nome", in.Name)
	if err != nil {
		return nil, err
	}
	email, err := validEmail(in.Email)
	if err != nil {
		return nil, err
	}
	customer := &entity.Customer{Name: name, Email: email, VendorID: in.VendorID}
	if in.Password != "" {
		if err := auth.ValidatePassword(in.Password); err != nil {
			return nil, err
		}
		if customer.PasswordHash, err = uc.hasher.Hash(in.Password); err != nil {
			return nil, err
		}
	}

	var id int64
	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		if err := ensureVendor(ctx, repos, customer.VendorID); err != nil {
			return err
		}
		id, err = repos.Customers.Create(ctx, customer)
		return err
	})
	if err != nil {
		return nil, mapWriteErr(err, MsgEmailTaken, MsgVendorNotFound)
	}
	return &dto.IDResponse{ID: id}, nil
}

func (uc *CustomerUseCase) GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	c, err := uc.repos.Customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound(MsgCustomerNotFound)
	}
	resp := toCustomerResponse(c)
	return &resp, nil
}

func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := uc.repos.Customers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update actualización parcial de un cliente.
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	patch := entity.CustomerPatch{VendorID: in.VendorID}
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

	var updated *entity.Customer
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		if err := ensureVendor(ctx, repos, patch.VendorID); err != nil {
			return err
		}
		var err error
		updated, err = repos.Customers.Update(ctx, id, patch)
		if err != nil {
			return err
		}
		if updated == nil {
			return domain.NotFound(MsgCustomerNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, mapWriteErr(err, MsgEmailTaken, MsgVendorNotFound)
	}
	resp := toCustomerResponse(updated)
	return &resp, nil
}

func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	return uc.tx.Run(ctx, func(repos repository.Repositories) error {
		deleted, err := repos.Customers.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.NotFound(MsgCustomerNotFound)
		}
		return nil
	})
}

func ensureVendor(ctx context.Context, repos repository.Repositories, vendorID *int64) error {
	if vendorID == nil {
		return nil
	}
	ok, err := repos.Vendors.ExistsByID(ctx, *vendorID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound(MsgVendorNotFound)
	}
	return nil
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email, VendorID: c.VendorID}
}
