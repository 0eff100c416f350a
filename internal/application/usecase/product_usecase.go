package usecase

import (
	"context"
	"time"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/dto"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/repository"
)

const (
	MsgProductNotFound  = "Produto não encontrado"
	MsgProductExists    = "Produto já cadastrado na mesma categoria"
	MsgProductNameTaken = "Produto com esse nome já existe nessa categoria"
)

// ProductUseCase casos de uso CRUD para productos.
// Cada escritura corre en una transacción; los eventos se publican después del commit.
type ProductUseCase struct {
	tx     repository.TxRunner
	repos  repository.Repositories
	events EventPublisher
	now    func() time.Time
}

// NewProductUseCase construye el caso de uso. events nil => NopPublisher.
func NewProductUseCase(tx repository.TxRunner, repos repository.Repositories, events EventPublisher) *ProductUseCase {
	if events == nil {
		events = NopPublisher{}
	}
	return &ProductUseCase{tx: tx, repos: repos, events: events, now: time.Now}
}

// Create crea un producto. La categoría, si viene, debe existir.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.IDResponse, error) {
	product, err := newProduct(in)
	if err != nil {
		return nil, err
	}

	var id int64
	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		if err := ensureCategory(ctx, repos, product.CategoryID); err != nil {
			return err
		}
		id, err = repos.Products.Create(ctx, product)
		return err
	})
	if err != nil {
		return nil, mapWriteErr(err, MsgProductExists, MsgCategoryNotFound)
	}

	product.ID = id
	uc.events.Publish(ctx, entity.NewProductEvent(entity.EventProductCreated, id, product, uc.now().UTC()))
	return &dto.IDResponse{ID: id}, nil
}

// GetByID obtiene un producto por ID. Inexistente => NotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repos.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound(MsgProductNotFound)
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// List lista los productos ordenados por id, con el nombre de la categoría.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repos.Products.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update aplica solo los campos presentes. Sin campos devuelve el producto sin cambios.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	patch, err := productPatch(in)
	if err != nil {
		return nil, err
	}

	var updated *entity.Product
	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		if err := ensureCategory(ctx, repos, patch.CategoryID); err != nil {
			return err
		}
		updated, err = repos.Products.Update(ctx, id, patch)
		if err != nil {
			return err
		}
		if updated == nil {
			return domain.NotFound(MsgProductNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, mapWriteErr(err, MsgProductNameTaken, MsgCategoryNotFound)
	}

	if !patch.Empty() {
		uc.events.Publish(ctx, entity.NewProductEvent(entity.EventProductUpdated, id, updated, uc.now().UTC()))
	}
	resp := toProductResponse(updated)
	return &resp, nil
}

// Delete borra un producto. Inexistente => NotFound.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		deleted, err := repos.Products.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.NotFound(MsgProductNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}
	uc.events.Publish(ctx, entity.NewProductEvent(entity.EventProductDeleted, id, nil, uc.now().UTC()))
	return nil
}

func newProduct(in dto.CreateProductRequest) (*entity.Product, error) {
	name, err := requiredText("nome", in.Name)
	if err != nil {
		return nil, err
	}
	unit, err := requiredText("unidade", in.Unit)
	if err != nil {
		return nil, err
	}
	if in.Price == nil {
		return nil, domain.Validation("preco é obrigatório")
	}
	if err := validPrice(*in.Price); err != nil {
		return nil, err
	}
	if err := validStock(in.Stock); err != nil {
		return nil, err
	}
	return &entity.Product{
		Name:       name,
		Price:      *in.Price,
		Unit:       unit,
		CategoryID: in.CategoryID,
		Stock:      in.Stock,
	}, nil
}

func productPatch(in dto.UpdateProductRequest) (entity.ProductPatch, error) {
	patch := entity.ProductPatch{Price: in.Price, CategoryID: in.CategoryID, Stock: in.Stock}
	if in.Name != nil {
		name, err := requiredText("nome", *in.Name)
		if err != nil {
			return patch, err
		}
		patch.Name = &name
	}
	if in.Unit != nil {
		unit, err := requiredText("unidade", *in.Unit)
		if err != nil {
			return patch, err
		}
		patch.Unit = &unit
	}
	if in.Price != nil {
		if err := validPrice(*in.Price); err != nil {
			return patch, err
		}
	}
	if in.Stock != nil {
		if err := validStock(*in.Stock); err != nil {
			return patch, err
		}
	}
	return patch, nil
}

// ensureCategory sondea la categoría dentro de la transacción. nil = sin categoría.
func ensureCategory(ctx context.Context, repos repository.Repositories, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}
	ok, err := repos.Categories.ExistsByID(ctx, *categoryID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound(MsgCategoryNotFound)
	}
	return nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		Unit:         p.Unit,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		Stock:        p.Stock,
	}
}
