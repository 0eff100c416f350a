package memory

import (
	"context"
	"sort"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.ProductRepository  = (*ProductRepo)(nil)
)

// CategoryRepo categorías en memoria. Nombre único.
type CategoryRepo struct{ a *access }

func (r *CategoryRepo) Create(_ context.Context, name string) (int64, error) {
	var id int64
	err := r.a.with(func(st *state) error {
		for _, c := range st.categories {
			if c.Name == name {
				return conflict("insert categoria")
			}
		}
		id = st.nextID()
		st.categories[id] = entity.Category{ID: id, Name: name}
		return nil
	})
	return id, err
}

func (r *CategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	var out *entity.Category
	err := r.a.with(func(st *state) error {
		if c, ok := st.categories[id]; ok {
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *CategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	var list []*entity.Category
	err := r.a.with(func(st *state) error {
		for _, c := range st.categories {
			c := c
			list = append(list, &c)
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, err
}

func (r *CategoryRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	var ok bool
	err := r.a.with(func(st *state) error {
		_, ok = st.categories[id]
		return nil
	})
	return ok, err
}

// Delete falla con ErrConflict si algún producto referencia la categoría (RESTRICT).
func (r *CategoryRepo) Delete(_ context.Context, id int64) (bool, error) {
	var deleted bool
	err := r.a.with(func(st *state) error {
		if _, ok := st.categories[id]; !ok {
			return nil
		}
		for _, p := range st.products {
			if p.CategoryID != nil && *p.CategoryID == id {
				return conflict("delete categoria")
			}
		}
		delete(st.categories, id)
		deleted = true
		return nil
	})
	return deleted, err
}

// ProductRepo productos en memoria. (Name, CategoryID) único; NULL nunca colisiona.
type ProductRepo struct{ a *access }

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) (int64, error) {
	var id int64
	err := r.a.with(func(st *state) error {
		if err := checkProduct(st, 0, product.Name, product.CategoryID, "insert produto"); err != nil {
			return err
		}
		id = st.nextID()
		p := *product
		p.ID = id
		p.CategoryName = nil
		p.CategoryID = copyID(product.CategoryID)
		st.products[id] = p
		return nil
	})
	return id, err
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	var out *entity.Product
	err := r.a.with(func(st *state) error {
		if p, ok := st.products[id]; ok {
			out = withCategoryName(st, p)
		}
		return nil
	})
	return out, err
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	var list []*entity.Product
	err := r.a.with(func(st *state) error {
		for _, id := range sortedIDs(st.products) {
			list = append(list, withCategoryName(st, st.products[id]))
		}
		return nil
	})
	return list, err
}

func (r *ProductRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	var ok bool
	err := r.a.with(func(st *state) error {
		_, ok = st.products[id]
		return nil
	})
	return ok, err
}

func (r *ProductRepo) Update(_ context.Context, id int64, patch entity.ProductPatch) (*entity.Product, error) {
	var out *entity.Product
	err := r.a.with(func(st *state) error {
		p, ok := st.products[id]
		if !ok {
			return nil
		}
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Unit != nil {
			p.Unit = *patch.Unit
		}
		if patch.CategoryID != nil {
			p.CategoryID = copyID(patch.CategoryID)
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
		if err := checkProduct(st, id, p.Name, p.CategoryID, "update produto"); err != nil {
			return err
		}
		st.products[id] = p
		out = withCategoryName(st, p)
		return nil
	})
	return out, err
}

func (r *ProductRepo) Delete(_ context.Context, id int64) (bool, error) {
	var deleted bool
	err := r.a.with(func(st *state) error {
		if _, ok := st.products[id]; ok {
			delete(st.products, id)
			deleted = true
		}
		return nil
	})
	return deleted, err
}

func (r *ProductRepo) CountByCategory(_ context.Context, categoryID int64) (int, error) {
	var n int
	err := r.a.with(func(st *state) error {
		for _, p := range st.products {
			if p.CategoryID != nil && *p.CategoryID == categoryID {
				n++
			}
		}
		return nil
	})
	return n, err
}

// checkProduct aplica FK de categoría y el único (nome, categoria_id) excluyendo selfID.
func checkProduct(st *state, selfID int64, name string, categoryID *int64, op string) error {
	if categoryID == nil {
		return nil
	}
	if _, ok := st.categories[*categoryID]; !ok {
		return missingRef(op)
	}
	for id, other := range st.products {
		if id != selfID && other.Name == name && other.CategoryID != nil && *other.CategoryID == *categoryID {
			return conflict(op)
		}
	}
	return nil
}

func withCategoryName(st *state, p entity.Product) *entity.Product {
	p.CategoryID = copyID(p.CategoryID)
	p.CategoryName = nil
	if p.CategoryID != nil {
		if c, ok := st.categories[*p.CategoryID]; ok {
			name := c.Name
			p.CategoryName = &name
		}
	}
	return &p
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
