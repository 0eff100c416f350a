package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const (
	colProductName     column = "nome"
	colProductPrice    column = "preco"
	colProductUnit     column = "unidade"
	colProductCategory column = "categoria_id"
	colProductStock    column = "estoque"
)

const productSelect = `
	SELECT p.id, p.nome, p.preco, p.unidade, p.categoria_id, c.nome, p.estoque
	FROM produto p
	LEFT JOIN categoria c ON c.id = p.categoria_id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y devuelve el id generado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (int64, error) {
	query := `
		INSERT INTO produto (nome, preco, unidade, categoria_id, estoque)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		product.Name, product.Price, product.Unit, product.CategoryID, product.Stock,
	).Scan(&id)
	if err != nil {
		return 0, writeErr("insert produto", err)
	}
	return id, nil
}

// GetByID obtiene un producto por ID con el nombre de su categoría.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, productSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get produto", err)
	}
	return p, nil
}

// List devuelve los productos ordenados por id.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, productSelect+` ORDER BY p.id`)
	if err != nil {
		return nil, wrapErr("list produtos", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.q, "produto", id)
}

// Update aplica solo los campos informados en patch. Sin campos devuelve la fila actual.
func (r *ProductRepo) Update(ctx context.Context, id int64, patch entity.ProductPatch) (*entity.Product, error) {
	b := newUpdate("produto")
	if patch.Name != nil {
		b.set(colProductName, *patch.Name)
	}
	if patch.Price != nil {
		b.set(colProductPrice, *patch.Price)
	}
	if patch.Unit != nil {
		b.set(colProductUnit, *patch.Unit)
	}
	if patch.CategoryID != nil {
		b.set(colProductCategory, *patch.CategoryID)
	}
	if patch.Stock != nil {
		b.set(colProductStock, *patch.Stock)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.build(id, "id")
	var updated int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, writeErr("update produto", err)
	}
	return r.GetByID(ctx, updated)
}

func (r *ProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.q, "produto", id)
}

// CountByCategory cuenta los productos de una categoría.
func (r *ProductRepo) CountByCategory(ctx context.Context, categoryID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM produto WHERE categoria_id = $1`, categoryID).Scan(&n)
	if err != nil {
		return 0, wrapErr("count produtos", err)
	}
	return n, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Unit, &p.CategoryID, &p.CategoryName, &p.Stock); err != nil {
		return nil, err
	}
	return &p, nil
}
