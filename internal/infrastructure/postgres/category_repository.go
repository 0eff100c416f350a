package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría y devuelve su id.
func (r *CategoryRepo) Create(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx, `INSERT INTO categoria (nome) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		return 0, writeErr("insert categoria", err)
	}
	return id, nil
}

// GetByID obtiene una categoría por id.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx, `SELECT id, nome FROM categoria WHERE id = $1`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get categoria", err)
	}
	return &c, nil
}

// List devuelve todas las categorías ordenadas por nombre.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nome FROM categoria ORDER BY nome`)
	if err != nil {
		return nil, wrapErr("list categorias", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CategoryRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.q, "categoria", id)
}

// Delete borra la categoría. Si aún tiene productos la FK RESTRICT devuelve ErrConflict.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.q, "categoria", id)
}
