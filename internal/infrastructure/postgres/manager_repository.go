package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/repository"
)

var _ repository.ManagerRepository = (*ManagerRepo)(nil)

const (
	colManagerName  column = "nome"
	colManagerEmail column = "email"
)

// ManagerRepo implementación de ManagerRepository (usable con pool o tx).
type ManagerRepo struct {
	q Querier
}

func NewManagerRepository(q Querier) *ManagerRepo {
	return &ManagerRepo{q: q}
}

func (r *ManagerRepo) Create(ctx context.Context, manager *entity.Manager) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx,
		`INSERT INTO gerente (nome, email) VALUES ($1, $2) RETURNING id`,
		manager.Name, manager.Email,
	).Scan(&id)
	if err != nil {
		return 0, writeErr("insert gerente", err)
	}
	return id, nil
}

func (r *ManagerRepo) GetByID(ctx context.Context, id int64) (*entity.Manager, error) {
	var m entity.Manager
	err := r.q.QueryRow(ctx, `SELECT id, nome, email FROM gerente WHERE id = $1`, id).Scan(&m.ID, &m.Name, &m.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get gerente", err)
	}
	return &m, nil
}

func (r *ManagerRepo) List(ctx context.Context) ([]*entity.Manager, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nome, email FROM gerente ORDER BY id`)
	if err != nil {
		return nil, wrapErr("list gerentes", err)
	}
	defer rows.Close()

	var list []*entity.Manager
	for rows.Next() {
		var m entity.Manager
		if err := rows.Scan(&m.ID, &m.Name, &m.Email); err != nil {
			return nil, fmt.Errorf("scan gerente: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (r *ManagerRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.q, "gerente", id)
}

func (r *ManagerRepo) Update(ctx context.Context, id int64, patch entity.ManagerPatch) (*entity.Manager, error) {
	b := newUpdate("gerente")
	if patch.Name != nil {
		b.set(colManagerName, *patch.Name)
	}
	if patch.Email != nil {
		b.set(colManagerEmail, *patch.Email)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.build(id, "id, nome, email")
	var m entity.Manager
	if err := r.q.QueryRow(ctx, query, args...).Scan(&m.ID, &m.Name, &m.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, writeErr("update gerente", err)
	}
	return &m, nil
}

// Delete borra el gerente; sus vendedores quedan con gerente_id NULL.
func (r *ManagerRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.q, "gerente", id)
}
