package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userSelect = `SELECT id, username, senha_hash, role, criado_em FROM usuario`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. Username repetido => domain.ErrConflict (la constraint UNIQUE manda).
func (r *UserRepo) Create(ctx context.Context, user *entity.User) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx,
		`INSERT INTO usuario (username, senha_hash, role) VALUES ($1, $2, $3) RETURNING id, criado_em`,
		user.Username, user.PasswordHash, user.Role,
	).Scan(&id, &user.CreatedAt)
	if err != nil {
		return 0, writeErr("insert usuario", err)
	}
	return id, nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.findOne(ctx, "get usuario", userSelect+` WHERE id = $1`, id)
}

// GetByUsername obtiene un usuario por username exacto.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, "get usuario by username", userSelect+` WHERE username = $1`, username)
}

// ExistsByUsername sondeo previo al registro; no sustituye a la constraint.
func (r *UserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM usuario WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, wrapErr("exists usuario", err)
	}
	return exists, nil
}

// ListByRole lista los usuarios de un rol ordenados por id.
func (r *UserRepo) ListByRole(ctx context.Context, role string) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, userSelect+` WHERE role = $1 ORDER BY id`, role)
	if err != nil {
		return nil, wrapErr("list usuarios", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r *UserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.q, "usuario", id)
}

func (r *UserRepo) findOne(ctx context.Context, op, query string, arg any) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(op, err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
