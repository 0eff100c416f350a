package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

const (
	colVendorName    column = "nome"
	colVendorEmail   column = "email"
	colVendorManager column = "gerente_id"
)

const vendorColumns = "id, nome, email, gerente_id"

// VendorRepo implementación de VendorRepository (usable con pool o tx).
type VendorRepo struct {
	q Querier
}

func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

func (r *VendorRepo) Create(ctx context.Context, vendor *entity.Vendor) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx,
		`INSERT INTO vendedor (nome, email, gerente_id) VALUES ($1, $2, $3) RETURNING id`,
		vendor.Name, vendor.Email, vendor.ManagerID,
	).Scan(&id)
	if err != nil {
		return 0, writeErr("insert vendedor", err)
	}
	return id, nil
}

func (r *VendorRepo) GetByID(ctx context.Context, id int64) (*entity.Vendor, error) {
	v, err := scanVendor(r.q.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendedor WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get vendedor", err)
	}
	return v, nil
}

func (r *VendorRepo) List(ctx context.Context) ([]*entity.Vendor, error) {
	rows, err := r.q.Query(ctx, `SELECT `+vendorColumns+` FROM vendedor ORDER BY id`)
	if err != nil {
		return nil, wrapErr("list vendedores", err)
	}
	defer rows.Close()

	var list []*entity.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vendedor: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func (r *VendorRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.q, "vendedor", id)
}

func (r *VendorRepo) Update(ctx context.Context, id int64, patch entity.VendorPatch) (*entity.Vendor, error) {
	b := newUpdate("vendedor")
	if patch.Name != nil {
		b.set(colVendorName, *patch.Name)
	}
	if patch.Email != nil {
		b.set(colVendorEmail, *patch.Email)
	}
	if patch.ManagerID != nil {
		b.set(colVendorManager, *patch.ManagerID)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.build(id, vendorColumns)
	v, err := scanVendor(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, writeErr("update vendedor", err)
	}
	return v, nil
}

// Delete borra el vendedor; clientes asignados quedan con vendedor_id NULL (ON DELETE SET NULL).
func (r *VendorRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.q, "vendedor", id)
}

func scanVendor(row pgx.Row) (*entity.Vendor, error) {
	var v entity.Vendor
	if err := row.Scan(&v.ID, &v.Name, &v.Email, &v.ManagerID); err != nil {
		return nil, err
	}
	return &v, nil
}
