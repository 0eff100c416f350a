package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const (
	colCustomerName   column = "nome"
	colCustomerEmail  column = "email"
	colCustomerVendor column = "vendedor_id"
)

const customerSelect = `SELECT id, nome, email, senha_hash, vendedor_id FROM cliente`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente. PasswordHash vacío se guarda como NULL.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) (int64, error) {
	query := `
		INSERT INTO cliente (nome, email, senha_hash, vendedor_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		customer.Name, customer.Email, nullString(customer.PasswordHash), customer.VendorID,
	).Scan(&id)
	if err != nil {
		return 0, writeErr("insert cliente", err)
	}
	return id, nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, customerSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get cliente", err)
	}
	return c, nil
}

// GetByEmail obtiene un cliente por email (login del portal).
func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, customerSelect+` WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get cliente by email", err)
	}
	return c, nil
}

func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, customerSelect+` ORDER BY id`)
	if err != nil {
		return nil, wrapErr("list clientes", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CustomerRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.q, "cliente", id)
}

// Update aplica solo los campos informados. Sin campos devuelve la fila actual.
func (r *CustomerRepo) Update(ctx context.Context, id int64, patch entity.CustomerPatch) (*entity.Customer, error) {
	b := newUpdate("cliente")
	if patch.Name != nil {
		b.set(colCustomerName, *patch.Name)
	}
	if patch.Email != nil {
		b.set(colCustomerEmail, *patch.Email)
	}
	if patch.VendorID != nil {
		b.set(colCustomerVendor, *patch.VendorID)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.build(id, "id, nome, email, senha_hash, vendedor_id")
	c, err := scanCustomer(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, writeErr("update cliente", err)
	}
	return c, nil
}

func (r *CustomerRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.q, "cliente", id)
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	var hash *string
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &hash, &c.VendorID); err != nil {
		return nil, err
	}
	if hash != nil {
		c.PasswordHash = *hash
	}
	return &c, nil
}
