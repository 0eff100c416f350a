package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// El Rollback diferido es no-op después de un Commit exitoso.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.Repositories) error) (err error) {
	ctx, span := otel.Tracer("postgres").Start(ctx, "postgres.tx")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return wrapErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRepositories(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return wrapErr("commit transaction", err)
	}
	return nil
}

// NewRepositories arma el conjunto de repositorios sobre un Querier (pool o tx).
func NewRepositories(q Querier) repository.Repositories {
	return repository.Repositories{
		Categories: NewCategoryRepository(q),
		Products:   NewProductRepository(q),
		Customers:  NewCustomerRepository(q),
		Vendors:    NewVendorRepository(q),
		Managers:   NewManagerRepository(q),
		Users:      NewUserRepository(q),
	}
}
