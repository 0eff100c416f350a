package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema sentencias idempotentes en orden de dependencia (FK).
var schema = []string{
	`CREATE TABLE IF NOT EXISTS usuario (
		id         BIGSERIAL PRIMARY KEY,
		username   TEXT NOT NULL UNIQUE,
		senha_hash TEXT NOT NULL,
		role       TEXT NOT NULL DEFAULT 'user',
		criado_em  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS categoria (
		id   BIGSERIAL PRIMARY KEY,
		nome TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS produto (
		id           BIGSERIAL PRIMARY KEY,
		nome         TEXT NOT NULL,
		preco        NUMERIC(12,2) NOT NULL CHECK (preco >= 0),
		unidade      TEXT NOT NULL,
		categoria_id BIGINT REFERENCES categoria(id) ON DELETE RESTRICT,
		estoque      INTEGER NOT NULL DEFAULT 0 CHECK (estoque >= 0),
		UNIQUE (nome, categoria_id)
	)`,
	`CREATE TABLE IF NOT EXISTS gerente (
		id    BIGSERIAL PRIMARY KEY,
		nome  TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS vendedor (
		id         BIGSERIAL PRIMARY KEY,
		nome       TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		gerente_id BIGINT REFERENCES gerente(id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS cliente (
		id          BIGSERIAL PRIMARY KEY,
		nome        TEXT NOT NULL,
		email       TEXT NOT NULL UNIQUE,
		senha_hash  TEXT,
		vendedor_id BIGINT REFERENCES vendedor(id) ON DELETE SET NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_produto_categoria ON produto (categoria_id)`,
}

// DefaultCategories categorías iniciales; ON CONFLICT las hace idempotentes.
var DefaultCategories = []string{"Eletrônicos", "Acessórios", "Computadores", "Smartphones", "Games"}

// Migrate aplica el esquema y las categorías iniciales en una sola transacción.
// Un advisory lock evita que dos instancias migren a la vez.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return wrapErr("begin migrate", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(724001)`); err != nil {
		return wrapErr("migrate lock", err)
	}
	for i, stmt := range schema {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate paso %d: %w", i+1, err)
		}
	}
	for _, name := range DefaultCategories {
		if _, err := tx.Exec(ctx, `INSERT INTO categoria (nome) VALUES ($1) ON CONFLICT (nome) DO NOTHING`, name); err != nil {
			return fmt.Errorf("seed categoria %q: %w", name, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return wrapErr("commit migrate", err)
	}
	return nil
}
