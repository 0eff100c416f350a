package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain"
)

// Querier es lo común entre *pgxpool.Pool y pgx.Tx; los repositorios funcionan con ambos.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ Querier = (*pgxpool.Pool)(nil)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation verifica si un error es una violación de FK (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" // foreign_key_violation
	}
	return false
}

// isConnectionError detecta fallos de infraestructura: base caída, pool agotado, timeouts de red.
func isConnectionError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return pgconn.SafeToRetry(err)
}

// wrapErr agrega contexto de la operación; los fallos de conexión se marcan como ErrUnavailable.
func wrapErr(op string, err error) error {
	if isConnectionError(err) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// writeErr traduce errores de escritura: único -> ErrConflict, FK -> ErrNotFound (referencia inexistente).
func writeErr(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	default:
		return wrapErr(op, err)
	}
}

// deleteErr traduce errores de borrado: FK -> ErrConflict (la fila sigue referenciada).
func deleteErr(op string, err error) error {
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	}
	return wrapErr(op, err)
}

// existsByID consulta la existencia de una fila por id. table siempre es una constante del paquete.
func existsByID(ctx context.Context, q Querier, table string, id int64) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM "+table+" WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, wrapErr("exists "+table, err)
	}
	return exists, nil
}

// deleteByID borra por id y reporta si alguna fila fue afectada.
func deleteByID(ctx context.Context, q Querier, table string, id int64) (bool, error) {
	tag, err := q.Exec(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return false, deleteErr("delete "+table, err)
	}
	return tag.RowsAffected() > 0, nil
}

// nullString convierte "" en NULL para columnas opcionales.
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
