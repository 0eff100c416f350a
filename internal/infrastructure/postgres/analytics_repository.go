package postgres

import (
	"context"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetInventoryStats total de productos, productos con estoque < threshold y valor del inventario.
// SUM sobre NUMERIC sin escala fija; COALESCE cubre la tabla vacía.
func (r *AnalyticsRepo) GetInventoryStats(ctx context.Context, lowStockThreshold int) (repository.InventoryStats, error) {
	const query = `
	SELECT
	    COUNT(*)                             AS total_produtos,
	    COUNT(*) FILTER (WHERE estoque < $1) AS estoque_baixo,
	    COALESCE(SUM(preco * estoque), 0)    AS valor_inventario
	FROM produto`

	var s repository.InventoryStats
	if err := r.q.QueryRow(ctx, query, lowStockThreshold).Scan(&s.TotalProducts, &s.LowStock, &s.InventoryValue); err != nil {
		return repository.InventoryStats{}, wrapErr("inventory stats", err)
	}
	return s, nil
}

// CountCustomers total de clientes registrados.
func (r *AnalyticsRepo) CountCustomers(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM cliente`).Scan(&n); err != nil {
		return 0, wrapErr("count clientes", err)
	}
	return n, nil
}
