package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// InventoryStats agregados de producto para el dashboard.
type InventoryStats struct {
	TotalProducts  int
	LowStock       int
	InventoryValue decimal.Decimal
}

// AnalyticsRepository consultas agregadas de solo lectura (sin transacción).
type AnalyticsRepository interface {
	GetInventoryStats(ctx context.Context, lowStockThreshold int) (InventoryStats, error)
	CountCustomers(ctx context.Context) (int, error)
}
