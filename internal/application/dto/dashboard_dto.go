package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /dashboard/stats.
type DashboardStatsDTO struct {
	TotalProducts  int             `json:"total_produtos"`
	LowStock       int             `json:"estoque_baixo"`    // estoque < umbral configurado
	InventoryValue decimal.Decimal `json:"valor_inventario"` // SUM(preco * estoque)
	TotalCustomers int             `json:"total_clientes"`
}
