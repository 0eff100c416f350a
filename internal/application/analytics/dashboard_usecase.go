// Package analytics contiene los casos de uso de solo lectura sobre el inventario:
// estadísticas del dashboard y relatorio PDF.
package analytics

import (
	"context"
	"fmt"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/dto"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/repository"
)

// DefaultLowStockThreshold productos con estoque por debajo de este valor cuentan como estoque baixo.
const DefaultLowStockThreshold = 10

// DashboardUseCase calcula los agregados de GET /dashboard/stats.
//
// Fuente de datos: AnalyticsRepository (consultas read-only, sin transacción).
type DashboardUseCase struct {
	analyticsRepo     repository.AnalyticsRepository
	lowStockThreshold int
}

// NewDashboardUseCase construye el caso de uso. threshold <= 0 usa DefaultLowStockThreshold.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, threshold int) *DashboardUseCase {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return &DashboardUseCase{analyticsRepo: analyticsRepo, lowStockThreshold: threshold}
}

// LowStockThreshold devuelve el umbral configurado.
func (uc *DashboardUseCase) LowStockThreshold() int { return uc.lowStockThreshold }

// GetStats construye el DashboardStatsDTO.
//
// Dos llamadas en paralelo:
//  1. GetInventoryStats(umbral) → TotalProducts + LowStock + InventoryValue
//  2. CountCustomers            → TotalCustomers
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	type statsResult struct {
		stats repository.InventoryStats
		err   error
	}
	type countResult struct {
		n   int
		err error
	}

	statsCh := make(chan statsResult, 1)
	customersCh := make(chan countResult, 1)

	go func() {
		s, err := uc.analyticsRepo.GetInventoryStats(ctx, uc.lowStockThreshold)
		statsCh <- statsResult{s, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountCustomers(ctx)
		customersCh <- countResult{n, err}
	}()

	stats := <-statsCh
	customers := <-customersCh

	if stats.err != nil {
		return nil, fmt.Errorf("dashboard: estadísticas de produtos: %w", stats.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: total de clientes: %w", customers.err)
	}

	return &dto.DashboardStatsDTO{
		TotalProducts:  stats.stats.TotalProducts,
		LowStock:       stats.stats.LowStock,
		InventoryValue: stats.stats.InventoryValue.Round(2),
		TotalCustomers: customers.n,
	}, nil
}
