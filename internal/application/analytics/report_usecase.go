package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/repository"
)

// InventoryReport datos de entrada del relatorio de inventario.
type InventoryReport struct {
	GeneratedAt       time.Time
	LowStockThreshold int
	Stats             repository.InventoryStats
	Products          []*entity.Product
}

// ReportGenerator puerto de salida: renderiza el relatorio (PDF en producción).
type ReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, report InventoryReport) ([]byte, error)
}

// ReportUseCase arma el relatorio a partir del catálogo y de los agregados.
type ReportUseCase struct {
	products          repository.ProductRepository
	analyticsRepo     repository.AnalyticsRepository
	generator         ReportGenerator
	lowStockThreshold int
	now               func() time.Time
}

func NewReportUseCase(
	products repository.ProductRepository,
	analyticsRepo repository.AnalyticsRepository,
	generator ReportGenerator,
	threshold int,
) *ReportUseCase {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return &ReportUseCase{
		products:          products,
		analyticsRepo:     analyticsRepo,
		generator:         generator,
		lowStockThreshold: threshold,
		now:               time.Now,
	}
}

// InventoryPDF devuelve el relatorio renderizado.
func (uc *ReportUseCase) InventoryPDF(ctx context.Context) ([]byte, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("relatorio: listar produtos: %w", err)
	}
	stats, err := uc.analyticsRepo.GetInventoryStats(ctx, uc.lowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("relatorio: estatísticas: %w", err)
	}
	out, err := uc.generator.GenerateInventoryReport(ctx, InventoryReport{
		GeneratedAt:       uc.now(),
		LowStockThreshold: uc.lowStockThreshold,
		Stats:             stats,
		Products:          products,
	})
	if err != nil {
		return nil, fmt.Errorf("relatorio: gerar pdf: %w", err)
	}
	return out, nil
}
