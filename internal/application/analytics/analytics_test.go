package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/analytics"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/repository"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/infrastructure/memory"
)

func seed(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	repos := store.Repositories()

	products := []entity.Product{
		{Name: "Arroz", Price: decimal.RequireFromString("22.90"), Unit: "kg", Stock: 4},
		{Name: "Feijão", Price: decimal.RequireFromString("8.50"), Unit: "kg", Stock: 10},
		{Name: "Sal", Price: decimal.RequireFromString("2.35"), Unit: "un", Stock: 0},
	}
	for i := range products {
		_, err := repos.Products.Create(ctx, &products[i])
		require.NoError(t, err)
	}
	_, err := repos.Customers.Create(ctx, &entity.Customer{Name: "Ana", Email: "ana@ex.com"})
	require.NoError(t, err)
	return store
}

func TestDashboard_GetStats(t *testing.T) {
	store := seed(t)
	uc := analytics.NewDashboardUseCase(store, 0)
	assert.Equal(t, analytics.DefaultLowStockThreshold, uc.LowStockThreshold())

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalProducts)
	// estoque 10 no es menor que 10
	assert.Equal(t, 2, stats.LowStock)
	assert.Equal(t, "176.60", stats.InventoryValue.StringFixed(2))
	assert.Equal(t, 1, stats.TotalCustomers)
}

func TestDashboard_UmbralConfigurable(t *testing.T) {
	store := seed(t)
	stats, err := analytics.NewDashboardUseCase(store, 11).GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.LowStock)
}

func TestDashboard_Vacio(t *testing.T) {
	stats, err := analytics.NewDashboardUseCase(memory.NewStore(), 10).GetStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalProducts)
	assert.True(t, stats.InventoryValue.IsZero())
}

type failingAnalytics struct{}

func (failingAnalytics) GetInventoryStats(context.Context, int) (repository.InventoryStats, error) {
	return repository.InventoryStats{}, errors.New("db caída")
}

func (failingAnalytics) CountCustomers(context.Context) (int, error) { return 0, nil }

func TestDashboard_PropagaError(t *testing.T) {
	_, err := analytics.NewDashboardUseCase(failingAnalytics{}, 10).GetStats(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db caída")
}

type capturingGenerator struct {
	got analytics.InventoryReport
}

func (g *capturingGenerator) GenerateInventoryReport(_ context.Context, r analytics.InventoryReport) ([]byte, error) {
	g.got = r
	return []byte("%PDF-fake"), nil
}

func TestReport_InventoryPDF(t *testing.T) {
	store := seed(t)
	gen := &capturingGenerator{}
	uc := analytics.NewReportUseCase(store.Repositories().Products, store, gen, 5)

	before := time.Now()
	out, err := uc.InventoryPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), out)

	assert.Len(t, gen.got.Products, 3)
	assert.Equal(t, "Arroz", gen.got.Products[0].Name)
	assert.Equal(t, 5, gen.got.LowStockThreshold)
	assert.Equal(t, 2, gen.got.Stats.LowStock)
	assert.False(t, gen.got.GeneratedAt.Before(before))
}
